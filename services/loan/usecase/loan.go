package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/apperr"
	"github.com/piresc/kelasbank/internal/pkg/logger"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/services/loan"
)

// loanUC implements the loan.LoanUC interface
type loanUC struct {
	cfg      *models.Config
	loanRepo loan.LoanRepo
	loanGW   loan.LoanGW
	validate *validator.Validate
}

// NewLoanUC creates a new loan usecase
func NewLoanUC(cfg *models.Config, repo loan.LoanRepo, gw loan.LoanGW) (loan.LoanUC, error) {
	return &loanUC{
		cfg:      cfg,
		loanRepo: repo,
		loanGW:   gw,
		validate: validator.New(),
	}, nil
}

// Originate checks the student's credit tier, prices the loan and disburses
// the principal
func (uc *loanUC) Originate(ctx context.Context, cmd models.OriginateLoanCmd) (*models.Loan, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperr.Validation("invalid loan request: %v", err)
	}

	score, err := uc.loanRepo.GetStudentCreditScore(ctx, cmd.TenantID, cmd.StudentID)
	if err != nil {
		return nil, err
	}

	tier, ok := loan.LookupCreditTier(score)
	if !ok {
		return nil, apperr.Conflict("credit score %d is below the minimum for any loan", score)
	}
	if cmd.Amount > tier.MaxAmount {
		return nil, apperr.Validation("amount %d exceeds the tier maximum of %d", cmd.Amount, tier.MaxAmount)
	}
	if cmd.Weeks > tier.MaxWeeks {
		return nil, apperr.Validation("duration %d weeks exceeds the tier maximum of %d", cmd.Weeks, tier.MaxWeeks)
	}

	active, err := uc.loanRepo.CountActiveLoans(ctx, cmd.TenantID, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if active >= tier.MaxActiveLoans {
		return nil, apperr.Conflict("student already has %d active loans, tier allows %d", active, tier.MaxActiveLoans)
	}

	now := time.Now()
	l := &models.Loan{
		ID:               uuid.New(),
		TenantID:         cmd.TenantID,
		StudentID:        cmd.StudentID,
		Principal:        cmd.Amount,
		AnnualRate:       tier.AnnualRate,
		DurationWeeks:    cmd.Weeks,
		WeeklyPayment:    loan.WeeklyPayment(cmd.Amount, tier.AnnualRate, cmd.Weeks),
		RemainingBalance: cmd.Amount,
		RemainingWeeks:   cmd.Weeks,
		Status:           models.LoanActive,
		NextPaymentDue:   now.Add(7 * 24 * time.Hour),
	}

	if err := uc.loanRepo.Originate(ctx, l); err != nil {
		return nil, err
	}

	logger.Info("Loan originated",
		logger.String("loan_id", l.ID.String()),
		logger.String("student_id", l.StudentID.String()),
		logger.Int64("principal", l.Principal),
		logger.Float64("annual_rate", l.AnnualRate))

	uc.publish(ctx, uc.loanGW.PublishLoanOriginated, l, l.Principal)
	return l, nil
}

// GetLoan returns one loan
func (uc *loanUC) GetLoan(ctx context.Context, tenantID, loanID uuid.UUID) (*models.Loan, error) {
	return uc.loanRepo.GetLoan(ctx, tenantID, loanID)
}

// ListLoans returns a student's loans
func (uc *loanUC) ListLoans(ctx context.Context, tenantID, studentID uuid.UUID) ([]models.Loan, error) {
	return uc.loanRepo.ListLoans(ctx, tenantID, studentID)
}

// ListPayments returns a loan's repayment history
func (uc *loanUC) ListPayments(ctx context.Context, tenantID, loanID uuid.UUID) ([]models.LoanPayment, error) {
	if _, err := uc.loanRepo.GetLoan(ctx, tenantID, loanID); err != nil {
		return nil, err
	}
	return uc.loanRepo.ListPayments(ctx, tenantID, loanID)
}

// Repay applies a payment to an active loan
func (uc *loanUC) Repay(ctx context.Context, cmd models.RepayLoanCmd) (*models.RepayResult, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperr.Validation("invalid repayment request: %v", err)
	}

	result, err := uc.loanRepo.Repay(ctx, cmd.TenantID, cmd.LoanID, cmd.Amount)
	if err != nil {
		return nil, err
	}

	logger.Info("Loan payment applied",
		logger.String("loan_id", cmd.LoanID.String()),
		logger.Int64("amount", result.Payment.Amount),
		logger.Int64("remaining", result.RemainingBalance))

	if result.Completed {
		l, err := uc.loanRepo.GetLoan(ctx, cmd.TenantID, cmd.LoanID)
		if err != nil {
			logger.Warn("Failed to load completed loan for event",
				logger.String("loan_id", cmd.LoanID.String()),
				logger.Err(err))
			return result, nil
		}
		uc.publish(ctx, uc.loanGW.PublishLoanCompleted, l, result.Payment.Amount)
	}

	return result, nil
}

// SweepOverdue defaults every active loan past its grace period
func (uc *loanUC) SweepOverdue(ctx context.Context, tenantID uuid.UUID) ([]models.Loan, error) {
	cutoff := time.Now().Add(-loan.DefaultGracePeriod)

	defaulted, err := uc.loanRepo.SweepOverdue(ctx, tenantID, cutoff, loan.DefaultCreditPenalty)
	if err != nil {
		return nil, err
	}

	for i := range defaulted {
		l := &defaulted[i]
		logger.Warn("Loan defaulted",
			logger.String("loan_id", l.ID.String()),
			logger.String("student_id", l.StudentID.String()),
			logger.Int64("remaining", l.RemainingBalance))
		uc.publish(ctx, uc.loanGW.PublishLoanDefaulted, l, l.RemainingBalance)
	}

	return defaulted, nil
}

// publish emits a lifecycle event; the state change already committed, so a
// publish failure is logged and swallowed
func (uc *loanUC) publish(ctx context.Context, fn func(context.Context, *models.LoanEvent) error, l *models.Loan, amount int64) {
	event := &models.LoanEvent{
		LoanID:    l.ID,
		TenantID:  l.TenantID,
		StudentID: l.StudentID,
		Status:    l.Status,
		Amount:    amount,
		Timestamp: time.Now(),
	}
	if err := fn(ctx, event); err != nil {
		logger.Warn(fmt.Sprintf("Failed to publish loan %s event", l.Status),
			logger.String("loan_id", l.ID.String()),
			logger.Err(err))
	}
}
