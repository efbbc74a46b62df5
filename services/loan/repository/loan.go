package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/kelasbank/internal/pkg/apperr"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/services/loan"
)

// LoanRepo is the PostgreSQL implementation of loan.LoanRepo
type LoanRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(cfg *models.Config, db *sqlx.DB) *LoanRepo {
	return &LoanRepo{
		cfg: cfg,
		db:  db,
	}
}

const loanColumns = `id, tenant_id, student_id, principal, annual_rate, duration_weeks,
	weekly_payment, remaining_balance, remaining_weeks, status, next_payment_due, created_at, updated_at`

// GetStudentCreditScore returns a student's current credit score
func (r *LoanRepo) GetStudentCreditScore(ctx context.Context, tenantID, studentID uuid.UUID) (int, error) {
	query := `SELECT credit_score FROM students WHERE tenant_id = $1 AND id = $2`

	var score int
	err := r.db.GetContext(ctx, &score, query, tenantID, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperr.NotFound("student %s not found", studentID)
		}
		return 0, fmt.Errorf("failed to get credit score: %w", err)
	}

	return score, nil
}

// CountActiveLoans counts a student's loans in the active state
func (r *LoanRepo) CountActiveLoans(ctx context.Context, tenantID, studentID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM loans WHERE tenant_id = $1 AND student_id = $2 AND status = $3`

	var count int
	if err := r.db.GetContext(ctx, &count, query, tenantID, studentID, models.LoanActive); err != nil {
		return 0, fmt.Errorf("failed to count active loans: %w", err)
	}

	return count, nil
}

type balanceRow struct {
	ID      uuid.UUID `db:"id"`
	Balance int64     `db:"balance"`
}

func (r *LoanRepo) lockChecking(ctx context.Context, tx *sqlx.Tx, tenantID, studentID uuid.UUID) (*balanceRow, error) {
	query := `
		SELECT a.id, a.balance
		FROM accounts a
		JOIN students s ON s.id = a.student_id
		WHERE s.tenant_id = $1 AND a.student_id = $2 AND a.type = $3
		FOR UPDATE OF a
	`

	var row balanceRow
	err := tx.GetContext(ctx, &row, query, tenantID, studentID, models.AccountChecking)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("checking account for student %s not found", studentID)
		}
		return nil, fmt.Errorf("failed to lock checking account: %w", err)
	}

	return &row, nil
}

func (r *LoanRepo) lockBank(ctx context.Context, tx *sqlx.Tx, tenantID uuid.UUID) (*balanceRow, error) {
	query := `SELECT id, balance FROM entities WHERE tenant_id = $1 AND type = $2 FOR UPDATE`

	var row balanceRow
	err := tx.GetContext(ctx, &row, query, tenantID, models.EntityBank)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.DependencyFailure("bank entity not found for tenant %s", tenantID)
		}
		return nil, fmt.Errorf("failed to lock bank entity: %w", err)
	}

	return &row, nil
}

func (r *LoanRepo) insertTransaction(ctx context.Context, tx *sqlx.Tx, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, tenant_id, from_kind, from_id, from_account,
			to_kind, to_id, to_account, amount, type, description, status, created_at
		) VALUES (
			:id, :tenant_id, :from_kind, :from_id, :from_account,
			:to_kind, :to_id, :to_account, :amount, :type, :description, :status, :created_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, query, txn); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// Originate persists the loan and disburses the principal from the bank
// entity into the student's checking account, all in one transaction
func (r *LoanRepo) Originate(ctx context.Context, l *models.Loan) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	bank, err := r.lockBank(ctx, tx, l.TenantID)
	if err != nil {
		return err
	}
	if bank.Balance < l.Principal {
		return apperr.InsufficientFunds(l.Principal, bank.Balance)
	}

	account, err := r.lockChecking(ctx, tx, l.TenantID, l.StudentID)
	if err != nil {
		return err
	}

	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now

	loanQuery := `
		INSERT INTO loans (
			id, tenant_id, student_id, principal, annual_rate, duration_weeks,
			weekly_payment, remaining_balance, remaining_weeks, status, next_payment_due, created_at, updated_at
		) VALUES (
			:id, :tenant_id, :student_id, :principal, :annual_rate, :duration_weeks,
			:weekly_payment, :remaining_balance, :remaining_weeks, :status, :next_payment_due, :created_at, :updated_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, loanQuery, l); err != nil {
		return fmt.Errorf("failed to insert loan: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE entities SET balance = balance - $1, updated_at = NOW() WHERE id = $2`, l.Principal, bank.ID); err != nil {
		return fmt.Errorf("failed to debit bank entity: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = balance + $1, updated_at = NOW() WHERE id = $2`, l.Principal, account.ID); err != nil {
		return fmt.Errorf("failed to credit borrower: %w", err)
	}

	txn := &models.Transaction{
		ID:          uuid.New(),
		TenantID:    l.TenantID,
		FromKind:    models.PartyEntity,
		FromID:      bank.ID,
		ToKind:      models.PartyStudent,
		ToID:        l.StudentID,
		ToAccount:   models.AccountChecking,
		Amount:      l.Principal,
		Type:        models.TxLoanDisbursement,
		Description: fmt.Sprintf("loan disbursement over %d weeks", l.DurationWeeks),
		Status:      "completed",
		CreatedAt:   now,
	}
	if err := r.insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetLoan returns one loan
func (r *LoanRepo) GetLoan(ctx context.Context, tenantID, loanID uuid.UUID) (*models.Loan, error) {
	query := fmt.Sprintf(`SELECT %s FROM loans WHERE tenant_id = $1 AND id = $2`, loanColumns)

	var l models.Loan
	err := r.db.GetContext(ctx, &l, query, tenantID, loanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("loan %s not found", loanID)
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}

	return &l, nil
}

// ListLoans returns a student's loans, newest first
func (r *LoanRepo) ListLoans(ctx context.Context, tenantID, studentID uuid.UUID) ([]models.Loan, error) {
	query := fmt.Sprintf(`SELECT %s FROM loans WHERE tenant_id = $1 AND student_id = $2 ORDER BY created_at DESC`, loanColumns)

	loans := []models.Loan{}
	if err := r.db.SelectContext(ctx, &loans, query, tenantID, studentID); err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	return loans, nil
}

// ListPayments returns a loan's repayment history in week order
func (r *LoanRepo) ListPayments(ctx context.Context, tenantID, loanID uuid.UUID) ([]models.LoanPayment, error) {
	query := `
		SELECT p.id, p.loan_id, p.week_number, p.amount, p.interest_amount,
			p.principal_amount, p.remaining_balance, p.payment_type, p.created_at
		FROM loan_payments p
		JOIN loans l ON l.id = p.loan_id
		WHERE l.tenant_id = $1 AND p.loan_id = $2
		ORDER BY p.week_number
	`

	payments := []models.LoanPayment{}
	if err := r.db.SelectContext(ctx, &payments, query, tenantID, loanID); err != nil {
		return nil, fmt.Errorf("failed to list loan payments: %w", err)
	}

	return payments, nil
}

// Repay applies a payment against the locked loan row: interest accrues on
// the current remaining balance, the remainder retires principal, and the
// bank entity is credited with the actual payment
func (r *LoanRepo) Repay(ctx context.Context, tenantID, loanID uuid.UUID, requested int64) (*models.RepayResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	lockQuery := fmt.Sprintf(`SELECT %s FROM loans WHERE tenant_id = $1 AND id = $2 FOR UPDATE`, loanColumns)
	var l models.Loan
	err = tx.GetContext(ctx, &l, lockQuery, tenantID, loanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("loan %s not found", loanID)
		}
		return nil, fmt.Errorf("failed to lock loan: %w", err)
	}
	if l.Status != models.LoanActive {
		return nil, apperr.Conflict("loan %s is already %s", loanID, l.Status)
	}

	actual, interest, principal, ok := loan.SplitPayment(requested, l.RemainingBalance, l.AnnualRate)
	if !ok {
		return nil, apperr.PaymentBelowInterest(interest)
	}

	account, err := r.lockChecking(ctx, tx, tenantID, l.StudentID)
	if err != nil {
		return nil, err
	}
	if account.Balance < actual {
		return nil, apperr.InsufficientFunds(actual, account.Balance)
	}
	bank, err := r.lockBank(ctx, tx, tenantID)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = balance - $1, updated_at = NOW() WHERE id = $2`, actual, account.ID); err != nil {
		return nil, fmt.Errorf("failed to debit borrower: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE entities SET balance = balance + $1, updated_at = NOW() WHERE id = $2`, actual, bank.ID); err != nil {
		return nil, fmt.Errorf("failed to credit bank entity: %w", err)
	}

	newRemaining := l.RemainingBalance - principal
	completed := newRemaining <= 0
	if completed {
		newRemaining = 0
	}

	newWeeks := l.RemainingWeeks - 1
	if newWeeks < 0 {
		newWeeks = 0
	}

	status := models.LoanActive
	if completed {
		status = models.LoanCompleted
	}

	now := time.Now()
	weekNumber := l.DurationWeeks - l.RemainingWeeks + 1

	paymentType := models.PaymentScheduled
	if actual > l.WeeklyPayment {
		paymentType = models.PaymentEarly
	}

	payment := &models.LoanPayment{
		ID:               uuid.New(),
		LoanID:           l.ID,
		WeekNumber:       weekNumber,
		Amount:           actual,
		InterestAmount:   interest,
		PrincipalAmount:  principal,
		RemainingBalance: newRemaining,
		PaymentType:      paymentType,
		CreatedAt:        now,
	}
	paymentQuery := `
		INSERT INTO loan_payments (id, loan_id, week_number, amount, interest_amount, principal_amount, remaining_balance, payment_type, created_at)
		VALUES (:id, :loan_id, :week_number, :amount, :interest_amount, :principal_amount, :remaining_balance, :payment_type, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, paymentQuery, payment); err != nil {
		return nil, fmt.Errorf("failed to insert loan payment: %w", err)
	}

	updateQuery := `
		UPDATE loans
		SET remaining_balance = $1, remaining_weeks = $2, status = $3,
			next_payment_due = next_payment_due + INTERVAL '7 days', updated_at = NOW()
		WHERE id = $4
	`
	if _, err := tx.ExecContext(ctx, updateQuery, newRemaining, newWeeks, status, l.ID); err != nil {
		return nil, fmt.Errorf("failed to update loan: %w", err)
	}

	txn := &models.Transaction{
		ID:          uuid.New(),
		TenantID:    tenantID,
		FromKind:    models.PartyStudent,
		FromID:      l.StudentID,
		FromAccount: models.AccountChecking,
		ToKind:      models.PartyEntity,
		ToID:        bank.ID,
		Amount:      actual,
		Type:        models.TxLoanRepayment,
		Description: fmt.Sprintf("loan payment week %d", weekNumber),
		Status:      "completed",
		CreatedAt:   now,
	}
	if err := r.insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.RepayResult{
		Payment:          payment,
		InterestAmount:   interest,
		PrincipalAmount:  principal,
		RemainingBalance: newRemaining,
		Completed:        completed,
	}, nil
}

// SweepOverdue defaults every active loan past its grace period and applies
// the credit penalty to its holder. Defaulted is terminal, so a re-run
// finds nothing to do.
func (r *LoanRepo) SweepOverdue(ctx context.Context, tenantID uuid.UUID, cutoff time.Time, penalty int) ([]models.Loan, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM loans
		WHERE tenant_id = $1 AND status = $2 AND next_payment_due < $3
		ORDER BY next_payment_due
		FOR UPDATE
	`, loanColumns)

	overdue := []models.Loan{}
	if err := tx.SelectContext(ctx, &overdue, selectQuery, tenantID, models.LoanActive, cutoff); err != nil {
		return nil, fmt.Errorf("failed to select overdue loans: %w", err)
	}
	if len(overdue) == 0 {
		return overdue, tx.Commit()
	}

	now := time.Now()
	for i := range overdue {
		l := &overdue[i]

		if _, err := tx.ExecContext(ctx, `UPDATE loans SET status = $1, updated_at = NOW() WHERE id = $2`, models.LoanDefaulted, l.ID); err != nil {
			return nil, fmt.Errorf("failed to default loan %s: %w", l.ID, err)
		}
		l.Status = models.LoanDefaulted

		scoreQuery := `
			UPDATE students SET credit_score = LEAST($1, GREATEST($2, credit_score + $3)), updated_at = NOW()
			WHERE tenant_id = $4 AND id = $5
		`
		if _, err := tx.ExecContext(ctx, scoreQuery, models.MaxCreditScore, models.MinCreditScore, penalty, tenantID, l.StudentID); err != nil {
			return nil, fmt.Errorf("failed to apply credit penalty: %w", err)
		}

		txn := &models.Transaction{
			ID:          uuid.New(),
			TenantID:    tenantID,
			FromKind:    models.PartySystem,
			ToKind:      models.PartyStudent,
			ToID:        l.StudentID,
			Amount:      0,
			Type:        models.TxCreditAdjustment,
			Description: fmt.Sprintf("credit score %+d: loan default", penalty),
			Status:      "completed",
			CreatedAt:   now,
		}
		if err := r.insertTransaction(ctx, tx, txn); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return overdue, nil
}
