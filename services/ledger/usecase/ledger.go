package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/apperr"
	"github.com/piresc/kelasbank/internal/pkg/logger"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/services/ledger"
)

// ledgerUC implements the ledger.LedgerUC interface
type ledgerUC struct {
	cfg        *models.Config
	ledgerRepo ledger.LedgerRepo
	ledgerGW   ledger.LedgerGW
	validate   *validator.Validate
}

// NewLedgerUC creates a new ledger use case
func NewLedgerUC(
	cfg *models.Config,
	ledgerRepo ledger.LedgerRepo,
	ledgerGW ledger.LedgerGW,
) (ledger.LedgerUC, error) {
	return &ledgerUC{
		cfg:        cfg,
		ledgerRepo: ledgerRepo,
		ledgerGW:   ledgerGW,
		validate:   validator.New(),
	}, nil
}

// CreateStudent registers a student and opens the three standard accounts
func (uc *ledgerUC) CreateStudent(ctx context.Context, cmd models.CreateStudentCmd) (*models.Student, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperr.Validation("invalid create student request: %v", err)
	}

	student := &models.Student{
		ID:              uuid.New(),
		TenantID:        cmd.TenantID,
		Name:            cmd.Name,
		CreditScore:     650,
		WeeklyAllowance: cmd.WeeklyAllowance,
	}

	if err := uc.ledgerRepo.CreateStudent(ctx, student, cmd.InitialBalance); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	logger.Info("Created student",
		logger.String("student_id", student.ID.String()),
		logger.String("tenant_id", cmd.TenantID.String()),
		logger.Int64("initial_balance", cmd.InitialBalance))

	return student, nil
}

// GetStudent returns a student with accounts loaded
func (uc *ledgerUC) GetStudent(ctx context.Context, tenantID, studentID uuid.UUID) (*models.Student, error) {
	return uc.ledgerRepo.GetStudent(ctx, tenantID, studentID)
}

// ListStudents returns every student in the tenant
func (uc *ledgerUC) ListStudents(ctx context.Context, tenantID uuid.UUID) ([]models.Student, error) {
	return uc.ledgerRepo.ListStudents(ctx, tenantID)
}

// DeleteStudent removes a student and releases any seats they own
func (uc *ledgerUC) DeleteStudent(ctx context.Context, tenantID, studentID uuid.UUID) error {
	if err := uc.ledgerRepo.DeleteStudent(ctx, tenantID, studentID); err != nil {
		return err
	}

	logger.Info("Deleted student",
		logger.String("student_id", studentID.String()),
		logger.String("tenant_id", tenantID.String()))
	return nil
}

// AdjustCreditScore applies a teacher-initiated score change, clamped to the
// valid band by the repository
func (uc *ledgerUC) AdjustCreditScore(ctx context.Context, cmd models.AdjustCreditCmd) (*models.Student, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperr.Validation("invalid credit adjustment request: %v", err)
	}

	student, err := uc.ledgerRepo.AdjustCreditScore(ctx, cmd.TenantID, cmd.StudentID, cmd.Delta, cmd.Reason)
	if err != nil {
		return nil, err
	}

	logger.Info("Adjusted credit score",
		logger.String("student_id", cmd.StudentID.String()),
		logger.Int("delta", cmd.Delta),
		logger.Int("credit_score", student.CreditScore))

	return student, nil
}

// BootstrapTenant creates the government, bank and securities entities for a
// tenant. Safe to call repeatedly.
func (uc *ledgerUC) BootstrapTenant(ctx context.Context, tenantID uuid.UUID, initialBalance int64) error {
	if err := uc.ledgerRepo.EnsureEntities(ctx, tenantID, initialBalance); err != nil {
		return fmt.Errorf("failed to bootstrap tenant: %w", err)
	}

	logger.Info("Bootstrapped tenant entities",
		logger.String("tenant_id", tenantID.String()),
		logger.Int64("initial_balance", initialBalance))
	return nil
}

// validateParty rejects malformed party references before any locking
func (uc *ledgerUC) validateParty(ref models.PartyRef, label string) error {
	switch ref.Kind {
	case models.PartyStudent:
		if ref.ID == uuid.Nil {
			return apperr.Validation("%s student id is required", label)
		}
		if !ref.Account.Valid() {
			return apperr.Validation("%s account type %q is invalid", label, ref.Account)
		}
	case models.PartyEntity:
		if ref.ID == uuid.Nil {
			return apperr.Validation("%s entity id is required", label)
		}
	case models.PartySystem:
		// no balance row to name
	default:
		return apperr.Validation("%s party kind %q is invalid", label, ref.Kind)
	}
	return nil
}

// transferType picks the ledger entry type for a transfer between from and to
func transferType(from, to models.PartyRef) models.TransactionType {
	if from.Kind == models.PartyStudent && to.Kind == models.PartyStudent && from.ID == to.ID {
		return models.TxAccountTransfer
	}
	return models.TxTransfer
}

// Transfer moves funds between any two balance holders
func (uc *ledgerUC) Transfer(ctx context.Context, cmd models.TransferCmd) (*models.TransferResult, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperr.Validation("invalid transfer request: %v", err)
	}
	if err := uc.validateParty(cmd.From, "source"); err != nil {
		return nil, err
	}
	if err := uc.validateParty(cmd.To, "destination"); err != nil {
		return nil, err
	}
	if cmd.From.Kind == cmd.To.Kind && cmd.From.ID == cmd.To.ID && cmd.From.Account == cmd.To.Account {
		return nil, apperr.Validation("source and destination are the same account")
	}

	spec := &models.TransferSpec{
		TenantID:    cmd.TenantID,
		From:        cmd.From,
		To:          cmd.To,
		Amount:      cmd.Amount,
		Type:        transferType(cmd.From, cmd.To),
		Description: cmd.Note,
	}

	result, err := uc.ledgerRepo.Transfer(ctx, spec)
	if err != nil {
		return nil, err
	}

	uc.publishRecorded(ctx, result.Transaction)
	return result, nil
}

// MultiTransfer fans one source out to many recipients. Each leg is its own
// transaction; a failed leg is reported and the rest proceed.
func (uc *ledgerUC) MultiTransfer(ctx context.Context, cmd models.MultiTransferCmd) ([]models.MultiTransferOutcome, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperr.Validation("invalid multi-transfer request: %v", err)
	}
	if err := uc.validateParty(cmd.From, "source"); err != nil {
		return nil, err
	}
	for i, rcpt := range cmd.Recipients {
		if err := uc.validateParty(rcpt.To, fmt.Sprintf("recipient %d", i)); err != nil {
			return nil, err
		}
	}

	outcomes := make([]models.MultiTransferOutcome, 0, len(cmd.Recipients))
	for _, rcpt := range cmd.Recipients {
		outcome := models.MultiTransferOutcome{
			Recipient: rcpt.To,
			Amount:    rcpt.Amount,
		}

		spec := &models.TransferSpec{
			TenantID:    cmd.TenantID,
			From:        cmd.From,
			To:          rcpt.To,
			Amount:      rcpt.Amount,
			Type:        transferType(cmd.From, rcpt.To),
			Description: cmd.Note,
		}

		result, err := uc.ledgerRepo.Transfer(ctx, spec)
		if err != nil {
			outcome.Error = err.Error()
			logger.Warn("Multi-transfer leg failed",
				logger.String("recipient_id", rcpt.To.ID.String()),
				logger.Int64("amount", rcpt.Amount),
				logger.Err(err))
		} else {
			outcome.Success = true
			uc.publishRecorded(ctx, result.Transaction)
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// CollectTax levies one amount from every payer's checking account into the
// government entity. The whole levy succeeds or nothing moves.
func (uc *ledgerUC) CollectTax(ctx context.Context, cmd models.TaxCollectCmd) (*models.FanOutResult, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperr.Validation("invalid tax collection request: %v", err)
	}

	amount := cmd.Amount
	if amount == 0 {
		amount = uc.cfg.Tax.DefaultAmount
	}

	payerIDs := cmd.PayerIDs
	if len(payerIDs) == 0 {
		students, err := uc.ledgerRepo.ListStudents(ctx, cmd.TenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tax payers: %w", err)
		}
		payerIDs = make([]uuid.UUID, len(students))
		for i, s := range students {
			payerIDs[i] = s.ID
		}
	}
	if len(payerIDs) == 0 {
		return &models.FanOutResult{}, nil
	}

	note := cmd.Note
	if note == "" {
		note = "weekly tax"
	}

	transactions, err := uc.ledgerRepo.CollectTax(ctx, cmd.TenantID, payerIDs, amount, note)
	if err != nil {
		return nil, err
	}

	for i := range transactions {
		uc.publishRecorded(ctx, &transactions[i])
	}

	logger.Info("Collected tax",
		logger.String("tenant_id", cmd.TenantID.String()),
		logger.Int("payer_count", len(transactions)),
		logger.Int64("amount", amount))

	return &models.FanOutResult{
		Count:        len(transactions),
		TotalAmount:  amount * int64(len(transactions)),
		Transactions: transactions,
	}, nil
}

// DistributeAllowance credits students' checking accounts from the
// government entity. Amount 0 grants each student's configured weekly
// allowance.
func (uc *ledgerUC) DistributeAllowance(ctx context.Context, cmd models.AllowanceCmd) (*models.FanOutResult, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperr.Validation("invalid allowance request: %v", err)
	}

	students, err := uc.ledgerRepo.ListStudents(ctx, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve allowance recipients: %w", err)
	}

	selected := students
	if len(cmd.StudentIDs) > 0 {
		wanted := make(map[uuid.UUID]bool, len(cmd.StudentIDs))
		for _, id := range cmd.StudentIDs {
			wanted[id] = true
		}
		selected = make([]models.Student, 0, len(cmd.StudentIDs))
		for _, s := range students {
			if wanted[s.ID] {
				selected = append(selected, s)
			}
		}
		if len(selected) != len(cmd.StudentIDs) {
			return nil, apperr.Validation("allowance request names students outside this tenant")
		}
	}

	grants := make([]models.AllowanceGrant, 0, len(selected))
	var total int64
	for _, s := range selected {
		amount := cmd.Amount
		if amount == 0 {
			amount = s.WeeklyAllowance
		}
		if amount == 0 {
			continue
		}
		grants = append(grants, models.AllowanceGrant{StudentID: s.ID, Amount: amount})
		total += amount
	}
	if len(grants) == 0 {
		return &models.FanOutResult{}, nil
	}

	note := cmd.Note
	if note == "" {
		note = "weekly allowance"
	}

	transactions, err := uc.ledgerRepo.DistributeAllowance(ctx, cmd.TenantID, grants, note)
	if err != nil {
		return nil, err
	}

	for i := range transactions {
		uc.publishRecorded(ctx, &transactions[i])
	}

	logger.Info("Distributed allowance",
		logger.String("tenant_id", cmd.TenantID.String()),
		logger.Int("recipient_count", len(transactions)),
		logger.Int64("total", total))

	return &models.FanOutResult{
		Count:        len(transactions),
		TotalAmount:  total,
		Transactions: transactions,
	}, nil
}

// ListTransactions returns the ledger entries naming a student
func (uc *ledgerUC) ListTransactions(ctx context.Context, tenantID, studentID uuid.UUID, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.ledgerRepo.ListTransactions(ctx, tenantID, studentID, limit, offset)
}

// publishRecorded emits the transaction event. Publish failures are logged
// and swallowed; the ledger entry has already committed.
func (uc *ledgerUC) publishRecorded(ctx context.Context, txn *models.Transaction) {
	if err := uc.ledgerGW.PublishTransactionRecorded(ctx, txn); err != nil {
		logger.Warn("Failed to publish transaction event",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err))
	}
}
