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
)

// LedgerRepo is the PostgreSQL implementation of ledger.LedgerRepo
type LedgerRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(cfg *models.Config, db *sqlx.DB) *LedgerRepo {
	return &LedgerRepo{
		cfg: cfg,
		db:  db,
	}
}

// lockedBalance is one balance row read under FOR UPDATE
type lockedBalance struct {
	ID      uuid.UUID `db:"id"`
	Balance int64     `db:"balance"`
}

// lockStudentAccount reads a student's account balance under a row lock,
// scoped to the tenant so cross-tenant references fail as not-found
func (r *LedgerRepo) lockStudentAccount(ctx context.Context, tx *sqlx.Tx, tenantID, studentID uuid.UUID, accountType models.AccountType) (*lockedBalance, error) {
	query := `
		SELECT a.id, a.balance
		FROM accounts a
		JOIN students s ON s.id = a.student_id
		WHERE s.tenant_id = $1 AND a.student_id = $2 AND a.type = $3
		FOR UPDATE OF a
	`

	var row lockedBalance
	err := tx.GetContext(ctx, &row, query, tenantID, studentID, accountType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("account %s for student %s not found", accountType, studentID)
		}
		return nil, fmt.Errorf("failed to lock student account: %w", err)
	}

	return &row, nil
}

// lockEntity reads an entity balance under a row lock
func (r *LedgerRepo) lockEntity(ctx context.Context, tx *sqlx.Tx, tenantID, entityID uuid.UUID) (*lockedBalance, error) {
	query := `SELECT id, balance FROM entities WHERE tenant_id = $1 AND id = $2 FOR UPDATE`

	var row lockedBalance
	err := tx.GetContext(ctx, &row, query, tenantID, entityID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.DependencyFailure("economic entity %s not found for tenant %s", entityID, tenantID)
		}
		return nil, fmt.Errorf("failed to lock entity: %w", err)
	}

	return &row, nil
}

// lockEntityByType reads an entity balance under a row lock by its type
func (r *LedgerRepo) lockEntityByType(ctx context.Context, tx *sqlx.Tx, tenantID uuid.UUID, entityType models.EntityType) (*lockedBalance, error) {
	query := `SELECT id, balance FROM entities WHERE tenant_id = $1 AND type = $2 FOR UPDATE`

	var row lockedBalance
	err := tx.GetContext(ctx, &row, query, tenantID, entityType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.DependencyFailure("%s entity not found for tenant %s", entityType, tenantID)
		}
		return nil, fmt.Errorf("failed to lock %s entity: %w", entityType, err)
	}

	return &row, nil
}

// lockParty locks the balance row a PartyRef names. System parties hold no
// balance; callers skip the leg entirely.
func (r *LedgerRepo) lockParty(ctx context.Context, tx *sqlx.Tx, tenantID uuid.UUID, ref models.PartyRef) (*lockedBalance, error) {
	switch ref.Kind {
	case models.PartyStudent:
		return r.lockStudentAccount(ctx, tx, tenantID, ref.ID, ref.Account)
	case models.PartyEntity:
		return r.lockEntity(ctx, tx, tenantID, ref.ID)
	default:
		return nil, apperr.Validation("unknown party kind: %s", ref.Kind)
	}
}

// applyDelta adjusts a locked balance row. The caller has already verified
// the resulting balance cannot go negative.
func (r *LedgerRepo) applyDelta(ctx context.Context, tx *sqlx.Tx, ref models.PartyRef, rowID uuid.UUID, delta int64) error {
	var query string
	switch ref.Kind {
	case models.PartyStudent:
		query = `UPDATE accounts SET balance = balance + $1, updated_at = NOW() WHERE id = $2`
	case models.PartyEntity:
		query = `UPDATE entities SET balance = balance + $1, updated_at = NOW() WHERE id = $2`
	default:
		return apperr.Validation("unknown party kind: %s", ref.Kind)
	}

	if _, err := tx.ExecContext(ctx, query, delta, rowID); err != nil {
		return fmt.Errorf("failed to apply balance delta: %w", err)
	}
	return nil
}

// insertTransaction appends one immutable ledger entry
func (r *LedgerRepo) insertTransaction(ctx context.Context, tx *sqlx.Tx, txn *models.Transaction) error {
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

// Transfer atomically moves funds between two balance holders and appends
// the ledger entry, all inside one database transaction
func (r *LedgerRepo) Transfer(ctx context.Context, spec *models.TransferSpec) (*models.TransferResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var sourceBalance, destBalance int64

	// Debit leg
	if spec.From.Kind != models.PartySystem {
		src, err := r.lockParty(ctx, tx, spec.TenantID, spec.From)
		if err != nil {
			return nil, err
		}
		if src.Balance < spec.Amount {
			return nil, apperr.InsufficientFunds(spec.Amount, src.Balance)
		}
		if err := r.applyDelta(ctx, tx, spec.From, src.ID, -spec.Amount); err != nil {
			return nil, err
		}
		sourceBalance = src.Balance - spec.Amount
	}

	// Credit leg
	if spec.To.Kind != models.PartySystem {
		dst, err := r.lockParty(ctx, tx, spec.TenantID, spec.To)
		if err != nil {
			return nil, err
		}
		if err := r.applyDelta(ctx, tx, spec.To, dst.ID, spec.Amount); err != nil {
			return nil, err
		}
		destBalance = dst.Balance + spec.Amount
	}

	txn := &models.Transaction{
		ID:          uuid.New(),
		TenantID:    spec.TenantID,
		FromKind:    spec.From.Kind,
		FromID:      spec.From.ID,
		FromAccount: spec.From.Account,
		ToKind:      spec.To.Kind,
		ToID:        spec.To.ID,
		ToAccount:   spec.To.Account,
		Amount:      spec.Amount,
		Type:        spec.Type,
		Description: spec.Description,
		Status:      "completed",
		CreatedAt:   time.Now(),
	}

	if err := r.insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.TransferResult{
		Transaction:   txn,
		SourceBalance: sourceBalance,
		DestBalance:   destBalance,
	}, nil
}

// CollectTax levies amount from every payer's checking account into the
// government entity. Every payer balance is checked before any mutation, so
// the levy is all-or-nothing; a failure names every short payer.
func (r *LedgerRepo) CollectTax(ctx context.Context, tenantID uuid.UUID, payerIDs []uuid.UUID, amount int64, description string) ([]models.Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock and validate every payer before touching any balance
	locked := make([]*lockedBalance, 0, len(payerIDs))
	var short []string
	for _, payerID := range payerIDs {
		row, err := r.lockStudentAccount(ctx, tx, tenantID, payerID, models.AccountChecking)
		if err != nil {
			return nil, err
		}
		if row.Balance < amount {
			short = append(short, payerID.String())
		}
		locked = append(locked, row)
	}

	if len(short) > 0 {
		return nil, &apperr.Error{
			Kind:     apperr.KindInsufficientFunds,
			Message:  fmt.Sprintf("tax collection aborted: insufficient funds for students %v", short),
			Required: amount,
		}
	}

	gov, err := r.lockEntityByType(ctx, tx, tenantID, models.EntityGovernment)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	transactions := make([]models.Transaction, 0, len(payerIDs))
	for i, payerID := range payerIDs {
		ref := models.PartyRef{Kind: models.PartyStudent, ID: payerID, Account: models.AccountChecking}
		if err := r.applyDelta(ctx, tx, ref, locked[i].ID, -amount); err != nil {
			return nil, err
		}

		txn := models.Transaction{
			ID:          uuid.New(),
			TenantID:    tenantID,
			FromKind:    models.PartyStudent,
			FromID:      payerID,
			FromAccount: models.AccountChecking,
			ToKind:      models.PartyEntity,
			ToID:        gov.ID,
			Amount:      amount,
			Type:        models.TxTaxPayment,
			Description: description,
			Status:      "completed",
			CreatedAt:   now,
		}
		if err := r.insertTransaction(ctx, tx, &txn); err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	govRef := models.PartyRef{Kind: models.PartyEntity, ID: gov.ID}
	total := amount * int64(len(payerIDs))
	if err := r.applyDelta(ctx, tx, govRef, gov.ID, total); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return transactions, nil
}

// DistributeAllowance credits each grant from the government entity. The
// government balance must cover the whole run before any credit is applied.
func (r *LedgerRepo) DistributeAllowance(ctx context.Context, tenantID uuid.UUID, grants []models.AllowanceGrant, description string) ([]models.Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var total int64
	for _, g := range grants {
		total += g.Amount
	}

	gov, err := r.lockEntityByType(ctx, tx, tenantID, models.EntityGovernment)
	if err != nil {
		return nil, err
	}
	if gov.Balance < total {
		return nil, apperr.InsufficientFunds(total, gov.Balance)
	}

	govRef := models.PartyRef{Kind: models.PartyEntity, ID: gov.ID}
	if err := r.applyDelta(ctx, tx, govRef, gov.ID, -total); err != nil {
		return nil, err
	}

	now := time.Now()
	transactions := make([]models.Transaction, 0, len(grants))
	for _, g := range grants {
		ref := models.PartyRef{Kind: models.PartyStudent, ID: g.StudentID, Account: models.AccountChecking}
		row, err := r.lockStudentAccount(ctx, tx, tenantID, g.StudentID, models.AccountChecking)
		if err != nil {
			return nil, err
		}
		if err := r.applyDelta(ctx, tx, ref, row.ID, g.Amount); err != nil {
			return nil, err
		}

		txn := models.Transaction{
			ID:          uuid.New(),
			TenantID:    tenantID,
			FromKind:    models.PartyEntity,
			FromID:      gov.ID,
			ToKind:      models.PartyStudent,
			ToID:        g.StudentID,
			ToAccount:   models.AccountChecking,
			Amount:      g.Amount,
			Type:        models.TxAllowance,
			Description: description,
			Status:      "completed",
			CreatedAt:   now,
		}
		if err := r.insertTransaction(ctx, tx, &txn); err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return transactions, nil
}

// ListTransactions returns the ledger entries naming a student, newest first
func (r *LedgerRepo) ListTransactions(ctx context.Context, tenantID, studentID uuid.UUID, limit, offset int) ([]models.Transaction, error) {
	query := `
		SELECT id, tenant_id, from_kind, from_id, from_account,
			to_kind, to_id, to_account, amount, type, description, status, created_at
		FROM transactions
		WHERE tenant_id = $1 AND (from_id = $2 OR to_id = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	transactions := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, tenantID, studentID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}
