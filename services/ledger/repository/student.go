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

// CreateStudent inserts the student row and opens its three accounts in one
// transaction. The initial balance lands in checking; savings and investment
// start at zero.
func (r *LedgerRepo) CreateStudent(ctx context.Context, student *models.Student, initialBalance int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now

	studentQuery := `
		INSERT INTO students (id, tenant_id, name, credit_score, weekly_allowance, created_at, updated_at)
		VALUES (:id, :tenant_id, :name, :credit_score, :weekly_allowance, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, studentQuery, student); err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}

	accountQuery := `
		INSERT INTO accounts (id, student_id, type, balance, interest_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`
	student.Accounts = make([]models.Account, 0, len(models.AccountTypes))
	for _, accType := range models.AccountTypes {
		account := models.Account{
			ID:        uuid.New(),
			StudentID: student.ID,
			Type:      accType,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if accType == models.AccountChecking {
			account.Balance = initialBalance
		}
		if accType == models.AccountSavings {
			account.InterestRate = 2.0
		}

		_, err := tx.ExecContext(ctx, accountQuery,
			account.ID, account.StudentID, account.Type, account.Balance, account.InterestRate, now)
		if err != nil {
			return fmt.Errorf("failed to insert %s account: %w", accType, err)
		}
		student.Accounts = append(student.Accounts, account)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetStudent returns a student with all three accounts loaded
func (r *LedgerRepo) GetStudent(ctx context.Context, tenantID, studentID uuid.UUID) (*models.Student, error) {
	query := `
		SELECT id, tenant_id, name, credit_score, weekly_allowance, created_at, updated_at
		FROM students
		WHERE tenant_id = $1 AND id = $2
	`

	var student models.Student
	err := r.db.GetContext(ctx, &student, query, tenantID, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("student %s not found", studentID)
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	accountQuery := `
		SELECT id, student_id, type, balance, interest_rate, created_at, updated_at
		FROM accounts
		WHERE student_id = $1
		ORDER BY type
	`
	if err := r.db.SelectContext(ctx, &student.Accounts, accountQuery, studentID); err != nil {
		return nil, fmt.Errorf("failed to get student accounts: %w", err)
	}

	return &student, nil
}

// ListStudents returns every student in the tenant, accounts loaded
func (r *LedgerRepo) ListStudents(ctx context.Context, tenantID uuid.UUID) ([]models.Student, error) {
	query := `
		SELECT id, tenant_id, name, credit_score, weekly_allowance, created_at, updated_at
		FROM students
		WHERE tenant_id = $1
		ORDER BY name
	`

	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	if len(students) == 0 {
		return students, nil
	}

	ids := make([]uuid.UUID, len(students))
	index := make(map[uuid.UUID]int, len(students))
	for i := range students {
		ids[i] = students[i].ID
		index[students[i].ID] = i
	}

	accountQuery, args, err := sqlx.In(`
		SELECT id, student_id, type, balance, interest_rate, created_at, updated_at
		FROM accounts
		WHERE student_id IN (?)
		ORDER BY student_id, type
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build account query: %w", err)
	}
	accounts := []models.Account{}
	if err := r.db.SelectContext(ctx, &accounts, r.db.Rebind(accountQuery), args...); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	for _, a := range accounts {
		i := index[a.StudentID]
		students[i].Accounts = append(students[i].Accounts, a)
	}

	return students, nil
}

// DeleteStudent removes a student; accounts, attempts and payments go with
// it via ON DELETE CASCADE. Owned seats are released first so they return
// to the market.
func (r *LedgerRepo) DeleteStudent(ctx context.Context, tenantID, studentID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	releaseQuery := `
		UPDATE seats
		SET owner_id = NULL, purchase_price = NULL, purchased_at = NULL, updated_at = NOW()
		WHERE tenant_id = $1 AND owner_id = $2
	`
	if _, err := tx.ExecContext(ctx, releaseQuery, tenantID, studentID); err != nil {
		return fmt.Errorf("failed to release seats: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM students WHERE tenant_id = $1 AND id = $2`, tenantID, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperr.NotFound("student %s not found", studentID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AdjustCreditScore applies delta clamped to the 350..850 band and records
// a zero-amount credit_adjustment ledger entry carrying the reason
func (r *LedgerRepo) AdjustCreditScore(ctx context.Context, tenantID, studentID uuid.UUID, delta int, reason string) (*models.Student, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE students
		SET credit_score = LEAST($1, GREATEST($2, credit_score + $3)), updated_at = NOW()
		WHERE tenant_id = $4 AND id = $5
		RETURNING id, tenant_id, name, credit_score, weekly_allowance, created_at, updated_at
	`

	var student models.Student
	err = tx.GetContext(ctx, &student, query, models.MaxCreditScore, models.MinCreditScore, delta, tenantID, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("student %s not found", studentID)
		}
		return nil, fmt.Errorf("failed to adjust credit score: %w", err)
	}

	txn := &models.Transaction{
		ID:          uuid.New(),
		TenantID:    tenantID,
		FromKind:    models.PartySystem,
		ToKind:      models.PartyStudent,
		ToID:        studentID,
		Amount:      0,
		Type:        models.TxCreditAdjustment,
		Description: fmt.Sprintf("credit score %+d: %s", delta, reason),
		Status:      "completed",
		CreatedAt:   time.Now(),
	}
	if err := r.insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &student, nil
}

// EnsureEntities creates the government, bank and securities rows for a
// tenant if they do not exist yet. Re-running the bootstrap is a no-op.
func (r *LedgerRepo) EnsureEntities(ctx context.Context, tenantID uuid.UUID, initialBalance int64) error {
	query := `
		INSERT INTO entities (id, tenant_id, type, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (tenant_id, type) DO NOTHING
	`

	for _, entityType := range models.EntityTypes {
		if _, err := r.db.ExecContext(ctx, query, uuid.New(), tenantID, entityType, initialBalance); err != nil {
			return fmt.Errorf("failed to ensure %s entity: %w", entityType, err)
		}
	}

	return nil
}

// GetEntity returns one economic entity by type
func (r *LedgerRepo) GetEntity(ctx context.Context, tenantID uuid.UUID, entityType models.EntityType) (*models.EconomicEntity, error) {
	query := `
		SELECT id, tenant_id, type, balance, created_at, updated_at
		FROM entities
		WHERE tenant_id = $1 AND type = $2
	`

	var entity models.EconomicEntity
	err := r.db.GetContext(ctx, &entity, query, tenantID, entityType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.DependencyFailure("%s entity not found for tenant %s", entityType, tenantID)
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	return &entity, nil
}

// GetAccount returns one of a student's accounts
func (r *LedgerRepo) GetAccount(ctx context.Context, tenantID, studentID uuid.UUID, accountType models.AccountType) (*models.Account, error) {
	query := `
		SELECT a.id, a.student_id, a.type, a.balance, a.interest_rate, a.created_at, a.updated_at
		FROM accounts a
		JOIN students s ON s.id = a.student_id
		WHERE s.tenant_id = $1 AND a.student_id = $2 AND a.type = $3
	`

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, tenantID, studentID, accountType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("account %s for student %s not found", accountType, studentID)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}
