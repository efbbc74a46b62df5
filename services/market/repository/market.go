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

// MarketRepo is the PostgreSQL implementation of market.MarketRepo
type MarketRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMarketRepository creates a new market repository
func NewMarketRepository(cfg *models.Config, db *sqlx.DB) *MarketRepo {
	return &MarketRepo{
		cfg: cfg,
		db:  db,
	}
}

const seatColumns = `id, tenant_id, seat_number, row_pos, col_pos, current_price,
	owner_id, purchase_price, purchased_at, available, created_at, updated_at`

// EnsureSeats creates the rows*cols seat grid for a tenant. Seats that
// already exist are left untouched, so the bootstrap can run repeatedly.
func (r *MarketRepo) EnsureSeats(ctx context.Context, tenantID uuid.UUID, rows, cols int, price int64) error {
	query := `
		INSERT INTO seats (id, tenant_id, seat_number, row_pos, col_pos, current_price, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW(), NOW())
		ON CONFLICT (tenant_id, seat_number) DO NOTHING
	`

	for row := 1; row <= rows; row++ {
		for col := 1; col <= cols; col++ {
			seatNumber := (row-1)*cols + col
			if _, err := r.db.ExecContext(ctx, query, uuid.New(), tenantID, seatNumber, row, col, price); err != nil {
				return fmt.Errorf("failed to ensure seat %d: %w", seatNumber, err)
			}
		}
	}

	return nil
}

// GetSeat returns one seat by number
func (r *MarketRepo) GetSeat(ctx context.Context, tenantID uuid.UUID, seatNumber int) (*models.Seat, error) {
	query := fmt.Sprintf(`SELECT %s FROM seats WHERE tenant_id = $1 AND seat_number = $2`, seatColumns)

	var seat models.Seat
	err := r.db.GetContext(ctx, &seat, query, tenantID, seatNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("seat %d not found", seatNumber)
		}
		return nil, fmt.Errorf("failed to get seat: %w", err)
	}

	return &seat, nil
}

// ListSeats returns every seat in the tenant ordered by seat number
func (r *MarketRepo) ListSeats(ctx context.Context, tenantID uuid.UUID) ([]models.Seat, error) {
	query := fmt.Sprintf(`SELECT %s FROM seats WHERE tenant_id = $1 ORDER BY seat_number`, seatColumns)

	seats := []models.Seat{}
	if err := r.db.SelectContext(ctx, &seats, query, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}

	return seats, nil
}

// TotalStudentAssets sums every student account balance in the tenant and
// counts the students. Economic entities hold their balances in a separate
// table, so they never leak into the aggregate.
func (r *MarketRepo) TotalStudentAssets(ctx context.Context, tenantID uuid.UUID) (int64, int, error) {
	query := `
		SELECT COALESCE(SUM(a.balance), 0) AS total, COUNT(DISTINCT s.id) AS student_count
		FROM students s
		LEFT JOIN accounts a ON a.student_id = s.id
		WHERE s.tenant_id = $1
	`

	var row struct {
		Total        int64 `db:"total"`
		StudentCount int   `db:"student_count"`
	}
	if err := r.db.GetContext(ctx, &row, query, tenantID); err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate student assets: %w", err)
	}

	return row.Total, row.StudentCount, nil
}

// ApplyPrice reprices every unowned seat in the tenant
func (r *MarketRepo) ApplyPrice(ctx context.Context, tenantID uuid.UUID, price int64) (int, error) {
	query := `
		UPDATE seats SET current_price = $1, updated_at = NOW()
		WHERE tenant_id = $2 AND owner_id IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, price, tenantID)
	if err != nil {
		return 0, fmt.Errorf("failed to apply seat price: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}

// lockSeat reads a seat under a row lock
func (r *MarketRepo) lockSeat(ctx context.Context, tx *sqlx.Tx, tenantID uuid.UUID, seatNumber int) (*models.Seat, error) {
	query := fmt.Sprintf(`SELECT %s FROM seats WHERE tenant_id = $1 AND seat_number = $2 FOR UPDATE`, seatColumns)

	var seat models.Seat
	err := tx.GetContext(ctx, &seat, query, tenantID, seatNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("seat %d not found", seatNumber)
		}
		return nil, fmt.Errorf("failed to lock seat: %w", err)
	}

	return &seat, nil
}

// accountRow is a checking balance read under FOR UPDATE
type accountRow struct {
	ID      uuid.UUID `db:"id"`
	Balance int64     `db:"balance"`
}

func (r *MarketRepo) lockChecking(ctx context.Context, tx *sqlx.Tx, tenantID, studentID uuid.UUID) (*accountRow, error) {
	query := `
		SELECT a.id, a.balance
		FROM accounts a
		JOIN students s ON s.id = a.student_id
		WHERE s.tenant_id = $1 AND a.student_id = $2 AND a.type = $3
		FOR UPDATE OF a
	`

	var row accountRow
	err := tx.GetContext(ctx, &row, query, tenantID, studentID, models.AccountChecking)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("checking account for student %s not found", studentID)
		}
		return nil, fmt.Errorf("failed to lock checking account: %w", err)
	}

	return &row, nil
}

func (r *MarketRepo) lockSecurities(ctx context.Context, tx *sqlx.Tx, tenantID uuid.UUID) (*accountRow, error) {
	query := `SELECT id, balance FROM entities WHERE tenant_id = $1 AND type = $2 FOR UPDATE`

	var row accountRow
	err := tx.GetContext(ctx, &row, query, tenantID, models.EntitySecurities)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.DependencyFailure("securities entity not found for tenant %s", tenantID)
		}
		return nil, fmt.Errorf("failed to lock securities entity: %w", err)
	}

	return &row, nil
}

func (r *MarketRepo) recordTrade(ctx context.Context, tx *sqlx.Tx, seat *models.Seat, studentID uuid.UUID, tradeType models.SeatTransactionType, price int64, txn *models.Transaction) error {
	seatTxQuery := `
		INSERT INTO seat_transactions (id, tenant_id, seat_id, seat_number, student_id, type, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	now := time.Now()
	if _, err := tx.ExecContext(ctx, seatTxQuery, uuid.New(), seat.TenantID, seat.ID, seat.SeatNumber, studentID, tradeType, price, now); err != nil {
		return fmt.Errorf("failed to insert seat transaction: %w", err)
	}

	txnQuery := `
		INSERT INTO transactions (
			id, tenant_id, from_kind, from_id, from_account,
			to_kind, to_id, to_account, amount, type, description, status, created_at
		) VALUES (
			:id, :tenant_id, :from_kind, :from_id, :from_account,
			:to_kind, :to_id, :to_account, :amount, :type, :description, :status, :created_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, txnQuery, txn); err != nil {
		return fmt.Errorf("failed to insert mirrored transaction: %w", err)
	}

	return nil
}

// BuySeat claims an unowned seat for a student at the seat's current price.
// The claim is a conditional update keyed on owner_id IS NULL, so of two
// racing buyers exactly one commits; the loser sees a conflict.
func (r *MarketRepo) BuySeat(ctx context.Context, tenantID uuid.UUID, seatNumber int, studentID uuid.UUID) (*models.SeatTradeResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	seat, err := r.lockSeat(ctx, tx, tenantID, seatNumber)
	if err != nil {
		return nil, err
	}
	if seat.OwnerID != nil || !seat.Available {
		return nil, apperr.Conflict("seat %d is not available", seatNumber)
	}
	price := seat.CurrentPrice

	buyer, err := r.lockChecking(ctx, tx, tenantID, studentID)
	if err != nil {
		return nil, err
	}
	if buyer.Balance < price {
		return nil, apperr.InsufficientFunds(price, buyer.Balance)
	}

	claimQuery := `
		UPDATE seats
		SET owner_id = $1, purchase_price = $2, purchased_at = NOW(), available = FALSE, updated_at = NOW()
		WHERE id = $3 AND owner_id IS NULL
	`
	result, err := tx.ExecContext(ctx, claimQuery, studentID, price, seat.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim seat: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, apperr.Conflict("seat %d is not available", seatNumber)
	}

	securities, err := r.lockSecurities(ctx, tx, tenantID)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = balance - $1, updated_at = NOW() WHERE id = $2`, price, buyer.ID); err != nil {
		return nil, fmt.Errorf("failed to debit buyer: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE entities SET balance = balance + $1, updated_at = NOW() WHERE id = $2`, price, securities.ID); err != nil {
		return nil, fmt.Errorf("failed to credit securities entity: %w", err)
	}

	txn := &models.Transaction{
		ID:          uuid.New(),
		TenantID:    tenantID,
		FromKind:    models.PartyStudent,
		FromID:      studentID,
		FromAccount: models.AccountChecking,
		ToKind:      models.PartyEntity,
		ToID:        securities.ID,
		Amount:      price,
		Type:        models.TxSeatPurchase,
		Description: fmt.Sprintf("purchase of seat %d", seatNumber),
		Status:      "completed",
		CreatedAt:   time.Now(),
	}
	if err := r.recordTrade(ctx, tx, seat, studentID, models.SeatTxBuy, price, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	now := time.Now()
	seat.OwnerID = &studentID
	seat.PurchasePrice = &price
	seat.PurchasedAt = &now
	seat.Available = false

	return &models.SeatTradeResult{
		Seat:       seat,
		Price:      price,
		NewOwner:   &studentID,
		NewBalance: buyer.Balance - price,
	}, nil
}

// SellSeat releases a student's seat back to the market at the given price.
// The caller recomputes the price from current aggregate wealth first, so
// the sale never uses a stale column value.
func (r *MarketRepo) SellSeat(ctx context.Context, tenantID uuid.UUID, seatNumber int, studentID uuid.UUID, price int64) (*models.SeatTradeResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	seat, err := r.lockSeat(ctx, tx, tenantID, seatNumber)
	if err != nil {
		return nil, err
	}
	if seat.OwnerID == nil || *seat.OwnerID != studentID {
		return nil, apperr.Conflict("seat %d is not owned by student %s", seatNumber, studentID)
	}

	seller, err := r.lockChecking(ctx, tx, tenantID, studentID)
	if err != nil {
		return nil, err
	}
	securities, err := r.lockSecurities(ctx, tx, tenantID)
	if err != nil {
		return nil, err
	}
	if securities.Balance < price {
		return nil, apperr.InsufficientFunds(price, securities.Balance)
	}

	releaseQuery := `
		UPDATE seats
		SET owner_id = NULL, purchase_price = NULL, purchased_at = NULL,
			available = TRUE, current_price = $1, updated_at = NOW()
		WHERE id = $2
	`
	if _, err := tx.ExecContext(ctx, releaseQuery, price, seat.ID); err != nil {
		return nil, fmt.Errorf("failed to release seat: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE entities SET balance = balance - $1, updated_at = NOW() WHERE id = $2`, price, securities.ID); err != nil {
		return nil, fmt.Errorf("failed to debit securities entity: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = balance + $1, updated_at = NOW() WHERE id = $2`, price, seller.ID); err != nil {
		return nil, fmt.Errorf("failed to credit seller: %w", err)
	}

	txn := &models.Transaction{
		ID:          uuid.New(),
		TenantID:    tenantID,
		FromKind:    models.PartyEntity,
		FromID:      securities.ID,
		ToKind:      models.PartyStudent,
		ToID:        studentID,
		ToAccount:   models.AccountChecking,
		Amount:      price,
		Type:        models.TxSeatSale,
		Description: fmt.Sprintf("sale of seat %d", seatNumber),
		Status:      "completed",
		CreatedAt:   time.Now(),
	}
	if err := r.recordTrade(ctx, tx, seat, studentID, models.SeatTxSell, price, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	seat.OwnerID = nil
	seat.PurchasePrice = nil
	seat.PurchasedAt = nil
	seat.Available = true
	seat.CurrentPrice = price

	return &models.SeatTradeResult{
		Seat:       seat,
		Price:      price,
		NewBalance: seller.Balance + price,
	}, nil
}

// ListSeatTransactions returns a seat's trade history, newest first
func (r *MarketRepo) ListSeatTransactions(ctx context.Context, tenantID uuid.UUID, seatNumber int) ([]models.SeatTransaction, error) {
	query := `
		SELECT id, tenant_id, seat_id, seat_number, student_id, type, price, created_at
		FROM seat_transactions
		WHERE tenant_id = $1 AND seat_number = $2
		ORDER BY created_at DESC
	`

	transactions := []models.SeatTransaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, tenantID, seatNumber); err != nil {
		return nil, fmt.Errorf("failed to list seat transactions: %w", err)
	}

	return transactions, nil
}
