package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/kelasbank/internal/pkg/apperr"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/services/market/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func seatRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tenant_id", "seat_number", "row_pos", "col_pos", "current_price",
		"owner_id", "purchase_price", "purchased_at", "available", "created_at", "updated_at",
	})
}

func TestBuySeat_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMarketRepository(&models.Config{}, db)

	tenantID := uuid.New()
	studentID := uuid.New()
	seatID := uuid.New()
	accountID := uuid.New()
	securitiesID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM seats WHERE tenant_id = $1 AND seat_number = $2 FOR UPDATE")).
		WithArgs(tenantID, 7).
		WillReturnRows(seatRows().AddRow(seatID, tenantID, 7, 2, 1, int64(200000), nil, nil, nil, true, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT a.id, a.balance")).
		WithArgs(tenantID, studentID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(accountID, int64(250000)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE seats")).
		WithArgs(studentID, int64(200000), seatID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, balance FROM entities")).
		WithArgs(tenantID, models.EntitySecurities).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(securitiesID, int64(0)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET balance = balance - $1")).
		WithArgs(int64(200000), accountID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE entities SET balance = balance + $1")).
		WithArgs(int64(200000), securitiesID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO seat_transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.BuySeat(context.Background(), tenantID, 7, studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(200000), result.Price)
	assert.Equal(t, int64(50000), result.NewBalance)
	require.NotNil(t, result.NewOwner)
	assert.Equal(t, studentID, *result.NewOwner)
	assert.False(t, result.Seat.Available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuySeat_AlreadyOwned_Conflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMarketRepository(&models.Config{}, db)

	tenantID := uuid.New()
	otherOwner := uuid.New()
	now := time.Now()
	price := int64(200000)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tenantID, 7).
		WillReturnRows(seatRows().AddRow(uuid.New(), tenantID, 7, 2, 1, price, otherOwner, price, now, false, now, now))
	mock.ExpectRollback()

	_, err := repo.BuySeat(context.Background(), tenantID, 7, uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuySeat_RacingClaimLost_Conflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMarketRepository(&models.Config{}, db)

	tenantID := uuid.New()
	studentID := uuid.New()
	seatID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tenantID, 7).
		WillReturnRows(seatRows().AddRow(seatID, tenantID, 7, 2, 1, int64(200000), nil, nil, nil, true, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT a.id, a.balance")).
		WithArgs(tenantID, studentID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(uuid.New(), int64(250000)))
	// Another buyer claimed between our read and our conditional update
	mock.ExpectExec(regexp.QuoteMeta("UPDATE seats")).
		WithArgs(studentID, int64(200000), seatID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.BuySeat(context.Background(), tenantID, 7, studentID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuySeat_InsufficientFunds_NothingMoves(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMarketRepository(&models.Config{}, db)

	tenantID := uuid.New()
	studentID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tenantID, 7).
		WillReturnRows(seatRows().AddRow(uuid.New(), tenantID, 7, 2, 1, int64(200000), nil, nil, nil, true, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT a.id, a.balance")).
		WithArgs(tenantID, studentID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(uuid.New(), int64(50000)))
	mock.ExpectRollback()

	_, err := repo.BuySeat(context.Background(), tenantID, 7, studentID)
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindInsufficientFunds, appErr.Kind)
	assert.Equal(t, int64(200000), appErr.Required)
	assert.Equal(t, int64(50000), appErr.Available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellSeat_NotOwner_Conflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMarketRepository(&models.Config{}, db)

	tenantID := uuid.New()
	owner := uuid.New()
	now := time.Now()
	price := int64(180000)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tenantID, 3).
		WillReturnRows(seatRows().AddRow(uuid.New(), tenantID, 3, 1, 3, price, owner, price, now, false, now, now))
	mock.ExpectRollback()

	_, err := repo.SellSeat(context.Background(), tenantID, 3, uuid.New(), 180000)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestSellSeat_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMarketRepository(&models.Config{}, db)

	tenantID := uuid.New()
	studentID := uuid.New()
	seatID := uuid.New()
	accountID := uuid.New()
	securitiesID := uuid.New()
	now := time.Now()
	purchasePrice := int64(150000)
	salePrice := int64(180000)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tenantID, 3).
		WillReturnRows(seatRows().AddRow(seatID, tenantID, 3, 1, 3, purchasePrice, studentID, purchasePrice, now, false, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT a.id, a.balance")).
		WithArgs(tenantID, studentID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(accountID, int64(20000)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, balance FROM entities")).
		WithArgs(tenantID, models.EntitySecurities).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(securitiesID, int64(500000)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE seats")).
		WithArgs(salePrice, seatID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE entities SET balance = balance - $1")).
		WithArgs(salePrice, securitiesID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET balance = balance + $1")).
		WithArgs(salePrice, accountID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO seat_transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.SellSeat(context.Background(), tenantID, 3, studentID, salePrice)
	require.NoError(t, err)
	assert.Equal(t, salePrice, result.Price)
	assert.Equal(t, int64(200000), result.NewBalance)
	assert.Nil(t, result.Seat.OwnerID)
	assert.True(t, result.Seat.Available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPrice_OnlyUnownedSeats(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMarketRepository(&models.Config{}, db)

	tenantID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("WHERE tenant_id = $2 AND owner_id IS NULL")).
		WithArgs(int64(120000), tenantID).
		WillReturnResult(sqlmock.NewResult(0, 9))

	repriced, err := repo.ApplyPrice(context.Background(), tenantID, 120000)
	require.NoError(t, err)
	assert.Equal(t, 9, repriced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTotalStudentAssets(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMarketRepository(&models.Config{}, db)

	tenantID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(a.balance), 0)")).
		WithArgs(tenantID).
		WillReturnRows(sqlmock.NewRows([]string{"total", "student_count"}).AddRow(int64(1000000), 3))

	total, count, err := repo.TotalStudentAssets(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), total)
	assert.Equal(t, 3, count)
}
