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
	"github.com/piresc/kelasbank/services/ledger/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nowStamp() time.Time {
	return time.Now()
}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func lockAccountQuery() string {
	return regexp.QuoteMeta("SELECT a.id, a.balance")
}

func TestTransfer_StudentToStudent_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLedgerRepository(&models.Config{}, db)

	tenantID := uuid.New()
	fromID := uuid.New()
	toID := uuid.New()
	fromAccID := uuid.New()
	toAccID := uuid.New()

	spec := &models.TransferSpec{
		TenantID:    tenantID,
		From:        models.PartyRef{Kind: models.PartyStudent, ID: fromID, Account: models.AccountChecking},
		To:          models.PartyRef{Kind: models.PartyStudent, ID: toID, Account: models.AccountChecking},
		Amount:      5000,
		Type:        models.TxTransfer,
		Description: "lunch money",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(lockAccountQuery()).
		WithArgs(tenantID, fromID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(fromAccID, int64(20000)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET balance = balance + $1")).
		WithArgs(int64(-5000), fromAccID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(lockAccountQuery()).
		WithArgs(tenantID, toID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(toAccID, int64(1000)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET balance = balance + $1")).
		WithArgs(int64(5000), toAccID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.Transfer(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), result.SourceBalance)
	assert.Equal(t, int64(6000), result.DestBalance)
	assert.Equal(t, models.TxTransfer, result.Transaction.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransfer_InsufficientFunds_RollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLedgerRepository(&models.Config{}, db)

	tenantID := uuid.New()
	fromID := uuid.New()

	spec := &models.TransferSpec{
		TenantID: tenantID,
		From:     models.PartyRef{Kind: models.PartyStudent, ID: fromID, Account: models.AccountChecking},
		To:       models.PartyRef{Kind: models.PartyStudent, ID: uuid.New(), Account: models.AccountChecking},
		Amount:   5000,
		Type:     models.TxTransfer,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(lockAccountQuery()).
		WithArgs(tenantID, fromID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(uuid.New(), int64(1200)))
	mock.ExpectRollback()

	_, err := repo.Transfer(context.Background(), spec)
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindInsufficientFunds, appErr.Kind)
	assert.Equal(t, int64(5000), appErr.Required)
	assert.Equal(t, int64(1200), appErr.Available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransfer_MissingAccount_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLedgerRepository(&models.Config{}, db)

	tenantID := uuid.New()
	fromID := uuid.New()

	spec := &models.TransferSpec{
		TenantID: tenantID,
		From:     models.PartyRef{Kind: models.PartyStudent, ID: fromID, Account: models.AccountChecking},
		To:       models.PartyRef{Kind: models.PartyStudent, ID: uuid.New(), Account: models.AccountChecking},
		Amount:   100,
		Type:     models.TxTransfer,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(lockAccountQuery()).
		WithArgs(tenantID, fromID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}))
	mock.ExpectRollback()

	_, err := repo.Transfer(context.Background(), spec)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCollectTax_ShortPayerAbortsEverything(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLedgerRepository(&models.Config{}, db)

	tenantID := uuid.New()
	richID := uuid.New()
	poorID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(lockAccountQuery()).
		WithArgs(tenantID, richID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(uuid.New(), int64(50000)))
	mock.ExpectQuery(lockAccountQuery()).
		WithArgs(tenantID, poorID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(uuid.New(), int64(3000)))
	mock.ExpectRollback()

	_, err := repo.CollectTax(context.Background(), tenantID, []uuid.UUID{richID, poorID}, 10000, "weekly tax")
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindInsufficientFunds, appErr.Kind)
	assert.Contains(t, appErr.Message, poorID.String())
	assert.NotContains(t, appErr.Message, richID.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectTax_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLedgerRepository(&models.Config{}, db)

	tenantID := uuid.New()
	payerID := uuid.New()
	payerAccID := uuid.New()
	govID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(lockAccountQuery()).
		WithArgs(tenantID, payerID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(payerAccID, int64(50000)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, balance FROM entities")).
		WithArgs(tenantID, models.EntityGovernment).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(govID, int64(0)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET balance = balance + $1")).
		WithArgs(int64(-10000), payerAccID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE entities SET balance = balance + $1")).
		WithArgs(int64(10000), govID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	transactions, err := repo.CollectTax(context.Background(), tenantID, []uuid.UUID{payerID}, 10000, "weekly tax")
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, models.TxTaxPayment, transactions[0].Type)
	assert.Equal(t, govID, transactions[0].ToID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDistributeAllowance_GovernmentCannotCover(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLedgerRepository(&models.Config{}, db)

	tenantID := uuid.New()
	grants := []models.AllowanceGrant{
		{StudentID: uuid.New(), Amount: 5000},
		{StudentID: uuid.New(), Amount: 8000},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, balance FROM entities")).
		WithArgs(tenantID, models.EntityGovernment).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(uuid.New(), int64(10000)))
	mock.ExpectRollback()

	_, err := repo.DistributeAllowance(context.Background(), tenantID, grants, "weekly allowance")
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindInsufficientFunds, appErr.Kind)
	assert.Equal(t, int64(13000), appErr.Required)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustCreditScore_ClampedAndRecorded(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLedgerRepository(&models.Config{}, db)

	tenantID := uuid.New()
	studentID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE students")).
		WithArgs(models.MaxCreditScore, models.MinCreditScore, -500, tenantID, studentID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "credit_score", "weekly_allowance", "created_at", "updated_at"}).
			AddRow(studentID, tenantID, "Budi", 350, int64(0), nowStamp(), nowStamp()))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	student, err := repo.AdjustCreditScore(context.Background(), tenantID, studentID, -500, "repeated defaults")
	require.NoError(t, err)
	assert.Equal(t, models.MinCreditScore, student.CreditScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEntity_MissingIsDependencyFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLedgerRepository(&models.Config{}, db)

	tenantID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, tenant_id, type, balance")).
		WithArgs(tenantID, models.EntityGovernment).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "type", "balance", "created_at", "updated_at"}))

	_, err := repo.GetEntity(context.Background(), tenantID, models.EntityGovernment)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindDependencyFailure))
}

func TestCreateStudent_OpensThreeAccounts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLedgerRepository(&models.Config{}, db)

	student := &models.Student{
		ID:          uuid.New(),
		TenantID:    uuid.New(),
		Name:        "Sari",
		CreditScore: 650,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO students")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	for range models.AccountTypes {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := repo.CreateStudent(context.Background(), student, 20000)
	require.NoError(t, err)
	require.Len(t, student.Accounts, 3)
	assert.Equal(t, int64(20000), student.Accounts[0].Balance)
	assert.Equal(t, int64(0), student.Accounts[1].Balance)
	assert.Equal(t, int64(0), student.Accounts[2].Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
