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
	"github.com/piresc/kelasbank/services/loan/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

var loanColumns = []string{
	"id", "tenant_id", "student_id", "principal", "annual_rate", "duration_weeks",
	"weekly_payment", "remaining_balance", "remaining_weeks", "status", "next_payment_due",
	"created_at", "updated_at",
}

func loanRow(l *models.Loan) *sqlmock.Rows {
	return sqlmock.NewRows(loanColumns).AddRow(
		l.ID, l.TenantID, l.StudentID, l.Principal, l.AnnualRate, l.DurationWeeks,
		l.WeeklyPayment, l.RemainingBalance, l.RemainingWeeks, l.Status, l.NextPaymentDue,
		l.CreatedAt, l.UpdatedAt,
	)
}

func activeLoan(tenantID uuid.UUID) *models.Loan {
	now := time.Now()
	return &models.Loan{
		ID:               uuid.New(),
		TenantID:         tenantID,
		StudentID:        uuid.New(),
		Principal:        100000,
		AnnualRate:       9,
		DurationWeeks:    16,
		WeeklyPayment:    6342,
		RemainingBalance: 100000,
		RemainingWeeks:   16,
		Status:           models.LoanActive,
		NextPaymentDue:   now.Add(7 * 24 * time.Hour),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestOriginate_DisbursesFromBank(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoanRepository(&models.Config{}, db)

	tenantID := uuid.New()
	bankID := uuid.New()
	accountID := uuid.New()
	l := activeLoan(tenantID)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, balance FROM entities")).
		WithArgs(tenantID, models.EntityBank).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(bankID, int64(10000000)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT a.id, a.balance")).
		WithArgs(tenantID, l.StudentID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(accountID, int64(5000)))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO loans")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE entities SET balance = balance - $1")).
		WithArgs(int64(100000), bankID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET balance = balance + $1")).
		WithArgs(int64(100000), accountID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Originate(context.Background(), l)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOriginate_BankCannotCover(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoanRepository(&models.Config{}, db)

	tenantID := uuid.New()
	l := activeLoan(tenantID)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, balance FROM entities")).
		WithArgs(tenantID, models.EntityBank).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(uuid.New(), int64(50000)))
	mock.ExpectRollback()

	err := repo.Originate(context.Background(), l)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindInsufficientFunds))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepay_ScheduledPayment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoanRepository(&models.Config{}, db)

	tenantID := uuid.New()
	bankID := uuid.New()
	accountID := uuid.New()
	l := activeLoan(tenantID)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM loans WHERE tenant_id = $1 AND id = $2 FOR UPDATE")).
		WithArgs(tenantID, l.ID).
		WillReturnRows(loanRow(l))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT a.id, a.balance")).
		WithArgs(tenantID, l.StudentID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(accountID, int64(20000)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, balance FROM entities")).
		WithArgs(tenantID, models.EntityBank).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(bankID, int64(9000000)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET balance = balance - $1")).
		WithArgs(int64(6342), accountID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE entities SET balance = balance + $1")).
		WithArgs(int64(6342), bankID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO loan_payments")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE loans")).
		WithArgs(int64(94408), 15, models.LoanActive, l.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.Repay(context.Background(), tenantID, l.ID, 6342)
	require.NoError(t, err)
	assert.Equal(t, int64(750), result.InterestAmount)
	assert.Equal(t, int64(5592), result.PrincipalAmount)
	assert.Equal(t, int64(94408), result.RemainingBalance)
	assert.False(t, result.Completed)
	assert.Equal(t, 1, result.Payment.WeekNumber)
	assert.Equal(t, models.PaymentScheduled, result.Payment.PaymentType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepay_PayoffCompletesLoan(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoanRepository(&models.Config{}, db)

	tenantID := uuid.New()
	bankID := uuid.New()
	accountID := uuid.New()
	l := activeLoan(tenantID)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tenantID, l.ID).
		WillReturnRows(loanRow(l))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT a.id, a.balance")).
		WithArgs(tenantID, l.StudentID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(accountID, int64(200000)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, balance FROM entities")).
		WithArgs(tenantID, models.EntityBank).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(bankID, int64(9000000)))
	// payoff is remaining 100000 plus accrued interest 750
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET balance = balance - $1")).
		WithArgs(int64(100750), accountID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE entities SET balance = balance + $1")).
		WithArgs(int64(100750), bankID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO loan_payments")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE loans")).
		WithArgs(int64(0), 15, models.LoanCompleted, l.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.Repay(context.Background(), tenantID, l.ID, 500000)
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Equal(t, int64(0), result.RemainingBalance)
	assert.Equal(t, models.PaymentEarly, result.Payment.PaymentType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepay_BelowInterestRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoanRepository(&models.Config{}, db)

	tenantID := uuid.New()
	l := activeLoan(tenantID)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tenantID, l.ID).
		WillReturnRows(loanRow(l))
	mock.ExpectRollback()

	_, err := repo.Repay(context.Background(), tenantID, l.ID, 100)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindPaymentBelowInterest))

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, int64(750), appErr.Minimum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepay_CompletedLoanIsConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoanRepository(&models.Config{}, db)

	tenantID := uuid.New()
	l := activeLoan(tenantID)
	l.Status = models.LoanCompleted
	l.RemainingBalance = 0

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tenantID, l.ID).
		WillReturnRows(loanRow(l))
	mock.ExpectRollback()

	_, err := repo.Repay(context.Background(), tenantID, l.ID, 5000)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSweepOverdue_DefaultsAndPenalizes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoanRepository(&models.Config{}, db)

	tenantID := uuid.New()
	cutoff := time.Now().Add(-21 * 24 * time.Hour)
	l := activeLoan(tenantID)
	l.NextPaymentDue = cutoff.Add(-48 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM loans")).
		WithArgs(tenantID, models.LoanActive, cutoff).
		WillReturnRows(loanRow(l))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE loans SET status = $1")).
		WithArgs(models.LoanDefaulted, l.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET credit_score = LEAST($1, GREATEST($2, credit_score + $3))")).
		WithArgs(models.MaxCreditScore, models.MinCreditScore, -50, tenantID, l.StudentID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	defaulted, err := repo.SweepOverdue(context.Background(), tenantID, cutoff, -50)
	require.NoError(t, err)
	require.Len(t, defaulted, 1)
	assert.Equal(t, models.LoanDefaulted, defaulted[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSweepOverdue_NothingOverdue(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoanRepository(&models.Config{}, db)

	tenantID := uuid.New()
	cutoff := time.Now().Add(-21 * 24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM loans")).
		WithArgs(tenantID, models.LoanActive, cutoff).
		WillReturnRows(sqlmock.NewRows(loanColumns))
	mock.ExpectCommit()

	defaulted, err := repo.SweepOverdue(context.Background(), tenantID, cutoff, -50)
	require.NoError(t, err)
	assert.Empty(t, defaulted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
