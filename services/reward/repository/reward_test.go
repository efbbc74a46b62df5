package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/kelasbank/internal/pkg/apperr"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/services/reward/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestPayAttempt_MovesRewardOnce(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRewardRepository(&models.Config{}, db)

	tenantID := uuid.New()
	attemptID := uuid.New()
	quizID := uuid.New()
	studentID := uuid.New()
	govID := uuid.New()
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE quiz_attempts")).
		WithArgs(tenantID, attemptID, models.AttemptCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"quiz_id", "student_id", "total_reward"}).
			AddRow(quizID, studentID, int64(2100)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, balance FROM entities")).
		WithArgs(tenantID, models.EntityGovernment).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(govID, int64(9000000)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT a.id")).
		WithArgs(tenantID, studentID, models.AccountChecking).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(accountID))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE entities SET balance = balance - $1")).
		WithArgs(int64(2100), govID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET balance = balance + $1")).
		WithArgs(int64(2100), accountID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	paid, err := repo.PayAttempt(context.Background(), tenantID, attemptID)
	require.NoError(t, err)
	assert.True(t, paid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayAttempt_AlreadyPaidMovesNothing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRewardRepository(&models.Config{}, db)

	tenantID := uuid.New()
	attemptID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE quiz_attempts")).
		WithArgs(tenantID, attemptID, models.AttemptCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"quiz_id", "student_id", "total_reward"}))
	mock.ExpectRollback()

	paid, err := repo.PayAttempt(context.Background(), tenantID, attemptID)
	require.NoError(t, err)
	assert.False(t, paid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayAttempt_GovernmentCannotCover(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRewardRepository(&models.Config{}, db)

	tenantID := uuid.New()
	attemptID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE quiz_attempts")).
		WithArgs(tenantID, attemptID, models.AttemptCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"quiz_id", "student_id", "total_reward"}).
			AddRow(uuid.New(), uuid.New(), int64(2100)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, balance FROM entities")).
		WithArgs(tenantID, models.EntityGovernment).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(uuid.New(), int64(500)))
	mock.ExpectRollback()

	paid, err := repo.PayAttempt(context.Background(), tenantID, attemptID)
	require.Error(t, err)
	assert.False(t, paid)
	assert.True(t, apperr.Is(err, apperr.KindInsufficientFunds))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAttempt_DuplicateIsConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRewardRepository(&models.Config{}, db)

	attempt := &models.QuizAttempt{
		ID:        uuid.New(),
		TenantID:  uuid.New(),
		QuizID:    uuid.New(),
		StudentID: uuid.New(),
		Answers:   []string{"4"},
		Status:    models.AttemptCompleted,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quiz_attempts")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.InsertAttempt(context.Background(), attempt)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDailyQuiz_RedeliveryIsHarmless(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRewardRepository(&models.Config{}, db)

	quiz := &models.DailyQuiz{
		ID:       uuid.New(),
		TenantID: uuid.New(),
		QuizDate: time.Now(),
		Questions: []models.QuizQuestion{
			{Question: "2 + 2", Answer: "4"},
		},
	}

	// ON CONFLICT DO NOTHING swallows the duplicate
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO daily_quizzes")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CreateDailyQuiz(context.Background(), quiz)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuiz_DecodesQuestions(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRewardRepository(&models.Config{}, db)

	tenantID := uuid.New()
	quizID := uuid.New()
	questions := []byte(`[{"question":"2 + 2","answer":"4"},{"question":"capital of Indonesia","choices":["Jakarta","Bandung"],"answer":"Jakarta"}]`)

	mock.ExpectQuery(regexp.QuoteMeta("FROM daily_quizzes")).
		WithArgs(tenantID, quizID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "quiz_date", "questions", "created_at"}).
			AddRow(quizID, tenantID, time.Now(), questions, time.Now()))

	quiz, err := repo.GetQuiz(context.Background(), tenantID, quizID)
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, "4", quiz.Questions[0].Answer)
	assert.Equal(t, []string{"Jakarta", "Bandung"}, quiz.Questions[1].Choices)
}

func TestListUnpaidAttempts_FiltersPaid(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRewardRepository(&models.Config{}, db)

	tenantID := uuid.New()
	attemptID := uuid.New()

	columns := []string{
		"id", "tenant_id", "quiz_id", "student_id", "correct_count",
		"participation_reward", "score_reward", "bonus_reward", "total_reward",
		"status", "reward_paid", "reward_paid_at", "created_at",
	}
	mock.ExpectQuery(regexp.QuoteMeta("FROM quiz_attempts")).
		WithArgs(tenantID, models.AttemptCompleted).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(attemptID, tenantID, uuid.New(), uuid.New(), 2,
				int64(500), int64(400), int64(0), int64(900),
				models.AttemptCompleted, false, nil, time.Now()))

	attempts, err := repo.ListUnpaidAttempts(context.Background(), tenantID)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, attemptID, attempts[0].ID)
	assert.False(t, attempts[0].RewardPaid)
	assert.Equal(t, int64(900), attempts[0].TotalReward)
}
