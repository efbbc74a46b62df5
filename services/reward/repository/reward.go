package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/kelasbank/internal/pkg/apperr"
	"github.com/piresc/kelasbank/internal/pkg/models"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint hit
const pgUniqueViolation = "23505"

// RewardRepo is the PostgreSQL implementation of reward.RewardRepo
type RewardRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(cfg *models.Config, db *sqlx.DB) *RewardRepo {
	return &RewardRepo{
		cfg: cfg,
		db:  db,
	}
}

type quizRow struct {
	ID        uuid.UUID `db:"id"`
	TenantID  uuid.UUID `db:"tenant_id"`
	QuizDate  time.Time `db:"quiz_date"`
	Questions []byte    `db:"questions"`
	CreatedAt time.Time `db:"created_at"`
}

func (row *quizRow) toModel() (*models.DailyQuiz, error) {
	quiz := &models.DailyQuiz{
		ID:        row.ID,
		TenantID:  row.TenantID,
		QuizDate:  row.QuizDate,
		CreatedAt: row.CreatedAt,
	}
	if err := json.Unmarshal(row.Questions, &quiz.Questions); err != nil {
		return nil, fmt.Errorf("failed to decode quiz questions: %w", err)
	}
	return quiz, nil
}

// CreateDailyQuiz stores a generated quiz. A second quiz for the same
// tenant and date is silently ignored so event redelivery stays harmless.
func (r *RewardRepo) CreateDailyQuiz(ctx context.Context, quiz *models.DailyQuiz) error {
	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("failed to encode quiz questions: %w", err)
	}

	query := `
		INSERT INTO daily_quizzes (id, tenant_id, quiz_date, questions, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (tenant_id, quiz_date) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, quiz.ID, quiz.TenantID, quiz.QuizDate, questions); err != nil {
		return fmt.Errorf("failed to insert daily quiz: %w", err)
	}

	return nil
}

// GetQuiz returns one quiz with its stored answers
func (r *RewardRepo) GetQuiz(ctx context.Context, tenantID, quizID uuid.UUID) (*models.DailyQuiz, error) {
	query := `SELECT id, tenant_id, quiz_date, questions, created_at FROM daily_quizzes WHERE tenant_id = $1 AND id = $2`

	var row quizRow
	err := r.db.GetContext(ctx, &row, query, tenantID, quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("quiz %s not found", quizID)
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	return row.toModel()
}

// GetQuizForDate returns the quiz for one calendar day
func (r *RewardRepo) GetQuizForDate(ctx context.Context, tenantID uuid.UUID, date time.Time) (*models.DailyQuiz, error) {
	query := `SELECT id, tenant_id, quiz_date, questions, created_at FROM daily_quizzes WHERE tenant_id = $1 AND quiz_date = $2::date`

	var row quizRow
	err := r.db.GetContext(ctx, &row, query, tenantID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("no quiz for %s", date.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to get quiz by date: %w", err)
	}

	return row.toModel()
}

// InsertAttempt persists one graded attempt. The partial unique index on
// (quiz_id, student_id) for completed attempts turns a resubmission into a
// conflict instead of a second reward.
func (r *RewardRepo) InsertAttempt(ctx context.Context, attempt *models.QuizAttempt) error {
	answers, err := json.Marshal(attempt.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	query := `
		INSERT INTO quiz_attempts (
			id, tenant_id, quiz_id, student_id, answers, correct_count,
			participation_reward, score_reward, bonus_reward, total_reward,
			status, reward_paid, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, FALSE, NOW())
	`
	_, err = r.db.ExecContext(ctx, query,
		attempt.ID, attempt.TenantID, attempt.QuizID, attempt.StudentID, answers,
		attempt.CorrectCount, attempt.ParticipationReward, attempt.ScoreReward,
		attempt.BonusReward, attempt.TotalReward, attempt.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperr.Conflict("student %s already submitted quiz %s", attempt.StudentID, attempt.QuizID)
		}
		return fmt.Errorf("failed to insert quiz attempt: %w", err)
	}

	return nil
}

type paidAttempt struct {
	QuizID      uuid.UUID `db:"quiz_id"`
	StudentID   uuid.UUID `db:"student_id"`
	TotalReward int64     `db:"total_reward"`
}

// PayAttempt flips the attempt's unpaid flag and moves the reward from the
// government entity to the student's checking account, all in one
// transaction. The conditional flip makes the payment exactly-once: a
// second caller sees zero updated rows and moves no money.
func (r *RewardRepo) PayAttempt(ctx context.Context, tenantID, attemptID uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	flipQuery := `
		UPDATE quiz_attempts
		SET reward_paid = TRUE, reward_paid_at = NOW()
		WHERE tenant_id = $1 AND id = $2 AND status = $3 AND reward_paid = FALSE
		RETURNING quiz_id, student_id, total_reward
	`
	var paid paidAttempt
	err = tx.GetContext(ctx, &paid, flipQuery, tenantID, attemptID, models.AttemptCompleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to claim reward payment: %w", err)
	}

	var gov struct {
		ID      uuid.UUID `db:"id"`
		Balance int64     `db:"balance"`
	}
	govQuery := `SELECT id, balance FROM entities WHERE tenant_id = $1 AND type = $2 FOR UPDATE`
	err = tx.GetContext(ctx, &gov, govQuery, tenantID, models.EntityGovernment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, apperr.DependencyFailure("government entity not found for tenant %s", tenantID)
		}
		return false, fmt.Errorf("failed to lock government entity: %w", err)
	}
	if gov.Balance < paid.TotalReward {
		return false, apperr.InsufficientFunds(paid.TotalReward, gov.Balance)
	}

	var account struct {
		ID uuid.UUID `db:"id"`
	}
	accountQuery := `
		SELECT a.id
		FROM accounts a
		JOIN students s ON s.id = a.student_id
		WHERE s.tenant_id = $1 AND a.student_id = $2 AND a.type = $3
		FOR UPDATE OF a
	`
	err = tx.GetContext(ctx, &account, accountQuery, tenantID, paid.StudentID, models.AccountChecking)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, apperr.NotFound("checking account for student %s not found", paid.StudentID)
		}
		return false, fmt.Errorf("failed to lock checking account: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE entities SET balance = balance - $1, updated_at = NOW() WHERE id = $2`, paid.TotalReward, gov.ID); err != nil {
		return false, fmt.Errorf("failed to debit government entity: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = balance + $1, updated_at = NOW() WHERE id = $2`, paid.TotalReward, account.ID); err != nil {
		return false, fmt.Errorf("failed to credit student: %w", err)
	}

	txn := &models.Transaction{
		ID:          uuid.New(),
		TenantID:    tenantID,
		FromKind:    models.PartyEntity,
		FromID:      gov.ID,
		ToKind:      models.PartyStudent,
		ToID:        paid.StudentID,
		ToAccount:   models.AccountChecking,
		Amount:      paid.TotalReward,
		Type:        models.TxQuizReward,
		Description: fmt.Sprintf("daily quiz reward for quiz %s", paid.QuizID),
		Status:      "completed",
		CreatedAt:   time.Now(),
	}
	insertQuery := `
		INSERT INTO transactions (
			id, tenant_id, from_kind, from_id, from_account,
			to_kind, to_id, to_account, amount, type, description, status, created_at
		) VALUES (
			:id, :tenant_id, :from_kind, :from_id, :from_account,
			:to_kind, :to_id, :to_account, :amount, :type, :description, :status, :created_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, insertQuery, txn); err != nil {
		return false, fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

const attemptColumns = `id, tenant_id, quiz_id, student_id, correct_count,
	participation_reward, score_reward, bonus_reward, total_reward, status,
	reward_paid, reward_paid_at, created_at`

// ListUnpaidAttempts returns completed attempts whose payment leg never landed
func (r *RewardRepo) ListUnpaidAttempts(ctx context.Context, tenantID uuid.UUID) ([]models.QuizAttempt, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM quiz_attempts
		WHERE tenant_id = $1 AND status = $2 AND reward_paid = FALSE
		ORDER BY created_at
	`, attemptColumns)

	attempts := []models.QuizAttempt{}
	if err := r.db.SelectContext(ctx, &attempts, query, tenantID, models.AttemptCompleted); err != nil {
		return nil, fmt.Errorf("failed to list unpaid attempts: %w", err)
	}

	return attempts, nil
}

// ListAttempts returns every attempt for a quiz, newest first
func (r *RewardRepo) ListAttempts(ctx context.Context, tenantID, quizID uuid.UUID) ([]models.QuizAttempt, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM quiz_attempts
		WHERE tenant_id = $1 AND quiz_id = $2
		ORDER BY created_at DESC
	`, attemptColumns)

	attempts := []models.QuizAttempt{}
	if err := r.db.SelectContext(ctx, &attempts, query, tenantID, quizID); err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	return attempts, nil
}
