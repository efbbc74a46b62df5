package reward

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/models"
)

// RewardRepo defines the interface for quiz and reward data access.
// InsertAttempt and PayAttempt are the two halves of the exactly-once
// payment protocol: at most one completed attempt exists per quiz and
// student, and a reward is paid only by flipping the unpaid flag.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/kelasbank/services/reward RewardRepo
type RewardRepo interface {
	CreateDailyQuiz(ctx context.Context, quiz *models.DailyQuiz) error
	GetQuiz(ctx context.Context, tenantID, quizID uuid.UUID) (*models.DailyQuiz, error)
	GetQuizForDate(ctx context.Context, tenantID uuid.UUID, date time.Time) (*models.DailyQuiz, error)

	// InsertAttempt persists a graded, unpaid attempt. A second completed
	// attempt for the same quiz and student is rejected as a conflict.
	InsertAttempt(ctx context.Context, attempt *models.QuizAttempt) error

	// PayAttempt moves the attempt's reward from the government entity
	// into the student's checking account. It returns false without
	// moving money when the attempt was already paid.
	PayAttempt(ctx context.Context, tenantID, attemptID uuid.UUID) (bool, error)

	ListUnpaidAttempts(ctx context.Context, tenantID uuid.UUID) ([]models.QuizAttempt, error)
	ListAttempts(ctx context.Context, tenantID, quizID uuid.UUID) ([]models.QuizAttempt, error)
}
