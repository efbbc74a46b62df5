package reward

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/models"
)

// RewardUC defines the interface for quiz reward business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/kelasbank/services/reward RewardUC
type RewardUC interface {
	// IngestDailyQuiz stores a quiz arriving from the external generator
	IngestDailyQuiz(ctx context.Context, event *models.QuizGeneratedEvent) error

	// GetQuiz returns a quiz with its answers stripped
	GetQuiz(ctx context.Context, tenantID, quizID uuid.UUID) (*models.DailyQuiz, error)

	// GetQuizForDate returns the quiz for a calendar day, answers stripped
	GetQuizForDate(ctx context.Context, tenantID uuid.UUID, date time.Time) (*models.DailyQuiz, error)

	// SubmitQuiz grades a student's answers and pays the reward
	SubmitQuiz(ctx context.Context, cmd models.SubmitQuizCmd) (*models.SubmitResult, error)

	ListAttempts(ctx context.Context, tenantID, quizID uuid.UUID) ([]models.QuizAttempt, error)

	// SweepUnpaid retries reward payment for attempts whose payment leg
	// failed after grading committed
	SweepUnpaid(ctx context.Context, tenantID uuid.UUID) (*models.SweepResult, error)
}
