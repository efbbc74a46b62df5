package models

import (
	"time"

	"github.com/google/uuid"
)

// QuizQuestion is one question of a daily quiz. Answer holds the stored
// correct answer; grading compares trimmed exact matches against it.
type QuizQuestion struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices,omitempty"`
	Answer   string   `json:"answer"`
}

// DailyQuiz is a tenant's quiz for one date, produced by the external generator
type DailyQuiz struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	TenantID  uuid.UUID      `json:"tenant_id" db:"tenant_id"`
	QuizDate  time.Time      `json:"quiz_date" db:"quiz_date"`
	Questions []QuizQuestion `json:"questions" db:"-"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// AttemptStatus is the lifecycle state of a quiz attempt
type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
)

// QuizAttempt records one student's graded submission. At most one completed
// attempt exists per (quiz, student); the storage layer enforces this.
type QuizAttempt struct {
	ID                  uuid.UUID     `json:"id" db:"id"`
	TenantID            uuid.UUID     `json:"tenant_id" db:"tenant_id"`
	QuizID              uuid.UUID     `json:"quiz_id" db:"quiz_id"`
	StudentID           uuid.UUID     `json:"student_id" db:"student_id"`
	Answers             []string      `json:"answers" db:"-"`
	CorrectCount        int           `json:"correct_count" db:"correct_count"`
	ParticipationReward int64         `json:"participation_reward" db:"participation_reward"`
	ScoreReward         int64         `json:"score_reward" db:"score_reward"`
	BonusReward         int64         `json:"bonus_reward" db:"bonus_reward"`
	TotalReward         int64         `json:"total_reward" db:"total_reward"`
	Status              AttemptStatus `json:"status" db:"status"`
	RewardPaid          bool          `json:"reward_paid" db:"reward_paid"`
	RewardPaidAt        *time.Time    `json:"reward_paid_at,omitempty" db:"reward_paid_at"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at"`
}

// SubmitResult is returned by the quiz submit operation
type SubmitResult struct {
	AttemptID    uuid.UUID `json:"attempt_id"`
	CorrectCount int       `json:"correct_count"`
	Reward       int64     `json:"reward"`
	Paid         bool      `json:"paid"`
}

// SweepResult reports one run of the unpaid-reward recovery sweep
type SweepResult struct {
	PaidCount int   `json:"paid_count"`
	TotalPaid int64 `json:"total_paid"`
}

// QuizGeneratedEvent arrives over NATS from the external quiz generator
type QuizGeneratedEvent struct {
	TenantID  uuid.UUID      `json:"tenant_id"`
	QuizDate  time.Time      `json:"quiz_date"`
	Questions []QuizQuestion `json:"questions"`
}

// RewardPaidEvent is published to NATS after a reward payment commits
type RewardPaidEvent struct {
	AttemptID uuid.UUID `json:"attempt_id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	StudentID uuid.UUID `json:"student_id"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}
