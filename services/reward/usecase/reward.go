package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/apperr"
	"github.com/piresc/kelasbank/internal/pkg/logger"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/services/reward"
)

// rewardUC implements the reward.RewardUC interface
type rewardUC struct {
	cfg        *models.Config
	rewardRepo reward.RewardRepo
	rewardGW   reward.RewardGW
	validate   *validator.Validate
}

// NewRewardUC creates a new reward usecase
func NewRewardUC(cfg *models.Config, repo reward.RewardRepo, gw reward.RewardGW) (reward.RewardUC, error) {
	return &rewardUC{
		cfg:        cfg,
		rewardRepo: repo,
		rewardGW:   gw,
		validate:   validator.New(),
	}, nil
}

// IngestDailyQuiz stores a quiz arriving from the external generator
func (uc *rewardUC) IngestDailyQuiz(ctx context.Context, event *models.QuizGeneratedEvent) error {
	if len(event.Questions) == 0 {
		return apperr.Validation("generated quiz has no questions")
	}

	quiz := &models.DailyQuiz{
		ID:        uuid.New(),
		TenantID:  event.TenantID,
		QuizDate:  event.QuizDate,
		Questions: event.Questions,
	}
	if err := uc.rewardRepo.CreateDailyQuiz(ctx, quiz); err != nil {
		return err
	}

	logger.Info("Daily quiz ingested",
		logger.String("tenant_id", quiz.TenantID.String()),
		logger.String("quiz_date", quiz.QuizDate.Format("2006-01-02")),
		logger.Int("questions", len(quiz.Questions)))
	return nil
}

// stripAnswers blanks the stored answers so students never see them
func stripAnswers(quiz *models.DailyQuiz) *models.DailyQuiz {
	for i := range quiz.Questions {
		quiz.Questions[i].Answer = ""
	}
	return quiz
}

// GetQuiz returns a quiz with its answers stripped
func (uc *rewardUC) GetQuiz(ctx context.Context, tenantID, quizID uuid.UUID) (*models.DailyQuiz, error) {
	quiz, err := uc.rewardRepo.GetQuiz(ctx, tenantID, quizID)
	if err != nil {
		return nil, err
	}
	return stripAnswers(quiz), nil
}

// GetQuizForDate returns the quiz for one calendar day, answers stripped
func (uc *rewardUC) GetQuizForDate(ctx context.Context, tenantID uuid.UUID, date time.Time) (*models.DailyQuiz, error) {
	quiz, err := uc.rewardRepo.GetQuizForDate(ctx, tenantID, date)
	if err != nil {
		return nil, err
	}
	return stripAnswers(quiz), nil
}

// grade counts answers matching the stored ones, compared trimmed and
// case-insensitively
func grade(questions []models.QuizQuestion, answers []string) int {
	correct := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if strings.EqualFold(strings.TrimSpace(answers[i]), strings.TrimSpace(q.Answer)) {
			correct++
		}
	}
	return correct
}

// SubmitQuiz grades a student's answers, records the attempt and pays the
// reward. Grading and payment commit separately: a payment failure leaves a
// completed unpaid attempt for the recovery sweep, never a second grade.
func (uc *rewardUC) SubmitQuiz(ctx context.Context, cmd models.SubmitQuizCmd) (*models.SubmitResult, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperr.Validation("invalid quiz submission: %v", err)
	}

	quiz, err := uc.rewardRepo.GetQuiz(ctx, cmd.TenantID, cmd.QuizID)
	if err != nil {
		return nil, err
	}
	if len(cmd.Answers) > len(quiz.Questions) {
		return nil, apperr.Validation("submission has %d answers for %d questions", len(cmd.Answers), len(quiz.Questions))
	}

	correct := grade(quiz.Questions, cmd.Answers)

	attempt := &models.QuizAttempt{
		ID:                  uuid.New(),
		TenantID:            cmd.TenantID,
		QuizID:              cmd.QuizID,
		StudentID:           cmd.StudentID,
		Answers:             cmd.Answers,
		CorrectCount:        correct,
		ParticipationReward: uc.cfg.Reward.Participation,
		ScoreReward:         int64(correct) * uc.cfg.Reward.PerCorrect,
		Status:              models.AttemptCompleted,
	}
	if correct == len(quiz.Questions) {
		attempt.BonusReward = uc.cfg.Reward.PerfectBonus
	}
	attempt.TotalReward = attempt.ParticipationReward + attempt.ScoreReward + attempt.BonusReward

	if err := uc.rewardRepo.InsertAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	paid, err := uc.rewardRepo.PayAttempt(ctx, cmd.TenantID, attempt.ID)
	if err != nil {
		// the graded attempt committed; the sweep pays it later
		logger.Warn("Reward payment failed after grading",
			logger.String("attempt_id", attempt.ID.String()),
			logger.Err(err))
	}
	if paid {
		uc.publishPaid(ctx, cmd.TenantID, attempt.StudentID, attempt.ID, attempt.TotalReward)
	}

	logger.Info("Quiz submitted",
		logger.String("quiz_id", cmd.QuizID.String()),
		logger.String("student_id", cmd.StudentID.String()),
		logger.Int("correct", correct),
		logger.Int64("reward", attempt.TotalReward))

	return &models.SubmitResult{
		AttemptID:    attempt.ID,
		CorrectCount: correct,
		Reward:       attempt.TotalReward,
		Paid:         paid,
	}, nil
}

// ListAttempts returns every attempt for a quiz
func (uc *rewardUC) ListAttempts(ctx context.Context, tenantID, quizID uuid.UUID) ([]models.QuizAttempt, error) {
	return uc.rewardRepo.ListAttempts(ctx, tenantID, quizID)
}

// SweepUnpaid retries reward payment for completed unpaid attempts
func (uc *rewardUC) SweepUnpaid(ctx context.Context, tenantID uuid.UUID) (*models.SweepResult, error) {
	unpaid, err := uc.rewardRepo.ListUnpaidAttempts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	result := &models.SweepResult{}
	for i := range unpaid {
		attempt := &unpaid[i]

		paid, err := uc.rewardRepo.PayAttempt(ctx, tenantID, attempt.ID)
		if err != nil {
			logger.Warn("Reward sweep payment failed",
				logger.String("attempt_id", attempt.ID.String()),
				logger.Err(err))
			continue
		}
		if !paid {
			continue
		}

		result.PaidCount++
		result.TotalPaid += attempt.TotalReward
		uc.publishPaid(ctx, tenantID, attempt.StudentID, attempt.ID, attempt.TotalReward)
	}

	if result.PaidCount > 0 {
		logger.Info("Unpaid reward sweep completed",
			logger.String("tenant_id", tenantID.String()),
			logger.Int("paid", result.PaidCount),
			logger.Int64("total", result.TotalPaid))
	}
	return result, nil
}

// publishPaid emits the reward event; the payment already committed, so a
// publish failure is logged and swallowed
func (uc *rewardUC) publishPaid(ctx context.Context, tenantID, studentID, attemptID uuid.UUID, amount int64) {
	event := &models.RewardPaidEvent{
		AttemptID: attemptID,
		TenantID:  tenantID,
		StudentID: studentID,
		Amount:    amount,
		Timestamp: time.Now(),
	}
	if err := uc.rewardGW.PublishRewardPaid(ctx, event); err != nil {
		logger.Warn("Failed to publish reward paid event",
			logger.String("attempt_id", attemptID.String()),
			logger.Err(err))
	}
}
