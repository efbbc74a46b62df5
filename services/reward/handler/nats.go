package handler

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/piresc/kelasbank/internal/pkg/constants"
	"github.com/piresc/kelasbank/internal/pkg/logger"
	"github.com/piresc/kelasbank/internal/pkg/models"
)

// rewardQueueGroup keeps quiz ingestion on one instance per deployment
const rewardQueueGroup = "reward-service"

// InitNATSConsumers subscribes to the external quiz generator's subject
func (h *Handler) InitNATSConsumers() error {
	_, err := h.natsClient.QueueSubscribe(constants.SubjectQuizDailyGenerated, rewardQueueGroup, h.handleQuizGenerated)
	if err != nil {
		return err
	}

	logger.Info("Reward NATS consumer started",
		logger.String("subject", constants.SubjectQuizDailyGenerated))
	return nil
}

// handleQuizGenerated stores a freshly generated daily quiz
func (h *Handler) handleQuizGenerated(msg *nats.Msg) {
	var event models.QuizGeneratedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("Failed to unmarshal quiz generated event", logger.Err(err))
		return
	}

	if err := h.rewardUC.IngestDailyQuiz(context.Background(), &event); err != nil {
		logger.Warn("Failed to ingest daily quiz",
			logger.String("tenant_id", event.TenantID.String()),
			logger.Err(err))
	}
}
