package gateway

import (
	"context"
	"encoding/json"

	"github.com/piresc/kelasbank/internal/pkg/constants"
	"github.com/piresc/kelasbank/internal/pkg/models"
	natspkg "github.com/piresc/kelasbank/internal/pkg/nats"
	"github.com/piresc/kelasbank/services/reward"
)

// RewardGW handles NATS publishing for reward events
type RewardGW struct {
	natsClient *natspkg.Client
}

// NewRewardGW creates a new reward gateway
func NewRewardGW(client *natspkg.Client) reward.RewardGW {
	return &RewardGW{
		natsClient: client,
	}
}

// PublishRewardPaid publishes a committed reward payment to NATS
func (g *RewardGW) PublishRewardPaid(ctx context.Context, event *models.RewardPaidEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectRewardPaid, data)
}
