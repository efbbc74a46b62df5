package reward

import (
	"context"

	"github.com/piresc/kelasbank/internal/pkg/models"
)

// RewardGW defines the interface for publishing reward events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/kelasbank/services/reward RewardGW
type RewardGW interface {
	PublishRewardPaid(ctx context.Context, event *models.RewardPaidEvent) error
}
