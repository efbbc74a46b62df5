package market

import (
	"context"

	"github.com/piresc/kelasbank/internal/pkg/models"
)

// MarketGW defines the interface for publishing seat market events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/kelasbank/services/market MarketGW
type MarketGW interface {
	PublishSeatTraded(ctx context.Context, event *models.SeatTradedEvent) error
}
