package gateway

import (
	"context"
	"encoding/json"

	"github.com/piresc/kelasbank/internal/pkg/constants"
	"github.com/piresc/kelasbank/internal/pkg/models"
	natspkg "github.com/piresc/kelasbank/internal/pkg/nats"
	"github.com/piresc/kelasbank/services/market"
)

// MarketGW handles NATS publishing for seat market events
type MarketGW struct {
	natsClient *natspkg.Client
}

// NewMarketGW creates a new market gateway
func NewMarketGW(client *natspkg.Client) market.MarketGW {
	return &MarketGW{
		natsClient: client,
	}
}

// PublishSeatTraded publishes a committed seat trade to NATS
func (g *MarketGW) PublishSeatTraded(ctx context.Context, event *models.SeatTradedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectSeatTraded, data)
}
