package market

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/models"
)

// MarketUC defines the interface for seat market business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/kelasbank/services/market MarketUC
type MarketUC interface {
	InitializeSeats(ctx context.Context, tenantID uuid.UUID, rows, cols int) error
	GetSeat(ctx context.Context, tenantID uuid.UUID, seatNumber int) (*models.Seat, error)
	ListSeats(ctx context.Context, tenantID uuid.UUID) ([]models.Seat, error)

	// RecomputePrice derives the price from current aggregate wealth,
	// applies it to every unowned seat and refreshes the read cache.
	RecomputePrice(ctx context.Context, cmd models.RecomputePriceCmd) (int64, error)

	// GetPrice serves the cached price when fresh, recomputing on a miss.
	GetPrice(ctx context.Context, tenantID uuid.UUID) (int64, error)

	BuySeat(ctx context.Context, cmd models.BuySeatCmd) (*models.SeatTradeResult, error)
	SellSeat(ctx context.Context, cmd models.SellSeatCmd) (*models.SeatTradeResult, error)

	ListSeatTransactions(ctx context.Context, tenantID uuid.UUID, seatNumber int) ([]models.SeatTransaction, error)
}
