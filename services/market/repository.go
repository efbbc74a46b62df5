package market

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/models"
)

// MarketRepo defines the interface for seat market data access operations.
// BuySeat and SellSeat run inside a single database transaction; the seat
// claim is a conditional update so two racing buyers cannot both win.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/kelasbank/services/market MarketRepo
type MarketRepo interface {
	EnsureSeats(ctx context.Context, tenantID uuid.UUID, rows, cols int, price int64) error
	GetSeat(ctx context.Context, tenantID uuid.UUID, seatNumber int) (*models.Seat, error)
	ListSeats(ctx context.Context, tenantID uuid.UUID) ([]models.Seat, error)

	// TotalStudentAssets sums checking+savings+investment over all students
	// in the tenant and returns the student count. Entities are excluded by
	// construction: they live in their own table.
	TotalStudentAssets(ctx context.Context, tenantID uuid.UUID) (int64, int, error)

	// ApplyPrice writes price to every unowned seat and returns how many
	// seats were repriced.
	ApplyPrice(ctx context.Context, tenantID uuid.UUID, price int64) (int, error)

	BuySeat(ctx context.Context, tenantID uuid.UUID, seatNumber int, studentID uuid.UUID) (*models.SeatTradeResult, error)
	SellSeat(ctx context.Context, tenantID uuid.UUID, seatNumber int, studentID uuid.UUID, price int64) (*models.SeatTradeResult, error)

	ListSeatTransactions(ctx context.Context, tenantID uuid.UUID, seatNumber int) ([]models.SeatTransaction, error)
}
