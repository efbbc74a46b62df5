package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/apperr"
	"github.com/piresc/kelasbank/internal/pkg/constants"
	"github.com/piresc/kelasbank/internal/pkg/database"
	"github.com/piresc/kelasbank/internal/pkg/logger"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/services/market"
)

// marketUC implements the market.MarketUC interface
type marketUC struct {
	cfg        *models.Config
	marketRepo market.MarketRepo
	marketGW   market.MarketGW
	cache      *database.RedisClient
	validate   *validator.Validate
}

// NewMarketUC creates a new market use case
func NewMarketUC(
	cfg *models.Config,
	marketRepo market.MarketRepo,
	marketGW market.MarketGW,
	cache *database.RedisClient,
) (market.MarketUC, error) {
	return &marketUC{
		cfg:        cfg,
		marketRepo: marketRepo,
		marketGW:   marketGW,
		cache:      cache,
		validate:   validator.New(),
	}, nil
}

// InitializeSeats creates the seat grid for a tenant at the base price
func (uc *marketUC) InitializeSeats(ctx context.Context, tenantID uuid.UUID, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return apperr.Validation("seat grid dimensions must be positive")
	}

	if err := uc.marketRepo.EnsureSeats(ctx, tenantID, rows, cols, uc.cfg.Market.BasePrice); err != nil {
		return fmt.Errorf("failed to initialize seats: %w", err)
	}

	logger.Info("Initialized seat grid",
		logger.String("tenant_id", tenantID.String()),
		logger.Int("rows", rows),
		logger.Int("cols", cols))
	return nil
}

// GetSeat returns one seat
func (uc *marketUC) GetSeat(ctx context.Context, tenantID uuid.UUID, seatNumber int) (*models.Seat, error) {
	return uc.marketRepo.GetSeat(ctx, tenantID, seatNumber)
}

// ListSeats returns the tenant's seat grid
func (uc *marketUC) ListSeats(ctx context.Context, tenantID uuid.UUID) ([]models.Seat, error) {
	return uc.marketRepo.ListSeats(ctx, tenantID)
}

// recompute derives the price from live aggregate wealth, writes it to
// every unowned seat and refreshes the read cache
func (uc *marketUC) recompute(ctx context.Context, tenantID uuid.UUID, manualCount *int) (int64, error) {
	totalAssets, studentCount, err := uc.marketRepo.TotalStudentAssets(ctx, tenantID)
	if err != nil {
		return 0, err
	}
	if manualCount != nil {
		studentCount = *manualCount
	}

	price := market.SeatPrice(totalAssets, studentCount, uc.cfg.Market.BasePrice, uc.cfg.Market.MinPrice)

	repriced, err := uc.marketRepo.ApplyPrice(ctx, tenantID, price)
	if err != nil {
		return 0, err
	}
	uc.cachePrice(ctx, tenantID, price)

	logger.Info("Recomputed seat price",
		logger.String("tenant_id", tenantID.String()),
		logger.Int64("price", price),
		logger.Int64("total_assets", totalAssets),
		logger.Int("student_count", studentCount),
		logger.Int("seats_repriced", repriced))

	return price, nil
}

// RecomputePrice recomputes and applies the tenant seat price
func (uc *marketUC) RecomputePrice(ctx context.Context, cmd models.RecomputePriceCmd) (int64, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return 0, apperr.Validation("invalid recompute request: %v", err)
	}
	return uc.recompute(ctx, cmd.TenantID, cmd.ManualCount)
}

// GetPrice serves the cached price, recomputing on a miss. The cache only
// shortens the read path; trades never price off it.
func (uc *marketUC) GetPrice(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	key := fmt.Sprintf(constants.KeySeatPrice, tenantID)
	if cached, err := uc.cache.Get(ctx, key); err == nil {
		if price, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return price, nil
		}
	}

	return uc.recompute(ctx, tenantID, nil)
}

func (uc *marketUC) cachePrice(ctx context.Context, tenantID uuid.UUID, price int64) {
	key := fmt.Sprintf(constants.KeySeatPrice, tenantID)
	ttl := time.Duration(uc.cfg.Market.PriceCacheTTL) * time.Second
	if err := uc.cache.Set(ctx, key, strconv.FormatInt(price, 10), ttl); err != nil {
		logger.Warn("Failed to cache seat price",
			logger.String("tenant_id", tenantID.String()),
			logger.Err(err))
	}
}

// BuySeat purchases a seat at its current price and reprices the market
// from the post-trade wealth distribution
func (uc *marketUC) BuySeat(ctx context.Context, cmd models.BuySeatCmd) (*models.SeatTradeResult, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperr.Validation("invalid buy request: %v", err)
	}

	result, err := uc.marketRepo.BuySeat(ctx, cmd.TenantID, cmd.SeatNumber, cmd.StudentID)
	if err != nil {
		return nil, err
	}

	marketPrice, err := uc.recompute(ctx, cmd.TenantID, nil)
	if err != nil {
		logger.Warn("Post-purchase repricing failed",
			logger.String("tenant_id", cmd.TenantID.String()),
			logger.Err(err))
		marketPrice = result.Price
	}
	result.MarketPrice = marketPrice

	uc.publishTrade(ctx, cmd.TenantID, cmd.SeatNumber, cmd.StudentID, models.SeatTxBuy, result.Price)
	return result, nil
}

// SellSeat sells an owned seat back at a freshly computed price, never the
// stale column value
func (uc *marketUC) SellSeat(ctx context.Context, cmd models.SellSeatCmd) (*models.SeatTradeResult, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperr.Validation("invalid sell request: %v", err)
	}

	price, err := uc.recompute(ctx, cmd.TenantID, nil)
	if err != nil {
		return nil, err
	}

	result, err := uc.marketRepo.SellSeat(ctx, cmd.TenantID, cmd.SeatNumber, cmd.StudentID, price)
	if err != nil {
		return nil, err
	}

	marketPrice, err := uc.recompute(ctx, cmd.TenantID, nil)
	if err != nil {
		logger.Warn("Post-sale repricing failed",
			logger.String("tenant_id", cmd.TenantID.String()),
			logger.Err(err))
		marketPrice = price
	}
	result.MarketPrice = marketPrice

	uc.publishTrade(ctx, cmd.TenantID, cmd.SeatNumber, cmd.StudentID, models.SeatTxSell, price)
	return result, nil
}

// ListSeatTransactions returns a seat's trade history
func (uc *marketUC) ListSeatTransactions(ctx context.Context, tenantID uuid.UUID, seatNumber int) ([]models.SeatTransaction, error) {
	return uc.marketRepo.ListSeatTransactions(ctx, tenantID, seatNumber)
}

func (uc *marketUC) publishTrade(ctx context.Context, tenantID uuid.UUID, seatNumber int, studentID uuid.UUID, tradeType models.SeatTransactionType, price int64) {
	event := &models.SeatTradedEvent{
		TenantID:   tenantID,
		SeatNumber: seatNumber,
		StudentID:  studentID,
		Type:       tradeType,
		Price:      price,
		Timestamp:  time.Now(),
	}
	if err := uc.marketGW.PublishSeatTraded(ctx, event); err != nil {
		logger.Warn("Failed to publish seat traded event",
			logger.String("tenant_id", tenantID.String()),
			logger.Int("seat_number", seatNumber),
			logger.Err(err))
	}
}
