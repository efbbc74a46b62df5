package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/kelasbank/internal/pkg/middleware"
	"github.com/piresc/kelasbank/internal/pkg/models"
	nrpkg "github.com/piresc/kelasbank/internal/pkg/newrelic"
	"github.com/piresc/kelasbank/internal/utils"
	"github.com/piresc/kelasbank/services/market"
)

// MarketHandler handles HTTP requests for the seat market
type MarketHandler struct {
	marketUC market.MarketUC
}

// NewMarketHandler creates a new market HTTP handler
func NewMarketHandler(marketUC market.MarketUC) *MarketHandler {
	return &MarketHandler{
		marketUC: marketUC,
	}
}

func seatNumberParam(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("seatNumber"))
}

// ListSeats returns the tenant's seat grid
func (h *MarketHandler) ListSeats(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Market.ListSeats")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	seats, err := h.marketUC.ListSeats(c.Request().Context(), principal.TenantID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seats retrieved successfully", seats)
}

// GetSeat returns one seat
func (h *MarketHandler) GetSeat(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Market.GetSeat")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	seatNumber, err := seatNumberParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid seat number")
	}

	seat, err := h.marketUC.GetSeat(c.Request().Context(), principal.TenantID, seatNumber)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seat retrieved successfully", seat)
}

// GetPrice returns the current tenant seat price
func (h *MarketHandler) GetPrice(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Market.GetPrice")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	price, err := h.marketUC.GetPrice(c.Request().Context(), principal.TenantID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seat price retrieved successfully", map[string]int64{"price": price})
}

// RecomputePrice recomputes and applies the tenant seat price
func (h *MarketHandler) RecomputePrice(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Market.RecomputePrice")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	var cmd models.RecomputePriceCmd
	if err := c.Bind(&cmd); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	cmd.TenantID = principal.TenantID

	price, err := h.marketUC.RecomputePrice(c.Request().Context(), cmd)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seat price recomputed successfully", map[string]int64{"price": price})
}

// BuySeat purchases a seat at the current price
func (h *MarketHandler) BuySeat(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Market.BuySeat")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	seatNumber, err := seatNumberParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid seat number")
	}

	var cmd models.BuySeatCmd
	if err := c.Bind(&cmd); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	cmd.TenantID = principal.TenantID
	cmd.SeatNumber = seatNumber

	result, err := h.marketUC.BuySeat(c.Request().Context(), cmd)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seat purchased successfully", result)
}

// SellSeat sells an owned seat back to the market
func (h *MarketHandler) SellSeat(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Market.SellSeat")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	seatNumber, err := seatNumberParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid seat number")
	}

	var cmd models.SellSeatCmd
	if err := c.Bind(&cmd); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	cmd.TenantID = principal.TenantID
	cmd.SeatNumber = seatNumber

	result, err := h.marketUC.SellSeat(c.Request().Context(), cmd)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seat sold successfully", result)
}

// ListSeatTransactions returns a seat's trade history
func (h *MarketHandler) ListSeatTransactions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Market.ListSeatTransactions")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	seatNumber, err := seatNumberParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid seat number")
	}

	transactions, err := h.marketUC.ListSeatTransactions(c.Request().Context(), principal.TenantID, seatNumber)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seat transactions retrieved successfully", transactions)
}

// InitializeSeats creates the seat grid for the tenant named in the path;
// used by the scheduler or bootstrap flow with an API key
func (h *MarketHandler) InitializeSeats(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Market.InitializeSeats")

	tenantID, err := uuid.Parse(c.Param("tenantID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tenant ID")
	}

	var req struct {
		Rows int `json:"rows"`
		Cols int `json:"cols"`
	}
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Rows == 0 {
		req.Rows = 5
	}
	if req.Cols == 0 {
		req.Cols = 6
	}

	if err := h.marketUC.InitializeSeats(c.Request().Context(), tenantID, req.Rows, req.Cols); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seats initialized successfully", nil)
}
