package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/kelasbank/internal/pkg/logger"
	"github.com/piresc/kelasbank/internal/pkg/middleware"
	"github.com/piresc/kelasbank/internal/pkg/models"
	nrpkg "github.com/piresc/kelasbank/internal/pkg/newrelic"
	"github.com/piresc/kelasbank/internal/utils"
	"github.com/piresc/kelasbank/services/ledger"
)

// LedgerHandler handles HTTP requests for students, entities and transfers
type LedgerHandler struct {
	ledgerUC ledger.LedgerUC
}

// NewLedgerHandler creates a new ledger HTTP handler
func NewLedgerHandler(ledgerUC ledger.LedgerUC) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
	}
}

// CreateStudent handles student registration
func (h *LedgerHandler) CreateStudent(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.CreateStudent")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	var cmd models.CreateStudentCmd
	if err := c.Bind(&cmd); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	cmd.TenantID = principal.TenantID

	student, err := h.ledgerUC.CreateStudent(c.Request().Context(), cmd)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Student created successfully", student)
}

// GetStudent returns one student with accounts
func (h *LedgerHandler) GetStudent(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.GetStudent")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	studentID, err := uuid.Parse(c.Param("studentID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid student ID")
	}

	student, err := h.ledgerUC.GetStudent(c.Request().Context(), principal.TenantID, studentID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Student retrieved successfully", student)
}

// ListStudents returns every student in the caller's tenant
func (h *LedgerHandler) ListStudents(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.ListStudents")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	students, err := h.ledgerUC.ListStudents(c.Request().Context(), principal.TenantID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Students retrieved successfully", students)
}

// DeleteStudent removes a student and releases their seats
func (h *LedgerHandler) DeleteStudent(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.DeleteStudent")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	studentID, err := uuid.Parse(c.Param("studentID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid student ID")
	}

	if err := h.ledgerUC.DeleteStudent(c.Request().Context(), principal.TenantID, studentID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Student deleted successfully", nil)
}

// AdjustCredit applies a teacher credit-score adjustment
func (h *LedgerHandler) AdjustCredit(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.AdjustCredit")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	studentID, err := uuid.Parse(c.Param("studentID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid student ID")
	}

	var cmd models.AdjustCreditCmd
	if err := c.Bind(&cmd); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	cmd.TenantID = principal.TenantID
	cmd.StudentID = studentID

	student, err := h.ledgerUC.AdjustCreditScore(c.Request().Context(), cmd)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Credit score adjusted successfully", student)
}

// ListTransactions returns a student's ledger history
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.ListTransactions")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	studentID, err := uuid.Parse(c.Param("studentID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid student ID")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	transactions, err := h.ledgerUC.ListTransactions(c.Request().Context(), principal.TenantID, studentID, limit, offset)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", transactions)
}

// Transfer moves funds between two balance holders
func (h *LedgerHandler) Transfer(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.Transfer")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	var cmd models.TransferCmd
	if err := c.Bind(&cmd); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	cmd.TenantID = principal.TenantID

	result, err := h.ledgerUC.Transfer(c.Request().Context(), cmd)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transfer completed successfully", result)
}

// MultiTransfer fans one source out to many recipients, best-effort
func (h *LedgerHandler) MultiTransfer(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.MultiTransfer")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	var cmd models.MultiTransferCmd
	if err := c.Bind(&cmd); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	cmd.TenantID = principal.TenantID

	outcomes, err := h.ledgerUC.MultiTransfer(c.Request().Context(), cmd)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Multi-transfer processed", outcomes)
}

// CollectTax levies tax for the teacher's own tenant
func (h *LedgerHandler) CollectTax(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.CollectTax")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	return h.collectTax(c, txn, principal.TenantID)
}

// CollectTaxInternal levies tax for the tenant named in the path; used by
// the scheduler with an API key
func (h *LedgerHandler) CollectTaxInternal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.CollectTaxInternal")

	tenantID, err := uuid.Parse(c.Param("tenantID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tenant ID")
	}

	return h.collectTax(c, txn, tenantID)
}

func (h *LedgerHandler) collectTax(c echo.Context, txn *nrpkg.Transaction, tenantID uuid.UUID) error {
	var cmd models.TaxCollectCmd
	if err := c.Bind(&cmd); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	cmd.TenantID = tenantID

	result, err := h.ledgerUC.CollectTax(c.Request().Context(), cmd)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Warn("Tax collection failed",
			logger.String("tenant_id", tenantID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tax collected successfully", result)
}

// DistributeAllowance credits allowances for the teacher's own tenant
func (h *LedgerHandler) DistributeAllowance(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.DistributeAllowance")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	return h.distributeAllowance(c, txn, principal.TenantID)
}

// DistributeAllowanceInternal credits allowances for the tenant named in the
// path; used by the scheduler with an API key
func (h *LedgerHandler) DistributeAllowanceInternal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.DistributeAllowanceInternal")

	tenantID, err := uuid.Parse(c.Param("tenantID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tenant ID")
	}

	return h.distributeAllowance(c, txn, tenantID)
}

func (h *LedgerHandler) distributeAllowance(c echo.Context, txn *nrpkg.Transaction, tenantID uuid.UUID) error {
	var cmd models.AllowanceCmd
	if err := c.Bind(&cmd); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	cmd.TenantID = tenantID

	result, err := h.ledgerUC.DistributeAllowance(c.Request().Context(), cmd)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Allowance distributed successfully", result)
}

// BootstrapTenant creates the economic entities for a tenant
func (h *LedgerHandler) BootstrapTenant(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.BootstrapTenant")

	tenantID, err := uuid.Parse(c.Param("tenantID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tenant ID")
	}

	var req struct {
		InitialBalance int64 `json:"initial_balance"`
	}
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.InitialBalance == 0 {
		req.InitialBalance = 10000000
	}

	if err := h.ledgerUC.BootstrapTenant(c.Request().Context(), tenantID, req.InitialBalance); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tenant bootstrapped successfully", nil)
}
