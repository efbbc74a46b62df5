package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/kelasbank/internal/pkg/middleware"
	"github.com/piresc/kelasbank/internal/pkg/models"
	nrpkg "github.com/piresc/kelasbank/internal/pkg/newrelic"
	"github.com/piresc/kelasbank/internal/utils"
	"github.com/piresc/kelasbank/services/loan"
)

// LoanHandler handles HTTP requests for loans
type LoanHandler struct {
	loanUC loan.LoanUC
}

// NewLoanHandler creates a new loan HTTP handler
func NewLoanHandler(loanUC loan.LoanUC) *LoanHandler {
	return &LoanHandler{
		loanUC: loanUC,
	}
}

// Originate opens a new loan for a student
func (h *LoanHandler) Originate(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loan.Originate")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	var cmd models.OriginateLoanCmd
	if err := c.Bind(&cmd); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	cmd.TenantID = principal.TenantID

	l, err := h.loanUC.Originate(c.Request().Context(), cmd)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Loan originated successfully", l)
}

// GetLoan returns one loan
func (h *LoanHandler) GetLoan(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loan.GetLoan")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	loanID, err := uuid.Parse(c.Param("loanID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid loan ID")
	}

	l, err := h.loanUC.GetLoan(c.Request().Context(), principal.TenantID, loanID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Loan retrieved successfully", l)
}

// ListLoans returns a student's loans
func (h *LoanHandler) ListLoans(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loan.ListLoans")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	studentID, err := uuid.Parse(c.QueryParam("student_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid or missing student_id")
	}

	loans, err := h.loanUC.ListLoans(c.Request().Context(), principal.TenantID, studentID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Loans retrieved successfully", loans)
}

// ListPayments returns a loan's repayment history
func (h *LoanHandler) ListPayments(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loan.ListPayments")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	loanID, err := uuid.Parse(c.Param("loanID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid loan ID")
	}

	payments, err := h.loanUC.ListPayments(c.Request().Context(), principal.TenantID, loanID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Loan payments retrieved successfully", payments)
}

// Repay applies a payment to an active loan
func (h *LoanHandler) Repay(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loan.Repay")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	loanID, err := uuid.Parse(c.Param("loanID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid loan ID")
	}

	var cmd models.RepayLoanCmd
	if err := c.Bind(&cmd); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	cmd.TenantID = principal.TenantID
	cmd.LoanID = loanID

	result, err := h.loanUC.Repay(c.Request().Context(), cmd)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment applied successfully", result)
}

// SweepOverdue defaults overdue loans for a tenant, called by the scheduler
func (h *LoanHandler) SweepOverdue(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loan.SweepOverdue")

	tenantID, err := uuid.Parse(c.Param("tenantID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tenant ID")
	}

	defaulted, err := h.loanUC.SweepOverdue(c.Request().Context(), tenantID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Overdue sweep completed", defaulted)
}
