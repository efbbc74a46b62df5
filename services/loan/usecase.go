package loan

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/models"
)

// LoanUC defines the interface for loan business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/kelasbank/services/loan LoanUC
type LoanUC interface {
	Originate(ctx context.Context, cmd models.OriginateLoanCmd) (*models.Loan, error)
	GetLoan(ctx context.Context, tenantID, loanID uuid.UUID) (*models.Loan, error)
	ListLoans(ctx context.Context, tenantID, studentID uuid.UUID) ([]models.Loan, error)
	ListPayments(ctx context.Context, tenantID, loanID uuid.UUID) ([]models.LoanPayment, error)
	Repay(ctx context.Context, cmd models.RepayLoanCmd) (*models.RepayResult, error)
	SweepOverdue(ctx context.Context, tenantID uuid.UUID) ([]models.Loan, error)
}
