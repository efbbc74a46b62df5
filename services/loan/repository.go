package loan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/models"
)

// LoanRepo defines the interface for loan data access operations.
// Originate, Repay and SweepOverdue each run inside a single database
// transaction with the loan and balance rows locked.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/kelasbank/services/loan LoanRepo
type LoanRepo interface {
	GetStudentCreditScore(ctx context.Context, tenantID, studentID uuid.UUID) (int, error)
	CountActiveLoans(ctx context.Context, tenantID, studentID uuid.UUID) (int, error)

	// Originate persists the loan and disburses the principal from the
	// bank entity into the student's checking account.
	Originate(ctx context.Context, loan *models.Loan) error

	GetLoan(ctx context.Context, tenantID, loanID uuid.UUID) (*models.Loan, error)
	ListLoans(ctx context.Context, tenantID, studentID uuid.UUID) ([]models.Loan, error)
	ListPayments(ctx context.Context, tenantID, loanID uuid.UUID) ([]models.LoanPayment, error)

	// Repay applies a payment: interest first, remainder to principal,
	// crediting the bank entity. The split is computed against the locked
	// loan row, never a stale read.
	Repay(ctx context.Context, tenantID, loanID uuid.UUID, requested int64) (*models.RepayResult, error)

	// SweepOverdue marks every active loan whose next payment due date is
	// before cutoff as defaulted and applies the credit penalty to its
	// holder. Returns the loans it defaulted.
	SweepOverdue(ctx context.Context, tenantID uuid.UUID, cutoff time.Time, penalty int) ([]models.Loan, error)
}
