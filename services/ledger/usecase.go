package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/models"
)

// LedgerUC defines the interface for ledger business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/kelasbank/services/ledger LedgerUC
type LedgerUC interface {
	CreateStudent(ctx context.Context, cmd models.CreateStudentCmd) (*models.Student, error)
	GetStudent(ctx context.Context, tenantID, studentID uuid.UUID) (*models.Student, error)
	ListStudents(ctx context.Context, tenantID uuid.UUID) ([]models.Student, error)
	DeleteStudent(ctx context.Context, tenantID, studentID uuid.UUID) error
	AdjustCreditScore(ctx context.Context, cmd models.AdjustCreditCmd) (*models.Student, error)
	BootstrapTenant(ctx context.Context, tenantID uuid.UUID, initialBalance int64) error

	Transfer(ctx context.Context, cmd models.TransferCmd) (*models.TransferResult, error)
	MultiTransfer(ctx context.Context, cmd models.MultiTransferCmd) ([]models.MultiTransferOutcome, error)
	CollectTax(ctx context.Context, cmd models.TaxCollectCmd) (*models.FanOutResult, error)
	DistributeAllowance(ctx context.Context, cmd models.AllowanceCmd) (*models.FanOutResult, error)

	ListTransactions(ctx context.Context, tenantID, studentID uuid.UUID, limit, offset int) ([]models.Transaction, error)
}
