package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/models"
)

// LedgerRepo defines the interface for ledger data access operations.
// Every mutating method runs its reads, balance checks and writes inside a
// single database transaction with the touched balance rows locked.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/kelasbank/services/ledger LedgerRepo
type LedgerRepo interface {
	CreateStudent(ctx context.Context, student *models.Student, initialBalance int64) error
	GetStudent(ctx context.Context, tenantID, studentID uuid.UUID) (*models.Student, error)
	ListStudents(ctx context.Context, tenantID uuid.UUID) ([]models.Student, error)
	DeleteStudent(ctx context.Context, tenantID, studentID uuid.UUID) error
	AdjustCreditScore(ctx context.Context, tenantID, studentID uuid.UUID, delta int, reason string) (*models.Student, error)

	EnsureEntities(ctx context.Context, tenantID uuid.UUID, initialBalance int64) error
	GetEntity(ctx context.Context, tenantID uuid.UUID, entityType models.EntityType) (*models.EconomicEntity, error)
	GetAccount(ctx context.Context, tenantID, studentID uuid.UUID, accountType models.AccountType) (*models.Account, error)

	Transfer(ctx context.Context, spec *models.TransferSpec) (*models.TransferResult, error)
	CollectTax(ctx context.Context, tenantID uuid.UUID, payerIDs []uuid.UUID, amount int64, description string) ([]models.Transaction, error)
	DistributeAllowance(ctx context.Context, tenantID uuid.UUID, grants []models.AllowanceGrant, description string) ([]models.Transaction, error)

	ListTransactions(ctx context.Context, tenantID, studentID uuid.UUID, limit, offset int) ([]models.Transaction, error)
}
