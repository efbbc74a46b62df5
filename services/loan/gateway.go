package loan

import (
	"context"

	"github.com/piresc/kelasbank/internal/pkg/models"
)

// LoanGW defines the interface for publishing loan lifecycle events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/kelasbank/services/loan LoanGW
type LoanGW interface {
	PublishLoanOriginated(ctx context.Context, event *models.LoanEvent) error
	PublishLoanCompleted(ctx context.Context, event *models.LoanEvent) error
	PublishLoanDefaulted(ctx context.Context, event *models.LoanEvent) error
}
