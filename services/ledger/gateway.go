package ledger

import (
	"context"

	"github.com/piresc/kelasbank/internal/pkg/models"
)

// LedgerGW defines the interface for publishing ledger events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/kelasbank/services/ledger LedgerGW
type LedgerGW interface {
	PublishTransactionRecorded(ctx context.Context, txn *models.Transaction) error
}
