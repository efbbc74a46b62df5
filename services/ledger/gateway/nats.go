package gateway

import (
	"context"
	"encoding/json"

	"github.com/piresc/kelasbank/internal/pkg/constants"
	"github.com/piresc/kelasbank/internal/pkg/models"
	natspkg "github.com/piresc/kelasbank/internal/pkg/nats"
	"github.com/piresc/kelasbank/services/ledger"
)

// LedgerGW handles NATS publishing for ledger events
type LedgerGW struct {
	natsClient *natspkg.Client
}

// NewLedgerGW creates a new ledger gateway
func NewLedgerGW(client *natspkg.Client) ledger.LedgerGW {
	return &LedgerGW{
		natsClient: client,
	}
}

// PublishTransactionRecorded publishes a committed ledger entry to NATS
func (g *LedgerGW) PublishTransactionRecorded(ctx context.Context, txn *models.Transaction) error {
	event := models.TransactionEvent{
		TransactionID: txn.ID,
		TenantID:      txn.TenantID,
		Type:          txn.Type,
		Amount:        txn.Amount,
		Timestamp:     txn.CreatedAt,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectTransactionRecorded, data)
}
