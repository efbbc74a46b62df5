package gateway

import (
	"context"
	"encoding/json"

	"github.com/piresc/kelasbank/internal/pkg/constants"
	"github.com/piresc/kelasbank/internal/pkg/models"
	natspkg "github.com/piresc/kelasbank/internal/pkg/nats"
	"github.com/piresc/kelasbank/services/loan"
)

// LoanGW handles NATS publishing for loan lifecycle events
type LoanGW struct {
	natsClient *natspkg.Client
}

// NewLoanGW creates a new loan gateway
func NewLoanGW(client *natspkg.Client) loan.LoanGW {
	return &LoanGW{
		natsClient: client,
	}
}

func (g *LoanGW) publish(subject string, event *models.LoanEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(subject, data)
}

// PublishLoanOriginated publishes a loan origination event
func (g *LoanGW) PublishLoanOriginated(ctx context.Context, event *models.LoanEvent) error {
	return g.publish(constants.SubjectLoanOriginated, event)
}

// PublishLoanCompleted publishes a loan completion event
func (g *LoanGW) PublishLoanCompleted(ctx context.Context, event *models.LoanEvent) error {
	return g.publish(constants.SubjectLoanCompleted, event)
}

// PublishLoanDefaulted publishes a loan default event
func (g *LoanGW) PublishLoanDefaulted(ctx context.Context, event *models.LoanEvent) error {
	return g.publish(constants.SubjectLoanDefaulted, event)
}
