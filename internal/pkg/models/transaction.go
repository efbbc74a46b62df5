package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a ledger entry
type TransactionType string

const (
	TxTransfer         TransactionType = "transfer"
	TxAccountTransfer  TransactionType = "account_transfer"
	TxAllowance        TransactionType = "allowance"
	TxTaxPayment       TransactionType = "tax_payment"
	TxLoanDisbursement TransactionType = "loan_disbursement"
	TxLoanRepayment    TransactionType = "loan_repayment"
	TxQuizReward       TransactionType = "quiz_reward"
	TxInvestmentFee    TransactionType = "investment_fee"
	TxSeatPurchase     TransactionType = "real_estate_purchase"
	TxSeatSale         TransactionType = "real_estate_sale"
	TxCreditAdjustment TransactionType = "credit_adjustment"
)

// PartyKind identifies which kind of balance holder a transaction leg names
type PartyKind string

const (
	PartyStudent PartyKind = "student"
	PartyEntity  PartyKind = "entity"
	PartySystem  PartyKind = "system"
)

// PartyRef identifies one balance holder. For students, Account selects
// which of the three accounts; entities carry a single balance.
type PartyRef struct {
	Kind    PartyKind   `json:"kind"`
	ID      uuid.UUID   `json:"id"`
	Account AccountType `json:"account,omitempty"`
}

// Transaction is an immutable ledger entry, the sole record of money movement
type Transaction struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	TenantID    uuid.UUID       `json:"tenant_id" db:"tenant_id"`
	FromKind    PartyKind       `json:"from_kind" db:"from_kind"`
	FromID      uuid.UUID       `json:"from_id" db:"from_id"`
	FromAccount AccountType     `json:"from_account,omitempty" db:"from_account"`
	ToKind      PartyKind       `json:"to_kind" db:"to_kind"`
	ToID        uuid.UUID       `json:"to_id" db:"to_id"`
	ToAccount   AccountType     `json:"to_account,omitempty" db:"to_account"`
	Amount      int64           `json:"amount" db:"amount"`
	Type        TransactionType `json:"type" db:"type"`
	Description string          `json:"description" db:"description"`
	Status      string          `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// TransferSpec describes one money movement for the ledger repository
type TransferSpec struct {
	TenantID    uuid.UUID       `json:"tenant_id"`
	From        PartyRef        `json:"from"`
	To          PartyRef        `json:"to"`
	Amount      int64           `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
}

// TransferResult carries the recorded transaction plus resulting balances
type TransferResult struct {
	Transaction   *Transaction `json:"transaction"`
	SourceBalance int64        `json:"source_balance"`
	DestBalance   int64        `json:"dest_balance"`
}

// MultiTransferOutcome reports one recipient of a best-effort fan-out
type MultiTransferOutcome struct {
	Recipient PartyRef `json:"recipient"`
	Amount    int64    `json:"amount"`
	Success   bool     `json:"success"`
	Error     string   `json:"error,omitempty"`
}

// TransactionEvent is published to NATS after a ledger entry commits
type TransactionEvent struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	Type          TransactionType `json:"type"`
	Amount        int64           `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
}
