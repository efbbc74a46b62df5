package models

import (
	"time"

	"github.com/google/uuid"
)

// Seat is a scarce numbered classroom resource traded at the tenant-wide
// computed price. PurchasePrice and PurchasedAt are meaningful only while owned.
type Seat struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	TenantID      uuid.UUID  `json:"tenant_id" db:"tenant_id"`
	SeatNumber    int        `json:"seat_number" db:"seat_number"`
	RowPos        int        `json:"row_pos" db:"row_pos"`
	ColPos        int        `json:"col_pos" db:"col_pos"`
	CurrentPrice  int64      `json:"current_price" db:"current_price"`
	OwnerID       *uuid.UUID `json:"owner_id,omitempty" db:"owner_id"`
	PurchasePrice *int64     `json:"purchase_price,omitempty" db:"purchase_price"`
	PurchasedAt   *time.Time `json:"purchased_at,omitempty" db:"purchased_at"`
	Available     bool       `json:"available" db:"available"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// SeatTransactionType identifies the direction of a seat trade
type SeatTransactionType string

const (
	SeatTxBuy  SeatTransactionType = "buy"
	SeatTxSell SeatTransactionType = "sell"
)

// SeatTransaction records one seat trade, mirroring a ledger Transaction
type SeatTransaction struct {
	ID         uuid.UUID           `json:"id" db:"id"`
	TenantID   uuid.UUID           `json:"tenant_id" db:"tenant_id"`
	SeatID     uuid.UUID           `json:"seat_id" db:"seat_id"`
	SeatNumber int                 `json:"seat_number" db:"seat_number"`
	StudentID  uuid.UUID           `json:"student_id" db:"student_id"`
	Type       SeatTransactionType `json:"type" db:"type"`
	Price      int64               `json:"price" db:"price"`
	CreatedAt  time.Time           `json:"created_at" db:"created_at"`
}

// SeatTradeResult is returned by buy and sell operations
type SeatTradeResult struct {
	Seat        *Seat      `json:"seat"`
	Price       int64      `json:"price"`
	NewOwner    *uuid.UUID `json:"new_owner,omitempty"`
	NewBalance  int64      `json:"new_balance"`
	MarketPrice int64      `json:"market_price"`
}

// SeatTradedEvent is published to NATS after a seat trade commits
type SeatTradedEvent struct {
	TenantID   uuid.UUID           `json:"tenant_id"`
	SeatNumber int                 `json:"seat_number"`
	StudentID  uuid.UUID           `json:"student_id"`
	Type       SeatTransactionType `json:"type"`
	Price      int64               `json:"price"`
	Timestamp  time.Time           `json:"timestamp"`
}
