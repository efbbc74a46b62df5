package models

import (
	"time"

	"github.com/google/uuid"
)

// EntityType identifies a non-student economic actor
type EntityType string

const (
	EntityGovernment EntityType = "government"
	EntityBank       EntityType = "bank"
	EntitySecurities EntityType = "securities"
)

// EntityTypes lists the entities bootstrapped for every tenant
var EntityTypes = []EntityType{EntityGovernment, EntityBank, EntitySecurities}

// Valid reports whether t is a known entity type
func (t EntityType) Valid() bool {
	switch t {
	case EntityGovernment, EntityBank, EntitySecurities:
		return true
	}
	return false
}

// EconomicEntity is the counterparty ledger for taxes, loan interest,
// allowances and trading fees. At most one row per (tenant, type).
type EconomicEntity struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	TenantID  uuid.UUID  `json:"tenant_id" db:"tenant_id"`
	Type      EntityType `json:"type" db:"type"`
	Balance   int64      `json:"balance" db:"balance"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
