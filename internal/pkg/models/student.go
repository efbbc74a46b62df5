package models

import (
	"time"

	"github.com/google/uuid"
)

// Credit score bounds shared by loan eligibility and score adjustments.
const (
	MinCreditScore = 350
	MaxCreditScore = 850
)

// Student represents a virtual student owned by one teacher (tenant)
type Student struct {
	ID              uuid.UUID `json:"id" db:"id"`
	TenantID        uuid.UUID `json:"tenant_id" db:"tenant_id"`
	Name            string    `json:"name" db:"name"`
	CreditScore     int       `json:"credit_score" db:"credit_score"`
	WeeklyAllowance int64     `json:"weekly_allowance" db:"weekly_allowance"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`

	// Accounts is populated on detail reads, not by every query
	Accounts []Account `json:"accounts,omitempty" db:"-"`
}

// TotalAssets sums the balances of all loaded accounts
func (s *Student) TotalAssets() int64 {
	var total int64
	for _, a := range s.Accounts {
		total += a.Balance
	}
	return total
}
