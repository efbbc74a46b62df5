package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountType identifies one of the three accounts every student holds
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountInvestment AccountType = "investment"
)

// AccountTypes lists every account opened at student creation
var AccountTypes = []AccountType{AccountChecking, AccountSavings, AccountInvestment}

// Valid reports whether t is a known account type
func (t AccountType) Valid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountInvestment:
		return true
	}
	return false
}

// Account represents one (student, type) balance row.
// Balances are int64 base units and never go negative.
type Account struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	StudentID    uuid.UUID   `json:"student_id" db:"student_id"`
	Type         AccountType `json:"type" db:"type"`
	Balance      int64       `json:"balance" db:"balance"`
	InterestRate float64     `json:"interest_rate" db:"interest_rate"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}
