package models

import (
	"time"

	"github.com/google/uuid"
)

// LoanStatus is the lifecycle state of a loan
type LoanStatus string

const (
	LoanActive    LoanStatus = "active"
	LoanCompleted LoanStatus = "completed"
	LoanDefaulted LoanStatus = "defaulted"
)

// Loan represents an amortized weekly loan. RemainingBalance only ever
// decreases; completed and defaulted are terminal.
type Loan struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	TenantID         uuid.UUID  `json:"tenant_id" db:"tenant_id"`
	StudentID        uuid.UUID  `json:"student_id" db:"student_id"`
	Principal        int64      `json:"principal" db:"principal"`
	AnnualRate       float64    `json:"annual_rate" db:"annual_rate"`
	DurationWeeks    int        `json:"duration_weeks" db:"duration_weeks"`
	WeeklyPayment    int64      `json:"weekly_payment" db:"weekly_payment"`
	RemainingBalance int64      `json:"remaining_balance" db:"remaining_balance"`
	RemainingWeeks   int        `json:"remaining_weeks" db:"remaining_weeks"`
	Status           LoanStatus `json:"status" db:"status"`
	NextPaymentDue   time.Time  `json:"next_payment_due" db:"next_payment_due"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// LoanPaymentType distinguishes scheduled from early repayments
type LoanPaymentType string

const (
	PaymentScheduled LoanPaymentType = "scheduled"
	PaymentEarly     LoanPaymentType = "early"
)

// LoanPayment is one repayment event, an append-only child of Loan
type LoanPayment struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	LoanID           uuid.UUID       `json:"loan_id" db:"loan_id"`
	WeekNumber       int             `json:"week_number" db:"week_number"`
	Amount           int64           `json:"amount" db:"amount"`
	InterestAmount   int64           `json:"interest_amount" db:"interest_amount"`
	PrincipalAmount  int64           `json:"principal_amount" db:"principal_amount"`
	RemainingBalance int64           `json:"remaining_balance" db:"remaining_balance"`
	PaymentType      LoanPaymentType `json:"payment_type" db:"payment_type"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

// RepayResult is returned by the repay operation
type RepayResult struct {
	Payment          *LoanPayment `json:"payment"`
	InterestAmount   int64        `json:"interest"`
	PrincipalAmount  int64        `json:"principal"`
	RemainingBalance int64        `json:"remaining_balance"`
	Completed        bool         `json:"completed"`
}

// CreditTier is one row of the credit-score to loan-terms policy table
type CreditTier struct {
	MinScore       int     `json:"min_score"`
	AnnualRate     float64 `json:"annual_rate"`
	MaxAmount      int64   `json:"max_amount"`
	MaxWeeks       int     `json:"max_weeks"`
	MaxActiveLoans int     `json:"max_active_loans"`
}

// LoanEvent is published to NATS on origination, completion and default
type LoanEvent struct {
	LoanID    uuid.UUID  `json:"loan_id"`
	TenantID  uuid.UUID  `json:"tenant_id"`
	StudentID uuid.UUID  `json:"student_id"`
	Status    LoanStatus `json:"status"`
	Amount    int64      `json:"amount"`
	Timestamp time.Time  `json:"timestamp"`
}
