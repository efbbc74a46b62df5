package models

import (
	"github.com/google/uuid"
)

// Command objects are the typed request bodies validated once at the HTTP
// boundary before they reach a usecase. TenantID is never bound from the
// body; handlers fill it from the authenticated principal.

// TransferCmd moves funds between two balance holders
type TransferCmd struct {
	TenantID uuid.UUID `json:"-"`
	From     PartyRef  `json:"from" validate:"required"`
	To       PartyRef  `json:"to" validate:"required"`
	Amount   int64     `json:"amount" validate:"required,gt=0"`
	Note     string    `json:"note" validate:"max=255"`
}

// TransferRecipient is one leg of a multi-transfer fan-out
type TransferRecipient struct {
	To     PartyRef `json:"to" validate:"required"`
	Amount int64    `json:"amount" validate:"required,gt=0"`
}

// MultiTransferCmd sends from one source to many recipients, best-effort
type MultiTransferCmd struct {
	TenantID   uuid.UUID           `json:"-"`
	From       PartyRef            `json:"from" validate:"required"`
	Recipients []TransferRecipient `json:"recipients" validate:"required,min=1,dive"`
	Note       string              `json:"note" validate:"max=255"`
}

// TaxCollectCmd levies a per-student amount into the government entity.
// An empty PayerIDs list means every student in the tenant.
type TaxCollectCmd struct {
	TenantID uuid.UUID   `json:"-"`
	PayerIDs []uuid.UUID `json:"payer_ids"`
	Amount   int64       `json:"amount" validate:"gte=0"`
	Note     string      `json:"note" validate:"max=255"`
}

// AllowanceCmd credits selected students' checking accounts from the
// government entity. Amount 0 means each student's configured weekly
// allowance; an empty StudentIDs list means every student.
type AllowanceCmd struct {
	TenantID   uuid.UUID   `json:"-"`
	StudentIDs []uuid.UUID `json:"student_ids"`
	Amount     int64       `json:"amount" validate:"gte=0"`
	Note       string      `json:"note" validate:"max=255"`
}

// CreateStudentCmd registers a new student with its three accounts
type CreateStudentCmd struct {
	TenantID        uuid.UUID `json:"-"`
	Name            string    `json:"name" validate:"required,max=100"`
	WeeklyAllowance int64     `json:"weekly_allowance" validate:"gte=0"`
	InitialBalance  int64     `json:"initial_balance" validate:"gte=0"`
}

// AdjustCreditCmd applies an explicit teacher adjustment to a credit score
type AdjustCreditCmd struct {
	TenantID  uuid.UUID `json:"-"`
	StudentID uuid.UUID `json:"-"`
	Delta     int       `json:"delta" validate:"required"`
	Reason    string    `json:"reason" validate:"max=255"`
}

// BuySeatCmd purchases a seat at the current market price
type BuySeatCmd struct {
	TenantID   uuid.UUID `json:"-"`
	SeatNumber int       `json:"-"`
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
}

// SellSeatCmd sells an owned seat back at a freshly computed price
type SellSeatCmd struct {
	TenantID   uuid.UUID `json:"-"`
	SeatNumber int       `json:"-"`
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
}

// RecomputePriceCmd recomputes the tenant seat price, optionally with a
// manual student-count override
type RecomputePriceCmd struct {
	TenantID    uuid.UUID `json:"-"`
	ManualCount *int      `json:"manual_count,omitempty" validate:"omitempty,gt=0"`
}

// OriginateLoanCmd opens a new loan for a student
type OriginateLoanCmd struct {
	TenantID  uuid.UUID `json:"-"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Amount    int64     `json:"amount" validate:"required,gt=0"`
	Weeks     int       `json:"weeks" validate:"required,gt=0"`
}

// RepayLoanCmd applies a payment to an active loan
type RepayLoanCmd struct {
	TenantID uuid.UUID `json:"-"`
	LoanID   uuid.UUID `json:"-"`
	Amount   int64     `json:"amount" validate:"required,gt=0"`
}

// SubmitQuizCmd submits a student's answers to a daily quiz
type SubmitQuizCmd struct {
	TenantID  uuid.UUID `json:"-"`
	QuizID    uuid.UUID `json:"-"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Answers   []string  `json:"answers" validate:"required"`
}

// AllowanceGrant is one resolved allowance credit
type AllowanceGrant struct {
	StudentID uuid.UUID `json:"student_id"`
	Amount    int64     `json:"amount"`
}

// FanOutResult summarizes a tax collection or allowance distribution
type FanOutResult struct {
	Count        int           `json:"count"`
	TotalAmount  int64         `json:"total_amount"`
	Transactions []Transaction `json:"transactions,omitempty"`
}
