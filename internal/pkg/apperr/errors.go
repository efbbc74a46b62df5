// Package apperr defines the error taxonomy shared by all services.
// Handlers map these to HTTP statuses; usecases and repositories return them
// wrapped with fmt.Errorf and %w so errors.As works across layers.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error
type Kind string

const (
	KindValidation          Kind = "validation"
	KindInsufficientFunds   Kind = "insufficient_funds"
	KindNotFound            Kind = "not_found"
	KindConflict            Kind = "conflict"
	KindPaymentBelowInterest Kind = "payment_below_interest"
	KindDependencyFailure   Kind = "dependency_failure"
)

// Error is an application error with enough detail to render a precise message
type Error struct {
	Kind    Kind
	Message string

	// Required and Available are set for insufficient-funds errors,
	// Minimum for payment-below-interest errors.
	Required  int64
	Available int64
	Minimum   int64
}

func (e *Error) Error() string {
	return e.Message
}

// Validation reports bad input shape or range
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// InsufficientFunds reports a balance too small for a debit
func InsufficientFunds(required, available int64) *Error {
	return &Error{
		Kind:      KindInsufficientFunds,
		Message:   fmt.Sprintf("insufficient funds: required %d, available %d", required, available),
		Required:  required,
		Available: available,
	}
}

// NotFound reports a missing student, account, seat, loan or quiz
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a business-rule collision: seat already owned, loan
// already completed, quiz already submitted
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// PaymentBelowInterest reports a loan payment too small to cover accrued
// interest, naming the minimum acceptable payment
func PaymentBelowInterest(minimum int64) *Error {
	return &Error{
		Kind:    KindPaymentBelowInterest,
		Message: fmt.Sprintf("payment does not cover accrued interest: minimum payment is %d", minimum),
		Minimum: minimum,
	}
}

// DependencyFailure reports a data-setup inconsistency such as a missing
// entity row; surfaced as a server error
func DependencyFailure(format string, args ...interface{}) *Error {
	return &Error{Kind: KindDependencyFailure, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err if it is (or wraps) an apperr.Error
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return "", false
}

// Is reports whether err is an apperr.Error of the given kind
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// As unwraps err into an *Error when possible
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
