package loan

import (
	"math"
	"time"
)

// DefaultGracePeriod is how long a loan may sit past its next payment due
// date before the overdue sweep marks it defaulted.
const DefaultGracePeriod = 21 * 24 * time.Hour

// DefaultCreditPenalty is applied to the credit score on loan default.
const DefaultCreditPenalty = -50

// WeeklyPayment computes the fixed installment for a standard amortized
// loan: P*r/(1-(1+r)^-n) with r the weekly rate, rounded to whole units.
func WeeklyPayment(principal int64, annualRate float64, weeks int) int64 {
	if weeks <= 0 {
		return principal
	}

	r := annualRate / 100 / 52
	if r == 0 {
		return int64(math.Ceil(float64(principal) / float64(weeks)))
	}

	payment := float64(principal) * r / (1 - math.Pow(1+r, -float64(weeks)))
	return int64(math.Round(payment))
}

// AccruedInterest is the interest due on the current remaining balance.
// Accruing on the remaining balance rather than the original principal
// gives the declining-interest schedule of an amortized loan.
func AccruedInterest(remaining int64, annualRate float64) int64 {
	return int64(math.Round(float64(remaining) * annualRate / 100 / 12))
}

// SplitPayment resolves a requested payment against a loan's remaining
// balance. The actual payment is capped at a full payoff (remaining balance
// plus accrued interest); interest comes out first and the rest retires
// principal. A payment too small to cover accrued interest is rejected,
// naming that interest as the minimum.
func SplitPayment(requested, remaining int64, annualRate float64) (actual, interest, principal int64, ok bool) {
	interest = AccruedInterest(remaining, annualRate)

	actual = requested
	if payoff := remaining + interest; actual > payoff {
		actual = payoff
	}

	principal = actual - interest
	if principal < 0 {
		return 0, interest, 0, false
	}
	return actual, interest, principal, true
}
