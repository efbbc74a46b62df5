package loan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeeklyPayment_AmortizedInstallment(t *testing.T) {
	tests := []struct {
		name       string
		principal  int64
		annualRate float64
		weeks      int
		want       int64
	}{
		{"mid tier sixteen weeks", 100000, 9, 16, 6342},
		{"top tier maximum", 500000, 5, 24, 21085},
		{"bottom tier short loan", 50000, 20, 8, 6359},
		{"third tier twelve weeks", 100000, 14, 12, 8480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeeklyPayment(tt.principal, tt.annualRate, tt.weeks))
		})
	}
}

func TestWeeklyPayment_ZeroRateSplitsEvenly(t *testing.T) {
	assert.Equal(t, int64(12500), WeeklyPayment(100000, 0, 8))
	// remainder rounds up so the last payment never undershoots
	assert.Equal(t, int64(12501), WeeklyPayment(100001, 0, 8))
}

func TestWeeklyPayment_NonPositiveWeeksIsWholePrincipal(t *testing.T) {
	assert.Equal(t, int64(100000), WeeklyPayment(100000, 9, 0))
}

func TestAccruedInterest_MonthlyOnRemainingBalance(t *testing.T) {
	assert.Equal(t, int64(750), AccruedInterest(100000, 9))
	assert.Equal(t, int64(583), AccruedInterest(50000, 14))
	assert.Equal(t, int64(514), AccruedInterest(123456, 5))
	assert.Equal(t, int64(0), AccruedInterest(100000, 0))
}

func TestSplitPayment_InterestComesOutFirst(t *testing.T) {
	actual, interest, principal, ok := SplitPayment(6342, 100000, 9)

	assert.True(t, ok)
	assert.Equal(t, int64(6342), actual)
	assert.Equal(t, int64(750), interest)
	assert.Equal(t, int64(5592), principal)
}

func TestSplitPayment_BelowInterestIsRejected(t *testing.T) {
	actual, interest, principal, ok := SplitPayment(500, 100000, 9)

	assert.False(t, ok)
	assert.Equal(t, int64(0), actual)
	assert.Equal(t, int64(750), interest)
	assert.Equal(t, int64(0), principal)
}

func TestSplitPayment_OverpaymentCappedAtFullPayoff(t *testing.T) {
	actual, interest, principal, ok := SplitPayment(999999, 100000, 9)

	assert.True(t, ok)
	assert.Equal(t, int64(100750), actual)
	assert.Equal(t, int64(750), interest)
	assert.Equal(t, int64(100000), principal)
}

func TestSplitPayment_ExactInterestRetiresNoPrincipal(t *testing.T) {
	actual, interest, principal, ok := SplitPayment(750, 100000, 9)

	assert.True(t, ok)
	assert.Equal(t, int64(750), actual)
	assert.Equal(t, int64(750), interest)
	assert.Equal(t, int64(0), principal)
}

func TestLookupCreditTier_BandsAndIneligibility(t *testing.T) {
	tier, ok := LookupCreditTier(800)
	assert.True(t, ok)
	assert.Equal(t, float64(5), tier.AnnualRate)
	assert.Equal(t, int64(500000), tier.MaxAmount)

	tier, ok = LookupCreditTier(650)
	assert.True(t, ok)
	assert.Equal(t, float64(9), tier.AnnualRate)

	tier, ok = LookupCreditTier(549)
	assert.True(t, ok)
	assert.Equal(t, float64(20), tier.AnnualRate)
	assert.Equal(t, 1, tier.MaxActiveLoans)

	_, ok = LookupCreditTier(449)
	assert.False(t, ok)
}
