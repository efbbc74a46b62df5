package loan

import "github.com/piresc/kelasbank/internal/pkg/models"

// creditTiers maps credit-score bands to loan terms, best band first.
// Scores below the last band are ineligible for credit.
var creditTiers = []models.CreditTier{
	{MinScore: 750, AnnualRate: 5, MaxAmount: 500000, MaxWeeks: 24, MaxActiveLoans: 3},
	{MinScore: 650, AnnualRate: 9, MaxAmount: 250000, MaxWeeks: 16, MaxActiveLoans: 2},
	{MinScore: 550, AnnualRate: 14, MaxAmount: 100000, MaxWeeks: 12, MaxActiveLoans: 1},
	{MinScore: 450, AnnualRate: 20, MaxAmount: 50000, MaxWeeks: 8, MaxActiveLoans: 1},
}

// LookupCreditTier returns the loan terms a credit score qualifies for
func LookupCreditTier(score int) (models.CreditTier, bool) {
	for _, tier := range creditTiers {
		if score >= tier.MinScore {
			return tier, true
		}
	}
	return models.CreditTier{}, false
}
