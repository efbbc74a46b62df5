package constants

// NATS Subjects
const (
	// Ledger Service
	SubjectTransactionRecorded = "ledger.transaction.recorded"

	// Market Service
	SubjectSeatTraded = "market.seat.traded"

	// Loan Service
	SubjectLoanOriginated = "loan.originated"
	SubjectLoanCompleted  = "loan.completed"
	SubjectLoanDefaulted  = "loan.defaulted"

	// Reward Service
	SubjectRewardPaid         = "reward.paid"
	SubjectQuizDailyGenerated = "quiz.daily.generated"
)
