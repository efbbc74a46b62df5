package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/kelasbank/internal/pkg/apperr"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/services/loan/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUC(t *testing.T) (*gomock.Controller, *mocks.MockLoanRepo, *mocks.MockLoanGW, *loanUC) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockLoanRepo(ctrl)
	mockGW := mocks.NewMockLoanGW(ctrl)

	uc, err := NewLoanUC(&models.Config{}, mockRepo, mockGW)
	require.NoError(t, err)
	return ctrl, mockRepo, mockGW, uc.(*loanUC)
}

func TestOriginate_PricesFromCreditTier(t *testing.T) {
	ctrl, mockRepo, mockGW, uc := newTestUC(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	studentID := uuid.New()
	cmd := models.OriginateLoanCmd{
		TenantID:  tenantID,
		StudentID: studentID,
		Amount:    100000,
		Weeks:     16,
	}

	mockRepo.EXPECT().GetStudentCreditScore(gomock.Any(), tenantID, studentID).Return(700, nil)
	mockRepo.EXPECT().CountActiveLoans(gomock.Any(), tenantID, studentID).Return(0, nil)
	mockRepo.EXPECT().
		Originate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *models.Loan) error {
			assert.Equal(t, float64(9), l.AnnualRate)
			assert.Equal(t, int64(6342), l.WeeklyPayment)
			assert.Equal(t, int64(100000), l.RemainingBalance)
			assert.Equal(t, 16, l.RemainingWeeks)
			assert.Equal(t, models.LoanActive, l.Status)
			assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), l.NextPaymentDue, time.Minute)
			return nil
		})
	mockGW.EXPECT().PublishLoanOriginated(gomock.Any(), gomock.Any()).Return(nil)

	l, err := uc.Originate(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), l.Principal)
}

func TestOriginate_ScoreBelowAllTiers(t *testing.T) {
	ctrl, mockRepo, _, uc := newTestUC(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	studentID := uuid.New()

	mockRepo.EXPECT().GetStudentCreditScore(gomock.Any(), tenantID, studentID).Return(420, nil)

	_, err := uc.Originate(context.Background(), models.OriginateLoanCmd{
		TenantID:  tenantID,
		StudentID: studentID,
		Amount:    10000,
		Weeks:     4,
	})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestOriginate_AmountExceedsTierMaximum(t *testing.T) {
	ctrl, mockRepo, _, uc := newTestUC(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	studentID := uuid.New()

	// score 600 lands in the 550 band with a 100000 cap
	mockRepo.EXPECT().GetStudentCreditScore(gomock.Any(), tenantID, studentID).Return(600, nil)

	_, err := uc.Originate(context.Background(), models.OriginateLoanCmd{
		TenantID:  tenantID,
		StudentID: studentID,
		Amount:    150000,
		Weeks:     8,
	})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestOriginate_DurationExceedsTierMaximum(t *testing.T) {
	ctrl, mockRepo, _, uc := newTestUC(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	studentID := uuid.New()

	mockRepo.EXPECT().GetStudentCreditScore(gomock.Any(), tenantID, studentID).Return(700, nil)

	_, err := uc.Originate(context.Background(), models.OriginateLoanCmd{
		TenantID:  tenantID,
		StudentID: studentID,
		Amount:    50000,
		Weeks:     20,
	})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestOriginate_ActiveLoanLimitReached(t *testing.T) {
	ctrl, mockRepo, _, uc := newTestUC(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	studentID := uuid.New()

	mockRepo.EXPECT().GetStudentCreditScore(gomock.Any(), tenantID, studentID).Return(700, nil)
	mockRepo.EXPECT().CountActiveLoans(gomock.Any(), tenantID, studentID).Return(2, nil)

	_, err := uc.Originate(context.Background(), models.OriginateLoanCmd{
		TenantID:  tenantID,
		StudentID: studentID,
		Amount:    50000,
		Weeks:     8,
	})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestRepay_OngoingLoanPublishesNothing(t *testing.T) {
	ctrl, mockRepo, _, uc := newTestUC(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	loanID := uuid.New()

	mockRepo.EXPECT().
		Repay(gomock.Any(), tenantID, loanID, int64(6342)).
		Return(&models.RepayResult{
			Payment:          &models.LoanPayment{Amount: 6342},
			InterestAmount:   750,
			PrincipalAmount:  5592,
			RemainingBalance: 94408,
		}, nil)

	result, err := uc.Repay(context.Background(), models.RepayLoanCmd{
		TenantID: tenantID,
		LoanID:   loanID,
		Amount:   6342,
	})
	require.NoError(t, err)
	assert.False(t, result.Completed)
	assert.Equal(t, int64(94408), result.RemainingBalance)
}

func TestRepay_CompletionPublishesEvent(t *testing.T) {
	ctrl, mockRepo, mockGW, uc := newTestUC(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	loanID := uuid.New()
	studentID := uuid.New()

	mockRepo.EXPECT().
		Repay(gomock.Any(), tenantID, loanID, int64(999999)).
		Return(&models.RepayResult{
			Payment:   &models.LoanPayment{Amount: 100750},
			Completed: true,
		}, nil)
	mockRepo.EXPECT().
		GetLoan(gomock.Any(), tenantID, loanID).
		Return(&models.Loan{
			ID:        loanID,
			TenantID:  tenantID,
			StudentID: studentID,
			Status:    models.LoanCompleted,
		}, nil)
	mockGW.EXPECT().
		PublishLoanCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.LoanEvent) error {
			assert.Equal(t, loanID, event.LoanID)
			assert.Equal(t, models.LoanCompleted, event.Status)
			return nil
		})

	result, err := uc.Repay(context.Background(), models.RepayLoanCmd{
		TenantID: tenantID,
		LoanID:   loanID,
		Amount:   999999,
	})
	require.NoError(t, err)
	assert.True(t, result.Completed)
}

func TestRepay_BelowInterestPropagated(t *testing.T) {
	ctrl, mockRepo, _, uc := newTestUC(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	loanID := uuid.New()

	mockRepo.EXPECT().
		Repay(gomock.Any(), tenantID, loanID, int64(100)).
		Return(nil, apperr.PaymentBelowInterest(750))

	_, err := uc.Repay(context.Background(), models.RepayLoanCmd{
		TenantID: tenantID,
		LoanID:   loanID,
		Amount:   100,
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindPaymentBelowInterest))

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, int64(750), appErr.Minimum)
}

func TestSweepOverdue_PublishesDefaultPerLoan(t *testing.T) {
	ctrl, mockRepo, mockGW, uc := newTestUC(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	defaulted := []models.Loan{
		{ID: uuid.New(), TenantID: tenantID, StudentID: uuid.New(), Status: models.LoanDefaulted, RemainingBalance: 40000},
		{ID: uuid.New(), TenantID: tenantID, StudentID: uuid.New(), Status: models.LoanDefaulted, RemainingBalance: 12000},
	}

	mockRepo.EXPECT().
		SweepOverdue(gomock.Any(), tenantID, gomock.Any(), -50).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, cutoff time.Time, _ int) ([]models.Loan, error) {
			assert.WithinDuration(t, time.Now().Add(-21*24*time.Hour), cutoff, time.Minute)
			return defaulted, nil
		})
	mockGW.EXPECT().PublishLoanDefaulted(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	swept, err := uc.SweepOverdue(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Len(t, swept, 2)
}

func TestSweepOverdue_NothingOverdueIsQuiet(t *testing.T) {
	ctrl, mockRepo, _, uc := newTestUC(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	mockRepo.EXPECT().
		SweepOverdue(gomock.Any(), tenantID, gomock.Any(), -50).
		Return([]models.Loan{}, nil)

	swept, err := uc.SweepOverdue(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Empty(t, swept)
}
