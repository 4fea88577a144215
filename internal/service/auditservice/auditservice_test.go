package auditservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ekuzmina/fundgo/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockBillRepo, *MockDonationRepo, *MockWithdrawalRepo) {
	ctrl := gomock.NewController(t)
	billRepo := NewMockBillRepo(ctrl)
	donationRepo := NewMockDonationRepo(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	service := New(billRepo, donationRepo, withdrawalRepo)
	defer ctrl.Finish()
	return service, billRepo, donationRepo, withdrawalRepo
}

func TestRecordDonation(t *testing.T) {
	fund := &domain.Fund{ID: 2, UserID: 9}
	user := &domain.User{ID: 1, Cash: 70}

	tests := []struct {
		name        string
		prepareMock func(billRepo *MockBillRepo, donationRepo *MockDonationRepo)
		expectedErr error
	}{
		{
			name: "Appends one bill and one donation record",
			prepareMock: func(billRepo *MockBillRepo, donationRepo *MockDonationRepo) {
				billRepo.EXPECT().
					CreateBill(gomock.Any(), &domain.Bill{UserID: 1, Amount: 30, Kind: domain.BillKindDonation, Reason: "Donation", MoneyAfter: 70}).
					Return(&domain.Bill{ID: 5, UserID: 1, Amount: 30, Kind: domain.BillKindDonation, Reason: "Donation", MoneyAfter: 70}, nil)
				donationRepo.EXPECT().
					CreateDonation(gomock.Any(), &domain.Donation{FundID: 2, UserID: 1, BillID: 5}).
					Return(&domain.Donation{ID: 1, FundID: 2, UserID: 1, BillID: 5}, nil)
			},
		},
		{
			name: "Bill failure stops the join record",
			prepareMock: func(billRepo *MockBillRepo, donationRepo *MockDonationRepo) {
				billRepo.EXPECT().CreateBill(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
		{
			name: "Join record failure propagates",
			prepareMock: func(billRepo *MockBillRepo, donationRepo *MockDonationRepo) {
				billRepo.EXPECT().CreateBill(gomock.Any(), gomock.Any()).
					Return(&domain.Bill{ID: 5, UserID: 1, Amount: 30, Kind: domain.BillKindDonation, Reason: "Donation", MoneyAfter: 70}, nil)
				donationRepo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, billRepo, donationRepo, _ := NewMock(t)
			tt.prepareMock(billRepo, donationRepo)

			bill, err := service.RecordDonation(context.Background(), fund, user, 30)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Nil(t, bill)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 70.0, bill.MoneyAfter)
				assert.Equal(t, domain.BillKindDonation, bill.Kind)
			}
		})
	}
}

func TestRecordWithdrawal(t *testing.T) {
	service, billRepo, _, withdrawalRepo := NewMock(t)

	fund := &domain.Fund{ID: 2, UserID: 9, CurrentMoney: 120, Done: true}
	user := &domain.User{ID: 9, Cash: 170}

	billRepo.EXPECT().
		CreateBill(gomock.Any(), &domain.Bill{UserID: 9, Amount: 120, Kind: domain.BillKindWithdrawal, Reason: "Campaign complete", MoneyAfter: 170}).
		Return(&domain.Bill{ID: 7, UserID: 9, Amount: 120, Kind: domain.BillKindWithdrawal, Reason: "Campaign complete", MoneyAfter: 170}, nil)
	withdrawalRepo.EXPECT().
		CreateWithdrawal(gomock.Any(), &domain.Withdrawal{FundID: 2, UserID: 9, BillID: 7}).
		Return(&domain.Withdrawal{ID: 1, FundID: 2, UserID: 9, BillID: 7}, nil)

	bill, err := service.RecordWithdrawal(context.Background(), fund, user, 120, "Campaign complete")
	assert.NoError(t, err)
	assert.Equal(t, 170.0, bill.MoneyAfter)
	assert.Equal(t, domain.BillKindWithdrawal, bill.Kind)
}

func TestGetBills(t *testing.T) {
	service, billRepo, _, _ := NewMock(t)

	expected := []domain.Bill{
		{ID: 2, UserID: 1, Amount: 30, Kind: domain.BillKindDonation, MoneyAfter: 40, CreatedAt: time.Now()},
		{ID: 1, UserID: 1, Amount: 30, Kind: domain.BillKindDonation, MoneyAfter: 70},
	}
	billRepo.EXPECT().GetBillsByUserID(gomock.Any(), 1).Return(expected, nil)

	bills, err := service.GetBills(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, bills)
}

func TestGetWithdrawals(t *testing.T) {
	service, _, _, withdrawalRepo := NewMock(t)

	expected := []domain.WithdrawalEntry{
		{ID: 1, FundID: 2, UserID: 9, BillID: 7, Amount: 120, Reason: "Campaign complete"},
	}
	withdrawalRepo.EXPECT().GetWithdrawalsByUserID(gomock.Any(), 9).Return(expected, nil)

	withdrawals, err := service.GetWithdrawals(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, expected, withdrawals)
}
