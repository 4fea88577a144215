package auditservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/ekuzmina/fundgo/internal/domain"
)

//go:generate mockgen -source=auditservice.go -destination=auditservice_mock.go -package=auditservice

type BillRepo interface {
	CreateBill(ctx context.Context, bill *domain.Bill) (*domain.Bill, error)
	GetBillsByUserID(ctx context.Context, userID int) ([]domain.Bill, error)
}
type DonationRepo interface {
	CreateDonation(ctx context.Context, donation *domain.Donation) (*domain.Donation, error)
	GetDonationsByFundID(ctx context.Context, fundID int) ([]domain.DonationEntry, error)
}
type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.WithdrawalEntry, error)
}

// Service appends the audit trail of completed transfers: one bill plus
// one join record per transfer, written inside the caller's transaction
// and never touched again.
type Service struct {
	billRepo       BillRepo
	donationRepo   DonationRepo
	withdrawalRepo WithdrawalRepo
}

func New(billRepo BillRepo, donationRepo DonationRepo, withdrawalRepo WithdrawalRepo) *Service {
	return &Service{
		billRepo:       billRepo,
		donationRepo:   donationRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

// RecordDonation assumes user.Cash already reflects the debit.
func (s *Service) RecordDonation(ctx context.Context, fund *domain.Fund, user *domain.User, amount float64) (*domain.Bill, error) {
	bill := &domain.Bill{
		UserID:     user.ID,
		Amount:     amount,
		Kind:       domain.BillKindDonation,
		Reason:     "Donation",
		MoneyAfter: user.Cash,
	}
	bill, err := s.billRepo.CreateBill(ctx, bill)
	if err != nil {
		zap.L().Error("can't record donation bill", zap.Error(err))
		return nil, err
	}

	donation := &domain.Donation{
		FundID: fund.ID,
		UserID: user.ID,
		BillID: bill.ID,
	}
	if _, err := s.donationRepo.CreateDonation(ctx, donation); err != nil {
		zap.L().Error("can't record donation", zap.Error(err))
		return nil, err
	}
	return bill, nil
}

// RecordWithdrawal assumes user.Cash already reflects the credit.
func (s *Service) RecordWithdrawal(ctx context.Context, fund *domain.Fund, user *domain.User, amount float64, reason string) (*domain.Bill, error) {
	bill := &domain.Bill{
		UserID:     user.ID,
		Amount:     amount,
		Kind:       domain.BillKindWithdrawal,
		Reason:     reason,
		MoneyAfter: user.Cash,
	}
	bill, err := s.billRepo.CreateBill(ctx, bill)
	if err != nil {
		zap.L().Error("can't record withdrawal bill", zap.Error(err))
		return nil, err
	}

	withdrawal := &domain.Withdrawal{
		FundID: fund.ID,
		UserID: user.ID,
		BillID: bill.ID,
	}
	if _, err := s.withdrawalRepo.CreateWithdrawal(ctx, withdrawal); err != nil {
		zap.L().Error("can't record withdrawal", zap.Error(err))
		return nil, err
	}
	return bill, nil
}

func (s *Service) GetBills(ctx context.Context, userID int) ([]domain.Bill, error) {
	bills, err := s.billRepo.GetBillsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch bills", zap.Error(err))
		return nil, err
	}
	return bills, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.WithdrawalEntry, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
