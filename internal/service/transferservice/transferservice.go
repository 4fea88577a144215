package transferservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/ekuzmina/fundgo/internal/domain"
	"github.com/ekuzmina/fundgo/internal/pg"
)

//go:generate mockgen -source=transferservice.go -destination=transferservice_mock.go -package=transferservice

type FundRepo interface {
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Fund, error)
	Update(ctx context.Context, fund *domain.Fund) error
}
type UserRepo interface {
	GetByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	UpdateCash(ctx context.Context, id int, cash float64) error
}
type Auditor interface {
	RecordDonation(ctx context.Context, fund *domain.Fund, user *domain.User, amount float64) (*domain.Bill, error)
	RecordWithdrawal(ctx context.Context, fund *domain.Fund, user *domain.User, amount float64, reason string) (*domain.Bill, error)
}

// Events receives bills of committed transfers. Implementations must not
// fail the transfer; publishing is best effort.
type Events interface {
	PublishBill(ctx context.Context, bill *domain.Bill)
}

// Service runs the two money-moving protocols. Each call is one
// all-or-nothing transaction: rows are locked, rules checked against the
// locked snapshot, mutations applied and audited, then everything
// commits or nothing does.
type Service struct {
	txManager pg.TXManager
	fundRepo  FundRepo
	userRepo  UserRepo
	auditor   Auditor
	events    Events
	locker    rowLocker
}

func New(txManager pg.TXManager, fundRepo FundRepo, userRepo UserRepo, auditor Auditor, events Events) *Service {
	return &Service{
		txManager: txManager,
		fundRepo:  fundRepo,
		userRepo:  userRepo,
		auditor:   auditor,
		events:    events,
		locker:    rowLocker{fundRepo: fundRepo, userRepo: userRepo},
	}
}

// Donate moves amount from the donor's cash into the fund and appends
// the donation to the audit trail.
func (s *Service) Donate(ctx context.Context, userID, fundID int, amount float64) (*domain.Bill, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var bill *domain.Bill
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		fund, user, err := s.locker.lockFundAndUser(ctx, fundID, userID)
		if err != nil {
			return err
		}

		if user.Cash < amount {
			return domain.ErrInsufficientFunds
		}

		user.Cash -= amount
		fund.CurrentMoney += amount

		if err := s.userRepo.UpdateCash(ctx, user.ID, user.Cash); err != nil {
			return err
		}
		if err := s.fundRepo.Update(ctx, fund); err != nil {
			return err
		}

		bill, err = s.auditor.RecordDonation(ctx, fund, user, amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("donation accepted",
		zap.Int("userID", userID), zap.Int("fundID", fundID), zap.Float64("amount", amount))
	s.events.PublishBill(ctx, bill)
	return bill, nil
}

// Withdraw pays the whole raised total out to the fund owner once the
// goal is reached and marks the fund done. The raised total stays
// visible on the fund record; a second withdrawal is rejected.
func (s *Service) Withdraw(ctx context.Context, userID, fundID int, reason string) (*domain.Bill, error) {
	var bill *domain.Bill
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		fund, user, err := s.locker.lockFundAndUser(ctx, fundID, userID)
		if err != nil {
			return err
		}

		if fund.UserID != userID {
			return domain.ErrNotOwner
		}
		if fund.Done {
			return domain.ErrAlreadyWithdrawn
		}
		if fund.CurrentMoney < fund.TargetMoney {
			return domain.ErrGoalNotReached
		}

		total := fund.CurrentMoney
		fund.Done = true
		user.Cash += total

		if err := s.fundRepo.Update(ctx, fund); err != nil {
			return err
		}
		if err := s.userRepo.UpdateCash(ctx, user.ID, user.Cash); err != nil {
			return err
		}

		bill, err = s.auditor.RecordWithdrawal(ctx, fund, user, total, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("withdrawal accepted",
		zap.Int("userID", userID), zap.Int("fundID", fundID), zap.Float64("amount", bill.Amount))
	s.events.PublishBill(ctx, bill)
	return bill, nil
}
