package fundservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ekuzmina/fundgo/internal/domain"
)

//go:generate mockgen -source=fundservice.go -destination=fundservice_mock.go -package=fundservice

type Repo interface {
	Save(ctx context.Context, fund *domain.Fund) error
	GetByID(ctx context.Context, id int) (*domain.Fund, error)
	ListOpen(ctx context.Context) ([]domain.Fund, error)
}
type DonationRepo interface {
	GetDonationsByFundID(ctx context.Context, fundID int) ([]domain.DonationEntry, error)
}

type Service struct {
	fundRepo     Repo
	donationRepo DonationRepo
}

func New(fundRepo Repo, donationRepo DonationRepo) *Service {
	return &Service{
		fundRepo:     fundRepo,
		donationRepo: donationRepo,
	}
}

func (s *Service) CreateFund(ctx context.Context, userID int, title, description string, target float64, deadline time.Time) (*domain.Fund, error) {
	if target <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	fund := &domain.Fund{
		UserID:      userID,
		Title:       title,
		Description: description,
		TargetMoney: target,
		Deadline:    deadline,
	}
	if err := s.fundRepo.Save(ctx, fund); err != nil {
		zap.L().Error("can't create fund", zap.Error(err))
		return nil, err
	}
	return fund, nil
}

func (s *Service) ListOpen(ctx context.Context) ([]domain.Fund, error) {
	funds, err := s.fundRepo.ListOpen(ctx)
	if err != nil {
		zap.L().Error("can't list funds", zap.Error(err))
		return nil, err
	}
	return funds, nil
}

func (s *Service) GetFund(ctx context.Context, id int) (*domain.Fund, []domain.DonationEntry, error) {
	fund, err := s.fundRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get fund", zap.Error(err))
		return nil, nil, err
	}
	if fund == nil {
		return nil, nil, domain.ErrFundNotFound
	}

	donations, err := s.donationRepo.GetDonationsByFundID(ctx, id)
	if err != nil {
		zap.L().Error("can't get fund donations", zap.Error(err))
		return nil, nil, err
	}
	return fund, donations, nil
}
