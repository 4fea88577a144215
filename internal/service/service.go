package service

import (
	"github.com/ekuzmina/fundgo/internal/pg"
	"github.com/ekuzmina/fundgo/internal/repo"
	"github.com/ekuzmina/fundgo/internal/service/auditservice"
	"github.com/ekuzmina/fundgo/internal/service/authservice"
	"github.com/ekuzmina/fundgo/internal/service/fundservice"
	"github.com/ekuzmina/fundgo/internal/service/transferservice"
	"github.com/ekuzmina/fundgo/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	FundService     *fundservice.Service
	AuditService    *auditservice.Service
	TransferService *transferservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, jwtService auth.JWTServiceInterface, events transferservice.Events) *Services {
	auditService := auditservice.New(repo.BillRepo, repo.DonationRepo, repo.WithdrawalRepo)
	transferService := transferservice.New(txManager, repo.FundRepo, repo.UserRepo, auditService, events)
	fundService := fundservice.New(repo.FundRepo, repo.DonationRepo)
	authService := authservice.New(repo.UserRepo, &auth.HashService{}, jwtService)

	return &Services{
		AuthService:     authService,
		FundService:     fundService,
		AuditService:    auditService,
		TransferService: transferService,
	}
}
