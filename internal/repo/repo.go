package repo

import (
	"github.com/ekuzmina/fundgo/internal/pg"
	billrepo "github.com/ekuzmina/fundgo/internal/repo/bill-repo"
	donationrepo "github.com/ekuzmina/fundgo/internal/repo/donation-repo"
	fundrepo "github.com/ekuzmina/fundgo/internal/repo/fund-repo"
	userrepo "github.com/ekuzmina/fundgo/internal/repo/user-repo"
	withdrawalrepo "github.com/ekuzmina/fundgo/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	FundRepo       *fundrepo.Repository
	BillRepo       *billrepo.Repository
	DonationRepo   *donationrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		FundRepo:       fundrepo.New(conn, txManager),
		BillRepo:       billrepo.New(conn),
		DonationRepo:   donationrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
	}
}
