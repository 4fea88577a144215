package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ekuzmina/fundgo/internal/pg"
	billrepo "github.com/ekuzmina/fundgo/internal/repo/bill-repo"
	donationrepo "github.com/ekuzmina/fundgo/internal/repo/donation-repo"
	fundrepo "github.com/ekuzmina/fundgo/internal/repo/fund-repo"
	userrepo "github.com/ekuzmina/fundgo/internal/repo/user-repo"
	withdrawalrepo "github.com/ekuzmina/fundgo/internal/repo/withdrawal-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.FundRepo)
	assert.NotNil(t, repo.BillRepo)
	assert.NotNil(t, repo.DonationRepo)
	assert.NotNil(t, repo.WithdrawalRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &fundrepo.Repository{}, repo.FundRepo)
	assert.IsType(t, &billrepo.Repository{}, repo.BillRepo)
	assert.IsType(t, &donationrepo.Repository{}, repo.DonationRepo)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.WithdrawalRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
