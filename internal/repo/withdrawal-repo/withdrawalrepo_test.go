package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ekuzmina/fundgo/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateWithdrawal(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates withdrawal",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(1)
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO withdrawals (fund_id, user_id, bill_id)
					VALUES ($1, $2, $3)
					RETURNING id`)).
					WithArgs(2, 9, 6).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO withdrawals (fund_id, user_id, bill_id)
					VALUES ($1, $2, $3)
					RETURNING id`)).
					WithArgs(2, 9, 6).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			withdrawal, err := repo.CreateWithdrawal(context.Background(), &domain.Withdrawal{FundID: 2, UserID: 9, BillID: 6})

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, withdrawal)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, withdrawal.ID)
			}
		})
	}
}

func TestRepository_GetWithdrawalsByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns withdrawals with bill details",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "fund_id", "user_id", "bill_id", "amount", "reason", "created_at"}).
					AddRow(1, 2, 9, 6, 120.0, "New laptop", now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT w.id, w.fund_id, w.user_id, w.bill_id, b.amount, b.reason, b.created_at FROM withdrawals w JOIN bills b ON b.id = w.bill_id WHERE w.user_id = $1 ORDER BY b.created_at DESC`)).
					WithArgs(9).
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT w.id, w.fund_id, w.user_id, w.bill_id, b.amount, b.reason, b.created_at FROM withdrawals w JOIN bills b ON b.id = w.bill_id WHERE w.user_id = $1 ORDER BY b.created_at DESC`)).
					WithArgs(9).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			withdrawals, err := repo.GetWithdrawalsByUserID(context.Background(), 9)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, withdrawals)
			} else {
				assert.NoError(t, err)
				assert.Len(t, withdrawals, tt.count)
				assert.Equal(t, "New laptop", withdrawals[0].Reason)
			}
		})
	}
}
