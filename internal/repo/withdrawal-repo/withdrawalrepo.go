package withdrawalrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/ekuzmina/fundgo/internal/domain"
	"github.com/ekuzmina/fundgo/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (fund_id, user_id, bill_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, withdrawal.FundID, withdrawal.UserID, withdrawal.BillID).Scan(&withdrawal.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.WithdrawalEntry, error) {
	query := `
        SELECT w.id, w.fund_id, w.user_id, w.bill_id, b.amount, b.reason, b.created_at
        FROM withdrawals w
        JOIN bills b ON b.id = w.bill_id
        WHERE w.user_id = $1
        ORDER BY b.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalEntry
	for rows.Next() {
		var wd domain.WithdrawalEntry
		err := rows.Scan(&wd.ID, &wd.FundID, &wd.UserID, &wd.BillID, &wd.Amount, &wd.Reason, &wd.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, rows.Err()
}
