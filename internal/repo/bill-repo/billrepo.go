package billrepo

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

// CreateBill appends a bill. The timestamp is taken by the database at
// insert time, so it reflects the moment of append rather than the
// moment the protocol started.
func (r *Repository) CreateBill(ctx context.Context, bill *domain.Bill) (*domain.Bill, error) {
	query := `
		INSERT INTO bills (user_id, amount, kind, reason, money_after)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, bill.UserID, bill.Amount, bill.Kind, bill.Reason, bill.MoneyAfter).
		Scan(&bill.ID, &bill.CreatedAt)
	if err != nil {
		zap.L().Error("can't save bill", zap.Error(err))
		return nil, err
	}
	return bill, nil
}

func (r *Repository) GetBillsByUserID(ctx context.Context, userID int) ([]domain.Bill, error) {
	query := `
        SELECT id, user_id, amount, kind, reason, money_after, created_at
        FROM bills
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch bills", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bills []domain.Bill
	for rows.Next() {
		var bill domain.Bill
		err := rows.Scan(&bill.ID, &bill.UserID, &bill.Amount, &bill.Kind, &bill.Reason, &bill.MoneyAfter, &bill.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan bill row", zap.Error(err))
			return nil, err
		}
		bills = append(bills, bill)
	}

	return bills, rows.Err()
}
