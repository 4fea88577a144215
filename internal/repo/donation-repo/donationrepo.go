package donationrepo

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

func (r *Repository) CreateDonation(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	query := `
		INSERT INTO donations (fund_id, user_id, bill_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, donation.FundID, donation.UserID, donation.BillID).Scan(&donation.ID)
	if err != nil {
		zap.L().Error("can't save donation", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) GetDonationsByFundID(ctx context.Context, fundID int) ([]domain.DonationEntry, error) {
	query := `
        SELECT d.id, d.fund_id, d.user_id, d.bill_id, b.amount, b.created_at
        FROM donations d
        JOIN bills b ON b.id = d.bill_id
        WHERE d.fund_id = $1
        ORDER BY b.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, fundID)
	if err != nil {
		zap.L().Error("failed to fetch donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.DonationEntry
	for rows.Next() {
		var d domain.DonationEntry
		err := rows.Scan(&d.ID, &d.FundID, &d.UserID, &d.BillID, &d.Amount, &d.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}

	return donations, rows.Err()
}
