package fundrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ekuzmina/fundgo/internal/domain"
	"github.com/ekuzmina/fundgo/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Save(ctx context.Context, fund *domain.Fund) error {
	query := `
        INSERT INTO funds (user_id, title, description, target_money, current_money, done, deadline)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			fund.UserID, fund.Title, fund.Description, fund.TargetMoney, fund.CurrentMoney, fund.Done, fund.Deadline)
		if err := row.Scan(&fund.ID, &fund.CreatedAt); err != nil {
			zap.L().Error("can't save fund", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Fund, error) {
	query := `
        SELECT id, user_id, title, description, target_money, current_money, done, created_at, deadline
        FROM funds
        WHERE id = $1
    `
	fund, err := r.scanFund(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("can't get fund", zap.Error(err))
		return nil, err
	}
	return fund, nil
}

// GetByIDForUpdate locks the fund row for the rest of the enclosing
// transaction. Returns nil when the fund does not exist.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Fund, error) {
	query := `
        SELECT id, user_id, title, description, target_money, current_money, done, created_at, deadline
        FROM funds
        WHERE id = $1
        FOR UPDATE
    `
	fund, err := r.scanFund(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("can't lock fund row", zap.Error(err))
		return nil, err
	}
	return fund, nil
}

func (r *Repository) ListOpen(ctx context.Context) ([]domain.Fund, error) {
	query := `
        SELECT id, user_id, title, description, target_money, current_money, done, created_at, deadline
        FROM funds
        WHERE done = false
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list funds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var funds []domain.Fund
	for rows.Next() {
		var fund domain.Fund
		err := rows.Scan(&fund.ID, &fund.UserID, &fund.Title, &fund.Description,
			&fund.TargetMoney, &fund.CurrentMoney, &fund.Done, &fund.CreatedAt, &fund.Deadline)
		if err != nil {
			zap.L().Error("can't scan fund row", zap.Error(err))
			return nil, err
		}
		funds = append(funds, fund)
	}
	return funds, rows.Err()
}

func (r *Repository) Update(ctx context.Context, fund *domain.Fund) error {
	query := `
        UPDATE funds
        SET current_money = $1, done = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, fund.CurrentMoney, fund.Done, fund.ID)
	if err != nil {
		zap.L().Error("can't update fund", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanFund(row pgx.Row) (*domain.Fund, error) {
	var fund domain.Fund
	err := row.Scan(&fund.ID, &fund.UserID, &fund.Title, &fund.Description,
		&fund.TargetMoney, &fund.CurrentMoney, &fund.Done, &fund.CreatedAt, &fund.Deadline)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fund, nil
}
