package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, cash FROM users WHERE login = $1", login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Cash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, cash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Cash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// GetByIDForUpdate locks the user row for the rest of the enclosing
// transaction. Returns nil when the user does not exist.
func (repo *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, login, cash
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Login, &user.Cash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock user row", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) UpdateCash(ctx context.Context, id int, cash float64) error {
	query := `
        UPDATE users
        SET cash = $1
        WHERE id = $2
    `
	_, err := repo.db.Exec(ctx, query, cash, id)
	if err != nil {
		zap.L().Error("can't update user cash", zap.Error(err))
		return err
	}
	return nil
}
