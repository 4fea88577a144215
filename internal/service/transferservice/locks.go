package transferservice

import (
	"context"

	"github.com/ekuzmina/fundgo/internal/domain"
)

// rowLocker is the single place that takes row locks for a transfer.
// The fund row is always locked before the user row, whichever protocol
// is running, so two transfers touching the same pair can never wait on
// each other in opposite order.
type rowLocker struct {
	fundRepo FundRepo
	userRepo UserRepo
}

func (l *rowLocker) lockFundAndUser(ctx context.Context, fundID, userID int) (*domain.Fund, *domain.User, error) {
	fund, err := l.fundRepo.GetByIDForUpdate(ctx, fundID)
	if err != nil {
		return nil, nil, err
	}
	if fund == nil {
		return nil, nil, domain.ErrFundNotFound
	}

	user, err := l.userRepo.GetByIDForUpdate(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUserNotFound
	}

	return fund, user, nil
}
