package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user already exists")
	ErrBadCredentials    = errors.New("incorrect login or password")
	ErrFundNotFound      = errors.New("fund not found")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotOwner          = errors.New("fund belongs to another user")
	ErrGoalNotReached    = errors.New("fund goal not reached")
	ErrAlreadyWithdrawn  = errors.New("fund already withdrawn")
)
