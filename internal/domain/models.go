package domain

import "time"

const (
	BillKindDonation   = "donation"
	BillKindWithdrawal = "withdrawal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Cash         float64   `db:"cash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Fund struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	TargetMoney  float64   `db:"target_money"`
	CurrentMoney float64   `db:"current_money"`
	Done         bool      `db:"done"`
	CreatedAt    time.Time `db:"created_at"`
	Deadline     time.Time `db:"deadline"`
}

// Bill is the immutable audit record of one completed cash movement.
// MoneyAfter holds the owner's cash as of this bill, so a balance
// history can be rebuilt by replaying bills in creation order.
type Bill struct {
	ID         int       `db:"id"`
	UserID     int       `db:"user_id"`
	Amount     float64   `db:"amount"`
	Kind       string    `db:"kind"`
	Reason     string    `db:"reason"`
	MoneyAfter float64   `db:"money_after"`
	CreatedAt  time.Time `db:"created_at"`
}

type Donation struct {
	ID     int `db:"id"`
	FundID int `db:"fund_id"`
	UserID int `db:"user_id"`
	BillID int `db:"bill_id"`
}

type Withdrawal struct {
	ID     int `db:"id"`
	FundID int `db:"fund_id"`
	UserID int `db:"user_id"`
	BillID int `db:"bill_id"`
}

// DonationEntry is a donation joined with its bill, for history listings.
type DonationEntry struct {
	ID        int       `db:"id"`
	FundID    int       `db:"fund_id"`
	UserID    int       `db:"user_id"`
	BillID    int       `db:"bill_id"`
	Amount    float64   `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}

// WithdrawalEntry is a withdrawal joined with its bill.
type WithdrawalEntry struct {
	ID        int       `db:"id"`
	FundID    int       `db:"fund_id"`
	UserID    int       `db:"user_id"`
	BillID    int       `db:"bill_id"`
	Amount    float64   `db:"amount"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
}
