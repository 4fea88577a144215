package dto

import "time"

type DonateRequestDTO struct {
	Amount float64 `json:"amount"`
}

type WithdrawRequestDTO struct {
	Reason string `json:"reason"`
}

type BillResponseDTO struct {
	ID         int       `json:"id"`
	Amount     float64   `json:"amount"`
	Kind       string    `json:"kind"`
	Reason     string    `json:"reason"`
	MoneyAfter float64   `json:"money_after"`
	CreatedAt  time.Time `json:"created_at"`
}

type WithdrawalHistoryDTO struct {
	FundID      int       `json:"fund_id"`
	Amount      float64   `json:"amount"`
	Reason      string    `json:"reason"`
	ProcessedAt time.Time `json:"processed_at"`
}
