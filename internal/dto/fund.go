package dto

import "time"

type CreateFundRequestDTO struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Target      float64   `json:"target"`
	Deadline    time.Time `json:"deadline"`
}

type FundResponseDTO struct {
	ID          int       `json:"id"`
	OwnerID     int       `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Target      float64   `json:"target"`
	Current     float64   `json:"current"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
	Deadline    time.Time `json:"deadline"`
}

type FundDonationDTO struct {
	UserID    int       `json:"user_id"`
	Amount    float64   `json:"amount"`
	DonatedAt time.Time `json:"donated_at"`
}

type FundDetailResponseDTO struct {
	FundResponseDTO
	Donations []FundDonationDTO `json:"donations"`
}
