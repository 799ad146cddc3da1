package controllers

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionSchema struct {
	ID            uint            `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	SubmittedAt   time.Time       `json:"submitted_at"`
	PaymentMethod string          `json:"payment_method"`
	TxnID         string          `json:"txn_id"`
	Receipt       string          `json:"receipt,omitempty"`
}

type HistorySchema struct {
	Transactions []TransactionSchema `json:"transactions"`
	TotalPaid    decimal.Decimal     `json:"total_paid"`
}

type ProfileSchema struct {
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	Username     string `json:"username"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type PageSchema struct {
	Page  string `json:"page"`
	Flash string `json:"flash,omitempty"`
}

type AdminUserSchema struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Contact      string    `json:"contact"`
	Username     string    `json:"username"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
