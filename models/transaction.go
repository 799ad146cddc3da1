package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Transaction struct {
	ID            uint            `gorm:"primary_key" autoIncrement:"true" json:"id"`
	UserID        uint            `gorm:"not null" json:"user_id"`
	User          User            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL; foreignKey:UserID" json:"-"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null; check:amount >= 0" json:"amount"`
	SubmittedAt   time.Time       `gorm:"not null" json:"submitted_at"`
	PaymentMethod string          `gorm:"not null" json:"payment_method"`
	TxnID         string          `gorm:"not null" json:"txn_id"`
	Receipt       string          `json:"receipt"`
}

func (txn *Transaction) Create(db *gorm.DB) error {
	if res := db.Create(txn); res.Error != nil {
		return res.Error
	}
	return nil
}

// HistoryByUser returns the user's transactions newest-first together
// with the sum of their amounts.
func HistoryByUser(db *gorm.DB, userID uint) ([]Transaction, decimal.Decimal, error) {
	var txns []Transaction
	res := db.Where("user_id = ?", userID).
		Order("submitted_at desc").
		Find(&txns)
	if res.Error != nil {
		return nil, decimal.Zero, res.Error
	}
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}
	return txns, total, nil
}
