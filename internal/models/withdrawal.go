package models

import (
	"gorm.io/gorm"
)

// Withdrawal request statuses.
const (
	WithdrawalStatusPending   = "Pendente"
	WithdrawalStatusProcessed = "Processado"
	WithdrawalStatusRejected  = "Rejeitado"
)

// WithdrawalRequest asks the platform to pay out wallet earnings to a
// business's bank account. Approval decrements the requester's wallet
// balance, clamped at zero.
type WithdrawalRequest struct {
	gorm.Model
	UserID      uint    `gorm:"index;not null"` // requesting business user
	CompanyName string
	Amount      float64 `gorm:"not null"`
	Status      string  `gorm:"default:'Pendente'"`
	BankDetails JSON    `gorm:"type:jsonb"`
}
