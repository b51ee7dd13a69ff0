package models

import (
	"time"
)

// Transaction categories.
const (
	TransactionCategorySale        = "SALE"
	TransactionCategoryPurchase    = "PURCHASE"
	TransactionCategoryPlanPayment = "PLAN_PAYMENT"
	TransactionCategoryDeposit     = "DEPOSIT"
)

// Transaction statuses, kept in the ledger's original wording.
const (
	TransactionStatusPending  = "Pendente"
	TransactionStatusApproved = "Aprovado"
	TransactionStatusRejected = "Rejeitado"
)

// Payment methods.
const (
	PaymentMethodMulticaixa = "Multicaixa"
	PaymentMethodVisa       = "Visa"
	PaymentMethodTransfer   = "Transferencia"
)

// Transaction is one ledger entry. A checkout produces a paired SALE
// (credited to the seller) and PURCHASE (recorded against the buyer)
// per cart line when the line has a resolvable owner; the two writes
// are independent and carry no atomicity guarantee.
type Transaction struct {
	ID             uint    `gorm:"primarykey"`
	UserID         uint    `gorm:"index;not null"`
	Amount         float64 `gorm:"not null"`
	Category       string  `gorm:"not null"`
	Status         string  `gorm:"not null;default:'Pendente'"`
	Method         string
	Reference      string `gorm:"index"`
	ProductName    string
	OtherPartyName string
	ProofURL       string
	Metadata       JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Settled reports whether the entry has been approved.
func (t *Transaction) Settled() bool {
	return t.Status == TransactionStatusApproved
}
