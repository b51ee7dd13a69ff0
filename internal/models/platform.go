package models

import (
	"gorm.io/gorm"
)

// PlatformBankAccount is a platform-owned IBAN shown to buyers who pay
// by bank transfer. Admin-managed.
type PlatformBankAccount struct {
	gorm.Model
	BankName      string `gorm:"not null"`
	IBAN          string `gorm:"not null"`
	AccountNumber string
	HolderName    string
	IsActive      bool `gorm:"default:true"`
}

// PaymentGatewayConfig is one configured gateway row. The active rows
// determine which checkout methods are offered.
type PaymentGatewayConfig struct {
	gorm.Model
	Name               string `gorm:"not null"`
	Provider           string `gorm:"not null"`
	IsActive           bool   `gorm:"default:true"`
	Environment        string `gorm:"default:'Sandbox'"`
	SupportsReferences bool   `gorm:"default:false"`
}
