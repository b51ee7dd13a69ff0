package models

import (
	"gorm.io/gorm"
)

// Account status values. Moderation blocks accounts, it never deletes them.
const (
	AccountStatusActive  = "Active"
	AccountStatusBlocked = "Blocked"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null" json:"-"`
	Name         string `gorm:"not null"`
	Phone        string `gorm:"uniqueIndex;not null"`
	Role         string `gorm:"default:'user'"`
	IsBusiness   bool   `gorm:"default:false"`
	IsBank       bool   `gorm:"default:false"`
	NIF          string `gorm:"column:nif"`
	Plan         string `gorm:"default:''"` // empty means Free tier
	ProfileImage string
	CoverImage   string
	Address      string
	Province     string
	Municipality string

	// Custom limits supersede the plan's base quota when set. Both are
	// written together by the plan change flow.
	CustomMaxProducts   *int
	CustomMaxHighlights *int

	// WalletBalance holds sale earnings (withdrawable through the
	// platform); TopUpBalance holds funds for making purchases.
	WalletBalance float64 `gorm:"default:0"`
	TopUpBalance  float64 `gorm:"default:0"`

	AccountStatus string `gorm:"default:'Active'"`
	BankDetails   JSON   `gorm:"type:jsonb"`
	Settings      JSON   `gorm:"type:jsonb"`
	TokenVersion  int    `gorm:"default:1"`
}

// HasCustomLimits reports whether the quota override pair is present.
func (u *User) HasCustomLimits() bool {
	return u.CustomMaxProducts != nil && u.CustomMaxHighlights != nil
}

// Favorite marks a product a user has saved.
type Favorite struct {
	gorm.Model
	UserID    uint `gorm:"index:idx_fav_user_product,unique;not null"`
	ProductID uint `gorm:"index:idx_fav_user_product,unique;not null"`
}

// Follow links a user to a company they follow.
type Follow struct {
	gorm.Model
	UserID    uint `gorm:"index:idx_follow_user_company,unique;not null"`
	CompanyID uint `gorm:"index:idx_follow_user_company,unique;not null"`
}

// CreateUserInput is the payload accepted at registration.
type CreateUserInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	IsBusiness bool   `json:"is_business"`
	IsBank     bool   `json:"is_bank"`
	NIF        string `json:"nif"`
}
