package models

import (
	"gorm.io/gorm"
)

// Product categories.
const (
	ProductCategoryProduct = "Product"
	ProductCategoryService = "Service"
)

type Product struct {
	gorm.Model
	Title       string  `gorm:"not null"`
	Description string
	Price       float64 `gorm:"not null"`
	Image       string
	// OwnerID is the id of the company or branch that owns the listing.
	// Quotas are counted per owner id, so a branch consumes its own
	// allowance even though it shares the parent's plan.
	OwnerID     uint   `gorm:"index;not null"`
	CompanyName string
	Category    string `gorm:"default:'Product'"`
	Promoted    bool   `gorm:"default:false"`
	Gallery     []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductImage is one entry of a product's ordered gallery.
type ProductImage struct {
	ID        uint   `gorm:"primarykey"`
	ProductID uint   `gorm:"index;not null"`
	URL       string `gorm:"not null"`
	Position  int    `gorm:"not null;default:0"`
}
