package models

import (
	"gorm.io/gorm"
)

// Company profile types. A headquarters profile mirrors the owning
// business user; branches reference their parent by id and the tree is
// at most one level deep.
const (
	CompanyTypeHQ     = "HQ"
	CompanyTypeBranch = "BRANCH"
)

type Company struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"` // owning business user
	Name         string `gorm:"not null"`
	Logo         string
	CoverImage   string
	Description  string
	Phone        string
	Email        string
	NIF          string `gorm:"column:nif"`
	Address      string
	Province     string
	Municipality string
	Followers    int    `gorm:"default:0"`
	Reviews      int    `gorm:"default:0"`
	IsBank       bool   `gorm:"default:false"`
	Type         string `gorm:"default:'HQ'"`
	ParentID     *uint  `gorm:"index"`
}

// IsBranch reports whether the profile is a secondary location.
func (c *Company) IsBranch() bool {
	return c.Type == CompanyTypeBranch
}
