package models

import (
	"time"
)

// Message is a directed record between two users, optionally scoped to
// a product listing. Ordering is by timestamp only.
type Message struct {
	ID             uint `gorm:"primarykey"`
	SenderID       uint `gorm:"index;not null"`
	SenderName     string
	ReceiverID     uint `gorm:"index;not null"`
	ProductID      *uint
	ProductName    string
	Content        string `gorm:"not null"`
	AttachmentURL  string
	IsRead         bool `gorm:"default:false"`
	IsFromBusiness bool `gorm:"default:false"`
	CreatedAt      time.Time
}

// Notification types.
const (
	NotificationTypeInfo    = "info"
	NotificationTypeMessage = "message"
)

// Notification is a per-user (or global, when UserID is nil) alert with
// a read flag.
type Notification struct {
	ID              uint  `gorm:"primarykey"`
	UserID          *uint `gorm:"index"` // nil targets every user
	Title           string
	Body            string
	Type            string `gorm:"default:'info'"`
	RelatedEntityID *uint
	Read            bool `gorm:"default:false"`
	CreatedAt       time.Time
}

// Global reports whether the notification targets every user.
func (n *Notification) Global() bool {
	return n.UserID == nil
}
