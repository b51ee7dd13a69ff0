package repositories

import (
	"errors"

	"facilita/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageRepository stores direct messages and notifications.
type MessageRepository interface {
	Create(msg *models.Message) error
	GetByID(id uint) (*models.Message, error)

	// ListForUser returns every message a user sent or received, newest
	// first. Conversations are grouped client-side by counterparty.
	ListForUser(userID uint) ([]models.Message, error)

	// ListConversation returns the thread between two users, oldest
	// first.
	ListConversation(userID, otherID uint) ([]models.Message, error)

	// MarkConversationRead marks messages received by userID from
	// otherID as read.
	MarkConversationRead(userID, otherID uint) error

	CreateNotification(n *models.Notification) error

	// ListNotifications returns a user's notifications plus the global
	// ones, newest first.
	ListNotifications(userID uint) ([]models.Notification, error)

	// MarkNotificationsRead marks per-user and global notifications
	// read for a user.
	MarkNotificationsRead(userID uint) error

	DeleteNotification(id uint) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(msg *models.Message) error {
	if err := r.db.Create(msg).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("messages", "INSERT", msg.ID)
	return nil
}

func (r *messageRepository) GetByID(id uint) (*models.Message, error) {
	var msg models.Message
	if err := r.db.First(&msg, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrMessageNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &msg, nil
}

func (r *messageRepository) ListForUser(userID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").Find(&msgs).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return msgs, nil
}

func (r *messageRepository) ListConversation(userID, otherID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userID, otherID, otherID, userID,
	).Order("created_at ASC").Find(&msgs).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return msgs, nil
}

func (r *messageRepository) MarkConversationRead(userID, otherID uint) error {
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", userID, otherID, false).
		Update("is_read", true).Error
	if err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *messageRepository) CreateNotification(n *models.Notification) error {
	if err := r.db.Create(n).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("notifications", "INSERT", n.ID)
	return nil
}

func (r *messageRepository) ListNotifications(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ? OR user_id IS NULL", userID).
		Order("created_at DESC").Find(&notifications).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return notifications, nil
}

func (r *messageRepository) MarkNotificationsRead(userID uint) error {
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? OR user_id IS NULL", userID).
		Update("read", true).Error
	if err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *messageRepository) DeleteNotification(id uint) error {
	if err := r.db.Delete(&models.Notification{}, id).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
