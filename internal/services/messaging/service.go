package messaging

import (
	"errors"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/validation"
)

type Service interface {
	// Send delivers a message and raises a notification for the
	// receiver.
	Send(senderID, receiverID uint, productID *uint, content, attachmentURL string) (*models.Message, error)

	// Reply answers an existing message; the receiver is the original
	// sender.
	Reply(senderID, messageID uint, content, attachmentURL string) (*models.Message, error)

	Inbox(userID uint) ([]models.Message, error)
	Conversation(userID, otherID uint) ([]models.Message, error)
	MarkRead(userID, otherID uint) error

	Notifications(userID uint) ([]models.Notification, error)
	ClearNotifications(userID uint) error

	// Broadcast publishes a global notification visible to every user.
	Broadcast(title, body string) (*models.Notification, error)
}

type service struct {
	messages repositories.MessageRepository
	users    repositories.UserRepository
}

func NewService(messages repositories.MessageRepository, users repositories.UserRepository) Service {
	return &service{messages: messages, users: users}
}

func (s *service) Send(senderID, receiverID uint, productID *uint, content, attachmentURL string) (*models.Message, error) {
	if senderID == receiverID {
		return nil, errors.New("cannot message yourself")
	}

	v := validation.New()
	v.Required("content", content)
	v.MaxLength("content", content, validation.MaxMessageLength)
	if !v.Valid() {
		return nil, domainerrors.NewDomainError("VALIDATION_FAILED", "message content is required")
	}

	sender, err := s.users.GetByID(senderID)
	if err != nil {
		return nil, err
	}
	if sender.AccountStatus == models.AccountStatusBlocked {
		return nil, domainerrors.ErrAccountBlocked
	}
	if _, err := s.users.GetByID(receiverID); err != nil {
		return nil, err
	}

	msg := models.Message{
		SenderID:       senderID,
		SenderName:     sender.Name,
		ReceiverID:     receiverID,
		ProductID:      productID,
		Content:        content,
		AttachmentURL:  attachmentURL,
		IsFromBusiness: sender.IsBusiness,
	}
	if err := s.messages.Create(&msg); err != nil {
		return nil, err
	}

	s.notifyReceiver(receiverID, sender.Name, msg.ID)
	return &msg, nil
}

func (s *service) Reply(senderID, messageID uint, content, attachmentURL string) (*models.Message, error) {
	original, err := s.messages.GetByID(messageID)
	if err != nil {
		return nil, err
	}
	if original.SenderID != senderID && original.ReceiverID != senderID {
		return nil, errors.New("message does not involve user")
	}

	receiverID := original.SenderID
	if receiverID == senderID {
		receiverID = original.ReceiverID
	}
	return s.Send(senderID, receiverID, original.ProductID, content, attachmentURL)
}

func (s *service) Inbox(userID uint) ([]models.Message, error) {
	return s.messages.ListForUser(userID)
}

func (s *service) Conversation(userID, otherID uint) ([]models.Message, error) {
	return s.messages.ListConversation(userID, otherID)
}

func (s *service) MarkRead(userID, otherID uint) error {
	return s.messages.MarkConversationRead(userID, otherID)
}

func (s *service) Notifications(userID uint) ([]models.Notification, error) {
	return s.messages.ListNotifications(userID)
}

func (s *service) ClearNotifications(userID uint) error {
	return s.messages.MarkNotificationsRead(userID)
}

func (s *service) Broadcast(title, body string) (*models.Notification, error) {
	n := models.Notification{
		Title: title,
		Body:  body,
		Type:  models.NotificationTypeInfo,
	}
	if err := s.messages.CreateNotification(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

// notifyReceiver is best effort; a failed notification does not fail
// the send.
func (s *service) notifyReceiver(receiverID uint, senderName string, messageID uint) {
	n := models.Notification{
		UserID:          &receiverID,
		Title:           "Nova mensagem",
		Body:            "Recebeu uma nova mensagem de " + senderName,
		Type:            models.NotificationTypeMessage,
		RelatedEntityID: &messageID,
	}
	_ = s.messages.CreateNotification(&n)
}
