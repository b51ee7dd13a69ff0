package messaging

import (
	"testing"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestService() (Service, *mocks.MessageRepository, *mocks.UserRepository) {
	messages := new(mocks.MessageRepository)
	users := new(mocks.UserRepository)
	return NewService(messages, users), messages, users
}

func TestSend(t *testing.T) {
	t.Run("delivers and notifies the receiver", func(t *testing.T) {
		s, messages, users := newTestService()
		sender := &models.User{Name: "Maria Domingos", IsBusiness: true}
		sender.ID = 1
		users.On("GetByID", uint(1)).Return(sender, nil)
		users.On("GetByID", uint(2)).Return(&models.User{}, nil)
		messages.On("Create", mock.AnythingOfType("*models.Message")).Return(nil)
		messages.On("CreateNotification", mock.AnythingOfType("*models.Notification")).Return(nil)

		msg, err := s.Send(1, 2, nil, "Ainda tem o cabaz disponível?", "")
		assert.NoError(t, err)
		assert.Equal(t, "Maria Domingos", msg.SenderName)
		assert.True(t, msg.IsFromBusiness)
		messages.AssertExpectations(t)
	})

	t.Run("self-send is rejected", func(t *testing.T) {
		s, messages, _ := newTestService()
		_, err := s.Send(1, 1, nil, "eco", "")
		assert.Error(t, err)
		messages.AssertNotCalled(t, "Create")
	})

	t.Run("blocked senders are cut off", func(t *testing.T) {
		s, messages, users := newTestService()
		blocked := &models.User{AccountStatus: models.AccountStatusBlocked}
		blocked.ID = 1
		users.On("GetByID", uint(1)).Return(blocked, nil)

		_, err := s.Send(1, 2, nil, "olá", "")
		assert.ErrorIs(t, err, domainerrors.ErrAccountBlocked)
		messages.AssertNotCalled(t, "Create")
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		s, messages, _ := newTestService()
		_, err := s.Send(1, 2, nil, "   ", "")
		assert.Error(t, err)
		messages.AssertNotCalled(t, "Create")
	})

	t.Run("failed notification does not fail the send", func(t *testing.T) {
		s, messages, users := newTestService()
		sender := &models.User{Name: "Maria Domingos"}
		sender.ID = 1
		users.On("GetByID", uint(1)).Return(sender, nil)
		users.On("GetByID", uint(2)).Return(&models.User{}, nil)
		messages.On("Create", mock.AnythingOfType("*models.Message")).Return(nil)
		messages.On("CreateNotification", mock.AnythingOfType("*models.Notification")).
			Return(assert.AnError)

		_, err := s.Send(1, 2, nil, "olá", "")
		assert.NoError(t, err)
	})
}

func TestReply(t *testing.T) {
	t.Run("reply goes back to the original sender", func(t *testing.T) {
		s, messages, users := newTestService()
		original := &models.Message{SenderID: 2, ReceiverID: 1, Content: "Ainda tem?"}
		original.ID = 40
		messages.On("GetByID", uint(40)).Return(original, nil)

		sender := &models.User{Name: "Maria Domingos"}
		sender.ID = 1
		users.On("GetByID", uint(1)).Return(sender, nil)
		users.On("GetByID", uint(2)).Return(&models.User{}, nil)
		messages.On("Create", mock.AnythingOfType("*models.Message")).Return(nil)
		messages.On("CreateNotification", mock.AnythingOfType("*models.Notification")).Return(nil)

		msg, err := s.Reply(1, 40, "Sim, temos!", "")
		assert.NoError(t, err)
		assert.Equal(t, uint(2), msg.ReceiverID)
	})

	t.Run("outsiders cannot reply", func(t *testing.T) {
		s, messages, _ := newTestService()
		original := &models.Message{SenderID: 2, ReceiverID: 1}
		original.ID = 40
		messages.On("GetByID", uint(40)).Return(original, nil)

		_, err := s.Reply(9, 40, "intrometido", "")
		assert.Error(t, err)
		messages.AssertNotCalled(t, "Create")
	})
}

func TestBroadcast(t *testing.T) {
	s, messages, _ := newTestService()
	messages.On("CreateNotification", mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == nil && n.Type == models.NotificationTypeInfo
	})).Return(nil)

	n, err := s.Broadcast("Manutenção", "A plataforma estará indisponível no domingo.")
	assert.NoError(t, err)
	assert.True(t, n.Global())
	messages.AssertExpectations(t)
}
