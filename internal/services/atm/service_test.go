package atm

import (
	"testing"

	"facilita/internal/models"
	"facilita/internal/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVote(t *testing.T) {
	t.Run("adding a vote", func(t *testing.T) {
		atms := new(mocks.ATMRepository)
		s := NewService(atms)

		atms.On("ToggleVote", uint(3), uint(1)).Return(true, nil)
		machine := &models.ATM{Votes: 125}
		machine.ID = 3
		atms.On("GetByID", uint(3)).Return(machine, nil)

		votes, voted, err := s.Vote(1, 3)
		assert.NoError(t, err)
		assert.True(t, voted)
		assert.Equal(t, 125, votes)
	})

	t.Run("toggling removes the vote", func(t *testing.T) {
		atms := new(mocks.ATMRepository)
		s := NewService(atms)

		atms.On("ToggleVote", uint(3), uint(1)).Return(false, nil)
		machine := &models.ATM{Votes: 124}
		machine.ID = 3
		atms.On("GetByID", uint(3)).Return(machine, nil)

		votes, voted, err := s.Vote(1, 3)
		assert.NoError(t, err)
		assert.False(t, voted)
		assert.Equal(t, 124, votes)
	})
}

func TestCreate(t *testing.T) {
	t.Run("defaults an unknown status", func(t *testing.T) {
		atms := new(mocks.ATMRepository)
		s := NewService(atms)

		atms.On("Create", mock.AnythingOfType("*models.ATM")).Return(nil)

		created, err := s.Create(&models.ATM{Name: "ATM Mutamba", Bank: "BIC", Status: "???"})
		assert.NoError(t, err)
		assert.Equal(t, models.ATMStatusHasMoney, created.Status)
	})

	t.Run("requires name and bank", func(t *testing.T) {
		atms := new(mocks.ATMRepository)
		s := NewService(atms)

		_, err := s.Create(&models.ATM{Name: "ATM Mutamba"})
		assert.Error(t, err)
		atms.AssertNotCalled(t, "Create")
	})
}

func TestSetStatus(t *testing.T) {
	t.Run("valid status is persisted", func(t *testing.T) {
		atms := new(mocks.ATMRepository)
		s := NewService(atms)

		machine := &models.ATM{Name: "ATM Mutamba", Bank: "BIC", Status: models.ATMStatusHasMoney}
		machine.ID = 3
		atms.On("GetByID", uint(3)).Return(machine, nil)
		atms.On("Update", mock.AnythingOfType("*models.ATM")).Return(nil)

		updated, err := s.SetStatus(3, models.ATMStatusNoMoney)
		assert.NoError(t, err)
		assert.Equal(t, models.ATMStatusNoMoney, updated.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		atms := new(mocks.ATMRepository)
		s := NewService(atms)

		_, err := s.SetStatus(3, "FULL")
		assert.Error(t, err)
		atms.AssertNotCalled(t, "Update")
	})
}
