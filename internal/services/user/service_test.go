package user

import (
	"testing"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpgradeToBusiness(t *testing.T) {
	t.Run("valid NIF flips the account", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		u := &models.User{Role: models.RoleUser, TokenVersion: 1}
		u.ID = 3
		u.Name = "Pedro Santos"
		users.On("GetByID", uint(3)).Return(u, nil)
		users.On("Update", mock.AnythingOfType("*models.User")).Return(nil)
		companies.On("GetHQByUserID", uint(3)).Return(nil, repositories.ErrCompanyNotFound)
		companies.On("Create", mock.MatchedBy(func(c *models.Company) bool {
			return c.UserID == 3 && c.Name == "Pedro Santos" &&
				c.NIF == "5417382901" && c.Type == models.CompanyTypeHQ
		})).Return(nil)

		upgraded, err := s.UpgradeToBusiness(3, "54 17 38 29 01")
		assert.NoError(t, err)
		assert.True(t, upgraded.IsBusiness)
		assert.Equal(t, models.RoleBusiness, upgraded.Role)
		assert.Equal(t, "5417382901", upgraded.NIF)
		assert.Equal(t, 2, upgraded.TokenVersion, "existing tokens must be invalidated")
		companies.AssertExpectations(t)
	})

	t.Run("an HQ left from a previous stint is reused", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		u := &models.User{Role: models.RoleUser}
		u.ID = 3
		users.On("GetByID", uint(3)).Return(u, nil)
		users.On("Update", mock.AnythingOfType("*models.User")).Return(nil)
		hq := &models.Company{UserID: 3, Type: models.CompanyTypeHQ}
		companies.On("GetHQByUserID", uint(3)).Return(hq, nil)

		_, err := s.UpgradeToBusiness(3, "5417382901")
		assert.NoError(t, err)
		companies.AssertNotCalled(t, "Create")
	})

	t.Run("invalid NIF is rejected", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		_, err := s.UpgradeToBusiness(3, "123")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidNIF)
		users.AssertNotCalled(t, "Update")
	})

	t.Run("upgrade is idempotent", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		u := &models.User{IsBusiness: true, Role: models.RoleBusiness}
		u.ID = 3
		users.On("GetByID", uint(3)).Return(u, nil)

		upgraded, err := s.UpgradeToBusiness(3, "5417382901")
		assert.NoError(t, err)
		assert.True(t, upgraded.IsBusiness)
		users.AssertNotCalled(t, "Update")
	})
}

func TestSetAccountStatus(t *testing.T) {
	t.Run("blocking invalidates sessions", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		users.On("UpdateStatus", uint(3), models.AccountStatusBlocked).Return(nil)
		users.On("IncrementTokenVersion", uint(3)).Return(nil)

		err := s.SetAccountStatus(3, models.AccountStatusBlocked)
		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("reinstating keeps sessions alone", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		users.On("UpdateStatus", uint(3), models.AccountStatusActive).Return(nil)

		err := s.SetAccountStatus(3, models.AccountStatusActive)
		assert.NoError(t, err)
		users.AssertNotCalled(t, "IncrementTokenVersion")
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		err := s.SetAccountStatus(3, "Suspenso")
		assert.Error(t, err)
		users.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("patches only the provided fields", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		u := &models.User{Name: "Maria", Phone: "+244923000111", Address: "Rua A"}
		u.ID = 3
		users.On("GetByID", uint(3)).Return(u, nil)
		users.On("Update", mock.AnythingOfType("*models.User")).Return(nil)

		updated, err := s.UpdateProfile(3, ProfileUpdate{Name: "Maria Domingos"})
		assert.NoError(t, err)
		assert.Equal(t, "Maria Domingos", updated.Name)
		assert.Equal(t, "+244923000111", updated.Phone)
		assert.Equal(t, "Rua A", updated.Address)
	})

	t.Run("invalid municipality is rejected", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		u := &models.User{}
		u.ID = 3
		users.On("GetByID", uint(3)).Return(u, nil)

		_, err := s.UpdateProfile(3, ProfileUpdate{Province: "Luanda", Municipality: "Lobito"})
		assert.Error(t, err)
		users.AssertNotCalled(t, "Update")
	})
}
