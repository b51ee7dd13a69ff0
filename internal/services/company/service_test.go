package company

import (
	"testing"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestService() (Service, *mocks.CompanyRepository, *mocks.UserRepository) {
	companies := new(mocks.CompanyRepository)
	users := new(mocks.UserRepository)
	return NewService(companies, users), companies, users
}

func TestCreateCompany(t *testing.T) {
	t.Run("business user creates an HQ profile", func(t *testing.T) {
		s, companies, users := newTestService()
		users.On("GetByID", uint(7)).Return(&models.User{IsBusiness: true}, nil)
		companies.On("Create", mock.AnythingOfType("*models.Company")).Return(nil)

		created, err := s.Create(7, &models.Company{
			Name:         "Frutaria MD",
			NIF:          "5417382901",
			Province:     "Luanda",
			Municipality: "Viana",
		})
		assert.NoError(t, err)
		assert.Equal(t, models.CompanyTypeHQ, created.Type)
		assert.Equal(t, uint(7), created.UserID)
		assert.Nil(t, created.ParentID)
	})

	t.Run("personal accounts cannot create companies", func(t *testing.T) {
		s, companies, users := newTestService()
		users.On("GetByID", uint(7)).Return(&models.User{IsBusiness: false}, nil)

		_, err := s.Create(7, &models.Company{Name: "Frutaria MD"})
		assert.ErrorIs(t, err, domainerrors.ErrNotBusinessAccount)
		companies.AssertNotCalled(t, "Create")
	})

	t.Run("bank owners produce bank profiles", func(t *testing.T) {
		s, companies, users := newTestService()
		users.On("GetByID", uint(7)).Return(&models.User{IsBusiness: true, IsBank: true}, nil)
		companies.On("Create", mock.AnythingOfType("*models.Company")).Return(nil)

		created, err := s.Create(7, &models.Company{Name: "Banco Sol"})
		assert.NoError(t, err)
		assert.True(t, created.IsBank)
	})

	t.Run("invalid NIF is rejected", func(t *testing.T) {
		s, companies, users := newTestService()
		users.On("GetByID", uint(7)).Return(&models.User{IsBusiness: true}, nil)

		_, err := s.Create(7, &models.Company{Name: "Frutaria MD", NIF: "123"})
		assert.Error(t, err)
		companies.AssertNotCalled(t, "Create")
	})
}

func TestCreateBranch(t *testing.T) {
	t.Run("branch inherits from the headquarters", func(t *testing.T) {
		s, companies, _ := newTestService()
		hq := &models.Company{UserID: 7, Type: models.CompanyTypeHQ, NIF: "5417382901", IsBank: false}
		hq.ID = 5
		companies.On("GetByID", uint(5)).Return(hq, nil)
		companies.On("Create", mock.AnythingOfType("*models.Company")).Return(nil)

		branch, err := s.CreateBranch(7, 5, &models.Company{Name: "Frutaria MD Talatona"})
		assert.NoError(t, err)
		assert.Equal(t, models.CompanyTypeBranch, branch.Type)
		assert.Equal(t, uint(5), *branch.ParentID)
		assert.Equal(t, "5417382901", branch.NIF)
	})

	t.Run("branches cannot have branches", func(t *testing.T) {
		s, companies, _ := newTestService()
		parentID := uint(5)
		branch := &models.Company{UserID: 7, Type: models.CompanyTypeBranch, ParentID: &parentID}
		branch.ID = 6
		companies.On("GetByID", uint(6)).Return(branch, nil)

		_, err := s.CreateBranch(7, 6, &models.Company{Name: "Sub-filial"})
		assert.ErrorIs(t, err, domainerrors.ErrBranchOfBranch)
		companies.AssertNotCalled(t, "Create")
	})

	t.Run("only the owner can add branches", func(t *testing.T) {
		s, companies, _ := newTestService()
		hq := &models.Company{UserID: 99, Type: models.CompanyTypeHQ}
		hq.ID = 5
		companies.On("GetByID", uint(5)).Return(hq, nil)

		_, err := s.CreateBranch(7, 5, &models.Company{Name: "Filial"})
		assert.Error(t, err)
		companies.AssertNotCalled(t, "Create")
	})
}

func TestFollow(t *testing.T) {
	company := &models.Company{Name: "Frutaria MD"}
	company.ID = 5

	t.Run("following increments the counter", func(t *testing.T) {
		s, companies, users := newTestService()
		companies.On("GetByID", uint(5)).Return(company, nil)
		users.On("IsFollowing", uint(1), uint(5)).Return(false, nil)
		users.On("SetFollowing", uint(1), uint(5), true).Return(nil)
		companies.On("AdjustFollowers", uint(5), 1).Return(nil)

		following, err := s.Follow(1, 5)
		assert.NoError(t, err)
		assert.True(t, following)
		companies.AssertExpectations(t)
	})

	t.Run("following again unfollows", func(t *testing.T) {
		s, companies, users := newTestService()
		companies.On("GetByID", uint(5)).Return(company, nil)
		users.On("IsFollowing", uint(1), uint(5)).Return(true, nil)
		users.On("SetFollowing", uint(1), uint(5), false).Return(nil)
		companies.On("AdjustFollowers", uint(5), -1).Return(nil)

		following, err := s.Follow(1, 5)
		assert.NoError(t, err)
		assert.False(t, following)
		companies.AssertExpectations(t)
	})
}

func TestUpdateCompany(t *testing.T) {
	t.Run("structure and counters are preserved", func(t *testing.T) {
		s, companies, _ := newTestService()
		existing := &models.Company{
			UserID:    7,
			Name:      "Frutaria MD",
			Followers: 42,
			Reviews:   9,
			Type:      models.CompanyTypeHQ,
		}
		existing.ID = 5
		companies.On("GetByID", uint(5)).Return(existing, nil)
		companies.On("Update", mock.AnythingOfType("*models.Company")).Return(nil)

		update := &models.Company{Name: "Frutaria Maria Domingos", Followers: 0, Reviews: 0}
		update.ID = 5
		updated, err := s.Update(7, update)
		assert.NoError(t, err)
		assert.Equal(t, "Frutaria Maria Domingos", updated.Name)
		assert.Equal(t, 42, updated.Followers)
		assert.Equal(t, 9, updated.Reviews)
		assert.Equal(t, uint(7), updated.UserID)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		s, companies, _ := newTestService()
		existing := &models.Company{UserID: 99}
		existing.ID = 5
		companies.On("GetByID", uint(5)).Return(existing, nil)

		update := &models.Company{Name: "Tomada"}
		update.ID = 5
		_, err := s.Update(7, update)
		assert.Error(t, err)
		companies.AssertNotCalled(t, "Update")
	})
}
