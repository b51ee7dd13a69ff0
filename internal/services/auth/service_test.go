package auth

import (
	"testing"

	"facilita/internal/models"
	"facilita/internal/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestRegister(t *testing.T) {
	t.Run("personal account", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		users.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

		user, err := s.Register(models.CreateUserInput{
			Name:     "Maria Domingos",
			Email:    "maria@example.com",
			Password: "Forte#2024",
		})
		assert.NoError(t, err)
		assert.Equal(t, models.RoleUser, user.Role)
		assert.Empty(t, user.Plan)
		assert.NotEqual(t, "Forte#2024", user.Password, "password must be stored hashed")
		companies.AssertNotCalled(t, "Create")
	})

	t.Run("business account starts on the free tier with an HQ profile", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		users.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			args.Get(0).(*models.User).ID = 7
		}).Return(nil)
		companies.On("Create", mock.MatchedBy(func(c *models.Company) bool {
			return c.UserID == 7 && c.Name == "Frutaria MD" &&
				c.NIF == "5417382901" && c.Type == models.CompanyTypeHQ
		})).Return(nil)

		user, err := s.Register(models.CreateUserInput{
			Name:       "Frutaria MD",
			Email:      "loja@example.com",
			Password:   "Forte#2024",
			IsBusiness: true,
			NIF:        "5417382901",
		})
		assert.NoError(t, err)
		assert.Equal(t, models.RoleBusiness, user.Role)
		assert.Equal(t, models.PlanFree, user.Plan, "paid plans are only granted through a purchase")
		companies.AssertExpectations(t)
	})

	t.Run("business account requires NIF", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		_, err := s.Register(models.CreateUserInput{
			Name:       "Frutaria MD",
			Email:      "loja@example.com",
			Password:   "Forte#2024",
			IsBusiness: true,
		})
		assert.Error(t, err)
		users.AssertNotCalled(t, "Create")
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		_, err := s.Register(models.CreateUserInput{
			Name:     "Maria",
			Email:    "maria@example.com",
			Password: "abc",
		})
		assert.Error(t, err)
		users.AssertNotCalled(t, "Create")
	})
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("valid credentials issue tokens", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		u := &models.User{
			Email:         "maria@example.com",
			Password:      hash(t, "Forte#2024"),
			Role:          models.RoleUser,
			AccountStatus: models.AccountStatusActive,
			TokenVersion:  1,
		}
		u.ID = 3
		users.On("GetByEmail", "maria@example.com").Return(u, nil)

		user, access, refresh, err := s.Login("maria@example.com", "", "Forte#2024")
		assert.NoError(t, err)
		assert.Equal(t, uint(3), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		u := &models.User{
			Password:      hash(t, "Forte#2024"),
			AccountStatus: models.AccountStatusActive,
		}
		users.On("GetByEmail", "maria@example.com").Return(u, nil)

		_, _, _, err := s.Login("maria@example.com", "", "Errada#2024")
		assert.EqualError(t, err, "invalid credentials")
	})

	t.Run("blocked account cannot sign in", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		u := &models.User{
			Password:      hash(t, "Forte#2024"),
			AccountStatus: models.AccountStatusBlocked,
		}
		users.On("GetByEmail", "maria@example.com").Return(u, nil)

		_, _, _, err := s.Login("maria@example.com", "", "Forte#2024")
		assert.Error(t, err)
	})

	t.Run("phone is an alternative identifier", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		u := &models.User{
			Password:      hash(t, "Forte#2024"),
			AccountStatus: models.AccountStatusActive,
		}
		users.On("GetByPhone", "+244923000111").Return(u, nil)

		_, _, _, err := s.Login("", "+244923000111", "Forte#2024")
		assert.NoError(t, err)
		users.AssertNotCalled(t, "GetByEmail")
	})
}

func TestRefreshTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	issue := func(t *testing.T, u *models.User) string {
		t.Helper()
		users := new(mocks.UserRepository)
		users.On("GetByEmail", u.Email).Return(u, nil)
		_, _, refresh, err := NewService(users, new(mocks.CompanyRepository)).Login(u.Email, "", "Forte#2024")
		assert.NoError(t, err)
		return refresh
	}

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		u := &models.User{
			Email:         "maria@example.com",
			Password:      hash(t, "Forte#2024"),
			Role:          models.RoleUser,
			AccountStatus: models.AccountStatusActive,
			TokenVersion:  1,
		}
		u.ID = 3
		refresh := issue(t, u)

		users := new(mocks.UserRepository)
		users.On("GetByID", uint(3)).Return(u, nil)

		access, newRefresh, err := NewService(users, new(mocks.CompanyRepository)).RefreshTokens(refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("stale token version is rejected", func(t *testing.T) {
		u := &models.User{
			Email:         "maria@example.com",
			Password:      hash(t, "Forte#2024"),
			AccountStatus: models.AccountStatusActive,
			TokenVersion:  1,
		}
		u.ID = 3
		refresh := issue(t, u)

		bumped := *u
		bumped.TokenVersion = 2
		users := new(mocks.UserRepository)
		users.On("GetByID", uint(3)).Return(&bumped, nil)

		_, _, err := NewService(users, new(mocks.CompanyRepository)).RefreshTokens(refresh)
		assert.EqualError(t, err, "token version mismatch")
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		users := new(mocks.UserRepository)
		_, _, err := NewService(users, new(mocks.CompanyRepository)).RefreshTokens("not-a-token")
		assert.Error(t, err)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("bumps the token version", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		u := &models.User{Password: hash(t, "Antiga#2023"), TokenVersion: 1}
		u.ID = 3
		users.On("GetByID", uint(3)).Return(u, nil)
		users.On("Update", mock.AnythingOfType("*models.User")).Return(nil)

		err := s.ChangePassword(3, "Antiga#2023", "Nova#2024!")
		assert.NoError(t, err)
		assert.Equal(t, 2, u.TokenVersion)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Nova#2024!")))
	})

	t.Run("wrong old password", func(t *testing.T) {
		users := new(mocks.UserRepository)
		companies := new(mocks.CompanyRepository)
		s := NewService(users, companies)

		u := &models.User{Password: hash(t, "Antiga#2023")}
		u.ID = 3
		users.On("GetByID", uint(3)).Return(u, nil)

		err := s.ChangePassword(3, "Errada#2023", "Nova#2024!")
		assert.EqualError(t, err, "invalid old password")
		users.AssertNotCalled(t, "Update")
	})
}
