package auth

import (
	"errors"
	"log"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/utils"
	"facilita/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(input models.CreateUserInput) (*models.User, error)
	Login(email, phone, password string) (*models.User, string, string, error)
	RefreshTokens(refreshToken string) (string, string, error)
	Logout(userID uint) error
	ChangePassword(userID uint, oldPassword, newPassword string) error
}

type service struct {
	userRepo    repositories.UserRepository
	companyRepo repositories.CompanyRepository
}

func NewService(userRepo repositories.UserRepository, companyRepo repositories.CompanyRepository) Service {
	return &service{
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
}

func (s *service) Register(input models.CreateUserInput) (*models.User, error) {
	v := validation.New()
	v.Required("name", input.Name)
	v.Email("email", input.Email)
	if input.Phone != "" {
		v.Phone("phone", input.Phone)
	}
	v.Password("password", input.Password)
	if input.IsBusiness {
		v.NIF("nif", input.NIF)
	}
	if !v.Valid() {
		for field, msg := range v.Errors {
			return nil, domainerrors.NewDomainError("VALIDATION_FAILED", "%s %s", field, msg)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	role := models.RoleUser
	// New accounts always start on the free tier. Paid plans are
	// granted only through a settled plan purchase.
	planType := ""
	if input.IsBusiness {
		role = models.RoleBusiness
		planType = models.PlanFree
	}

	user := &models.User{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Password:   string(hashed),
		Role:       role,
		IsBusiness: input.IsBusiness,
		IsBank:     input.IsBank,
		NIF:        validation.NormalizeNIF(input.NIF),
		Plan:       planType,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// A business account is inseparable from its storefront; the HQ
	// profile mirrors the owner from day one.
	if user.IsBusiness {
		hq := &models.Company{
			UserID:       user.ID,
			Name:         user.Name,
			Phone:        user.Phone,
			Email:        user.Email,
			NIF:          user.NIF,
			Province:     user.Province,
			Municipality: user.Municipality,
			IsBank:       user.IsBank,
			Type:         models.CompanyTypeHQ,
		}
		if err := s.companyRepo.Create(hq); err != nil {
			return nil, err
		}
	}

	log.Printf("registered user %d (%s)", user.ID, user.Role)
	return user, nil
}

func (s *service) Login(email, phone, password string) (*models.User, string, string, error) {
	user, err := s.getUserByIdentifier(email, phone)
	if err != nil {
		log.Printf("Login failed: User not found for identifier: %s", email+phone)
		return nil, "", "", errors.New("invalid credentials")
	}

	if user.AccountStatus == models.AccountStatusBlocked {
		return nil, "", "", domainerrors.ErrAccountBlocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Login failed: Incorrect password for user ID: %d", user.ID)
		return nil, "", "", errors.New("invalid credentials")
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		Permissions:  models.GetDefaultPermissions(user.Role),
	})
	if err != nil {
		log.Println("Error generating tokens:", err)
		return nil, "", "", errors.New("error generating tokens")
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", "", errors.New("user not found")
	}

	if user.TokenVersion != claims.TokenVersion {
		return "", "", errors.New("token version mismatch")
	}

	return utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		Permissions:  models.GetDefaultPermissions(user.Role),
	})
}

func (s *service) Logout(userID uint) error {
	return s.userRepo.IncrementTokenVersion(userID)
}

func (s *service) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return errors.New("failed to get user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return errors.New("invalid old password")
	}

	v := validation.New()
	v.Password("password", newPassword)
	if !v.Valid() {
		return errors.New("password must be at least 8 characters with upper, lower, number and special characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	user.Password = string(hashedPassword)
	user.TokenVersion++ // Invalidate existing tokens

	if err := s.userRepo.Update(user); err != nil {
		return errors.New("failed to update password")
	}

	return nil
}

func (s *service) getUserByIdentifier(email, phone string) (*models.User, error) {
	if email != "" {
		return s.userRepo.GetByEmail(email)
	}
	return s.userRepo.GetByPhone(phone)
}
