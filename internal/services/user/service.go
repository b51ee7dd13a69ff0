package user

import (
	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/validation"
)

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	ProfileImage string      `json:"profileImage"`
	CoverImage   string      `json:"coverImage"`
	Address      string      `json:"address"`
	Province     string      `json:"province"`
	Municipality string      `json:"municipality"`
	NIF          string      `json:"nif"`
	BankDetails  models.JSON `json:"bankDetails"`
	Settings     models.JSON `json:"settings"`
}

type Service interface {
	Get(id uint) (*models.User, error)
	UpdateProfile(userID uint, update ProfileUpdate) (*models.User, error)

	// UpgradeToBusiness flips a personal account to a business account.
	// A valid ten digit NIF is required.
	UpgradeToBusiness(userID uint, nif string) (*models.User, error)

	ToggleFavorite(userID, productID uint) (bool, error)
	Favorites(userID uint) ([]uint, error)
	Following(userID uint) ([]uint, error)

	// Moderation surface.
	List(offset, limit int) ([]models.User, int64, error)
	SetAccountStatus(userID uint, status string) error
}

type service struct {
	users     repositories.UserRepository
	companies repositories.CompanyRepository
}

func NewService(users repositories.UserRepository, companies repositories.CompanyRepository) Service {
	return &service{users: users, companies: companies}
}

func (s *service) Get(id uint) (*models.User, error) {
	return s.users.GetByID(id)
}

func (s *service) UpdateProfile(userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	v := validation.New()
	if update.Phone != "" {
		v.Phone("phone", update.Phone)
	}
	v.Location("province", update.Province, "municipality", update.Municipality)
	if update.NIF != "" {
		v.NIF("nif", update.NIF)
	}
	if !v.Valid() {
		for field, msg := range v.Errors {
			return nil, domainerrors.NewDomainError("VALIDATION_FAILED", "%s %s", field, msg)
		}
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Phone != "" {
		user.Phone = update.Phone
	}
	if update.ProfileImage != "" {
		user.ProfileImage = update.ProfileImage
	}
	if update.CoverImage != "" {
		user.CoverImage = update.CoverImage
	}
	if update.Address != "" {
		user.Address = update.Address
	}
	if update.Province != "" {
		user.Province = update.Province
		user.Municipality = update.Municipality
	}
	if update.NIF != "" {
		user.NIF = validation.NormalizeNIF(update.NIF)
	}
	if update.BankDetails != nil {
		user.BankDetails = update.BankDetails
	}
	if update.Settings != nil {
		user.Settings = update.Settings
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) UpgradeToBusiness(userID uint, nif string) (*models.User, error) {
	if !validation.ValidNIF(nif) {
		return nil, domainerrors.ErrInvalidNIF
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.IsBusiness {
		return user, nil
	}

	user.IsBusiness = true
	user.Role = models.RoleBusiness
	user.NIF = validation.NormalizeNIF(nif)
	user.TokenVersion++ // role change invalidates issued tokens

	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	// Every business account gets a storefront profile. An existing HQ
	// (from a previous downgrade) is reused untouched.
	if _, err := s.companies.GetHQByUserID(user.ID); err == repositories.ErrCompanyNotFound {
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
		if err := s.companies.Create(hq); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *service) ToggleFavorite(userID, productID uint) (bool, error) {
	return s.users.ToggleFavorite(userID, productID)
}

func (s *service) Favorites(userID uint) ([]uint, error) {
	return s.users.ListFavorites(userID)
}

func (s *service) Following(userID uint) ([]uint, error) {
	return s.users.ListFollowing(userID)
}

func (s *service) List(offset, limit int) ([]models.User, int64, error) {
	return s.users.List(offset, limit)
}

func (s *service) SetAccountStatus(userID uint, status string) error {
	if status != models.AccountStatusActive && status != models.AccountStatusBlocked {
		return domainerrors.NewDomainError("VALIDATION_FAILED", "unknown account status %q", status)
	}
	if err := s.users.UpdateStatus(userID, status); err != nil {
		return err
	}
	// Blocking cuts active sessions immediately.
	if status == models.AccountStatusBlocked {
		return s.users.IncrementTokenVersion(userID)
	}
	return nil
}
