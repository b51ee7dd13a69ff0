package company

import (
	"errors"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/validation"
)

type Service interface {
	List(isBank *bool) ([]models.Company, error)
	Get(id uint) (*models.Company, error)
	GetMine(userID uint) (*models.Company, error)
	Create(userID uint, company *models.Company) (*models.Company, error)
	Update(userID uint, company *models.Company) (*models.Company, error)
	Delete(userID uint, id uint, isAdmin bool) error

	CreateBranch(userID uint, parentID uint, branch *models.Company) (*models.Company, error)
	ListBranches(parentID uint) ([]models.Company, error)

	// Follow toggles a follower relationship and returns the new state.
	Follow(userID, companyID uint) (bool, error)
	Rate(companyID uint) error
}

type service struct {
	companies repositories.CompanyRepository
	users     repositories.UserRepository
}

func NewService(companies repositories.CompanyRepository, users repositories.UserRepository) Service {
	return &service{companies: companies, users: users}
}

func (s *service) List(isBank *bool) ([]models.Company, error) {
	return s.companies.ListTopLevel(isBank)
}

func (s *service) Get(id uint) (*models.Company, error) {
	return s.companies.GetByID(id)
}

func (s *service) GetMine(userID uint) (*models.Company, error) {
	return s.companies.GetHQByUserID(userID)
}

func (s *service) Create(userID uint, company *models.Company) (*models.Company, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !user.IsBusiness {
		return nil, domainerrors.ErrNotBusinessAccount
	}

	v := validation.New()
	v.Required("name", company.Name)
	if company.NIF != "" {
		v.NIF("nif", company.NIF)
	}
	v.Location("province", company.Province, "municipality", company.Municipality)
	if !v.Valid() {
		return nil, validationError(v)
	}

	company.UserID = userID
	company.Type = models.CompanyTypeHQ
	company.ParentID = nil
	company.IsBank = user.IsBank

	if err := s.companies.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *service) Update(userID uint, company *models.Company) (*models.Company, error) {
	existing, err := s.companies.GetByID(company.ID)
	if err != nil {
		return nil, err
	}
	if err := s.mustOwn(userID, existing); err != nil {
		return nil, err
	}

	v := validation.New()
	v.Required("name", company.Name)
	if company.NIF != "" {
		v.NIF("nif", company.NIF)
	}
	v.Location("province", company.Province, "municipality", company.Municipality)
	if !v.Valid() {
		return nil, validationError(v)
	}

	// Structure and counters are managed elsewhere.
	company.UserID = existing.UserID
	company.Type = existing.Type
	company.ParentID = existing.ParentID
	company.Followers = existing.Followers
	company.Reviews = existing.Reviews
	company.IsBank = existing.IsBank

	if err := s.companies.Update(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *service) Delete(userID uint, id uint, isAdmin bool) error {
	existing, err := s.companies.GetByID(id)
	if err != nil {
		return err
	}
	if !isAdmin {
		if err := s.mustOwn(userID, existing); err != nil {
			return err
		}
	}
	return s.companies.Delete(id)
}

func (s *service) CreateBranch(userID uint, parentID uint, branch *models.Company) (*models.Company, error) {
	parent, err := s.companies.GetByID(parentID)
	if err != nil {
		return nil, err
	}
	if parent.IsBranch() {
		return nil, domainerrors.ErrBranchOfBranch
	}
	if parent.UserID != userID {
		return nil, errors.New("company does not belong to user")
	}

	v := validation.New()
	v.Required("name", branch.Name)
	v.Location("province", branch.Province, "municipality", branch.Municipality)
	if !v.Valid() {
		return nil, validationError(v)
	}

	branch.UserID = userID
	branch.Type = models.CompanyTypeBranch
	branch.ParentID = &parent.ID
	branch.IsBank = parent.IsBank
	if branch.NIF == "" {
		branch.NIF = parent.NIF
	}

	if err := s.companies.Create(branch); err != nil {
		return nil, err
	}
	return branch, nil
}

func (s *service) ListBranches(parentID uint) ([]models.Company, error) {
	return s.companies.ListBranches(parentID)
}

func (s *service) Follow(userID, companyID uint) (bool, error) {
	company, err := s.companies.GetByID(companyID)
	if err != nil {
		return false, err
	}

	following, err := s.users.IsFollowing(userID, company.ID)
	if err != nil {
		return false, err
	}

	if following {
		if err := s.users.SetFollowing(userID, company.ID, false); err != nil {
			return false, err
		}
		if err := s.companies.AdjustFollowers(company.ID, -1); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.users.SetFollowing(userID, company.ID, true); err != nil {
		return false, err
	}
	if err := s.companies.AdjustFollowers(company.ID, 1); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) Rate(companyID uint) error {
	if _, err := s.companies.GetByID(companyID); err != nil {
		return err
	}
	return s.companies.IncrementReviews(companyID)
}

func (s *service) mustOwn(userID uint, company *models.Company) error {
	if company.UserID != userID {
		return errors.New("company does not belong to user")
	}
	return nil
}

func validationError(v *validation.Validator) error {
	for field, msg := range v.Errors {
		return domainerrors.NewDomainError("VALIDATION_FAILED", "%s %s", field, msg)
	}
	return domainerrors.NewDomainError("VALIDATION_FAILED", "invalid input")
}
