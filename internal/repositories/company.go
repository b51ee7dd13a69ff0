package repositories

import (
	"errors"

	"facilita/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrBranchDepth     = errors.New("a branch cannot have sub-branches")
)

// CompanyRepository defines database operations for company and branch
// profiles.
type CompanyRepository interface {
	Create(company *models.Company) error
	GetByID(id uint) (*models.Company, error)
	GetHQByUserID(userID uint) (*models.Company, error)
	Update(company *models.Company) error
	Delete(id uint) error

	// ListTopLevel returns HQ profiles only, optionally filtered to
	// banks or non-bank companies.
	ListTopLevel(isBank *bool) ([]models.Company, error)

	// ListBranches returns the branches of a parent company.
	ListBranches(parentID uint) ([]models.Company, error)

	// AdjustFollowers adds delta to the follower count, clamped at zero.
	AdjustFollowers(id uint, delta int) error

	// IncrementReviews bumps the review counter.
	IncrementReviews(id uint) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *models.Company) error {
	// Enforce the depth-1 invariant: a parent must be an HQ profile.
	if company.ParentID != nil {
		parent, err := r.GetByID(*company.ParentID)
		if err != nil {
			return err
		}
		if parent.IsBranch() {
			return ErrBranchDepth
		}
		company.Type = models.CompanyTypeBranch
	}

	if err := r.db.Create(company).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("companies", "INSERT", company.ID)
	return nil
}

func (r *companyRepository) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCompanyNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &company, nil
}

func (r *companyRepository) GetHQByUserID(userID uint) (*models.Company, error) {
	var company models.Company
	err := r.db.Where("user_id = ? AND type = ?", userID, models.CompanyTypeHQ).
		First(&company).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCompanyNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &company, nil
}

func (r *companyRepository) Update(company *models.Company) error {
	if err := r.db.Save(company).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("companies", "UPDATE", company.ID)
	return nil
}

func (r *companyRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Company{}, id).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("companies", "DELETE", id)
	return nil
}

func (r *companyRepository) ListTopLevel(isBank *bool) ([]models.Company, error) {
	q := r.db.Where("type = ?", models.CompanyTypeHQ)
	if isBank != nil {
		q = q.Where("is_bank = ?", *isBank)
	}

	var companies []models.Company
	if err := q.Order("name").Find(&companies).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return companies, nil
}

func (r *companyRepository) ListBranches(parentID uint) ([]models.Company, error) {
	var branches []models.Company
	err := r.db.Where("parent_id = ?", parentID).Order("name").Find(&branches).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return branches, nil
}

func (r *companyRepository) AdjustFollowers(id uint, delta int) error {
	err := r.db.Model(&models.Company{}).
		Where("id = ?", id).
		Update("followers", gorm.Expr("GREATEST(followers + ?, 0)", delta)).Error
	if err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("companies", "UPDATE", id)
	return nil
}

func (r *companyRepository) IncrementReviews(id uint) error {
	err := r.db.Model(&models.Company{}).
		Where("id = ?", id).
		Update("reviews", gorm.Expr("reviews + 1")).Error
	if err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("companies", "UPDATE", id)
	return nil
}
