package product

import (
	"errors"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/services/plan"
	"facilita/internal/validation"
)

type Service interface {
	List(offset, limit int) ([]models.Product, int64, error)
	ListByOwner(ownerID uint) ([]models.Product, error)
	Get(id uint) (*models.Product, error)
	Create(userID uint, p *models.Product) (*models.Product, error)
	Update(userID uint, p *models.Product) (*models.Product, error)
	Delete(userID uint, id uint, isAdmin bool) error
	SetPromoted(userID uint, id uint, promoted bool) (*models.Product, error)
	QuotaFor(ownerID uint) (plan.Limits, plan.Usage, error)
}

type service struct {
	products  repositories.ProductRepository
	companies repositories.CompanyRepository
	users     repositories.UserRepository
	plans     plan.Service
}

func NewService(products repositories.ProductRepository, companies repositories.CompanyRepository, users repositories.UserRepository, plans plan.Service) Service {
	return &service{products: products, companies: companies, users: users, plans: plans}
}

// List pages through the public listing. The repository serves the full
// listing from cache, so the page is cut here.
func (s *service) List(offset, limit int) ([]models.Product, int64, error) {
	products, err := s.products.List()
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(products))
	if offset >= len(products) {
		return []models.Product{}, total, nil
	}
	end := offset + limit
	if end > len(products) {
		end = len(products)
	}
	return products[offset:end], total, nil
}

func (s *service) ListByOwner(ownerID uint) ([]models.Product, error) {
	return s.products.ListByOwner(ownerID)
}

func (s *service) Get(id uint) (*models.Product, error) {
	return s.products.GetByID(id)
}

// QuotaFor resolves the effective limits and current usage for a
// company or branch. Branches inherit the plan of the headquarters
// owner but consume their own usage counters.
func (s *service) QuotaFor(ownerID uint) (plan.Limits, plan.Usage, error) {
	planUser, err := s.planOwner(ownerID)
	if err != nil {
		return plan.Limits{}, plan.Usage{}, err
	}
	limits, err := s.plans.EffectiveLimits(planUser)
	if err != nil {
		return plan.Limits{}, plan.Usage{}, err
	}
	usage, err := s.plans.UsageFor(ownerID)
	if err != nil {
		return plan.Limits{}, plan.Usage{}, err
	}
	return limits, usage, nil
}

func (s *service) Create(userID uint, p *models.Product) (*models.Product, error) {
	if p.Category == "" {
		p.Category = models.ProductCategoryProduct
	}
	v := validation.New()
	v.Product(p)
	if !v.Valid() {
		return nil, validationError(v)
	}

	company, err := s.ownedCompany(userID, p.OwnerID)
	if err != nil {
		return nil, err
	}
	p.CompanyName = company.Name

	limits, usage, err := s.QuotaFor(p.OwnerID)
	if err != nil {
		return nil, err
	}
	if limits.MaxProducts != models.UnlimitedQuota && usage.Products >= limits.MaxProducts {
		return nil, domainerrors.ErrProductQuotaExceeded
	}
	if p.Promoted {
		if limits.MaxHighlights != models.UnlimitedQuota && usage.Highlights >= limits.MaxHighlights {
			return nil, domainerrors.ErrHighlightQuotaExceeded
		}
	}

	if err := s.products.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(userID uint, p *models.Product) (*models.Product, error) {
	existing, err := s.products.GetByID(p.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedCompany(userID, existing.OwnerID); err != nil {
		return nil, err
	}

	// Ownership and promotion state do not change through updates.
	p.OwnerID = existing.OwnerID
	p.CompanyName = existing.CompanyName
	p.Promoted = existing.Promoted
	if p.Category == "" {
		p.Category = existing.Category
	}

	v := validation.New()
	v.Product(p)
	if !v.Valid() {
		return nil, validationError(v)
	}

	if err := s.products.Update(p); err != nil {
		return nil, err
	}
	if len(p.Gallery) > 0 {
		urls := make([]string, len(p.Gallery))
		for i, img := range p.Gallery {
			urls[i] = img.URL
		}
		if err := s.products.ReplaceGallery(p.ID, urls); err != nil {
			return nil, err
		}
	}
	return s.products.GetByID(p.ID)
}

func (s *service) Delete(userID uint, id uint, isAdmin bool) error {
	existing, err := s.products.GetByID(id)
	if err != nil {
		return err
	}
	if !isAdmin {
		if _, err := s.ownedCompany(userID, existing.OwnerID); err != nil {
			return err
		}
	}
	return s.products.Delete(id)
}

func (s *service) SetPromoted(userID uint, id uint, promoted bool) (*models.Product, error) {
	existing, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedCompany(userID, existing.OwnerID); err != nil {
		return nil, err
	}

	if promoted && !existing.Promoted {
		limits, usage, err := s.QuotaFor(existing.OwnerID)
		if err != nil {
			return nil, err
		}
		if limits.MaxHighlights != models.UnlimitedQuota && usage.Highlights >= limits.MaxHighlights {
			return nil, domainerrors.ErrHighlightQuotaExceeded
		}
	}

	if err := s.products.SetPromoted(id, promoted); err != nil {
		return nil, err
	}
	return s.products.GetByID(id)
}

func validationError(v *validation.Validator) error {
	for field, msg := range v.Errors {
		return domainerrors.NewDomainError("VALIDATION_FAILED", "%s %s", field, msg)
	}
	return domainerrors.NewDomainError("VALIDATION_FAILED", "invalid input")
}

// planOwner walks a branch up to its headquarters and returns the user
// whose plan governs the quota.
func (s *service) planOwner(ownerID uint) (*models.User, error) {
	company, err := s.companies.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if company.IsBranch() && company.ParentID != nil {
		parent, err := s.companies.GetByID(*company.ParentID)
		if err != nil {
			return nil, err
		}
		company = parent
	}
	return s.users.GetByID(company.UserID)
}

// ownedCompany checks that the company (or its headquarters for a
// branch) belongs to the acting user.
func (s *service) ownedCompany(userID, companyID uint) (*models.Company, error) {
	company, err := s.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	owner := company
	if company.IsBranch() && company.ParentID != nil {
		parent, err := s.companies.GetByID(*company.ParentID)
		if err != nil {
			return nil, err
		}
		owner = parent
	}
	if owner.UserID != userID {
		return nil, errors.New("company does not belong to user")
	}
	return company, nil
}
