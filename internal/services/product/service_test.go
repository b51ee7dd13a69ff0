package product

import (
	"testing"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories/mocks"
	"facilita/internal/services/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPlanService struct {
	mock.Mock
}

func (m *mockPlanService) Catalog() ([]models.Plan, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Plan), args.Error(1)
}

func (m *mockPlanService) GetByType(planType string) (*models.Plan, error) {
	args := m.Called(planType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

func (m *mockPlanService) CreatePlan(p *models.Plan) error  { return m.Called(p).Error(0) }
func (m *mockPlanService) UpdatePlan(p *models.Plan) error  { return m.Called(p).Error(0) }
func (m *mockPlanService) DeletePlan(planType string) error { return m.Called(planType).Error(0) }

func (m *mockPlanService) EffectiveLimits(user *models.User) (plan.Limits, error) {
	args := m.Called(user)
	return args.Get(0).(plan.Limits), args.Error(1)
}

func (m *mockPlanService) UsageFor(ownerID uint) (plan.Usage, error) {
	args := m.Called(ownerID)
	return args.Get(0).(plan.Usage), args.Error(1)
}

func (m *mockPlanService) ChangePlan(userID uint, newPlanType string) (*models.User, error) {
	args := m.Called(userID, newPlanType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newTestService() (*service, *mocks.ProductRepository, *mocks.CompanyRepository, *mocks.UserRepository, *mockPlanService) {
	products := new(mocks.ProductRepository)
	companies := new(mocks.CompanyRepository)
	users := new(mocks.UserRepository)
	plans := new(mockPlanService)
	s := NewService(products, companies, users, plans).(*service)
	return s, products, companies, users, plans
}

func validListing(ownerID uint) *models.Product {
	return &models.Product{
		Title:    "Cabaz de frutas",
		Price:    4500,
		OwnerID:  ownerID,
		Category: models.ProductCategoryProduct,
	}
}

func setupOwner(companies *mocks.CompanyRepository, users *mocks.UserRepository, companyID, userID uint) *models.User {
	company := &models.Company{UserID: userID, Name: "Frutaria MD", Type: models.CompanyTypeHQ}
	company.ID = companyID
	companies.On("GetByID", companyID).Return(company, nil)

	owner := &models.User{Plan: models.PlanBasic}
	owner.ID = userID
	users.On("GetByID", userID).Return(owner, nil)
	return owner
}

func TestCreate(t *testing.T) {
	t.Run("publishes within quota", func(t *testing.T) {
		s, products, companies, users, plans := newTestService()
		owner := setupOwner(companies, users, 5, 7)

		plans.On("EffectiveLimits", owner).Return(plan.Limits{MaxProducts: 30, MaxHighlights: 10}, nil)
		plans.On("UsageFor", uint(5)).Return(plan.Usage{Products: 3, Highlights: 1}, nil)
		products.On("Create", mock.AnythingOfType("*models.Product")).Return(nil)

		created, err := s.Create(7, validListing(5))
		assert.NoError(t, err)
		assert.Equal(t, "Frutaria MD", created.CompanyName)
		products.AssertExpectations(t)
	})

	t.Run("rejects at the product ceiling", func(t *testing.T) {
		s, products, companies, users, plans := newTestService()
		owner := setupOwner(companies, users, 5, 7)

		plans.On("EffectiveLimits", owner).Return(plan.Limits{MaxProducts: 2, MaxHighlights: 0}, nil)
		plans.On("UsageFor", uint(5)).Return(plan.Usage{Products: 2}, nil)

		_, err := s.Create(7, validListing(5))
		assert.ErrorIs(t, err, domainerrors.ErrProductQuotaExceeded)
		products.AssertNotCalled(t, "Create")
	})

	t.Run("unlimited plan has no ceiling", func(t *testing.T) {
		s, products, companies, users, plans := newTestService()
		owner := setupOwner(companies, users, 5, 7)

		plans.On("EffectiveLimits", owner).Return(plan.Limits{
			MaxProducts:   models.UnlimitedQuota,
			MaxHighlights: models.UnlimitedQuota,
		}, nil)
		plans.On("UsageFor", uint(5)).Return(plan.Usage{Products: 5000, Highlights: 900}, nil)
		products.On("Create", mock.AnythingOfType("*models.Product")).Return(nil)

		listing := validListing(5)
		listing.Promoted = true
		_, err := s.Create(7, listing)
		assert.NoError(t, err)
	})

	t.Run("promoted listing checks the highlight ceiling", func(t *testing.T) {
		s, products, companies, users, plans := newTestService()
		owner := setupOwner(companies, users, 5, 7)

		plans.On("EffectiveLimits", owner).Return(plan.Limits{MaxProducts: 30, MaxHighlights: 1}, nil)
		plans.On("UsageFor", uint(5)).Return(plan.Usage{Products: 3, Highlights: 1}, nil)

		listing := validListing(5)
		listing.Promoted = true
		_, err := s.Create(7, listing)
		assert.ErrorIs(t, err, domainerrors.ErrHighlightQuotaExceeded)
		products.AssertNotCalled(t, "Create")
	})

	t.Run("rejects listings for another user's company", func(t *testing.T) {
		s, products, companies, _, _ := newTestService()

		company := &models.Company{UserID: 99, Type: models.CompanyTypeHQ}
		company.ID = 5
		companies.On("GetByID", uint(5)).Return(company, nil)

		_, err := s.Create(7, validListing(5))
		assert.Error(t, err)
		products.AssertNotCalled(t, "Create")
	})

	t.Run("rejects invalid listings before touching the quota", func(t *testing.T) {
		s, _, companies, _, _ := newTestService()

		listing := validListing(5)
		listing.Title = ""
		_, err := s.Create(7, listing)
		assert.Error(t, err)
		companies.AssertNotCalled(t, "GetByID")
	})
}

func TestSetPromoted(t *testing.T) {
	t.Run("promotion consumes a highlight slot", func(t *testing.T) {
		s, products, companies, users, plans := newTestService()
		owner := setupOwner(companies, users, 5, 7)

		existing := validListing(5)
		existing.ID = 20
		products.On("GetByID", uint(20)).Return(existing, nil)
		plans.On("EffectiveLimits", owner).Return(plan.Limits{MaxProducts: 30, MaxHighlights: 10}, nil)
		plans.On("UsageFor", uint(5)).Return(plan.Usage{Products: 3, Highlights: 2}, nil)
		products.On("SetPromoted", uint(20), true).Return(nil)

		_, err := s.SetPromoted(7, 20, true)
		assert.NoError(t, err)
		products.AssertExpectations(t)
	})

	t.Run("promotion fails at the highlight ceiling", func(t *testing.T) {
		s, products, companies, users, plans := newTestService()
		owner := setupOwner(companies, users, 5, 7)

		existing := validListing(5)
		existing.ID = 20
		products.On("GetByID", uint(20)).Return(existing, nil)
		plans.On("EffectiveLimits", owner).Return(plan.Limits{MaxProducts: 30, MaxHighlights: 2}, nil)
		plans.On("UsageFor", uint(5)).Return(plan.Usage{Products: 3, Highlights: 2}, nil)

		_, err := s.SetPromoted(7, 20, true)
		assert.ErrorIs(t, err, domainerrors.ErrHighlightQuotaExceeded)
		products.AssertNotCalled(t, "SetPromoted")
	})

	t.Run("demotion skips the quota check", func(t *testing.T) {
		s, products, companies, users, plans := newTestService()
		setupOwner(companies, users, 5, 7)

		existing := validListing(5)
		existing.ID = 20
		existing.Promoted = true
		products.On("GetByID", uint(20)).Return(existing, nil)
		products.On("SetPromoted", uint(20), false).Return(nil)

		_, err := s.SetPromoted(7, 20, false)
		assert.NoError(t, err)
		plans.AssertNotCalled(t, "UsageFor")
	})
}

func TestList(t *testing.T) {
	mkPage := func(n int) []models.Product {
		out := make([]models.Product, n)
		for i := range out {
			out[i] = *validListing(5)
		}
		return out
	}

	t.Run("cuts the requested page", func(t *testing.T) {
		s, products, _, _, _ := newTestService()
		products.On("List").Return(mkPage(25), nil)

		page, total, err := s.List(10, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(25), total)
		assert.Len(t, page, 10)
	})

	t.Run("offset past the end yields an empty page", func(t *testing.T) {
		s, products, _, _, _ := newTestService()
		products.On("List").Return(mkPage(3), nil)

		page, total, err := s.List(10, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, page)
	})
}

func TestQuotaForBranch(t *testing.T) {
	setupBranch := func(companies *mocks.CompanyRepository, users *mocks.UserRepository) *models.User {
		parentID := uint(5)
		branch := &models.Company{UserID: 7, Name: "Frutaria MD Viana", Type: models.CompanyTypeBranch, ParentID: &parentID}
		branch.ID = 6
		companies.On("GetByID", uint(6)).Return(branch, nil)

		hq := &models.Company{UserID: 7, Name: "Frutaria MD", Type: models.CompanyTypeHQ}
		hq.ID = 5
		companies.On("GetByID", uint(5)).Return(hq, nil)

		owner := &models.User{Plan: models.PlanBasic}
		owner.ID = 7
		users.On("GetByID", uint(7)).Return(owner, nil)
		return owner
	}

	t.Run("limits come from the parent owner, usage from the branch", func(t *testing.T) {
		s, _, companies, users, plans := newTestService()
		owner := setupBranch(companies, users)

		plans.On("EffectiveLimits", owner).Return(plan.Limits{MaxProducts: 30, MaxHighlights: 10}, nil)
		plans.On("UsageFor", uint(6)).Return(plan.Usage{Products: 1}, nil)

		limits, usage, err := s.QuotaFor(6)
		assert.NoError(t, err)
		assert.Equal(t, 30, limits.MaxProducts)
		assert.Equal(t, 1, usage.Products)
		plans.AssertNotCalled(t, "UsageFor", uint(5))
	})

	t.Run("a full headquarters does not block a branch listing", func(t *testing.T) {
		s, products, companies, users, plans := newTestService()
		owner := setupBranch(companies, users)

		// The HQ sits at its ceiling; only the branch counter matters here.
		plans.On("EffectiveLimits", owner).Return(plan.Limits{MaxProducts: 30, MaxHighlights: 10}, nil)
		plans.On("UsageFor", uint(6)).Return(plan.Usage{}, nil)
		products.On("Create", mock.AnythingOfType("*models.Product")).Return(nil)

		created, err := s.Create(7, validListing(6))
		assert.NoError(t, err)
		assert.Equal(t, "Frutaria MD Viana", created.CompanyName)
		plans.AssertNotCalled(t, "UsageFor", uint(5))
	})
}
