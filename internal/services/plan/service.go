package plan

import (
	"errors"
	"log"

	"facilita/internal/models"
	"facilita/internal/repositories"
)

// Limits is a resolved publication/highlight quota pair. A value of
// models.UnlimitedQuota means no cap.
type Limits struct {
	MaxProducts   int `json:"maxProducts"`
	MaxHighlights int `json:"maxHighlights"`
}

// Usage is the current consumption counted against a quota owner.
type Usage struct {
	Products   int `json:"products"`
	Highlights int `json:"highlights"`
}

type Service interface {
	Catalog() ([]models.Plan, error)
	GetByType(planType string) (*models.Plan, error)
	CreatePlan(p *models.Plan) error
	UpdatePlan(p *models.Plan) error
	DeletePlan(planType string) error

	EffectiveLimits(user *models.User) (Limits, error)
	UsageFor(ownerID uint) (Usage, error)
	// ChangePlan applies the carry-over rule and persists the new plan
	// with the computed custom limits on the user.
	ChangePlan(userID uint, newPlanType string) (*models.User, error)
}

type service struct {
	plans     repositories.PlanRepository
	users     repositories.UserRepository
	products  repositories.ProductRepository
	companies repositories.CompanyRepository
}

func NewService(plans repositories.PlanRepository, users repositories.UserRepository, products repositories.ProductRepository, companies repositories.CompanyRepository) Service {
	return &service{plans: plans, users: users, products: products, companies: companies}
}

func (s *service) Catalog() ([]models.Plan, error) {
	return s.plans.List()
}

func (s *service) GetByType(planType string) (*models.Plan, error) {
	return s.plans.GetByType(planType)
}

func (s *service) CreatePlan(p *models.Plan) error {
	if p.Type == "" {
		return errors.New("plan type is required")
	}
	return s.plans.Create(p)
}

func (s *service) UpdatePlan(p *models.Plan) error {
	existing, err := s.plans.GetByType(p.Type)
	if err != nil {
		return err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	return s.plans.Update(p)
}

func (s *service) DeletePlan(planType string) error {
	if planType == models.PlanFree {
		return errors.New("the free tier cannot be removed")
	}
	return s.plans.Delete(planType)
}

// EffectiveLimits resolves the quota for a user. Custom limits stamped
// at the last plan change win over the plan base values; users who
// never purchased a plan fall back to the free tier.
func (s *service) EffectiveLimits(user *models.User) (Limits, error) {
	if user.HasCustomLimits() {
		return Limits{
			MaxProducts:   *user.CustomMaxProducts,
			MaxHighlights: *user.CustomMaxHighlights,
		}, nil
	}

	planType := user.Plan
	if planType == "" {
		planType = models.PlanFree
	}
	p, err := s.plans.GetByType(planType)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return freeLimits(), nil
		}
		return Limits{}, err
	}
	return Limits{MaxProducts: p.MaxProducts, MaxHighlights: p.MaxHighlights}, nil
}

func (s *service) UsageFor(ownerID uint) (Usage, error) {
	products, err := s.products.CountByOwner(ownerID)
	if err != nil {
		return Usage{}, err
	}
	highlights, err := s.products.CountPromotedByOwner(ownerID)
	if err != nil {
		return Usage{}, err
	}
	return Usage{Products: products, Highlights: highlights}, nil
}

func (s *service) ChangePlan(userID uint, newPlanType string) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	newPlan, err := s.plans.GetByType(newPlanType)
	if err != nil {
		return nil, err
	}

	current, err := s.EffectiveLimits(user)
	if err != nil {
		return nil, err
	}

	usage, err := s.usageForUser(user)
	if err != nil {
		return nil, err
	}

	next := CarryOver(current, usage, Limits{
		MaxProducts:   newPlan.MaxProducts,
		MaxHighlights: newPlan.MaxHighlights,
	})

	user.Plan = newPlan.Type
	user.CustomMaxProducts = &next.MaxProducts
	user.CustomMaxHighlights = &next.MaxHighlights

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	log.Printf("user %d moved to plan %s (limits %d/%d)", user.ID, newPlan.Type, next.MaxProducts, next.MaxHighlights)
	return user, nil
}

// usageForUser counts the listings of the user's headquarters company.
// Listings published under branches are counted against each branch,
// not against the headquarters quota.
func (s *service) usageForUser(user *models.User) (Usage, error) {
	hq, err := s.companies.GetHQByUserID(user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return Usage{}, nil
		}
		return Usage{}, err
	}
	return s.UsageFor(hq.ID)
}

// CarryOver computes the limits after a plan change. Unused quota from
// the outgoing plan is added on top of the incoming plan's base. An
// unlimited outgoing quota contributes nothing; an unlimited incoming
// quota absorbs any remainder and stays unlimited.
func CarryOver(current Limits, usage Usage, newBase Limits) Limits {
	return Limits{
		MaxProducts:   carryOne(current.MaxProducts, usage.Products, newBase.MaxProducts),
		MaxHighlights: carryOne(current.MaxHighlights, usage.Highlights, newBase.MaxHighlights),
	}
}

func carryOne(currentMax, used, newBase int) int {
	if newBase == models.UnlimitedQuota {
		return models.UnlimitedQuota
	}
	remaining := 0
	if currentMax != models.UnlimitedQuota {
		remaining = currentMax - used
		if remaining < 0 {
			remaining = 0
		}
	}
	return newBase + remaining
}

func freeLimits() Limits {
	return Limits{MaxProducts: 2, MaxHighlights: 0}
}
