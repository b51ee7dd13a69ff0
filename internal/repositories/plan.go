package repositories

import (
	"errors"

	"facilita/internal/models"

	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("plan not found")

// PlanRepository manages the subscription plan catalog.
type PlanRepository interface {
	GetByType(planType string) (*models.Plan, error)
	List() ([]models.Plan, error)
	Create(plan *models.Plan) error
	Update(plan *models.Plan) error
	Delete(planType string) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetByType(planType string) (*models.Plan, error) {
	var plan models.Plan
	if err := r.db.Where("type = ?", planType).First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPlanNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &plan, nil
}

func (r *planRepository) List() ([]models.Plan, error) {
	var plans []models.Plan
	if err := r.db.Order("price").Find(&plans).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return plans, nil
}

func (r *planRepository) Create(plan *models.Plan) error {
	if err := r.db.Create(plan).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("plans", "INSERT", plan.ID)
	return nil
}

func (r *planRepository) Update(plan *models.Plan) error {
	if err := r.db.Save(plan).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("plans", "UPDATE", plan.ID)
	return nil
}

func (r *planRepository) Delete(planType string) error {
	plan, err := r.GetByType(planType)
	if err != nil {
		return err
	}
	if err := r.db.Delete(plan).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("plans", "DELETE", plan.ID)
	return nil
}
