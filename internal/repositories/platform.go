package repositories

import (
	"errors"

	"facilita/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBankAccountNotFound = errors.New("platform bank account not found")
	ErrGatewayNotFound     = errors.New("payment gateway config not found")
)

// PlatformRepository manages platform-owned bank accounts and payment
// gateway configuration (admin surface).
type PlatformRepository interface {
	ListBankAccounts(activeOnly bool) ([]models.PlatformBankAccount, error)
	CreateBankAccount(acc *models.PlatformBankAccount) error
	UpdateBankAccount(acc *models.PlatformBankAccount) error
	DeleteBankAccount(id uint) error

	ListGateways(activeOnly bool) ([]models.PaymentGatewayConfig, error)
	CreateGateway(gw *models.PaymentGatewayConfig) error
	UpdateGateway(gw *models.PaymentGatewayConfig) error
	DeleteGateway(id uint) error
}

type platformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) ListBankAccounts(activeOnly bool) ([]models.PlatformBankAccount, error) {
	q := r.db.Model(&models.PlatformBankAccount{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var accounts []models.PlatformBankAccount
	if err := q.Order("bank_name").Find(&accounts).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return accounts, nil
}

func (r *platformRepository) CreateBankAccount(acc *models.PlatformBankAccount) error {
	if err := r.db.Create(acc).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *platformRepository) UpdateBankAccount(acc *models.PlatformBankAccount) error {
	if err := r.db.Save(acc).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *platformRepository) DeleteBankAccount(id uint) error {
	result := r.db.Delete(&models.PlatformBankAccount{}, id)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrBankAccountNotFound
	}
	return nil
}

func (r *platformRepository) ListGateways(activeOnly bool) ([]models.PaymentGatewayConfig, error) {
	q := r.db.Model(&models.PaymentGatewayConfig{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var gateways []models.PaymentGatewayConfig
	if err := q.Order("name").Find(&gateways).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return gateways, nil
}

func (r *platformRepository) CreateGateway(gw *models.PaymentGatewayConfig) error {
	if err := r.db.Create(gw).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *platformRepository) UpdateGateway(gw *models.PaymentGatewayConfig) error {
	if err := r.db.Save(gw).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *platformRepository) DeleteGateway(id uint) error {
	result := r.db.Delete(&models.PaymentGatewayConfig{}, id)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrGatewayNotFound
	}
	return nil
}
