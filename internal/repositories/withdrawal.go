package repositories

import (
	"errors"

	"facilita/internal/models"

	"gorm.io/gorm"
)

var ErrWithdrawalNotFound = errors.New("withdrawal request not found")

// WithdrawalRepository manages payout requests.
type WithdrawalRepository interface {
	Create(req *models.WithdrawalRequest) error
	GetByID(id uint) (*models.WithdrawalRequest, error)
	UpdateStatus(id uint, status string) (*models.WithdrawalRequest, error)
	List(limit, offset int) ([]models.WithdrawalRequest, int64, error)
	ListByUser(userID uint) ([]models.WithdrawalRequest, error)
}

type withdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

func (r *withdrawalRepository) Create(req *models.WithdrawalRequest) error {
	if err := r.db.Create(req).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("withdrawal_requests", "INSERT", req.ID)
	return nil
}

func (r *withdrawalRepository) GetByID(id uint) (*models.WithdrawalRequest, error) {
	var req models.WithdrawalRequest
	if err := r.db.First(&req, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWithdrawalNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &req, nil
}

func (r *withdrawalRepository) UpdateStatus(id uint, status string) (*models.WithdrawalRequest, error) {
	var req models.WithdrawalRequest
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrWithdrawalNotFound
			}
			return err
		}
		req.Status = status
		return tx.Model(&req).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	PublishChange("withdrawal_requests", "UPDATE", id)
	return &req, nil
}

func (r *withdrawalRepository) List(limit, offset int) ([]models.WithdrawalRequest, int64, error) {
	var reqs []models.WithdrawalRequest
	var total int64

	if err := r.db.Model(&models.WithdrawalRequest{}).Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&reqs).Error
	if err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	return reqs, total, nil
}

func (r *withdrawalRepository) ListByUser(userID uint) ([]models.WithdrawalRequest, error) {
	var reqs []models.WithdrawalRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reqs).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return reqs, nil
}
