package repositories

import (
	"errors"

	"facilita/internal/models"

	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository records and queries ledger entries.
type TransactionRepository interface {
	Create(tx *models.Transaction) error
	GetByID(id uint) (*models.Transaction, error)
	UpdateStatus(id uint, status string) (*models.Transaction, error)

	// List returns all entries (admin view) with pagination.
	List(limit, offset int) ([]models.Transaction, int64, error)

	// ListByUser returns a user's own entries with pagination.
	ListByUser(userID uint, limit, offset int) ([]models.Transaction, int64, error)

	// VolumeByStatus sums amounts grouped by status (dashboard).
	VolumeByStatus() (map[string]float64, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("transactions", "INSERT", tx.ID)
	return nil
}

func (r *transactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.First(&tx, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &tx, nil
}

func (r *transactionRepository) UpdateStatus(id uint, status string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.First(&tx, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrTransactionNotFound
			}
			return err
		}
		tx.Status = status
		return dbtx.Model(&tx).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	PublishChange("transactions", "UPDATE", id)
	return &tx, nil
}

func (r *transactionRepository) List(limit, offset int) ([]models.Transaction, int64, error) {
	var txs []models.Transaction
	var total int64

	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&txs).Error
	if err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	return txs, total, nil
}

func (r *transactionRepository) ListByUser(userID uint, limit, offset int) ([]models.Transaction, int64, error) {
	var txs []models.Transaction
	var total int64

	q := r.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	err := r.db.Where("user_id = ?", userID).
		Limit(limit).Offset(offset).Order("created_at DESC").Find(&txs).Error
	if err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	return txs, total, nil
}

func (r *transactionRepository) VolumeByStatus() (map[string]float64, error) {
	type row struct {
		Status string
		Total  float64
	}
	var rows []row
	err := r.db.Model(&models.Transaction{}).
		Select("status, SUM(amount) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}

	volumes := make(map[string]float64, len(rows))
	for _, r := range rows {
		volumes[r.Status] = r.Total
	}
	return volumes, nil
}
