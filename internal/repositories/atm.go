package repositories

import (
	"errors"

	"facilita/internal/models"

	"gorm.io/gorm"
)

var ErrATMNotFound = errors.New("atm not found")

// ATMRepository manages the community ATM registry.
type ATMRepository interface {
	List() ([]models.ATM, error)
	GetByID(id uint) (*models.ATM, error)
	Create(atm *models.ATM) error
	Update(atm *models.ATM) error
	Delete(id uint) error

	// ToggleVote flips a user's confirmation vote on an ATM. Adding a
	// vote increments the counter; removing one decrements it, clamped
	// at zero. Returns whether the vote is now present.
	ToggleVote(atmID, userID uint) (bool, error)
	HasVoted(atmID, userID uint) (bool, error)
}

type atmRepository struct {
	db *gorm.DB
}

func NewATMRepository(db *gorm.DB) ATMRepository {
	return &atmRepository{db: db}
}

func (r *atmRepository) List() ([]models.ATM, error) {
	var atms []models.ATM
	if err := r.db.Order("name").Find(&atms).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return atms, nil
}

func (r *atmRepository) GetByID(id uint) (*models.ATM, error) {
	var atm models.ATM
	if err := r.db.First(&atm, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrATMNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &atm, nil
}

func (r *atmRepository) Create(atm *models.ATM) error {
	if err := r.db.Create(atm).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("atms", "INSERT", atm.ID)
	return nil
}

func (r *atmRepository) Update(atm *models.ATM) error {
	if err := r.db.Save(atm).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("atms", "UPDATE", atm.ID)
	return nil
}

func (r *atmRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.ATM{}, id).Error; err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("atms", "DELETE", id)
	return nil
}

func (r *atmRepository) ToggleVote(atmID, userID uint) (bool, error) {
	var voted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var vote models.ATMVote
		err := tx.Where("atm_id = ? AND user_id = ?", atmID, userID).First(&vote).Error
		switch {
		case err == nil:
			if err := tx.Unscoped().Delete(&vote).Error; err != nil {
				return err
			}
			voted = false
			return tx.Model(&models.ATM{}).Where("id = ?", atmID).
				Update("votes", gorm.Expr("GREATEST(votes - 1, 0)")).Error
		case err == gorm.ErrRecordNotFound:
			if err := tx.Create(&models.ATMVote{ATMID: atmID, UserID: userID}).Error; err != nil {
				return err
			}
			voted = true
			return tx.Model(&models.ATM{}).Where("id = ?", atmID).
				Update("votes", gorm.Expr("votes + 1")).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, ErrDatabaseOperation
	}
	PublishChange("atms", "UPDATE", atmID)
	return voted, nil
}

func (r *atmRepository) HasVoted(atmID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ATMVote{}).
		Where("atm_id = ? AND user_id = ?", atmID, userID).
		Count(&count).Error
	if err != nil {
		return false, ErrDatabaseOperation
	}
	return count > 0, nil
}
