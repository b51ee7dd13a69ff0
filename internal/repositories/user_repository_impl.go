package repositories

import (
	"context"
	"log"

	"facilita/internal/models"

	"facilita/internal/repositories/cache"

	"gorm.io/gorm"
)

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB, cache *cache.CacheService) UserRepository {
	return &userRepository{
		db:    db,
		cache: cache,
	}
}

func (r *userRepository) Create(user *models.User) error {
	result := r.db.Create(user)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	// Try cache first
	if r.cache != nil {
		key := r.cache.GenerateKey("user", "id", id)
		if user, err := r.cache.GetUser(context.Background(), key); err == nil {
			return user, nil
		}
	}

	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.CacheUser(context.Background(), &user); err != nil {
			log.Printf("failed to cache user %d: %v", user.ID, err)
		}
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) GetByPhone(phone string) (*models.User, error) {
	var user models.User
	result := r.db.Where("phone = ?", phone).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	result := r.db.Save(user)
	if result.Error != nil {
		return ErrDatabaseOperation
	}

	r.invalidate(user.ID)
	PublishChange("users", "UPDATE", user.ID)
	return nil
}

func (r *userRepository) IncrementTokenVersion(userID uint) error {
	if err := r.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("token_version", gorm.Expr("token_version + 1")).Error; err != nil {
		return err
	}

	r.invalidate(userID)
	return nil
}

func (r *userRepository) List(offset, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	result := r.db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&users)
	if result.Error != nil {
		return nil, 0, ErrDatabaseOperation
	}

	return users, total, nil
}

func (r *userRepository) UpdateStatus(userID uint, status string) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("account_status", status)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	r.invalidate(userID)
	PublishChange("users", "UPDATE", userID)
	return nil
}

func (r *userRepository) AdjustWallet(userID uint, delta float64) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrUserNotFound
			}
			return err
		}

		balance := user.WalletBalance + delta
		if balance < 0 {
			balance = 0
		}
		user.WalletBalance = balance
		return tx.Model(&user).Update("wallet_balance", balance).Error
	})
	if err != nil {
		return nil, err
	}

	r.invalidate(userID)
	PublishChange("users", "UPDATE", userID)
	return &user, nil
}

func (r *userRepository) AdjustTopUp(userID uint, delta float64) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrUserNotFound
			}
			return err
		}

		balance := user.TopUpBalance + delta
		if balance < 0 {
			balance = 0
		}
		user.TopUpBalance = balance
		return tx.Model(&user).Update("top_up_balance", balance).Error
	})
	if err != nil {
		return nil, err
	}

	r.invalidate(userID)
	PublishChange("users", "UPDATE", userID)
	return &user, nil
}

func (r *userRepository) ToggleFavorite(userID, productID uint) (bool, error) {
	var fav models.Favorite
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&fav).Error
	if err == nil {
		if err := r.db.Unscoped().Delete(&fav).Error; err != nil {
			return false, ErrDatabaseOperation
		}
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, ErrDatabaseOperation
	}

	if err := r.db.Create(&models.Favorite{UserID: userID, ProductID: productID}).Error; err != nil {
		return false, ErrDatabaseOperation
	}
	return true, nil
}

func (r *userRepository) ListFavorites(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return ids, nil
}

func (r *userRepository) IsFollowing(userID, companyID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		Count(&count).Error
	if err != nil {
		return false, ErrDatabaseOperation
	}
	return count > 0, nil
}

func (r *userRepository) SetFollowing(userID, companyID uint, follow bool) error {
	if follow {
		err := r.db.Create(&models.Follow{UserID: userID, CompanyID: companyID}).Error
		if err != nil {
			return ErrDatabaseOperation
		}
		return nil
	}

	err := r.db.Unscoped().
		Where("user_id = ? AND company_id = ?", userID, companyID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *userRepository) ListFollowing(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("user_id = ?", userID).
		Pluck("company_id", &ids).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return ids, nil
}

func (r *userRepository) invalidate(userID uint) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateUser(context.Background(), userID); err != nil {
		log.Printf("failed to invalidate user cache for %d: %v", userID, err)
	}
}
