package repositories

import (
	"context"
	"errors"
	"log"

	"facilita/internal/models"

	"facilita/internal/repositories/cache"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines database operations for marketplace
// listings and their galleries.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	Update(product *models.Product) error
	ReplaceGallery(productID uint, urls []string) error
	Delete(id uint) error

	List() ([]models.Product, error)
	ListByOwner(ownerID uint) ([]models.Product, error)

	// CountByOwner and CountPromotedByOwner feed quota checks. Usage is
	// counted per owning id, so a branch's listings never count toward
	// its parent HQ.
	CountByOwner(ownerID uint) (int, error)
	CountPromotedByOwner(ownerID uint) (int, error)

	SetPromoted(id uint, promoted bool) error
}

type productRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

func NewProductRepository(db *gorm.DB, cache *cache.CacheService) ProductRepository {
	return &productRepository{db: db, cache: cache}
}

func (r *productRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return ErrDatabaseOperation
	}
	r.invalidateListing()
	PublishChange("products", "INSERT", product.ID)
	return nil
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Gallery", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).First(&product, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProductNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &product, nil
}

func (r *productRepository) Update(product *models.Product) error {
	if err := r.db.Omit("Gallery").Save(product).Error; err != nil {
		return ErrDatabaseOperation
	}
	r.invalidateListing()
	PublishChange("products", "UPDATE", product.ID)
	return nil
}

func (r *productRepository) ReplaceGallery(productID uint, urls []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		for i, url := range urls {
			img := models.ProductImage{ProductID: productID, URL: url, Position: i}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ErrDatabaseOperation
	}
	PublishChange("products", "UPDATE", productID)
	return nil
}

func (r *productRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Product{}, id).Error; err != nil {
		return ErrDatabaseOperation
	}
	r.invalidateListing()
	PublishChange("products", "DELETE", id)
	return nil
}

func (r *productRepository) List() ([]models.Product, error) {
	if r.cache != nil {
		if products, found, err := r.cache.GetProductListing(context.Background()); err == nil && found {
			return products, nil
		}
	}

	var products []models.Product
	err := r.db.Preload("Gallery", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}

	if r.cache != nil {
		if err := r.cache.CacheProductListing(context.Background(), products); err != nil {
			log.Printf("failed to cache product listing: %v", err)
		}
	}
	return products, nil
}

func (r *productRepository) ListByOwner(ownerID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Gallery", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return products, nil
}

func (r *productRepository) CountByOwner(ownerID uint) (int, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("owner_id = ?", ownerID).Count(&count).Error
	if err != nil {
		return 0, ErrDatabaseOperation
	}
	return int(count), nil
}

func (r *productRepository) CountPromotedByOwner(ownerID uint) (int, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("owner_id = ? AND promoted = ?", ownerID, true).
		Count(&count).Error
	if err != nil {
		return 0, ErrDatabaseOperation
	}
	return int(count), nil
}

func (r *productRepository) SetPromoted(id uint, promoted bool) error {
	result := r.db.Model(&models.Product{}).Where("id = ?", id).Update("promoted", promoted)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	r.invalidateListing()
	PublishChange("products", "UPDATE", id)
	return nil
}

func (r *productRepository) invalidateListing() {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateProductListing(context.Background()); err != nil {
		log.Printf("failed to invalidate product listing cache: %v", err)
	}
}
