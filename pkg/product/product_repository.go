package product

import (
	"context"

	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		Create(ctx context.Context, product *entities.Product) error
		GetAll(ctx context.Context) ([]*entities.Product, error)
		GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Product, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetAll(ctx context.Context) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).Order("name asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Product, error) {
	var products []*entities.Product
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
