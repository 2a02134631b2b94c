package product

import (
	"context"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/google/uuid"
)

type (
	ProductService interface {
		ListProducts(ctx context.Context) ([]domain.ProductResponse, error)
		CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error)
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{productRepository: productRepository}
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, domain.ProductResponse{
			ID:    p.ID.String(),
			Name:  p.Name,
			Price: p.Price,
		})
	}
	return responses, nil
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error) {
	product := &entities.Product{
		ID:    uuid.New(),
		Name:  req.Name,
		Price: req.Price,
	}

	if err := s.productRepository.Create(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return domain.ProductResponse{
		ID:    product.ID.String(),
		Name:  product.Name,
		Price: product.Price,
	}, nil
}
