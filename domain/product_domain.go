package domain

import "errors"

var (
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessCreateProduct = "product created successfully"

	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedCreateProduct = "failed to create product"

	ErrUnknownProduct = errors.New("unknown product id")
)

type (
	CreateProductRequest struct {
		Name  string  `json:"name" validate:"required"`
		Price float64 `json:"price" validate:"gte=0"`
	}

	ProductResponse struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
)
