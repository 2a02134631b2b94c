package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetOrders  = "orders retrieved successfully"
	MessageSuccessPlaceOrder = "order placed successfully"

	MessageFailedGetOrders  = "failed to retrieve orders"
	MessageFailedPlaceOrder = "failed to place order"

	ErrPastOrderDate  = errors.New("order date must be today or later")
	ErrEmptyOrder     = errors.New("order must contain at least one line")
	ErrOrderDateTaken = errors.New("an order already exists for this date")
	ErrOrderNotFound  = errors.New("order not found")
)

type (
	PlaceOrderRequest struct {
		Date  string        `json:"date" validate:"required"`
		Items []LineRequest `json:"items" validate:"required,min=1,dive"`
	}

	OrderItemResponse struct {
		ProductID   string `json:"product_id"`
		ProductName string `json:"product_name"`
		Quantity    int    `json:"quantity"`
	}

	OrderResponse struct {
		ID        string              `json:"id"`
		Date      string              `json:"date"`
		IsAdhoc   bool                `json:"is_adhoc"`
		Status    string              `json:"status"`
		Items     []OrderItemResponse `json:"items"`
		CreatedAt time.Time           `json:"created_at"`
	}
)
