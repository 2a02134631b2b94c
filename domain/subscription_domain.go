package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetSubscription = "subscription retrieved successfully"
	MessageSuccessSetSubscription = "subscription saved successfully"
	MessageNoActiveSubscription   = "no active subscription"

	MessageFailedGetSubscription = "failed to retrieve subscription"
	MessageFailedSetSubscription = "failed to save subscription"

	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyLineSet    = errors.New("at least one line is required")
)

type (
	LineRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"required,min=1"`
	}

	SetSubscriptionRequest struct {
		Frequency string        `json:"frequency" validate:"omitempty,oneof=daily"`
		Items     []LineRequest `json:"items" validate:"required,min=1,dive"`
	}

	SubscriptionItemResponse struct {
		ProductID   string `json:"product_id"`
		ProductName string `json:"product_name"`
		Quantity    int    `json:"quantity"`
	}

	SubscriptionResponse struct {
		ID        string                     `json:"id"`
		Frequency string                     `json:"frequency"`
		IsActive  bool                       `json:"is_active"`
		Items     []SubscriptionItemResponse `json:"items"`
		CreatedAt time.Time                  `json:"created_at"`
	}
)
