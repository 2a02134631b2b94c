package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogin    = "login successful"
	MessageSuccessRegister = "account created successfully"
	MessageSuccessGetMe    = "profile retrieved successfully"
	MessageSuccessGetUsers = "users retrieved successfully"

	MessageFailedLogin    = "failed to login"
	MessageFailedRegister = "failed to create account"
	MessageFailedGetMe    = "failed to retrieve profile"
	MessageFailedGetUsers = "failed to retrieve users"

	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

type (
	LoginRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	SignupRequest struct {
		Name        string `json:"name" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		HouseNumber string `json:"house_number" validate:"required"`
		Address     string `json:"address" validate:"omitempty"`
	}

	UserResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Email       string    `json:"email"`
		HouseNumber string    `json:"house_number"`
		Address     string    `json:"address,omitempty"`
		Role        string    `json:"role"`
		CreatedAt   time.Time `json:"created_at"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
