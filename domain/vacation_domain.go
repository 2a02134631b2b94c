package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetVacations = "vacations retrieved successfully"
	MessageSuccessAddVacation  = "vacation added successfully"

	MessageFailedGetVacations = "failed to retrieve vacations"
	MessageFailedAddVacation  = "failed to add vacation"

	ErrVacationRange   = errors.New("start date must not be after end date")
	ErrVacationOverlap = errors.New("vacation overlaps an existing one")
)

type (
	AddVacationRequest struct {
		StartDate string `json:"start_date" validate:"required"`
		EndDate   string `json:"end_date" validate:"required"`
	}

	VacationResponse struct {
		ID        string    `json:"id"`
		StartDate string    `json:"start_date"`
		EndDate   string    `json:"end_date"`
		CreatedAt time.Time `json:"created_at"`
	}
)
