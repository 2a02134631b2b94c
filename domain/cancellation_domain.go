package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCancellations   = "cancellations retrieved successfully"
	MessageSuccessRecordCancellation = "cancellation recorded successfully"

	MessageFailedGetCancellations   = "failed to retrieve cancellations"
	MessageFailedRecordCancellation = "failed to record cancellation"

	ErrCancellationReference = errors.New("order cancellation requires a reference id")
)

type (
	RecordCancellationRequest struct {
		CancellationType string `json:"cancellation_type" validate:"required,oneof=subscription order"`
		ReferenceID      string `json:"reference_id" validate:"omitempty,uuid"`
		Reason           string `json:"reason" validate:"omitempty"`
	}

	CancellationResponse struct {
		ID               string    `json:"id"`
		CancellationType string    `json:"cancellation_type"`
		ReferenceID      string    `json:"reference_id,omitempty"`
		Reason           string    `json:"reason,omitempty"`
		CancelledAt      time.Time `json:"cancelled_at"`
	}
)
