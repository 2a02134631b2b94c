package cancellation

import (
	"context"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/google/uuid"
)

type (
	CancellationService interface {
		RecordCancellation(ctx context.Context, req domain.RecordCancellationRequest, userID string) (domain.CancellationResponse, error)
		ListCancellations(ctx context.Context, userID string) ([]domain.CancellationResponse, error)
	}

	cancellationService struct {
		cancellationRepository CancellationRepository
	}
)

func NewCancellationService(cancellationRepository CancellationRepository) CancellationService {
	return &cancellationService{cancellationRepository: cancellationRepository}
}

func (s *cancellationService) RecordCancellation(ctx context.Context, req domain.RecordCancellationRequest, userID string) (domain.CancellationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CancellationResponse{}, domain.ErrParseUUID
	}

	var referenceID *uuid.UUID
	if req.ReferenceID != "" {
		parsed, err := uuid.Parse(req.ReferenceID)
		if err != nil {
			return domain.CancellationResponse{}, domain.ErrParseUUID
		}
		referenceID = &parsed
	}
	if req.CancellationType == entities.CancellationTypeOrder && referenceID == nil {
		return domain.CancellationResponse{}, domain.ErrCancellationReference
	}

	cancellation := &entities.Cancellation{
		ID:               uuid.New(),
		UserID:           userUUID,
		CancellationType: req.CancellationType,
		ReferenceID:      referenceID,
		Reason:           req.Reason,
	}

	if err := s.cancellationRepository.Record(ctx, cancellation); err != nil {
		return domain.CancellationResponse{}, err
	}

	return toCancellationResponse(cancellation), nil
}

func (s *cancellationService) ListCancellations(ctx context.Context, userID string) ([]domain.CancellationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	cancellations, err := s.cancellationRepository.GetByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.CancellationResponse, 0, len(cancellations))
	for _, c := range cancellations {
		responses = append(responses, toCancellationResponse(c))
	}
	return responses, nil
}

func toCancellationResponse(cancellation *entities.Cancellation) domain.CancellationResponse {
	response := domain.CancellationResponse{
		ID:               cancellation.ID.String(),
		CancellationType: cancellation.CancellationType,
		Reason:           cancellation.Reason,
		CancelledAt:      cancellation.CreatedAt,
	}
	if cancellation.ReferenceID != nil {
		response.ReferenceID = cancellation.ReferenceID.String()
	}
	return response
}
