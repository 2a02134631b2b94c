package vacation

import (
	"context"
	"time"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/google/uuid"
)

type (
	VacationService interface {
		AddVacation(ctx context.Context, req domain.AddVacationRequest, userID string) (domain.VacationResponse, error)
		ListVacations(ctx context.Context, userID string) ([]domain.VacationResponse, error)
		IsOnVacation(ctx context.Context, userID string, date time.Time) (bool, error)
	}

	vacationService struct {
		vacationRepository VacationRepository
	}
)

func NewVacationService(vacationRepository VacationRepository) VacationService {
	return &vacationService{vacationRepository: vacationRepository}
}

func (s *vacationService) AddVacation(ctx context.Context, req domain.AddVacationRequest, userID string) (domain.VacationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.VacationResponse{}, domain.ErrParseUUID
	}

	start, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		return domain.VacationResponse{}, domain.ErrInvalidDate
	}
	end, err := time.Parse(domain.DateLayout, req.EndDate)
	if err != nil {
		return domain.VacationResponse{}, domain.ErrInvalidDate
	}
	if start.After(end) {
		return domain.VacationResponse{}, domain.ErrVacationRange
	}

	existing, err := s.vacationRepository.GetByUser(ctx, userUUID)
	if err != nil {
		return domain.VacationResponse{}, err
	}
	for _, v := range existing {
		if !start.After(v.EndDate) && !v.StartDate.After(end) {
			return domain.VacationResponse{}, domain.ErrVacationOverlap
		}
	}

	vacation := &entities.Vacation{
		ID:        uuid.New(),
		UserID:    userUUID,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.vacationRepository.Create(ctx, vacation); err != nil {
		return domain.VacationResponse{}, err
	}

	return toVacationResponse(vacation), nil
}

func (s *vacationService) ListVacations(ctx context.Context, userID string) ([]domain.VacationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	vacations, err := s.vacationRepository.GetByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.VacationResponse, 0, len(vacations))
	for _, v := range vacations {
		responses = append(responses, toVacationResponse(v))
	}
	return responses, nil
}

// IsOnVacation reports whether date falls inside any of the user's stored
// intervals, both ends inclusive.
func (s *vacationService) IsOnVacation(ctx context.Context, userID string, date time.Time) (bool, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, domain.ErrParseUUID
	}

	count, err := s.vacationRepository.CountCovering(ctx, userUUID, date)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func toVacationResponse(vacation *entities.Vacation) domain.VacationResponse {
	return domain.VacationResponse{
		ID:        vacation.ID.String(),
		StartDate: vacation.StartDate.Format(domain.DateLayout),
		EndDate:   vacation.EndDate.Format(domain.DateLayout),
		CreatedAt: vacation.CreatedAt,
	}
}
