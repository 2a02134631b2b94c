package vacation

import (
	"context"
	"time"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	VacationRepository interface {
		Create(ctx context.Context, vacation *entities.Vacation) error
		GetByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Vacation, error)
		CountCovering(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error)
		UserIDsOnVacation(ctx context.Context, date time.Time) ([]uuid.UUID, error)
	}

	vacationRepository struct {
		db *gorm.DB
	}
)

func NewVacationRepository(db *gorm.DB) VacationRepository {
	return &vacationRepository{db: db}
}

// Create re-checks the no-overlap rule inside the transaction. Two intervals
// overlap when start1 <= end2 and start2 <= end1, both ends inclusive. The
// user row is locked FOR UPDATE first so concurrent adds for the same user
// queue up; without it both could count zero overlaps and both insert.
func (r *vacationRepository) Create(ctx context.Context, vacation *entities.Vacation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entities.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", vacation.UserID).
			First(&user).Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&entities.Vacation{}).
			Where("user_id = ? AND start_date <= ? AND end_date >= ?",
				vacation.UserID, vacation.EndDate, vacation.StartDate).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrVacationOverlap
		}
		return tx.Create(vacation).Error
	})
}

func (r *vacationRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Vacation, error) {
	var vacations []*entities.Vacation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date asc").
		Find(&vacations).Error; err != nil {
		return nil, err
	}
	return vacations, nil
}

func (r *vacationRepository) CountCovering(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Vacation{}).
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, date, date).
		Count(&count).Error
	return count, err
}

func (r *vacationRepository) UserIDsOnVacation(ctx context.Context, date time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&entities.Vacation{}).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Distinct().
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
