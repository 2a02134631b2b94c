package cancellation

import (
	"context"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CancellationRepository interface {
		Record(ctx context.Context, cancellation *entities.Cancellation) error
		GetByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Cancellation, error)
	}

	cancellationRepository struct {
		db *gorm.DB
	}
)

func NewCancellationRepository(db *gorm.DB) CancellationRepository {
	return &cancellationRepository{db: db}
}

// Record appends the audit row and applies its side effect in one transaction:
// an order cancellation flips the referenced order to cancelled, a subscription
// cancellation deactivates the live subscription. The audit row itself is
// immutable; no update or delete path exists.
func (r *cancellationRepository) Record(ctx context.Context, cancellation *entities.Cancellation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch cancellation.CancellationType {
		case entities.CancellationTypeOrder:
			result := tx.Model(&entities.Order{}).
				Where("id = ? AND user_id = ?", cancellation.ReferenceID, cancellation.UserID).
				Update("status", entities.OrderStatusCancelled)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrOrderNotFound
			}
		case entities.CancellationTypeSubscription:
			if err := tx.Model(&entities.Subscription{}).
				Where("user_id = ? AND is_active = ?", cancellation.UserID, true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(cancellation).Error
	})
}

func (r *cancellationRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Cancellation, error) {
	var cancellations []*entities.Cancellation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&cancellations).Error; err != nil {
		return nil, err
	}
	return cancellations, nil
}
