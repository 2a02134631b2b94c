package subscription

import (
	"context"

	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	SubscriptionRepository interface {
		GetActiveByUser(ctx context.Context, userID uuid.UUID) (*entities.Subscription, error)
		Replace(ctx context.Context, subscription *entities.Subscription) error
		GetAllActive(ctx context.Context) ([]*entities.Subscription, error)
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*entities.Subscription, error) {
	var subscription entities.Subscription
	if err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

// Replace deactivates the user's current subscription and inserts the new one
// in a single transaction. The user row is locked FOR UPDATE first: under read
// committed, deactivate-then-insert alone lets two concurrent replaces each
// miss the other's insert and leave two active rows, so concurrent replaces
// queue on the lock and the later one sees the earlier one's committed row.
func (r *subscriptionRepository) Replace(ctx context.Context, subscription *entities.Subscription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entities.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", subscription.UserID).
			First(&user).Error; err != nil {
			return err
		}
		if err := tx.Model(&entities.Subscription{}).
			Where("user_id = ? AND is_active = ?", subscription.UserID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(subscription).Error
	})
}

func (r *subscriptionRepository) GetAllActive(ctx context.Context) ([]*entities.Subscription, error) {
	var subscriptions []*entities.Subscription
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("is_active = ?", true).
		Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}
