package order

import (
	"context"
	"errors"
	"time"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		Create(ctx context.Context, order *entities.Order) error
		GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entities.Order, error)
		GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.Order, int64, error)
		GetAdhocByDate(ctx context.Context, date time.Time) ([]*entities.Order, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create enforces one order per (user, date). The count is only a fast path:
// two concurrent submissions can both count zero under read committed, so the
// ux_orders_user_date unique index is the authority and its violation maps to
// the same conflict error.
func (r *orderRepository) Create(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Order{}).
			Where("user_id = ? AND date = ?", order.UserID, order.Date).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrOrderDateTaken
		}
		if err := tx.Create(order).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrOrderDateTaken
			}
			return err
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *orderRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.Order, int64, error) {
	var orders []*entities.Order
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.Order{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Items.Product").
		Offset(offset).Limit(limit).
		Order("date desc").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, count, nil
}

func (r *orderRepository) GetAdhocByDate(ctx context.Context, date time.Time) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("date = ? AND is_adhoc = ? AND status <> ?", date, true, entities.OrderStatusCancelled).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
