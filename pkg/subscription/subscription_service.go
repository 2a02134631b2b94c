package subscription

import (
	"context"
	"errors"
	"sort"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/esraghu/milk-delivery-app/pkg/product"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SubscriptionService interface {
		GetSubscription(ctx context.Context, userID string) (*domain.SubscriptionResponse, error)
		SetSubscription(ctx context.Context, req domain.SetSubscriptionRequest, userID string) (domain.SubscriptionResponse, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		productRepository      product.ProductRepository
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository, productRepository product.ProductRepository) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		productRepository:      productRepository,
	}
}

// GetSubscription returns (nil, nil) when the user has never subscribed or the
// subscription was cancelled. Callers treat that as an empty result, not a fault.
func (s *subscriptionService) GetSubscription(ctx context.Context, userID string) (*domain.SubscriptionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	subscription, err := s.subscriptionRepository.GetActiveByUser(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	response := toSubscriptionResponse(subscription)
	return &response, nil
}

func (s *subscriptionService) SetSubscription(ctx context.Context, req domain.SetSubscriptionRequest, userID string) (domain.SubscriptionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscriptionResponse{}, domain.ErrParseUUID
	}

	lines, err := mergeLines(req.Items)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	products, err := s.lookupProducts(ctx, lines)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = entities.FrequencyDaily
	}

	subscription := &entities.Subscription{
		ID:        uuid.New(),
		UserID:    userUUID,
		Frequency: frequency,
		IsActive:  true,
	}
	for _, line := range lines {
		subscription.Items = append(subscription.Items, &entities.SubscriptionItem{
			ID:             uuid.New(),
			SubscriptionID: subscription.ID,
			ProductID:      line.productID,
			Quantity:       line.quantity,
		})
	}

	if err := s.subscriptionRepository.Replace(ctx, subscription); err != nil {
		return domain.SubscriptionResponse{}, err
	}

	for _, item := range subscription.Items {
		item.Product = products[item.ProductID]
	}
	return toSubscriptionResponse(subscription), nil
}

type mergedLine struct {
	productID uuid.UUID
	quantity  int
}

// mergeLines collapses duplicate product lines by summing their quantities,
// so the stored line set never has two entries for one product.
func mergeLines(items []domain.LineRequest) ([]mergedLine, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyLineSet
	}

	quantities := make(map[uuid.UUID]int)
	order := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		if _, seen := quantities[productID]; !seen {
			order = append(order, productID)
		}
		quantities[productID] += item.Quantity
	}

	sort.Slice(order, func(i, j int) bool { return order[i].String() < order[j].String() })

	lines := make([]mergedLine, 0, len(order))
	for _, productID := range order {
		lines = append(lines, mergedLine{productID: productID, quantity: quantities[productID]})
	}
	return lines, nil
}

func (s *subscriptionService) lookupProducts(ctx context.Context, lines []mergedLine) (map[uuid.UUID]*entities.Product, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.productID)
	}

	products, err := s.productRepository.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, line := range lines {
		if _, ok := byID[line.productID]; !ok {
			return nil, domain.ErrUnknownProduct
		}
	}
	return byID, nil
}

func toSubscriptionResponse(subscription *entities.Subscription) domain.SubscriptionResponse {
	items := make([]domain.SubscriptionItemResponse, 0, len(subscription.Items))
	for _, item := range subscription.Items {
		response := domain.SubscriptionItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
		}
		if item.Product != nil {
			response.ProductName = item.Product.Name
		}
		items = append(items, response)
	}

	return domain.SubscriptionResponse{
		ID:        subscription.ID.String(),
		Frequency: subscription.Frequency,
		IsActive:  subscription.IsActive,
		Items:     items,
		CreatedAt: subscription.CreatedAt,
	}
}
