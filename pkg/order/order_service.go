package order

import (
	"context"
	"errors"
	"time"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/esraghu/milk-delivery-app/pkg/product"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (domain.OrderResponse, error)
		ListOrders(ctx context.Context, userID string, page, limit int) ([]domain.OrderResponse, int64, error)
	}

	orderService struct {
		orderRepository   OrderRepository
		productRepository product.ProductRepository
	}
)

func NewOrderService(orderRepository OrderRepository, productRepository product.ProductRepository) OrderService {
	return &orderService{
		orderRepository:   orderRepository,
		productRepository: productRepository,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (domain.OrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrInvalidDate
	}
	if date.Before(today()) {
		return domain.OrderResponse{}, domain.ErrPastOrderDate
	}

	if len(req.Items) == 0 {
		return domain.OrderResponse{}, domain.ErrEmptyOrder
	}

	quantities := make(map[uuid.UUID]int)
	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.OrderResponse{}, domain.ErrInvalidQuantity
		}
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return domain.OrderResponse{}, domain.ErrParseUUID
		}
		if _, seen := quantities[productID]; !seen {
			ids = append(ids, productID)
		}
		quantities[productID] += item.Quantity
	}

	products, err := s.productRepository.GetByIDs(ctx, ids)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	productsByID := make(map[uuid.UUID]*entities.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := productsByID[id]; !ok {
			return domain.OrderResponse{}, domain.ErrUnknownProduct
		}
	}

	if _, err := s.orderRepository.GetByUserAndDate(ctx, userUUID, date); err == nil {
		return domain.OrderResponse{}, domain.ErrOrderDateTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.OrderResponse{}, err
	}

	order := &entities.Order{
		ID:      uuid.New(),
		UserID:  userUUID,
		Date:    date,
		IsAdhoc: true,
		Status:  entities.OrderStatusPending,
	}
	for _, id := range ids {
		order.Items = append(order.Items, &entities.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: id,
			Quantity:  quantities[id],
			Product:   productsByID[id],
		})
	}

	if err := s.orderRepository.Create(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}

	return toOrderResponse(order), nil
}

func (s *orderService) ListOrders(ctx context.Context, userID string, page, limit int) ([]domain.OrderResponse, int64, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, domain.ErrParseUUID
	}

	orders, count, err := s.orderRepository.GetByUser(ctx, userUUID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}
	return responses, count, nil
}

// today is the UTC calendar date; request dates parse as UTC midnight, so the
// past-date cutoff uses the same clock regardless of the server's timezone.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func toOrderResponse(order *entities.Order) domain.OrderResponse {
	items := make([]domain.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		response := domain.OrderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
		}
		if item.Product != nil {
			response.ProductName = item.Product.Name
		}
		items = append(items, response)
	}

	return domain.OrderResponse{
		ID:        order.ID.String(),
		Date:      order.Date.Format(domain.DateLayout),
		IsAdhoc:   order.IsAdhoc,
		Status:    order.Status,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}
