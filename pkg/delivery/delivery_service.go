package delivery

import (
	"context"
	"sort"
	"time"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/esraghu/milk-delivery-app/pkg/order"
	"github.com/esraghu/milk-delivery-app/pkg/product"
	"github.com/esraghu/milk-delivery-app/pkg/subscription"
	"github.com/esraghu/milk-delivery-app/pkg/user"
	"github.com/esraghu/milk-delivery-app/pkg/vacation"
	"github.com/google/uuid"
)

type (
	// DeliveryService derives the day's manifest from the subscription,
	// order and vacation stores. It performs no writes; building the same
	// date twice over unchanged stores returns identical results.
	DeliveryService interface {
		BuildManifest(ctx context.Context, date time.Time) (domain.DailyManifestResponse, error)
	}

	deliveryService struct {
		subscriptionRepository subscription.SubscriptionRepository
		orderRepository        order.OrderRepository
		vacationRepository     vacation.VacationRepository
		userRepository         user.UserRepository
		productRepository      product.ProductRepository
	}
)

func NewDeliveryService(
	subscriptionRepository subscription.SubscriptionRepository,
	orderRepository order.OrderRepository,
	vacationRepository vacation.VacationRepository,
	userRepository user.UserRepository,
	productRepository product.ProductRepository,
) DeliveryService {
	return &deliveryService{
		subscriptionRepository: subscriptionRepository,
		orderRepository:        orderRepository,
		vacationRepository:     vacationRepository,
		userRepository:         userRepository,
		productRepository:      productRepository,
	}
}

func (s *deliveryService) BuildManifest(ctx context.Context, date time.Time) (domain.DailyManifestResponse, error) {
	subscriptions, err := s.subscriptionRepository.GetAllActive(ctx)
	if err != nil {
		return domain.DailyManifestResponse{}, err
	}

	vacationIDs, err := s.vacationRepository.UserIDsOnVacation(ctx, date)
	if err != nil {
		return domain.DailyManifestResponse{}, err
	}
	onVacation := make(map[uuid.UUID]bool, len(vacationIDs))
	for _, id := range vacationIDs {
		onVacation[id] = true
	}

	// Baseline: every active subscription whose owner is not on vacation.
	// Vacation is all-or-nothing for the day; it never scales quantities.
	perResident := make(map[uuid.UUID]map[uuid.UUID]int)
	for _, sub := range subscriptions {
		if onVacation[sub.UserID] {
			continue
		}
		mergeLines(perResident, sub.UserID, sub.Items)
	}

	// Overlay: ad-hoc orders add on top of the baseline. An order placed for
	// a vacation day still goes out; vacation only suppresses the recurring
	// delivery.
	orders, err := s.orderRepository.GetAdhocByDate(ctx, date)
	if err != nil {
		return domain.DailyManifestResponse{}, err
	}
	for _, o := range orders {
		mergeOrderLines(perResident, o.UserID, o.Items)
	}

	return s.assemble(ctx, date, perResident)
}

func mergeLines(perResident map[uuid.UUID]map[uuid.UUID]int, userID uuid.UUID, items []*entities.SubscriptionItem) {
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		lines := perResident[userID]
		if lines == nil {
			lines = make(map[uuid.UUID]int)
			perResident[userID] = lines
		}
		lines[item.ProductID] += item.Quantity
	}
}

func mergeOrderLines(perResident map[uuid.UUID]map[uuid.UUID]int, userID uuid.UUID, items []*entities.OrderItem) {
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		lines := perResident[userID]
		if lines == nil {
			lines = make(map[uuid.UUID]int)
			perResident[userID] = lines
		}
		lines[item.ProductID] += item.Quantity
	}
}

// assemble labels the merged quantities with resident and product details and
// sorts everything so repeated builds are byte-identical on the wire.
func (s *deliveryService) assemble(ctx context.Context, date time.Time, perResident map[uuid.UUID]map[uuid.UUID]int) (domain.DailyManifestResponse, error) {
	userIDs := make([]uuid.UUID, 0, len(perResident))
	for id := range perResident {
		userIDs = append(userIDs, id)
	}

	users, err := s.userRepository.GetByIDs(ctx, userIDs)
	if err != nil {
		return domain.DailyManifestResponse{}, err
	}
	usersByID := make(map[uuid.UUID]*entities.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	products, err := s.productRepository.GetAll(ctx)
	if err != nil {
		return domain.DailyManifestResponse{}, err
	}
	productNames := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}

	perProduct := make(map[uuid.UUID]int)
	deliveries := make([]domain.ResidentDelivery, 0, len(perResident))
	for userID, lines := range perResident {
		items := make([]domain.DeliveryLineItem, 0, len(lines))
		for productID, quantity := range lines {
			perProduct[productID] += quantity
			items = append(items, domain.DeliveryLineItem{
				ProductID:   productID.String(),
				ProductName: productNames[productID],
				Quantity:    quantity,
			})
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].ProductName != items[j].ProductName {
				return items[i].ProductName < items[j].ProductName
			}
			return items[i].ProductID < items[j].ProductID
		})

		delivery := domain.ResidentDelivery{
			UserID: userID.String(),
			Items:  items,
		}
		if u, ok := usersByID[userID]; ok {
			delivery.Name = u.Name
			delivery.HouseNumber = u.HouseNumber
			delivery.Address = u.Address
		}
		deliveries = append(deliveries, delivery)
	}
	sort.Slice(deliveries, func(i, j int) bool {
		if deliveries[i].HouseNumber != deliveries[j].HouseNumber {
			return deliveries[i].HouseNumber < deliveries[j].HouseNumber
		}
		return deliveries[i].UserID < deliveries[j].UserID
	})

	totals := make([]domain.ProductTotal, 0, len(perProduct))
	for productID, quantity := range perProduct {
		totals = append(totals, domain.ProductTotal{
			ProductID:     productID.String(),
			ProductName:   productNames[productID],
			TotalQuantity: quantity,
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].ProductName != totals[j].ProductName {
			return totals[i].ProductName < totals[j].ProductName
		}
		return totals[i].ProductID < totals[j].ProductID
	})

	return domain.DailyManifestResponse{
		Date:          date.Format(domain.DateLayout),
		Deliveries:    deliveries,
		ProductTotals: totals,
	}, nil
}
