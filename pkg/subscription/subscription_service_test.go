package subscription_test

import (
	"context"
	"testing"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/esraghu/milk-delivery-app/pkg/subscription"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeSubscriptionRepo struct {
	subscriptions []*entities.Subscription
}

func (f *fakeSubscriptionRepo) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*entities.Subscription, error) {
	for _, s := range f.subscriptions {
		if s.UserID == userID && s.IsActive {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSubscriptionRepo) Replace(ctx context.Context, sub *entities.Subscription) error {
	for _, s := range f.subscriptions {
		if s.UserID == sub.UserID {
			s.IsActive = false
		}
	}
	f.subscriptions = append(f.subscriptions, sub)
	return nil
}

func (f *fakeSubscriptionRepo) GetAllActive(ctx context.Context) ([]*entities.Subscription, error) {
	var active []*entities.Subscription
	for _, s := range f.subscriptions {
		if s.IsActive {
			active = append(active, s)
		}
	}
	return active, nil
}

type fakeProductRepo struct {
	products []*entities.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entities.Product) error {
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) GetAll(ctx context.Context) ([]*entities.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Product, error) {
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var products []*entities.Product
	for _, p := range f.products {
		if wanted[p.ID] {
			products = append(products, p)
		}
	}
	return products, nil
}

func newService() (subscription.SubscriptionService, *fakeSubscriptionRepo, *entities.Product) {
	milk := &entities.Product{ID: uuid.New(), Name: "Milk", Price: 25.0}
	subscriptionRepo := &fakeSubscriptionRepo{}
	productRepo := &fakeProductRepo{products: []*entities.Product{milk}}
	return subscription.NewSubscriptionService(subscriptionRepo, productRepo), subscriptionRepo, milk
}

func TestSetSubscription_MergesDuplicateProductLines(t *testing.T) {
	service, _, milk := newService()
	ctx := context.Background()
	userID := uuid.New().String()

	res, err := service.SetSubscription(ctx, domain.SetSubscriptionRequest{
		Items: []domain.LineRequest{
			{ProductID: milk.ID.String(), Quantity: 3},
			{ProductID: milk.ID.String(), Quantity: 4},
		},
	}, userID)
	if err != nil {
		t.Fatalf("setting subscription: %v", err)
	}

	if len(res.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(res.Items))
	}
	if res.Items[0].Quantity != 7 {
		t.Errorf("expected merged quantity 7, got %d", res.Items[0].Quantity)
	}
}

func TestSetSubscription_RejectsUnknownProduct(t *testing.T) {
	service, _, _ := newService()
	ctx := context.Background()

	_, err := service.SetSubscription(ctx, domain.SetSubscriptionRequest{
		Items: []domain.LineRequest{
			{ProductID: uuid.New().String(), Quantity: 1},
		},
	}, uuid.New().String())
	if err != domain.ErrUnknownProduct {
		t.Errorf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestSetSubscription_RejectsNonPositiveQuantity(t *testing.T) {
	service, _, milk := newService()
	ctx := context.Background()

	_, err := service.SetSubscription(ctx, domain.SetSubscriptionRequest{
		Items: []domain.LineRequest{
			{ProductID: milk.ID.String(), Quantity: 0},
		},
	}, uuid.New().String())
	if err != domain.ErrInvalidQuantity {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestSetSubscription_RejectsEmptyLineSet(t *testing.T) {
	service, _, _ := newService()
	ctx := context.Background()

	_, err := service.SetSubscription(ctx, domain.SetSubscriptionRequest{}, uuid.New().String())
	if err != domain.ErrEmptyLineSet {
		t.Errorf("expected ErrEmptyLineSet, got %v", err)
	}
}

func TestSetSubscription_ReplacesWholeRecord(t *testing.T) {
	service, repo, milk := newService()
	ctx := context.Background()
	userID := uuid.New().String()

	if _, err := service.SetSubscription(ctx, domain.SetSubscriptionRequest{
		Items: []domain.LineRequest{{ProductID: milk.ID.String(), Quantity: 2}},
	}, userID); err != nil {
		t.Fatalf("setting first subscription: %v", err)
	}

	if _, err := service.SetSubscription(ctx, domain.SetSubscriptionRequest{
		Items: []domain.LineRequest{{ProductID: milk.ID.String(), Quantity: 5}},
	}, userID); err != nil {
		t.Fatalf("setting second subscription: %v", err)
	}

	active, err := repo.GetAllActive(ctx)
	if err != nil {
		t.Fatalf("listing active subscriptions: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected exactly one active subscription, got %d", len(active))
	}
	if active[0].Items[0].Quantity != 5 {
		t.Errorf("expected the replacement to win, got quantity %d", active[0].Items[0].Quantity)
	}
}

func TestGetSubscription_NoneIsEmptyResultNotError(t *testing.T) {
	service, _, _ := newService()
	ctx := context.Background()

	res, err := service.GetSubscription(ctx, uuid.New().String())
	if err != nil {
		t.Fatalf("expected no error for never-subscribed user, got %v", err)
	}
	if res != nil {
		t.Errorf("expected nil result for never-subscribed user, got %+v", res)
	}
}

func TestGetSubscription_ReturnsActiveSubscription(t *testing.T) {
	service, _, milk := newService()
	ctx := context.Background()
	userID := uuid.New().String()

	if _, err := service.SetSubscription(ctx, domain.SetSubscriptionRequest{
		Items: []domain.LineRequest{{ProductID: milk.ID.String(), Quantity: 2}},
	}, userID); err != nil {
		t.Fatalf("setting subscription: %v", err)
	}

	res, err := service.GetSubscription(ctx, userID)
	if err != nil {
		t.Fatalf("getting subscription: %v", err)
	}
	if res == nil {
		t.Fatalf("expected a subscription, got nil")
	}
	if res.Frequency != entities.FrequencyDaily {
		t.Errorf("expected daily frequency default, got %q", res.Frequency)
	}
	if len(res.Items) != 1 || res.Items[0].Quantity != 2 {
		t.Errorf("unexpected items: %+v", res.Items)
	}
}
