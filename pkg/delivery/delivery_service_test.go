package delivery_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/esraghu/milk-delivery-app/pkg/delivery"
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

func (f *fakeSubscriptionRepo) Replace(ctx context.Context, subscription *entities.Subscription) error {
	for _, s := range f.subscriptions {
		if s.UserID == subscription.UserID {
			s.IsActive = false
		}
	}
	f.subscriptions = append(f.subscriptions, subscription)
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

type fakeOrderRepo struct {
	orders []*entities.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entities.Order) error {
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entities.Order, error) {
	for _, o := range f.orders {
		if o.UserID == userID && o.Date.Equal(date) {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.Order, int64, error) {
	var orders []*entities.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, int64(len(orders)), nil
}

func (f *fakeOrderRepo) GetAdhocByDate(ctx context.Context, date time.Time) ([]*entities.Order, error) {
	var orders []*entities.Order
	for _, o := range f.orders {
		if o.IsAdhoc && o.Date.Equal(date) && o.Status != entities.OrderStatusCancelled {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

type fakeVacationRepo struct {
	vacations []*entities.Vacation
}

func (f *fakeVacationRepo) Create(ctx context.Context, vacation *entities.Vacation) error {
	f.vacations = append(f.vacations, vacation)
	return nil
}

func (f *fakeVacationRepo) GetByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Vacation, error) {
	var vacations []*entities.Vacation
	for _, v := range f.vacations {
		if v.UserID == userID {
			vacations = append(vacations, v)
		}
	}
	return vacations, nil
}

func (f *fakeVacationRepo) CountCovering(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error) {
	var count int64
	for _, v := range f.vacations {
		if v.UserID == userID && !v.StartDate.After(date) && !date.After(v.EndDate) {
			count++
		}
	}
	return count, nil
}

func (f *fakeVacationRepo) UserIDsOnVacation(ctx context.Context, date time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, v := range f.vacations {
		if !v.StartDate.After(date) && !date.After(v.EndDate) {
			ids = append(ids, v.UserID)
		}
	}
	return ids, nil
}

type fakeUserRepo struct {
	users []*entities.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error) {
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var users []*entities.User
	for _, u := range f.users {
		if wanted[u.ID] {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]*entities.User, error) {
	return f.users, nil
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

type fixture struct {
	subscriptions *fakeSubscriptionRepo
	orders        *fakeOrderRepo
	vacations     *fakeVacationRepo
	users         *fakeUserRepo
	products      *fakeProductRepo
	service       delivery.DeliveryService

	milk *entities.Product
	curd *entities.Product
}

func newFixture() *fixture {
	f := &fixture{
		subscriptions: &fakeSubscriptionRepo{},
		orders:        &fakeOrderRepo{},
		vacations:     &fakeVacationRepo{},
		users:         &fakeUserRepo{},
		products:      &fakeProductRepo{},
		milk:          &entities.Product{ID: uuid.New(), Name: "Milk", Price: 25.0},
		curd:          &entities.Product{ID: uuid.New(), Name: "Curd", Price: 15.0},
	}
	f.products.products = []*entities.Product{f.milk, f.curd}
	f.service = delivery.NewDeliveryService(f.subscriptions, f.orders, f.vacations, f.users, f.products)
	return f
}

func (f *fixture) addResident(name, houseNumber string) *entities.User {
	user := &entities.User{
		ID:          uuid.New(),
		Name:        name,
		Email:       name + "@example.com",
		HouseNumber: houseNumber,
		Role:        domain.RoleResident,
	}
	f.users.users = append(f.users.users, user)
	return user
}

func (f *fixture) addSubscription(userID uuid.UUID, lines map[*entities.Product]int) {
	subscription := &entities.Subscription{
		ID:        uuid.New(),
		UserID:    userID,
		Frequency: entities.FrequencyDaily,
		IsActive:  true,
	}
	for product, quantity := range lines {
		subscription.Items = append(subscription.Items, &entities.SubscriptionItem{
			ID:             uuid.New(),
			SubscriptionID: subscription.ID,
			ProductID:      product.ID,
			Quantity:       quantity,
		})
	}
	f.subscriptions.subscriptions = append(f.subscriptions.subscriptions, subscription)
}

func (f *fixture) addAdhocOrder(userID uuid.UUID, date time.Time, status string, lines map[*entities.Product]int) {
	order := &entities.Order{
		ID:      uuid.New(),
		UserID:  userID,
		Date:    date,
		IsAdhoc: true,
		Status:  status,
	}
	for product, quantity := range lines {
		order.Items = append(order.Items, &entities.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  quantity,
		})
	}
	f.orders.orders = append(f.orders.orders, order)
}

func (f *fixture) addVacation(userID uuid.UUID, start, end time.Time) {
	f.vacations.vacations = append(f.vacations.vacations, &entities.Vacation{
		ID:        uuid.New(),
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		t.Fatalf("parsing date %q: %v", value, err)
	}
	return parsed
}

func findDelivery(manifest domain.DailyManifestResponse, userID uuid.UUID) (domain.ResidentDelivery, bool) {
	for _, d := range manifest.Deliveries {
		if d.UserID == userID.String() {
			return d, true
		}
	}
	return domain.ResidentDelivery{}, false
}

func findItem(items []domain.DeliveryLineItem, productID uuid.UUID) (domain.DeliveryLineItem, bool) {
	for _, item := range items {
		if item.ProductID == productID.String() {
			return item, true
		}
	}
	return domain.DeliveryLineItem{}, false
}

func TestBuildManifest_AdhocAddsOnTopOfSubscription(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	day := date(t, "2024-07-01")

	r1 := f.addResident("Radha", "12A")
	f.addSubscription(r1.ID, map[*entities.Product]int{f.milk: 2, f.curd: 1})
	f.addAdhocOrder(r1.ID, day, entities.OrderStatusPending, map[*entities.Product]int{f.milk: 1})

	manifest, err := f.service.BuildManifest(ctx, day)
	if err != nil {
		t.Fatalf("building manifest: %v", err)
	}

	delivery, ok := findDelivery(manifest, r1.ID)
	if !ok {
		t.Fatalf("expected delivery for resident, got none")
	}
	if len(delivery.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(delivery.Items))
	}

	milkItem, ok := findItem(delivery.Items, f.milk.ID)
	if !ok || milkItem.Quantity != 3 {
		t.Errorf("expected milk quantity 3, got %+v", milkItem)
	}
	curdItem, ok := findItem(delivery.Items, f.curd.ID)
	if !ok || curdItem.Quantity != 1 {
		t.Errorf("expected curd quantity 1, got %+v", curdItem)
	}
}

func TestBuildManifest_VacationSuppressesSubscription(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	r2 := f.addResident("Suresh", "4B")
	f.addSubscription(r2.ID, map[*entities.Product]int{f.milk: 1})
	f.addVacation(r2.ID, date(t, "2024-07-01"), date(t, "2024-07-03"))

	manifest, err := f.service.BuildManifest(ctx, date(t, "2024-07-02"))
	if err != nil {
		t.Fatalf("building manifest: %v", err)
	}

	if _, ok := findDelivery(manifest, r2.ID); ok {
		t.Errorf("expected resident on vacation to be excluded")
	}
	if len(manifest.Deliveries) != 0 {
		t.Errorf("expected no deliveries, got %d", len(manifest.Deliveries))
	}
	if len(manifest.ProductTotals) != 0 {
		t.Errorf("expected no product totals, got %d", len(manifest.ProductTotals))
	}
}

func TestBuildManifest_AdhocStandsAloneWithoutSubscription(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	day := date(t, "2024-07-01")

	r3 := f.addResident("Meena", "7C")
	f.addAdhocOrder(r3.ID, day, entities.OrderStatusPending, map[*entities.Product]int{f.curd: 2})

	manifest, err := f.service.BuildManifest(ctx, day)
	if err != nil {
		t.Fatalf("building manifest: %v", err)
	}

	delivery, ok := findDelivery(manifest, r3.ID)
	if !ok {
		t.Fatalf("expected delivery for resident with ad-hoc order only")
	}
	curdItem, ok := findItem(delivery.Items, f.curd.ID)
	if !ok || curdItem.Quantity != 2 {
		t.Errorf("expected curd quantity 2, got %+v", curdItem)
	}
}

func TestBuildManifest_VacationDoesNotSuppressAdhocOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	day := date(t, "2024-07-02")

	resident := f.addResident("Anil", "3A")
	f.addSubscription(resident.ID, map[*entities.Product]int{f.milk: 2})
	f.addVacation(resident.ID, date(t, "2024-07-01"), date(t, "2024-07-03"))
	f.addAdhocOrder(resident.ID, day, entities.OrderStatusPending, map[*entities.Product]int{f.curd: 1})

	manifest, err := f.service.BuildManifest(ctx, day)
	if err != nil {
		t.Fatalf("building manifest: %v", err)
	}

	delivery, ok := findDelivery(manifest, resident.ID)
	if !ok {
		t.Fatalf("expected the ad-hoc order to go out despite the vacation")
	}
	if len(delivery.Items) != 1 {
		t.Fatalf("expected only the ad-hoc line, got %d items", len(delivery.Items))
	}
	if _, ok := findItem(delivery.Items, f.milk.ID); ok {
		t.Errorf("subscription milk must be suppressed on a vacation day")
	}
}

func TestBuildManifest_SkipsCancelledOrders(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	day := date(t, "2024-07-01")

	resident := f.addResident("Kiran", "9D")
	f.addAdhocOrder(resident.ID, day, entities.OrderStatusCancelled, map[*entities.Product]int{f.milk: 5})

	manifest, err := f.service.BuildManifest(ctx, day)
	if err != nil {
		t.Fatalf("building manifest: %v", err)
	}

	if len(manifest.Deliveries) != 0 {
		t.Errorf("expected cancelled order to be excluded, got %d deliveries", len(manifest.Deliveries))
	}
}

func TestBuildManifest_ProductTotalsMatchPerResidentSums(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	day := date(t, "2024-07-01")

	r1 := f.addResident("Radha", "12A")
	f.addSubscription(r1.ID, map[*entities.Product]int{f.milk: 2, f.curd: 1})
	r2 := f.addResident("Meena", "7C")
	f.addSubscription(r2.ID, map[*entities.Product]int{f.milk: 1})
	f.addAdhocOrder(r2.ID, day, entities.OrderStatusPending, map[*entities.Product]int{f.milk: 2, f.curd: 3})

	manifest, err := f.service.BuildManifest(ctx, day)
	if err != nil {
		t.Fatalf("building manifest: %v", err)
	}

	sums := make(map[string]int)
	for _, delivery := range manifest.Deliveries {
		for _, item := range delivery.Items {
			sums[item.ProductID] += item.Quantity
		}
	}

	if len(manifest.ProductTotals) != len(sums) {
		t.Fatalf("expected %d product totals, got %d", len(sums), len(manifest.ProductTotals))
	}
	for _, total := range manifest.ProductTotals {
		if sums[total.ProductID] != total.TotalQuantity {
			t.Errorf("product %s: total %d does not match per-resident sum %d",
				total.ProductName, total.TotalQuantity, sums[total.ProductID])
		}
	}

	for _, total := range manifest.ProductTotals {
		switch total.ProductID {
		case f.milk.ID.String():
			if total.TotalQuantity != 5 {
				t.Errorf("expected milk total 5, got %d", total.TotalQuantity)
			}
		case f.curd.ID.String():
			if total.TotalQuantity != 4 {
				t.Errorf("expected curd total 4, got %d", total.TotalQuantity)
			}
		}
	}
}

func TestBuildManifest_Idempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	day := date(t, "2024-07-01")

	r1 := f.addResident("Radha", "12A")
	f.addSubscription(r1.ID, map[*entities.Product]int{f.milk: 2, f.curd: 1})
	r2 := f.addResident("Meena", "7C")
	f.addAdhocOrder(r2.ID, day, entities.OrderStatusPending, map[*entities.Product]int{f.curd: 2})

	first, err := f.service.BuildManifest(ctx, day)
	if err != nil {
		t.Fatalf("building manifest: %v", err)
	}
	second, err := f.service.BuildManifest(ctx, day)
	if err != nil {
		t.Fatalf("building manifest again: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical manifests for unchanged stores:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestBuildManifest_MergesDuplicateSubscriptionLines(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	day := date(t, "2024-07-01")

	resident := f.addResident("Radha", "12A")
	// Two stored lines for one product should be structurally impossible;
	// the builder still merges them rather than emit duplicates.
	subscription := &entities.Subscription{
		ID:        uuid.New(),
		UserID:    resident.ID,
		Frequency: entities.FrequencyDaily,
		IsActive:  true,
	}
	subscription.Items = []*entities.SubscriptionItem{
		{ID: uuid.New(), SubscriptionID: subscription.ID, ProductID: f.milk.ID, Quantity: 3},
		{ID: uuid.New(), SubscriptionID: subscription.ID, ProductID: f.milk.ID, Quantity: 4},
	}
	f.subscriptions.subscriptions = append(f.subscriptions.subscriptions, subscription)

	manifest, err := f.service.BuildManifest(ctx, day)
	if err != nil {
		t.Fatalf("building manifest: %v", err)
	}

	delivery, ok := findDelivery(manifest, resident.ID)
	if !ok {
		t.Fatalf("expected delivery for resident")
	}
	if len(delivery.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(delivery.Items))
	}
	if delivery.Items[0].Quantity != 7 {
		t.Errorf("expected merged quantity 7, got %d", delivery.Items[0].Quantity)
	}
}
