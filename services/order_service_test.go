package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-store/models"
	"school-store/repositories"
)

func checkoutCatalog() *fakeProductStore {
	return newFakeProductStore(
		models.Product{
			ID: 1, Name: "Peanut Chiki", BasePrice: 9.00, Category: "chiki",
		},
		models.Product{
			ID: 2, Name: "Socks", BasePrice: 80.00, Category: "Dress",
			Variants: []models.Variant{
				{Size: "S (1-3)", Price: 80},
				{Size: "L (7-10)", Price: 90},
			},
		},
	)
}

func TestOrderCreateRecomputesTotal(t *testing.T) {
	orders := newFakeOrderStore()
	svc := NewOrderService(orders, checkoutCatalog(), nil, nil)

	req := models.CreateOrderRequest{
		OrderID: "ORD-TEST00001",
		Items: []models.OrderItemRequest{
			{ProductID: 1, Qty: 2},
			{ProductID: 2, Qty: 1, Size: "L (7-10)"},
		},
		Total:           108.00,
		Student:         "Aarav",
		StudentClass:    "3rd",
		StudentDivision: "B",
	}

	order, created, err := svc.Create(context.Background(), 7, "", req)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "ORD-TEST00001", order.OrderID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.InDelta(t, 108.00, order.Total, 0.001)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Peanut Chiki", order.Items[0].Name)
	assert.InDelta(t, 9.00, order.Items[0].Price, 0.001)
	assert.InDelta(t, 90.00, order.Items[1].Price, 0.001)
}

func TestOrderCreateRejectsTotalMismatch(t *testing.T) {
	svc := NewOrderService(newFakeOrderStore(), checkoutCatalog(), nil, nil)

	req := models.CreateOrderRequest{
		Items: []models.OrderItemRequest{{ProductID: 1, Qty: 2}},
		Total: 5.00, // catalog says 18.00
	}

	_, _, err := svc.Create(context.Background(), 7, "", req)
	assert.ErrorIs(t, err, ErrTotalMismatch)
}

func TestOrderCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateOrderRequest
		want error
	}{
		{
			name: "no items",
			req:  models.CreateOrderRequest{},
			want: ErrNoItems,
		},
		{
			name: "unknown product",
			req: models.CreateOrderRequest{
				Items: []models.OrderItemRequest{{ProductID: 99, Qty: 1}},
			},
			want: ErrProductNotFound,
		},
		{
			name: "unknown variant",
			req: models.CreateOrderRequest{
				Items: []models.OrderItemRequest{{ProductID: 2, Qty: 1, Size: "XXL"}},
			},
			want: ErrUnknownVariant,
		},
		{
			name: "sized product without a size",
			req: models.CreateOrderRequest{
				Items: []models.OrderItemRequest{{ProductID: 2, Qty: 1}},
				Total: 80.00,
			},
			want: ErrUnknownVariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrderService(newFakeOrderStore(), checkoutCatalog(), nil, nil)
			_, _, err := svc.Create(context.Background(), 7, "", tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOrderCreateIdempotentReplay(t *testing.T) {
	orders := newFakeOrderStore()
	svc := NewOrderService(orders, checkoutCatalog(), nil, nil)

	req := models.CreateOrderRequest{
		OrderID: "ORD-REPLAY001",
		Items:   []models.OrderItemRequest{{ProductID: 1, Qty: 1}},
		Total:   9.00,
	}

	first, created, err := svc.Create(context.Background(), 7, "", req)
	require.NoError(t, err)
	assert.True(t, created)

	replay, created, err := svc.Create(context.Background(), 7, "", req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, replay.ID)
	assert.Len(t, orders.orders, 1)

	// Same id from a different account is rejected outright.
	_, _, err = svc.Create(context.Background(), 8, "", req)
	assert.ErrorIs(t, err, ErrOrderIDTaken)
}

func TestOrderCreateClearsCart(t *testing.T) {
	catalog := checkoutCatalog()
	cartStore := repositories.NewMemoryCartStore()
	cartSvc := NewCartService(cartStore, catalog)
	svc := NewOrderService(newFakeOrderStore(), catalog, cartStore, nil)
	ctx := context.Background()

	_, err := cartSvc.Add(ctx, 7, 1, "")
	require.NoError(t, err)
	_, err = cartSvc.Add(ctx, 8, 1, "")
	require.NoError(t, err)

	_, created, err := svc.Create(ctx, 7, "", models.CreateOrderRequest{
		Items: []models.OrderItemRequest{{ProductID: 1, Qty: 1}},
		Total: 9.00,
	})
	require.NoError(t, err)
	require.True(t, created)

	cart, err := cartSvc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "checkout must empty the purchaser's cart")

	other, err := cartSvc.Get(ctx, 8)
	require.NoError(t, err)
	assert.Len(t, other.Items, 1, "other carts stay untouched")
}

// blindOrderStore simulates the race window between the idempotency read
// and the insert: the first lookups miss even though the row exists.
type blindOrderStore struct {
	*fakeOrderStore
	misses int
}

func (s *blindOrderStore) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	if s.misses > 0 {
		s.misses--
		return nil, nil
	}
	return s.fakeOrderStore.FindByOrderID(ctx, orderID)
}

func TestOrderCreateConcurrentReplayHitsUniqueIndex(t *testing.T) {
	orders := newFakeOrderStore()
	svc := NewOrderService(orders, checkoutCatalog(), nil, nil)
	ctx := context.Background()

	req := models.CreateOrderRequest{
		OrderID: "ORD-RACE00001",
		Items:   []models.OrderItemRequest{{ProductID: 1, Qty: 1}},
		Total:   9.00,
	}
	first, created, err := svc.Create(ctx, 7, "", req)
	require.NoError(t, err)
	require.True(t, created)

	// The losing side of the race: its read missed, its insert collides.
	racing := NewOrderService(&blindOrderStore{fakeOrderStore: orders, misses: 1}, checkoutCatalog(), nil, nil)
	replay, created, err := racing.Create(ctx, 7, "", req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, replay.ID)
	assert.Len(t, orders.orders, 1)

	// Same race from another account still ends in rejection.
	racing = NewOrderService(&blindOrderStore{fakeOrderStore: orders, misses: 1}, checkoutCatalog(), nil, nil)
	_, _, err = racing.Create(ctx, 8, "", req)
	assert.ErrorIs(t, err, ErrOrderIDTaken)
}

func TestOrderCreateGeneratesOrderID(t *testing.T) {
	svc := NewOrderService(newFakeOrderStore(), checkoutCatalog(), nil, nil)

	req := models.CreateOrderRequest{
		Items: []models.OrderItemRequest{{ProductID: 1, Qty: 1}},
		Total: 9.00,
	}

	order, created, err := svc.Create(context.Background(), 7, "", req)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Regexp(t, `^ORD-[0-9A-Z]{9}$`, order.OrderID)
}

func TestOrderCreateSendsConfirmation(t *testing.T) {
	mailer := newFakeMailer()
	svc := NewOrderService(newFakeOrderStore(), checkoutCatalog(), nil, mailer)

	req := models.CreateOrderRequest{
		Items: []models.OrderItemRequest{{ProductID: 1, Qty: 1}},
		Total: 9.00,
	}

	_, _, err := svc.Create(context.Background(), 7, "parent@example.com", req)
	require.NoError(t, err)

	select {
	case to := <-mailer.sent:
		assert.Equal(t, "parent@example.com", to)
	case <-time.After(time.Second):
		t.Fatal("confirmation email never sent")
	}
}

func TestOrderListScoping(t *testing.T) {
	orders := newFakeOrderStore()
	svc := NewOrderService(orders, checkoutCatalog(), nil, nil)

	for _, userID := range []int{1, 1, 2} {
		_, _, err := svc.Create(context.Background(), userID, "", models.CreateOrderRequest{
			Items: []models.OrderItemRequest{{ProductID: 1, Qty: 1}},
			Total: 9.00,
		})
		require.NoError(t, err)
	}

	own, err := svc.List(context.Background(), 1, false)
	require.NoError(t, err)
	assert.Len(t, own, 2)

	all, err := svc.List(context.Background(), 1, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOrderUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{name: "pending to processing", from: models.StatusPending, to: models.StatusProcessing},
		{name: "processing to shipped", from: models.StatusProcessing, to: models.StatusShipped},
		{name: "shipped to delivered", from: models.StatusShipped, to: models.StatusDelivered},
		{name: "pending to cancelled", from: models.StatusPending, to: models.StatusCancelled},
		{name: "same status is a no-op", from: models.StatusProcessing, to: models.StatusProcessing},
		{name: "skipping a step", from: models.StatusPending, to: models.StatusDelivered, wantErr: ErrIllegalTransition},
		{name: "walking backwards", from: models.StatusShipped, to: models.StatusPending, wantErr: ErrIllegalTransition},
		{name: "delivered is terminal", from: models.StatusDelivered, to: models.StatusCancelled, wantErr: ErrIllegalTransition},
		{name: "cancelled is terminal", from: models.StatusCancelled, to: models.StatusPending, wantErr: ErrIllegalTransition},
		{name: "unknown status value", from: models.StatusPending, to: "Lost", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := newFakeOrderStore()
			orders.orders = []models.Order{{ID: 1, OrderID: "ORD-FSM000001", UserID: 7, Status: tt.from}}
			orders.nextID = 2

			svc := NewOrderService(orders, checkoutCatalog(), nil, nil)
			order, err := svc.UpdateStatus(context.Background(), 1, tt.to)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, orders.orders[0].Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, order.Status)
		})
	}
}

func TestOrderUpdateStatusNotFound(t *testing.T) {
	svc := NewOrderService(newFakeOrderStore(), checkoutCatalog(), nil, nil)

	_, err := svc.UpdateStatus(context.Background(), 42, models.StatusProcessing)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
