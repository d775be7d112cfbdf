package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentshop/cart-service/internal/domain/dto"
	"github.com/studentshop/cart-service/internal/domain/model"
	"github.com/studentshop/cart-service/internal/repository"
)

// fakeOrdersRepo is an in-memory OrdersRepositoryInterface with fault
// injection.
type fakeOrdersRepo struct {
	mu        sync.Mutex
	orders    []model.Order
	insertErr error
	seedCount int64
}

func (f *fakeOrdersRepo) Insert(ctx context.Context, order *model.Order) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.orders = append(f.orders, *order)
	return fmt.Sprintf("id-%d", len(f.orders)), nil
}

func (f *fakeOrdersRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if fmt.Sprintf("id-%d", i+1) == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (f *fakeOrdersRepo) GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].OrderNumber == orderNumber {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (f *fakeOrdersRepo) List(ctx context.Context, limit int64) ([]model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeOrdersRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return f.seedCount, nil
}

func validPayment() dto.PaymentInfo {
	return dto.PaymentInfo{Method: "mobile_money", MobileNumber: "+233201234567", Network: "mtn"}
}

func validShipping() *dto.ShippingInfo {
	return &dto.ShippingInfo{
		FirstName: "Ama",
		LastName:  "Mensah",
		Email:     "ama@example.com",
		Street:    "12 Ring Road",
		City:      "Accra",
	}
}

func newCheckoutFixture(t *testing.T, orders repository.OrdersRepositoryInterface) (*CheckoutServiceImpl, CartService) {
	t.Helper()
	carts := NewCartService(nil)
	svc := NewCheckoutService(carts, NewPricingService(), orders)
	return svc, carts
}

// TestCheckoutService_PlaceOrder tests the full order placement flow.
func TestCheckoutService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart is rejected", func(t *testing.T) {
		svc, _ := newCheckoutFixture(t, &fakeOrdersRepo{})

		_, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{Payment: validPayment(), Shipping: validShipping()})

		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("physical cart without shipping is rejected", func(t *testing.T) {
		svc, carts := newCheckoutFixture(t, &fakeOrdersRepo{})
		_, _ = carts.AddItem(ctx, "cart-1", model.CartLine{ProductID: "p1", UnitPrice: d("50"), Quantity: 1})

		_, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{Payment: validPayment()})

		assert.ErrorIs(t, err, ErrShippingRequired)
	})

	t.Run("digital-only cart needs no shipping", func(t *testing.T) {
		repo := &fakeOrdersRepo{}
		svc, carts := newCheckoutFixture(t, repo)
		_, _ = carts.AddItem(ctx, "cart-1", model.CartLine{ProductID: "ebook", UnitPrice: d("15"), Quantity: 1, IsDigital: true})

		order, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{Payment: validPayment()})

		require.NoError(t, err)
		assert.True(t, order.IsDigitalOrder)
		assert.Nil(t, order.ShippingAddress)
		assert.True(t, order.Totals.ShippingCost.Equal(d("0")))
		assert.True(t, order.Totals.GrandTotal.Equal(d("16.875")))
	})

	t.Run("physical order captures address and totals", func(t *testing.T) {
		repo := &fakeOrdersRepo{}
		svc, carts := newCheckoutFixture(t, repo)
		_, _ = carts.AddItem(ctx, "cart-1", model.CartLine{ProductID: "p1", UnitPrice: d("50"), Quantity: 4})

		order, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{Payment: validPayment(), Shipping: validShipping()})

		require.NoError(t, err)
		require.NotNil(t, order.ShippingAddress)
		assert.Equal(t, "Ama", order.ShippingAddress.FirstName)
		assert.False(t, order.IsDigitalOrder)
		assert.True(t, order.Totals.Subtotal.Equal(d("200")))
		assert.True(t, order.Totals.ShippingCost.Equal(d("0")))
		assert.True(t, order.Totals.Tax.Equal(d("25")))
		assert.True(t, order.Totals.GrandTotal.Equal(d("225")))
		assert.Equal(t, model.OrderStatusPending, order.Status)
		assert.Equal(t, model.PaymentStatusPending, order.PaymentStatus)
		require.Len(t, repo.orders, 1)
	})

	t.Run("invalid payment is rejected", func(t *testing.T) {
		svc, carts := newCheckoutFixture(t, &fakeOrdersRepo{})
		_, _ = carts.AddItem(ctx, "cart-1", model.CartLine{ProductID: "p1", UnitPrice: d("50"), Quantity: 1})

		_, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{
			Payment:  dto.PaymentInfo{Method: "card"},
			Shipping: validShipping(),
		})

		var verr *dto.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "payment.card_number", verr.Field)
	})

	t.Run("incomplete shipping address is rejected", func(t *testing.T) {
		svc, carts := newCheckoutFixture(t, &fakeOrdersRepo{})
		_, _ = carts.AddItem(ctx, "cart-1", model.CartLine{ProductID: "p1", UnitPrice: d("50"), Quantity: 1})

		shipping := validShipping()
		shipping.City = ""
		_, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{Payment: validPayment(), Shipping: shipping})

		var verr *dto.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "shipping.city", verr.Field)
	})

	t.Run("cart is cleared after a successful order", func(t *testing.T) {
		svc, carts := newCheckoutFixture(t, &fakeOrdersRepo{})
		_, _ = carts.AddItem(ctx, "cart-1", model.CartLine{ProductID: "p1", UnitPrice: d("50"), Quantity: 1})

		_, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{Payment: validPayment(), Shipping: validShipping()})
		require.NoError(t, err)

		cart, _ := carts.GetCart(ctx, "cart-1")
		assert.True(t, cart.IsEmpty())
	})

	t.Run("cart survives a failed order insert", func(t *testing.T) {
		repo := &fakeOrdersRepo{insertErr: errors.New("write failed")}
		svc, carts := newCheckoutFixture(t, repo)
		_, _ = carts.AddItem(ctx, "cart-1", model.CartLine{ProductID: "p1", UnitPrice: d("50"), Quantity: 1})

		_, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{Payment: validPayment(), Shipping: validShipping()})

		require.Error(t, err)
		cart, _ := carts.GetCart(ctx, "cart-1")
		assert.False(t, cart.IsEmpty(), "cart must not be cleared when the order was not recorded")
	})

	t.Run("nil orders repo returns the order unpersisted", func(t *testing.T) {
		svc, carts := newCheckoutFixture(t, nil)
		_, _ = carts.AddItem(ctx, "cart-1", model.CartLine{ProductID: "p1", UnitPrice: d("50"), Quantity: 1})

		order, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{Payment: validPayment(), Shipping: validShipping()})

		require.NoError(t, err)
		assert.NotEmpty(t, order.OrderNumber)
	})
}

// TestCheckoutService_OrderNumbers tests the monthly sequence.
func TestCheckoutService_OrderNumbers(t *testing.T) {
	ctx := context.Background()

	t.Run("numbers are sequential within a month", func(t *testing.T) {
		svc, carts := newCheckoutFixture(t, &fakeOrdersRepo{})

		var numbers []string
		for i := 0; i < 3; i++ {
			_, _ = carts.AddItem(ctx, "cart-1", model.CartLine{ProductID: "ebook", UnitPrice: d("15"), Quantity: 1, IsDigital: true})
			order, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{Payment: validPayment()})
			require.NoError(t, err)
			numbers = append(numbers, order.OrderNumber)
		}

		prefix := "ORD" + time.Now().Format("200601")
		assert.Equal(t, prefix+"001", numbers[0])
		assert.Equal(t, prefix+"002", numbers[1])
		assert.Equal(t, prefix+"003", numbers[2])
	})

	t.Run("sequence is seeded from existing orders", func(t *testing.T) {
		repo := &fakeOrdersRepo{seedCount: 41}
		svc, carts := newCheckoutFixture(t, repo)
		_, _ = carts.AddItem(ctx, "cart-1", model.CartLine{ProductID: "ebook", UnitPrice: d("15"), Quantity: 1, IsDigital: true})

		order, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{Payment: validPayment()})

		require.NoError(t, err)
		assert.Equal(t, "ORD"+time.Now().Format("200601")+"042", order.OrderNumber)
	})
}

// TestCheckoutService_Lookups tests order retrieval and listing.
func TestCheckoutService_Lookups(t *testing.T) {
	ctx := context.Background()

	t.Run("get and list round-trip", func(t *testing.T) {
		repo := &fakeOrdersRepo{}
		svc, carts := newCheckoutFixture(t, repo)
		_, _ = carts.AddItem(ctx, "cart-1", model.CartLine{ProductID: "ebook", UnitPrice: d("15"), Quantity: 1, IsDigital: true})
		placed, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{Payment: validPayment()})
		require.NoError(t, err)

		got, err := svc.GetOrder(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, placed.OrderNumber, got.OrderNumber)

		orders, err := svc.ListOrders(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("order number identifiers resolve by number", func(t *testing.T) {
		repo := &fakeOrdersRepo{}
		svc, carts := newCheckoutFixture(t, repo)
		_, _ = carts.AddItem(ctx, "cart-1", model.CartLine{ProductID: "ebook", UnitPrice: d("15"), Quantity: 1, IsDigital: true})
		placed, err := svc.PlaceOrder(ctx, "cart-1", dto.CheckoutRequest{Payment: validPayment()})
		require.NoError(t, err)

		got, err := svc.GetOrder(ctx, placed.OrderNumber)
		require.NoError(t, err)
		assert.Equal(t, placed.OrderNumber, got.OrderNumber)

		_, err = svc.GetOrder(ctx, model.OrderNumberPrefix+"209912999")
		assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	})

	t.Run("unknown order reports not found", func(t *testing.T) {
		svc, _ := newCheckoutFixture(t, &fakeOrdersRepo{})

		_, err := svc.GetOrder(ctx, "nope")

		assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	})

	t.Run("nil repo lookups degrade gracefully", func(t *testing.T) {
		svc, _ := newCheckoutFixture(t, nil)

		_, err := svc.GetOrder(ctx, "id-1")
		assert.ErrorIs(t, err, repository.ErrOrderNotFound)

		orders, err := svc.ListOrders(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}
