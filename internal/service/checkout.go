package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/studentshop/cart-service/internal/domain/dto"
	"github.com/studentshop/cart-service/internal/domain/model"
	"github.com/studentshop/cart-service/internal/metrics"
	"github.com/studentshop/cart-service/internal/repository"
)

// Checkout errors.
var (
	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrShippingRequired is returned when a cart with physical items is
	// checked out without shipping details.
	ErrShippingRequired = errors.New("shipping information is required for physical items")
)

// CheckoutService places orders from cart snapshots.
type CheckoutService interface {
	// PlaceOrder freezes the cart, computes totals, persists the order, and
	// clears the cart on success.
	PlaceOrder(ctx context.Context, cartKey string, req dto.CheckoutRequest) (*model.Order, error)

	// GetOrder retrieves an order by its hex ID or its order number.
	GetOrder(ctx context.Context, id string) (*model.Order, error)

	// ListOrders returns the most recent orders, newest first.
	ListOrders(ctx context.Context, limit int64) ([]model.Order, error)
}

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct {
	carts   CartService
	pricing PricingCalculator
	orders  repository.OrdersRepositoryInterface

	seqMu     sync.Mutex
	seqMonth  string
	seq       int
	seqSeeded bool
}

// NewCheckoutService creates a new checkout service. The orders repository
// may be nil, in which case placed orders are returned to the caller but not
// persisted.
func NewCheckoutService(carts CartService, pricing PricingCalculator, orders repository.OrdersRepositoryInterface) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		carts:   carts,
		pricing: pricing,
		orders:  orders,
	}
}

// PlaceOrder places an order from the current cart snapshot.
//
// Whether shipping details are required is decided from the live cart lines,
// not from anything the client sends: a cart with at least one physical item
// needs a valid shipping address, a digital-only cart does not.
func (s *CheckoutServiceImpl) PlaceOrder(ctx context.Context, cartKey string, req dto.CheckoutRequest) (*model.Order, error) {
	cart, err := s.carts.GetCart(ctx, cartKey)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		metrics.RecordOrderPlaced("rejected", 0)
		return nil, ErrEmptyCart
	}

	if err := req.Validate(); err != nil {
		metrics.RecordOrderPlaced("rejected", 0)
		return nil, err
	}

	hasPhysical := cart.HasPhysicalItems()
	var address *model.ShippingAddress
	if hasPhysical {
		if req.Shipping == nil {
			metrics.RecordOrderPlaced("rejected", 0)
			return nil, ErrShippingRequired
		}
		if err := req.Shipping.Validate(); err != nil {
			metrics.RecordOrderPlaced("rejected", 0)
			return nil, err
		}
		address = &model.ShippingAddress{
			FirstName: req.Shipping.FirstName,
			LastName:  req.Shipping.LastName,
			Email:     req.Shipping.Email,
			Phone:     req.Shipping.Phone,
			Street:    req.Shipping.Street,
			City:      req.Shipping.City,
			Region:    req.Shipping.Region,
			ZipCode:   req.Shipping.ZipCode,
		}
	}

	totals := s.pricing.Totals(cart.Subtotal, hasPhysical)
	now := time.Now()

	order := &model.Order{
		OrderNumber:     s.nextOrderNumber(ctx, now),
		CartKey:         cartKey,
		Lines:           cart.Lines,
		Totals:          totals,
		ShippingAddress: address,
		PaymentMethod:   req.Payment.Method,
		PaymentStatus:   model.PaymentStatusPending,
		Status:          model.OrderStatusPending,
		IsDigitalOrder:  !hasPhysical,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if s.orders != nil {
		if _, err := s.orders.Insert(ctx, order); err != nil {
			metrics.RecordOrderPlaced("failed", 0)
			return nil, err
		}
	}

	// The cart is cleared only after the order is safely recorded.
	if _, err := s.carts.Clear(ctx, cartKey); err != nil {
		log.Error().Err(err).Str("cart_key", cartKey).Msg("Failed to clear cart after checkout")
	}

	grand, _ := order.Totals.GrandTotal.Float64()
	metrics.RecordOrderPlaced("placed", grand)
	log.Info().
		Str("order_number", order.OrderNumber).
		Str("cart_key", cartKey).
		Str("grand_total", order.Totals.GrandTotal.String()).
		Bool("digital_only", order.IsDigitalOrder).
		Msg("Order placed")

	return order, nil
}

// nextOrderNumber produces the next sequential order number for the current
// month. On the first call of a month the sequence is seeded from the orders
// repository when one is available.
func (s *CheckoutServiceImpl) nextOrderNumber(ctx context.Context, now time.Time) string {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	month := now.Format("200601")
	if month != s.seqMonth {
		s.seqMonth = month
		s.seq = 0
		s.seqSeeded = false
	}

	if !s.seqSeeded && s.orders != nil {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if count, err := s.orders.CountSince(ctx, monthStart); err == nil {
			s.seq = int(count)
		}
		s.seqSeeded = true
	}

	s.seq++
	return model.NewOrderNumber(now, s.seq)
}

// GetOrder retrieves an order by its hex ID or, when the identifier carries
// the order number prefix, by its human-readable order number. Confirmation
// pages link orders by number.
func (s *CheckoutServiceImpl) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	if s.orders == nil {
		return nil, repository.ErrOrderNotFound
	}
	if strings.HasPrefix(id, model.OrderNumberPrefix) {
		return s.orders.GetByNumber(ctx, id)
	}
	return s.orders.GetByID(ctx, id)
}

// ListOrders returns the most recent orders, newest first.
func (s *CheckoutServiceImpl) ListOrders(ctx context.Context, limit int64) ([]model.Order, error) {
	if s.orders == nil {
		return []model.Order{}, nil
	}
	return s.orders.List(ctx, limit)
}
