package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rao30/bake-house/external/bakeryapi"
	"github.com/rao30/bake-house/internal/model"
)

var (
	ErrCartEmpty      = errors.New("cart is empty")
	ErrPickupNotSet   = errors.New("pickup time is not set")
	ErrSubmitInFlight = errors.New("an order submission is already in progress")
)

type SubmitStatus string

const (
	SubmitIdle    SubmitStatus = "idle"
	SubmitLoading SubmitStatus = "loading"
	SubmitSuccess SubmitStatus = "success"
	SubmitError   SubmitStatus = "error"
)

// OrderStatusView is the workflow snapshot the UI polls. Submittable only
// covers what this side knows (non-empty cart, no attempt in flight); the
// pickup time lives in the form and is checked again on submit.
type OrderStatusView struct {
	Status      SubmitStatus          `json:"status"`
	Submittable bool                  `json:"submittable"`
	Errors      []string              `json:"errors"`
	Order       *model.Order          `json:"order,omitempty"`
	Payment     *model.PaymentSession `json:"payment,omitempty"`
}

// OrderService runs the submission workflow: idle → loading → success |
// error, one attempt at a time. This app uses the combined checkout call;
// the backend validates, persists and opens the payment session in one step.
type OrderService struct {
	API  *bakeryapi.Client
	Cart *CartService

	mu      sync.Mutex
	status  SubmitStatus
	errs    []string
	order   *model.Order
	payment *model.PaymentSession
}

func NewOrderService(api *bakeryapi.Client, cart *CartService) *OrderService {
	return &OrderService{API: api, Cart: cart, status: SubmitIdle}
}

func (s *OrderService) viewLocked() OrderStatusView {
	errs := make([]string, len(s.errs))
	copy(errs, s.errs)
	return OrderStatusView{
		Status:      s.status,
		Submittable: !s.Cart.Empty() && s.status != SubmitLoading,
		Errors:      errs,
		Order:       s.order,
		Payment:     s.payment,
	}
}

func (s *OrderService) Status() OrderStatusView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Submit runs one checkout attempt. Refusals (empty cart, unset pickup,
// attempt in flight) are not attempts: they leave the workflow state alone.
// Success clears the cart; failure records the backend's message list and
// leaves the cart untouched so the user can correct and resubmit.
func (s *OrderService) Submit(ctx context.Context, customer model.CustomerInfo, pickupAt time.Time) (OrderStatusView, error) {
	s.mu.Lock()
	if s.status == SubmitLoading {
		view := s.viewLocked()
		s.mu.Unlock()
		return view, ErrSubmitInFlight
	}
	if s.Cart.Empty() {
		view := s.viewLocked()
		s.mu.Unlock()
		return view, ErrCartEmpty
	}
	if pickupAt.IsZero() {
		view := s.viewLocked()
		s.mu.Unlock()
		return view, ErrPickupNotSet
	}
	s.status = SubmitLoading
	s.errs = nil
	s.order = nil
	s.payment = nil
	s.mu.Unlock()

	lines := s.Cart.Lines()
	items := make([]model.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.OrderItem{
			ProductType: l.ProductType,
			Quantity:    l.Quantity,
			Options:     l.Options,
		})
	}
	request := model.OrderRequest{
		Customer:       customer,
		PickupDatetime: pickupAt.UTC(),
		Items:          items,
	}

	result, err := s.API.Checkout(ctx, request)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = SubmitError
		var apiErr *bakeryapi.APIError
		if errors.As(err, &apiErr) {
			s.errs = apiErr.Messages
		} else {
			s.errs = []string{err.Error()}
		}
		return s.viewLocked(), err
	}

	s.status = SubmitSuccess
	s.order = &result.Order
	s.payment = result.Payment
	s.Cart.Clear()
	return s.viewLocked(), nil
}

// ConfirmPayment relays a gateway confirmation for a created order.
func (s *OrderService) ConfirmPayment(ctx context.Context, orderID string) (map[string]any, error) {
	if orderID == "" {
		return nil, errors.New("order id is required")
	}
	return s.API.ConfirmPayment(ctx, orderID)
}
