package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/rao30/bake-house/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPickup = time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

func checkoutOK() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /checkout", func(w http.ResponseWriter, r *http.Request) {
		var req model.OrderRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(model.CheckoutResult{
			Order: model.Order{
				ID:             "ord-1",
				Customer:       req.Customer,
				PickupDatetime: req.PickupDatetime,
				Items:          req.Items,
				Status:         "pending_payment",
			},
			Payment: &model.PaymentSession{Provider: "stripe", SessionID: "cs_test_1", Status: "open"},
		})
	})
	return mux
}

func TestSubmitSuccessClearsCart(t *testing.T) {
	cart := NewCartService()
	cart.Add("croissant", 2, nil)
	cart.Add("baguette", 1, nil)

	svc := NewOrderService(newTestAPI(t, nil, checkoutOK()), cart)

	customer := model.CustomerInfo{Name: "Maya", Email: "maya@example.com"}
	view, err := svc.Submit(context.Background(), customer, testPickup)
	require.NoError(t, err)

	assert.Equal(t, SubmitSuccess, view.Status)
	require.NotNil(t, view.Order)
	assert.Equal(t, "ord-1", view.Order.ID)
	require.NotNil(t, view.Payment)
	assert.Equal(t, "stripe", view.Payment.Provider)
	assert.Equal(t, "cs_test_1", view.Payment.SessionID)

	assert.True(t, cart.Empty(), "success must clear the cart")
	assert.False(t, view.Submittable)
}

func TestSubmitValidationFailurePreservesCart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /checkout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"detail": []string{"pickup_datetime must be in the future"},
		})
	})

	cart := NewCartService()
	line, _ := cart.Add("custom_cake", 1, map[string]any{"message": "Happy Birthday"})

	svc := NewOrderService(newTestAPI(t, nil, mux), cart)

	view, err := svc.Submit(context.Background(), model.CustomerInfo{Name: "Maya"}, testPickup)
	require.Error(t, err)

	assert.Equal(t, SubmitError, view.Status)
	assert.Equal(t, []string{"pickup_datetime must be in the future"}, view.Errors)

	lines := cart.Lines()
	require.Len(t, lines, 1, "failure must not touch the cart")
	assert.Equal(t, line.ID, lines[0].ID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.True(t, view.Submittable, "a failed attempt can be corrected and resubmitted")
}

func TestSubmitErrorListReplacedPerAttempt(t *testing.T) {
	fail := true
	mux := http.NewServeMux()
	mux.HandleFunc("POST /checkout", func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"detail": []string{"first attempt error"}})
			return
		}
		json.NewEncoder(w).Encode(model.CheckoutResult{Order: model.Order{ID: "ord-2"}})
	})

	cart := NewCartService()
	cart.Add("cookie", 12, nil)
	svc := NewOrderService(newTestAPI(t, nil, mux), cart)

	view, err := svc.Submit(context.Background(), model.CustomerInfo{}, testPickup)
	require.Error(t, err)
	assert.Equal(t, []string{"first attempt error"}, view.Errors)

	fail = false
	view, err = svc.Submit(context.Background(), model.CustomerInfo{}, testPickup)
	require.NoError(t, err)
	assert.Empty(t, view.Errors)
	assert.Equal(t, SubmitSuccess, view.Status)
}

func TestSubmitRefusedWhileCartEmpty(t *testing.T) {
	svc := NewOrderService(newTestAPI(t, nil, checkoutOK()), NewCartService())

	view, err := svc.Submit(context.Background(), model.CustomerInfo{}, testPickup)
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Equal(t, SubmitIdle, view.Status, "a refusal is not an attempt")
	assert.False(t, view.Submittable)
}

func TestSubmitRefusedWithoutPickupTime(t *testing.T) {
	cart := NewCartService()
	cart.Add("muffin", 4, nil)
	svc := NewOrderService(newTestAPI(t, nil, checkoutOK()), cart)

	view, err := svc.Submit(context.Background(), model.CustomerInfo{}, time.Time{})
	assert.ErrorIs(t, err, ErrPickupNotSet)
	assert.Equal(t, SubmitIdle, view.Status)
	assert.Len(t, cart.Lines(), 1)
}

func TestSubmitRefusedWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("POST /checkout", func(w http.ResponseWriter, r *http.Request) {
		<-release
		json.NewEncoder(w).Encode(model.CheckoutResult{Order: model.Order{ID: "ord-3"}})
	})

	cart := NewCartService()
	cart.Add("brownie", 2, nil)
	svc := NewOrderService(newTestAPI(t, nil, mux), cart)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), model.CustomerInfo{}, testPickup)
		done <- err
	}()

	require.Eventually(t, func() bool {
		return svc.Status().Status == SubmitLoading
	}, time.Second, 5*time.Millisecond)

	_, err := svc.Submit(context.Background(), model.CustomerInfo{}, testPickup)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, SubmitSuccess, svc.Status().Status)
}

func TestSubmitTransportFailureGenericMessage(t *testing.T) {
	cart := NewCartService()
	cart.Add("donut", 1, nil)

	api := newTestAPI(t, nil, http.NotFoundHandler())
	svc := NewOrderService(api, cart)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // force a transport-level failure

	view, err := svc.Submit(ctx, model.CustomerInfo{}, testPickup)
	require.Error(t, err)
	assert.Equal(t, SubmitError, view.Status)
	require.Len(t, view.Errors, 1)
	assert.Len(t, cart.Lines(), 1)
}

func TestConfirmPayment(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /payments/ord-1/confirm", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"order_id": "ord-1", "status": "paid"})
	})

	svc := NewOrderService(newTestAPI(t, nil, mux), NewCartService())

	confirmation, err := svc.ConfirmPayment(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "paid", confirmation["status"])

	_, err = svc.ConfirmPayment(context.Background(), "")
	assert.Error(t, err)
}
