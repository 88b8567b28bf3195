package model

import "time"

// CartLine is one entry in the cart. ID is assigned when the line is added
// and is the only handle for removing it.
type CartLine struct {
	ID          string         `json:"id"`
	ProductType string         `json:"product_type"`
	Quantity    int            `json:"quantity"`
	Options     map[string]any `json:"options"`
}

// OrderItem is the wire form the backend expects (no local line id).
type OrderItem struct {
	ProductType string         `json:"product_type"`
	Quantity    int            `json:"quantity"`
	Options     map[string]any `json:"options"`
}

// CustomerInfo is the customer block of an order submission. Authoritative
// validation happens in the backend.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// OrderRequest is built fresh per submission attempt.
type OrderRequest struct {
	Customer       CustomerInfo `json:"customer"`
	PickupDatetime time.Time    `json:"pickup_datetime"`
	Items          []OrderItem  `json:"items"`
}

// PreviewResult is the backend's answer to a dry-run validation.
type PreviewResult struct {
	IsValid                 bool       `json:"is_valid"`
	Errors                  []string   `json:"errors"`
	SuggestedPickupDatetime *time.Time `json:"suggested_pickup_datetime,omitempty"`
}

// Order represents a persisted order as returned by the backend.
type Order struct {
	ID             string       `json:"id"`
	Customer       CustomerInfo `json:"customer"`
	PickupDatetime time.Time    `json:"pickup_datetime"`
	Items          []OrderItem  `json:"items"`
	Status         string       `json:"status,omitempty"`
	CreatedAt      *time.Time   `json:"created_at,omitempty"`
}

// PaymentSession is returned by checkout and is display-only; capture
// happens with the gateway, outside this app.
type PaymentSession struct {
	Provider  string `json:"provider"`
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

// CheckoutResult is what a successful checkout yields.
type CheckoutResult struct {
	Order   Order           `json:"order"`
	Payment *PaymentSession `json:"payment"`
}
