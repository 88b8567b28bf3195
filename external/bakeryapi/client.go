package bakeryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rao30/bake-house/internal/model"
)

// TokenSource supplies the current bearer token, empty when signed out.
// The auth session owns the token; the client only reads it per request.
type TokenSource interface {
	Token() string
}

// Client talks to the bakery backend. One method per backend operation,
// JSON throughout, no caching, no retry.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		tokens:  tokens,
	}
}

// APIError carries the backend's structured failure body. The backend
// reports failures as {"detail": string | [string]}.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func decodeError(resp *http.Response, fallback string) error {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	var msgs []string
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && len(body.Detail) > 0 {
		var many []string
		var one string
		if err := json.Unmarshal(body.Detail, &many); err == nil {
			msgs = many
		} else if err := json.Unmarshal(body.Detail, &one); err == nil && one != "" {
			msgs = []string{one}
		}
	}
	if len(msgs) == 0 {
		msgs = []string{fallback}
	}
	return &APIError{StatusCode: resp.StatusCode, Messages: msgs}
}

// do performs one round trip. Transport failures propagate unchanged;
// non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if t := c.tokens.Token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp, fallback)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// ProductConfig fetches the read-only menu configuration.
func (c *Client) ProductConfig(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/config/products", nil, &products, "failed to load product config"); err != nil {
		return nil, err
	}
	return products, nil
}

// PreviewOrder runs backend validation without persisting anything.
func (c *Client) PreviewOrder(ctx context.Context, order model.OrderRequest) (*model.PreviewResult, error) {
	var result model.PreviewResult
	if err := c.do(ctx, http.MethodPost, "/orders/preview", order, &result, "validation error"); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateOrder persists an order without opening a payment session.
func (c *Client) CreateOrder(ctx context.Context, order model.OrderRequest) (*model.Order, error) {
	var created model.Order
	if err := c.do(ctx, http.MethodPost, "/orders", order, &created, "order error"); err != nil {
		return nil, err
	}
	return &created, nil
}

// Checkout persists the order and opens a payment session in one call.
func (c *Client) Checkout(ctx context.Context, order model.OrderRequest) (*model.CheckoutResult, error) {
	var result model.CheckoutResult
	if err := c.do(ctx, http.MethodPost, "/checkout", order, &result, "checkout error"); err != nil {
		return nil, err
	}
	return &result, nil
}

// ConfirmPayment relays a gateway confirmation for an order. The backend
// owns the confirmation record shape, so it passes through untyped.
func (c *Client) ConfirmPayment(ctx context.Context, orderID string) (map[string]any, error) {
	var confirmation map[string]any
	path := "/payments/" + orderID + "/confirm"
	if err := c.do(ctx, http.MethodPost, path, struct{}{}, &confirmation, "payment confirmation error"); err != nil {
		return nil, err
	}
	return confirmation, nil
}

// LoginResult is the backend's answer to a credential exchange.
type LoginResult struct {
	AccessToken string     `json:"access_token"`
	User        model.User `json:"user"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

// GoogleLogin exchanges a Google identity credential for a bearer token.
func (c *Client) GoogleLogin(ctx context.Context, idToken string) (*LoginResult, error) {
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/google", googleLoginRequest{IDToken: idToken}, &result, "login failed"); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me returns the account behind the current bearer token.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user, "failed to load user"); err != nil {
		return nil, err
	}
	return &user, nil
}

// MyOrders returns the caller's own order history.
func (c *Client) MyOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/orders/me", nil, &orders, "failed to load orders"); err != nil {
		return nil, err
	}
	return orders, nil
}
