package services

import (
	"context"
	"sync"
	"time"

	"github.com/rao30/bake-house/external/bakeryapi"
	"github.com/rao30/bake-house/internal/model"
)

// HistoryService mirrors the order-history panel: it fetches the caller's
// orders exactly once per sign-in and drops the cached list the moment the
// session ends, so a signed-out page never shows stale orders.
type HistoryService struct {
	API *bakeryapi.Client

	mu     sync.Mutex
	gen    uint64
	authed bool
	orders []model.Order
	err    string
}

func NewHistoryService(api *bakeryapi.Client, auth *AuthService) *HistoryService {
	s := &HistoryService{API: api}
	auth.Subscribe(s.onSessionChange)
	return s
}

func (s *HistoryService) onSessionChange(sess model.Session) {
	s.mu.Lock()
	authed := sess.Authenticated()
	if authed == s.authed {
		s.mu.Unlock()
		return
	}
	s.authed = authed
	s.gen++
	gen := s.gen
	if !authed {
		s.orders = nil
		s.err = ""
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	orders, err := s.API.MyOrders(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// session changed again while the fetch was out
		return
	}
	if err != nil {
		s.err = err.Error()
		return
	}
	s.orders = orders
}

// HistoryView is the panel snapshot.
type HistoryView struct {
	Authenticated bool          `json:"authenticated"`
	Orders        []model.Order `json:"orders"`
	Error         string        `json:"error,omitempty"`
}

func (s *HistoryService) View() HistoryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]model.Order, len(s.orders))
	copy(orders, s.orders)
	return HistoryView{
		Authenticated: s.authed,
		Orders:        orders,
		Error:         s.err,
	}
}
