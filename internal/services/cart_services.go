package services

import (
	"errors"
	"sync"

	"github.com/rao30/bake-house/internal/model"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrMissingProduct  = errors.New("product type is required")
	ErrLineNotFound    = errors.New("cart item not found")
)

// CartService holds the in-memory cart: an ordered list of lines. Lines
// carry a generated id so removal never depends on list position, and
// repeated adds of the same product stay distinct entries.
type CartService struct {
	mu    sync.Mutex
	lines []model.CartLine
}

func NewCartService() *CartService {
	return &CartService{}
}

// Add appends a line and returns it with its assigned id.
func (s *CartService) Add(productType string, quantity int, options map[string]any) (model.CartLine, error) {
	if productType == "" {
		return model.CartLine{}, ErrMissingProduct
	}
	if quantity <= 0 {
		return model.CartLine{}, ErrInvalidQuantity
	}
	if options == nil {
		options = map[string]any{}
	}

	line := model.CartLine{
		ID:          uuid.NewString(),
		ProductType: productType,
		Quantity:    quantity,
		Options:     options,
	}

	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
	return line, nil
}

// Remove deletes the line with the given id, preserving the order of the rest.
func (s *CartService) Remove(lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.lines {
		if l.ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (s *CartService) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
}

// Lines returns a copy in insertion order.
func (s *CartService) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *CartService) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}
