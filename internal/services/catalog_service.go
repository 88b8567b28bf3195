package services

import (
	"context"
	"log"
	"sync"

	"github.com/rao30/bake-house/external/bakeryapi"
	"github.com/rao30/bake-house/internal/model"
)

// CatalogService loads the product config once at startup and caches it.
// A failed load only goes to the log; the menu stays empty. There is no
// retry path, matching the page's load-on-mount behavior.
type CatalogService struct {
	API *bakeryapi.Client

	mu       sync.RWMutex
	products []model.Product
}

func NewCatalogService(api *bakeryapi.Client) *CatalogService {
	return &CatalogService{API: api}
}

func (s *CatalogService) Load(ctx context.Context) {
	products, err := s.API.ProductConfig(ctx)
	if err != nil {
		log.Printf("catalog: load product config: %v", err)
		return
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
}

// Products returns the cached menu in backend order.
func (s *CatalogService) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}
