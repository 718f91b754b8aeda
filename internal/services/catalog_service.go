package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/go-playground/validator/v10"

	"cafeteria/internal/api"
	"cafeteria/internal/models"
)

// CatalogService fetches the menu. Read paths never surface errors to the
// caller: a failed refresh is logged and the previous list is returned, so the
// view keeps showing what it last had.
type CatalogService struct {
	backend  api.Backend
	validate *validator.Validate

	mu         sync.Mutex
	userItems  []models.FoodItem
	adminItems []models.FoodItem
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(backend api.Backend) *CatalogService {
	return &CatalogService{
		backend:  backend,
		validate: validator.New(),
	}
}

// ListForUser returns the purchasable menu, refreshing it from the backend.
// On failure the last fetched list is returned unchanged.
func (s *CatalogService) ListForUser(ctx context.Context) []models.FoodItem {
	items, err := s.backend.ListUserItems(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Printf("Error fetching items: %v", err)
		return s.userItems
	}
	s.userItems = items
	return s.userItems
}

// ListForAdmin returns every item, refreshing from the backend. Same
// stale-on-error semantics as ListForUser.
func (s *CatalogService) ListForAdmin(ctx context.Context) []models.FoodItem {
	items, err := s.backend.ListAdminItems(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Printf("Error fetching admin items: %v", err)
		return s.adminItems
	}
	s.adminItems = items
	return s.adminItems
}

// Upload creates a new menu item. Unlike the read paths this is a write, so
// validation and backend errors go back to the caller.
func (s *CatalogService) Upload(ctx context.Context, item models.FoodItem) (models.FoodItem, error) {
	if err := s.validate.Struct(item); err != nil {
		return models.FoodItem{}, fmt.Errorf("invalid item: %w", err)
	}
	created, err := s.backend.UploadItem(ctx, item)
	if err != nil {
		return models.FoodItem{}, fmt.Errorf("failed to upload item: %w", err)
	}
	return created, nil
}

// Delete removes a menu item.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
