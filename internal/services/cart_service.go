package services

import (
	"encoding/json"
	"fmt"
	"math"

	"cafeteria/internal/models"
	"cafeteria/internal/storage"
)

// CartService handles the client-local cart. Every mutation rewrites the full
// cart in local storage before returning; there is no batching.
type CartService struct {
	store storage.KV
}

// NewCartService creates a CartService over the given local store.
func NewCartService(store storage.KV) *CartService {
	return &CartService{store: store}
}

// Items returns the current cart entries in insertion order.
func (s *CartService) Items() ([]models.CartEntry, error) {
	return s.load(storage.KeyCart)
}

func (s *CartService) load(key string) ([]models.CartEntry, error) {
	raw, ok, err := s.store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var entries []models.CartEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return entries, nil
}

func (s *CartService) save(entries []models.CartEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.store.Put(storage.KeyCart, raw); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// Add puts item in the cart with quantity 1, or bumps the existing entry's
// quantity by 1.
func (s *CartService) Add(item models.FoodItem) error {
	entries, err := s.Items()
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].Item.ID == item.ID {
			entries[i].Quantity++
			return s.save(entries)
		}
	}
	entries = append(entries, models.CartEntry{Item: item, Quantity: 1})
	return s.save(entries)
}

// Remove deletes the entry for itemID. Removing an absent item is a no-op.
func (s *CartService) Remove(itemID string) error {
	entries, err := s.Items()
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, entry := range entries {
		if entry.Item.ID != itemID {
			kept = append(kept, entry)
		}
	}
	return s.save(kept)
}

// SetQuantity sets the quantity for itemID, clamping to a minimum of 1.
// Setting a quantity for an absent item is a no-op.
func (s *CartService) SetQuantity(itemID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	entries, err := s.Items()
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].Item.ID == itemID {
			entries[i].Quantity = quantity
			return s.save(entries)
		}
	}
	return nil
}

// Total returns the cart total, rounded to 2 decimal places.
func (s *CartService) Total() (float64, error) {
	entries, err := s.Items()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, entry := range entries {
		total += entry.Subtotal()
	}
	return round2(total), nil
}

// Count returns the number of units in the cart (sum of quantities).
func (s *CartService) Count() (int, error) {
	entries, err := s.Items()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		count += entry.Quantity
	}
	return count, nil
}

// Clear empties the persisted cart.
func (s *CartService) Clear() error {
	if err := s.store.Delete(storage.KeyCart); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// SnapshotForPayment copies the current cart into the payment handoff key, the
// step between "proceed to checkout" and the payment form.
func (s *CartService) SnapshotForPayment() error {
	entries, err := s.Items()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	if err := s.store.Put(storage.KeyCartForPayment, raw); err != nil {
		return fmt.Errorf("failed to persist cart snapshot: %w", err)
	}
	return nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
