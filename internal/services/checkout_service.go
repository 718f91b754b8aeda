package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"cafeteria/internal/api"
	"cafeteria/internal/models"
	"cafeteria/internal/session"
	"cafeteria/internal/storage"
)

// OrderOutcome is the result of one order-creation call within a checkout.
type OrderOutcome struct {
	Entry models.CartEntry
	Order models.Order // populated on success
	Err   error
}

// BatchResult collects the per-item outcomes of one checkout. The batch is not
// transactional: orders that succeeded stay placed even when siblings failed,
// and it is up to the caller what to tell the user.
type BatchResult struct {
	Outcomes []OrderOutcome
}

// AllPlaced reports whether every order-creation call succeeded.
func (r BatchResult) AllPlaced() bool {
	for _, outcome := range r.Outcomes {
		if outcome.Err != nil {
			return false
		}
	}
	return true
}

// Failed returns the outcomes that carry an error.
func (r BatchResult) Failed() []OrderOutcome {
	var failed []OrderOutcome
	for _, outcome := range r.Outcomes {
		if outcome.Err != nil {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// CheckoutService turns a cart or buy-now selection into order-creation calls.
type CheckoutService struct {
	backend  api.Backend
	cart     *CartService
	gate     *session.Gate
	store    storage.KV
	validate *validator.Validate
}

// NewCheckoutService creates a CheckoutService.
func NewCheckoutService(backend api.Backend, cart *CartService, gate *session.Gate, store storage.KV) *CheckoutService {
	return &CheckoutService{
		backend:  backend,
		cart:     cart,
		gate:     gate,
		store:    store,
		validate: validator.New(),
	}
}

// SetBuyNow stages a single item for the buy-now path. It bypasses the cart
// entirely and is consumed by the next Checkout call.
func (s *CheckoutService) SetBuyNow(item models.FoodItem) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode buy-now item: %w", err)
	}
	if err := s.store.Put(storage.KeyBuyNowItem, raw); err != nil {
		return fmt.Errorf("failed to stage buy-now item: %w", err)
	}
	return nil
}

// takeBuyNow loads and consumes the staged buy-now item, if any.
func (s *CheckoutService) takeBuyNow() (*models.FoodItem, error) {
	raw, ok, err := s.store.Get(storage.KeyBuyNowItem)
	if err != nil {
		return nil, fmt.Errorf("failed to read buy-now item: %w", err)
	}
	if !ok {
		return nil, nil
	}
	// Consumed on read, whether or not the checkout goes through.
	if err := s.store.Delete(storage.KeyBuyNowItem); err != nil {
		return nil, fmt.Errorf("failed to consume buy-now item: %w", err)
	}
	var item models.FoodItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to decode buy-now item: %w", err)
	}
	return &item, nil
}

// selection resolves what is being bought: the staged buy-now item if present,
// else the payment snapshot, else the live cart.
func (s *CheckoutService) selection() ([]models.CartEntry, bool, error) {
	item, err := s.takeBuyNow()
	if err != nil {
		return nil, false, err
	}
	if item != nil {
		return []models.CartEntry{{Item: *item}}, true, nil
	}

	raw, ok, err := s.store.Get(storage.KeyCartForPayment)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cart snapshot: %w", err)
	}
	if ok {
		var entries []models.CartEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, false, fmt.Errorf("failed to decode cart snapshot: %w", err)
		}
		return entries, false, nil
	}

	entries, err := s.cart.Items()
	if err != nil {
		return nil, false, err
	}
	return entries, false, nil
}

// Checkout validates the payment form, places one order per selected item, and
// reports the per-item outcomes. All order-creation calls are dispatched
// concurrently; the cart and its payment snapshot are cleared once every call
// has settled, regardless of how many succeeded.
func (s *CheckoutService) Checkout(ctx context.Context, card models.Card) (BatchResult, error) {
	if err := s.validate.Struct(card); err != nil {
		return BatchResult{}, fmt.Errorf("card number, expiry and CVV are required: %w", err)
	}

	entries, buyNow, err := s.selection()
	if err != nil {
		return BatchResult{}, err
	}
	if len(entries) == 0 {
		return BatchResult{}, fmt.Errorf("nothing to check out")
	}

	userID := s.gate.UserID()
	result := BatchResult{Outcomes: make([]OrderOutcome, len(entries))}

	var wg sync.WaitGroup
	for i, entry := range entries {
		quantity := entry.Quantity
		if quantity < 1 {
			quantity = 1
		}
		order := models.Order{
			FoodItemID: entry.Item.ID,
			UserID:     userID,
			AdminID:    entry.Item.AdminID,
			Quantity:   quantity,
			TotalPrice: entry.Item.Price * float64(quantity),
		}

		wg.Add(1)
		go func(i int, entry models.CartEntry, order models.Order) {
			defer wg.Done()
			created, err := s.backend.PlaceOrder(ctx, order)
			result.Outcomes[i] = OrderOutcome{Entry: entry, Order: created, Err: err}
		}(i, entry, order)
	}
	wg.Wait()

	// Non-atomic by design of the storefront: once the batch has been
	// dispatched the selection is spent, successes and failures alike.
	if !buyNow {
		if err := s.cart.Clear(); err != nil {
			return result, err
		}
		if err := s.store.Delete(storage.KeyCartForPayment); err != nil {
			return result, fmt.Errorf("failed to discard cart snapshot: %w", err)
		}
	}

	return result, nil
}
