package session

import (
	"log"

	"cafeteria/internal/api"
	"cafeteria/internal/models"
	"cafeteria/internal/storage"
)

// Landing routes, by role.
const (
	UserHome       = "/home"
	AdminDashboard = "/management"
)

// Gate holds the logged-in identity in local storage and decides which view a
// session lands on. Role checks here steer the UI only; the backend does its
// own authorization.
type Gate struct {
	store storage.KV
}

// NewGate creates a Gate over the given local store.
func NewGate(store storage.KV) *Gate {
	return &Gate{store: store}
}

// SaveLogin persists the identity returned by a successful login.
func (g *Gate) SaveLogin(result api.LoginResult) error {
	if err := g.store.Put(storage.KeyToken, []byte(result.Token)); err != nil {
		return err
	}
	if err := g.store.Put(storage.KeyRole, []byte(result.Role)); err != nil {
		return err
	}
	return g.store.Put(storage.KeyUserID, []byte(result.UserID))
}

func (g *Gate) get(key string) string {
	value, ok, err := g.store.Get(key)
	if err != nil {
		log.Printf("Error reading %s from local store: %v", key, err)
		return ""
	}
	if !ok {
		return ""
	}
	return string(value)
}

// Token returns the stored bearer token, empty when logged out.
func (g *Gate) Token() string { return g.get(storage.KeyToken) }

// Role returns the stored role, empty when logged out.
func (g *Gate) Role() string { return g.get(storage.KeyRole) }

// UserID returns the stored user ID, empty when logged out.
func (g *Gate) UserID() string { return g.get(storage.KeyUserID) }

// LoggedIn reports whether a token is present.
func (g *Gate) LoggedIn() bool { return g.Token() != "" }

// Landing returns the route the current role maps to.
func (g *Gate) Landing() string {
	if g.Role() == models.RoleAdmin {
		return AdminDashboard
	}
	return UserHome
}

// DashboardView returns the admin's persisted dashboard tab, defaulting to
// "items".
func (g *Gate) DashboardView() string {
	if view := g.get(storage.KeyDashboardView); view != "" {
		return view
	}
	return "items"
}

// SetDashboardView persists the admin's selected dashboard tab.
func (g *Gate) SetDashboardView(view string) error {
	return g.store.Put(storage.KeyDashboardView, []byte(view))
}

// Clear forgets the stored identity (logout). The cart is left alone.
func (g *Gate) Clear() error {
	for _, key := range []string{storage.KeyToken, storage.KeyRole, storage.KeyUserID, storage.KeyDashboardView} {
		if err := g.store.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
