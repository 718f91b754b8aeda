package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafeteria/internal/api"
	"cafeteria/internal/models"
	"cafeteria/internal/session"
	"cafeteria/internal/storage"
)

func TestGate_LandingByRole(t *testing.T) {
	gate := session.NewGate(storage.NewMemory())

	// Logged out defaults to the user view.
	assert.Equal(t, session.UserHome, gate.Landing())

	require.NoError(t, gate.SaveLogin(api.LoginResult{Token: "t", Role: models.RoleAdmin, UserID: "a1"}))
	assert.Equal(t, session.AdminDashboard, gate.Landing())

	require.NoError(t, gate.SaveLogin(api.LoginResult{Token: "t", Role: models.RoleUser, UserID: "u1"}))
	assert.Equal(t, session.UserHome, gate.Landing())
}

func TestGate_DashboardView(t *testing.T) {
	gate := session.NewGate(storage.NewMemory())

	assert.Equal(t, "items", gate.DashboardView())
	require.NoError(t, gate.SetDashboardView("orders"))
	assert.Equal(t, "orders", gate.DashboardView())
}

func TestGate_ClearLeavesCartAlone(t *testing.T) {
	store := storage.NewMemory()
	gate := session.NewGate(store)

	require.NoError(t, store.Put(storage.KeyCart, []byte(`[{"id":"a"}]`)))
	require.NoError(t, gate.SaveLogin(api.LoginResult{Token: "t", Role: models.RoleUser, UserID: "u1"}))

	require.NoError(t, gate.Clear())
	assert.False(t, gate.LoggedIn())
	assert.Empty(t, gate.UserID())

	// Logging out does not empty the cart.
	_, ok, err := store.Get(storage.KeyCart)
	require.NoError(t, err)
	assert.True(t, ok)
}
