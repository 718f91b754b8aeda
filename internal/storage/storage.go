package storage

// Keys used by the client for its persisted local state.
const (
	KeyToken          = "token"
	KeyRole           = "role"
	KeyUserID         = "userId"
	KeyDashboardView  = "dashboardView"
	KeyCart           = "cart"
	KeyBuyNowItem     = "buyNowItem"
	KeyCartForPayment = "cartItemsForPayment"
)

// KV is the client's local persistence port, the browser-localStorage analog.
// Writes are synchronous; callers rely on every mutation being durable before
// the call returns. A missing key is reported via the bool, not an error.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
