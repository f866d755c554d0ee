// Package shop holds the storefront's client-local state: the shopping
// cart, favorites, the signed-in user, and the order history. Every
// manager persists synchronously after each mutation and rehydrates
// from its store on construction.
package shop

// Storage keys, shared with the web client.
const (
	KeyCart      = "emall_cart"
	KeyFavorites = "emall_favorites"
	KeyUser      = "emall_user"
	KeyOrders    = "emall_orders"
	KeyToken     = "token"
)

// Order statuses. Cash-on-delivery orders stay Pending until the courier
// collects; everything else is recorded Paid at confirmation.
const (
	OrderStatusPaid    = "Paid"
	OrderStatusPending = "Pending"
)

// Product is an immutable snapshot of a catalog entry, copied at the
// moment it enters the cart or favorites. Later catalog changes do not
// touch stored copies.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

// LineItem is one cart row: a product snapshot plus its quantity.
type LineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// User is the signed-in identity.
type User struct {
	ID       string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
}

// Order is the frozen record of one completed checkout.
type Order struct {
	ID     int64      `json:"id"` // confirmation timestamp, ms
	Date   string     `json:"date"`
	Time   string     `json:"time"`
	Items  []LineItem `json:"items"`
	Total  string     `json:"total"`
	Method string     `json:"method"`
	Status string     `json:"status"`
}
