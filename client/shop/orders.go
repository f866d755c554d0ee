package shop

import (
	"log"
	"sync"

	"github.com/PhornSunnich/emall-cambodia/client/localstore"
)

// History is the append-only order history, newest first. Records are
// frozen at confirmation time; there is no update or delete.
type History struct {
	mu     sync.Mutex
	store  localstore.Store
	orders []Order
}

func NewHistory(store localstore.Store) *History {
	h := &History{store: store}
	store.Load(KeyOrders, &h.orders)
	return h
}

// Append prepends order to the history. The items slice is copied so
// later mutations of the caller's slice cannot reach the record.
func (h *History) Append(order Order) {
	items := make([]LineItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items

	h.mu.Lock()
	defer h.mu.Unlock()

	h.orders = append([]Order{order}, h.orders...)
	if err := h.store.Save(KeyOrders, h.orders); err != nil {
		log.Println("shop: order history persist failed:", err)
	}
}

// List returns a copy of the history, most recent first.
func (h *History) List() []Order {
	h.mu.Lock()
	defer h.mu.Unlock()

	orders := make([]Order, len(h.orders))
	for i, o := range h.orders {
		items := make([]LineItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
		orders[i] = o
	}
	return orders
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.orders)
}
