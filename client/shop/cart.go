package shop

import (
	"log"
	"math"
	"sync"

	"github.com/PhornSunnich/emall-cambodia/client/localstore"
)

// Cart holds the ordered line items of the shopping basket. At most one
// line item exists per product id; adding an already-present product
// increments its quantity instead of duplicating the row.
type Cart struct {
	mu    sync.Mutex
	store localstore.Store
	items []LineItem
}

func NewCart(store localstore.Store) *Cart {
	c := &Cart{store: store}
	store.Load(KeyCart, &c.items)
	return c
}

// Add puts one unit of product into the cart.
func (c *Cart) Add(product Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity++
			c.persist()
			return
		}
	}
	c.items = append(c.items, LineItem{Product: product, Quantity: 1})
	c.persist()
}

// Remove deletes the line item for productID. Removing an absent id is
// a no-op.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID int64) {
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// SetQuantity sets the line item's quantity to exactly quantity. A
// quantity below 1 removes the line item. Unknown product ids are
// ignored; Add is the only way into the cart.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// Clear empties the cart. Called by checkout after an order is
// recorded, never by logout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persist()
}

// Total is the sum of price x quantity over all line items, rounded to
// two decimals here at the boundary only.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

// Count is the total number of units across all line items.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// persist saves the cart, fire-and-forget. Callers must hold c.mu.
func (c *Cart) persist() {
	if err := c.store.Save(KeyCart, c.items); err != nil {
		log.Println("shop: cart persist failed:", err)
	}
}
