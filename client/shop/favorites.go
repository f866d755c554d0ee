package shop

import (
	"log"
	"sync"

	"github.com/PhornSunnich/emall-cambodia/client/localstore"
)

// Favorites is a set of product snapshots keyed by product id, kept in
// insertion order for display.
type Favorites struct {
	mu      sync.Mutex
	store   localstore.Store
	entries []Product
}

func NewFavorites(store localstore.Store) *Favorites {
	f := &Favorites{store: store}
	store.Load(KeyFavorites, &f.entries)
	return f
}

// Toggle adds product if absent and removes it if present.
func (f *Favorites) Toggle(product Product) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.entries {
		if f.entries[i].ID == product.ID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			f.persist()
			return
		}
	}
	f.entries = append(f.entries, product)
	f.persist()
}

func (f *Favorites) IsFavorite(productID int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.entries {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// List returns a copy of the favorites in insertion order.
func (f *Favorites) List() []Product {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := make([]Product, len(f.entries))
	copy(entries, f.entries)
	return entries
}

func (f *Favorites) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

func (f *Favorites) persist() {
	if err := f.store.Save(KeyFavorites, f.entries); err != nil {
		log.Println("shop: favorites persist failed:", err)
	}
}
