package shop

import (
	"testing"
)

func TestToggleIsItsOwnInverse(t *testing.T) {
	favs := NewFavorites(newMemStore())
	favs.Toggle(testProduct(1, "Phone", 199.99))

	before := favs.List()

	p := testProduct(7, "USB Cable", 3.00)
	favs.Toggle(p)
	favs.Toggle(p)

	after := favs.List()
	if len(after) != len(before) {
		t.Fatalf("double toggle changed the set: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("double toggle changed the set: %v -> %v", before, after)
		}
	}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	favs := NewFavorites(newMemStore())
	p := testProduct(7, "USB Cable", 3.00)

	favs.Toggle(p)
	if !favs.IsFavorite(7) {
		t.Fatal("expected 7 to be a favorite after first toggle")
	}

	favs.Toggle(p)
	if favs.IsFavorite(7) {
		t.Fatal("expected 7 to be gone after second toggle")
	}
}

func TestFavoritesNoDuplicates(t *testing.T) {
	favs := NewFavorites(newMemStore())
	p := testProduct(7, "USB Cable", 3.00)

	favs.Toggle(p)
	favs.Toggle(p)
	favs.Toggle(p)

	if got := favs.Count(); got != 1 {
		t.Fatalf("expected exactly one entry, got %d", got)
	}
}

func TestFavoritesKeepInsertionOrder(t *testing.T) {
	favs := NewFavorites(newMemStore())
	favs.Toggle(testProduct(3, "C", 1))
	favs.Toggle(testProduct(1, "A", 1))
	favs.Toggle(testProduct(2, "B", 1))

	list := favs.List()
	want := []int64{3, 1, 2}
	for i, p := range list {
		if p.ID != want[i] {
			t.Fatalf("expected order %v, got %v", want, list)
		}
	}
}

func TestFavoritesRehydrateFromStore(t *testing.T) {
	store := newMemStore()
	first := NewFavorites(store)
	first.Toggle(testProduct(7, "USB Cable", 3.00))

	second := NewFavorites(store)
	if !second.IsFavorite(7) {
		t.Fatal("expected favorites to rehydrate from the store")
	}
}
