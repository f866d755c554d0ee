package shop

import "testing"

func TestHistoryNewestFirst(t *testing.T) {
	history := NewHistory(newMemStore())

	history.Append(Order{ID: 1, Total: "1.00", Status: OrderStatusPaid})
	history.Append(Order{ID: 2, Total: "2.00", Status: OrderStatusPaid})
	history.Append(Order{ID: 3, Total: "3.00", Status: OrderStatusPending})

	orders := history.List()
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i, want := range []int64{3, 2, 1} {
		if orders[i].ID != want {
			t.Fatalf("expected order %d at position %d, got %d", want, i, orders[i].ID)
		}
	}
}

func TestAppendCopiesItems(t *testing.T) {
	history := NewHistory(newMemStore())

	items := []LineItem{{Product: testProduct(1, "Phone", 199.99), Quantity: 1}}
	history.Append(Order{ID: 1, Items: items, Total: "199.99", Status: OrderStatusPaid})

	// Mutating the caller's slice must not reach the record
	items[0].Quantity = 99

	if got := history.List()[0].Items[0].Quantity; got != 1 {
		t.Fatalf("order record shares memory with the caller: quantity %d", got)
	}
}

func TestListReturnsCopy(t *testing.T) {
	history := NewHistory(newMemStore())
	history.Append(Order{
		ID:     1,
		Items:  []LineItem{{Product: testProduct(1, "Phone", 199.99), Quantity: 1}},
		Total:  "199.99",
		Status: OrderStatusPaid,
	})

	listed := history.List()
	listed[0].Items[0].Quantity = 99

	if got := history.List()[0].Items[0].Quantity; got != 1 {
		t.Fatalf("mutating a listed order reached the history: quantity %d", got)
	}
}

func TestHistoryRehydratesFromStore(t *testing.T) {
	store := newMemStore()
	first := NewHistory(store)
	first.Append(Order{ID: 1, Total: "5.00", Status: OrderStatusPending})

	second := NewHistory(store)
	if second.Len() != 1 {
		t.Fatalf("expected 1 rehydrated order, got %d", second.Len())
	}
	if got := second.List()[0].Status; got != OrderStatusPending {
		t.Fatalf("expected Pending, got %q", got)
	}
}
