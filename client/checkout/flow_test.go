package checkout

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/PhornSunnich/emall-cambodia/client/localstore"
	"github.com/PhornSunnich/emall-cambodia/client/shop"
)

func newShopState(t *testing.T) (*shop.Cart, *shop.History) {
	t.Helper()
	store, err := localstore.OpenFile(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	return shop.NewCart(store), shop.NewHistory(store)
}

func product(id int64, price float64) shop.Product {
	return shop.Product{ID: id, Name: fmt.Sprintf("Product %d", id), Price: price}
}

func TestBeginRequiresNonEmptyCart(t *testing.T) {
	cart, history := newShopState(t)

	if _, err := Begin(cart, history); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestDefaultMethodIsFirst(t *testing.T) {
	cart, history := newShopState(t)
	cart.Add(product(1, 5.00))

	flow, err := Begin(cart, history)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if flow.Selected().ID != "aba" {
		t.Fatalf("expected default method aba, got %q", flow.Selected().ID)
	}
	if flow.State() != SelectingMethod {
		t.Fatalf("expected SelectingMethod, got %v", flow.State())
	}
}

func TestTotalCapturedAtBegin(t *testing.T) {
	cart, history := newShopState(t)
	cart.Add(product(1, 10.00))

	flow, err := Begin(cart, history)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	// Later cart changes must not move the captured total
	cart.Add(product(2, 99.99))
	if flow.Total() != 10.00 {
		t.Fatalf("captured total moved: %v", flow.Total())
	}
}

func TestConfirmCodRecordsPendingOrderAndClearsCart(t *testing.T) {
	cart, history := newShopState(t)
	cart.Add(product(1, 10.00))
	cart.Add(product(1, 10.00))
	cart.Add(product(2, 5.50))

	flow, err := Begin(cart, history)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	wantItems := cart.Items()

	if err := flow.SelectMethod("cod"); err != nil {
		t.Fatalf("SelectMethod: %v", err)
	}

	flow.now = func() time.Time {
		return time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)
	}

	order, err := flow.Confirm()
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	if order.Total != "25.50" {
		t.Fatalf("expected total \"25.50\", got %q", order.Total)
	}
	if order.Status != shop.OrderStatusPending {
		t.Fatalf("cod order must be Pending, got %q", order.Status)
	}
	if order.Method != "Cash on Delivery" {
		t.Fatalf("unexpected method label %q", order.Method)
	}
	if order.Date != "14/03/2025" || order.Time != "09:26" {
		t.Fatalf("unexpected date/time %q %q", order.Date, order.Time)
	}

	if len(order.Items) != len(wantItems) {
		t.Fatalf("expected %d items, got %d", len(wantItems), len(order.Items))
	}
	for i := range wantItems {
		if order.Items[i] != wantItems[i] {
			t.Fatalf("item %d differs: %+v vs %+v", i, order.Items[i], wantItems[i])
		}
	}

	if cart.Count() != 0 {
		t.Fatalf("cart must be empty after checkout, got count %d", cart.Count())
	}
	if history.Len() != 1 {
		t.Fatalf("expected one recorded order, got %d", history.Len())
	}
	if flow.State() != Completed {
		t.Fatalf("expected Completed, got %v", flow.State())
	}
}

func TestNonCodOrdersArePaid(t *testing.T) {
	for _, id := range []string{"aba", "acleda", "wing"} {
		cart, history := newShopState(t)
		cart.Add(product(1, 12.00))

		flow, _ := Begin(cart, history)
		if err := flow.SelectMethod(id); err != nil {
			t.Fatalf("SelectMethod(%s): %v", id, err)
		}
		order, err := flow.Confirm()
		if err != nil {
			t.Fatalf("Confirm(%s): %v", id, err)
		}
		if order.Status != shop.OrderStatusPaid {
			t.Fatalf("%s order must be Paid, got %q", id, order.Status)
		}
	}
}

func TestRecordedOrderIsImmune_toLaterCartMutations(t *testing.T) {
	cart, history := newShopState(t)
	cart.Add(product(1, 10.00))

	flow, _ := Begin(cart, history)
	if _, err := flow.Confirm(); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	cart.Add(product(2, 99.99))
	cart.Add(product(2, 99.99))

	recorded := history.List()[0]
	if len(recorded.Items) != 1 || recorded.Items[0].ID != 1 {
		t.Fatalf("later cart mutations reached the order record: %+v", recorded.Items)
	}
}

func TestConfirmTwiceFails(t *testing.T) {
	cart, history := newShopState(t)
	cart.Add(product(1, 10.00))

	flow, _ := Begin(cart, history)
	if _, err := flow.Confirm(); err != nil {
		t.Fatalf("first Confirm: %v", err)
	}
	if _, err := flow.Confirm(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if err := flow.SelectMethod("cod"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for SelectMethod after completion, got %v", err)
	}
	if history.Len() != 1 {
		t.Fatalf("expected exactly one order, got %d", history.Len())
	}
}

func TestSelectUnknownMethod(t *testing.T) {
	cart, history := newShopState(t)
	cart.Add(product(1, 10.00))

	flow, _ := Begin(cart, history)
	if err := flow.SelectMethod("paypal"); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestDeclinedFeedsBackToSelection(t *testing.T) {
	cart, history := newShopState(t)
	cart.Add(product(1, 10.00))

	flow, _ := Begin(cart, history)

	declined := errors.New("card declined")
	flow.SetAuthorizer(func(PaymentMethod, float64) error { return declined })

	if _, err := flow.Confirm(); !errors.Is(err, declined) {
		t.Fatalf("expected authorizer error, got %v", err)
	}
	if flow.State() != Declined {
		t.Fatalf("expected Declined, got %v", flow.State())
	}
	if cart.Count() != 1 {
		t.Fatal("a declined payment must not clear the cart")
	}
	if history.Len() != 0 {
		t.Fatal("a declined payment must not record an order")
	}

	// The shopper can pick another method and retry
	if err := flow.SelectMethod("cod"); err != nil {
		t.Fatalf("SelectMethod after decline: %v", err)
	}
	flow.authorize = approveAll
	if _, err := flow.Confirm(); err != nil {
		t.Fatalf("retry Confirm: %v", err)
	}
	if flow.State() != Completed {
		t.Fatalf("expected Completed after retry, got %v", flow.State())
	}
}

func TestTimeoutState(t *testing.T) {
	cart, history := newShopState(t)
	cart.Add(product(1, 10.00))

	flow, _ := Begin(cart, history)
	flow.SetAuthorizer(func(PaymentMethod, float64) error {
		return fmt.Errorf("gateway: %w", ErrAuthTimeout)
	})

	if _, err := flow.Confirm(); !errors.Is(err, ErrAuthTimeout) {
		t.Fatalf("expected ErrAuthTimeout, got %v", err)
	}
	if flow.State() != TimedOut {
		t.Fatalf("expected TimedOut, got %v", flow.State())
	}

	// Retry is allowed straight from TimedOut
	flow.authorize = approveAll
	if _, err := flow.Confirm(); err != nil {
		t.Fatalf("retry Confirm: %v", err)
	}
}

func TestQRImage(t *testing.T) {
	aba, ok := MethodByID("aba")
	if !ok {
		t.Fatal("aba method missing")
	}
	png, err := QRImage(aba, 25.50, 256)
	if err != nil {
		t.Fatalf("QRImage: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("empty QR image")
	}

	cod, _ := MethodByID("cod")
	if _, err := QRImage(cod, 25.50, 256); err == nil {
		t.Fatal("cod has no QR code; expected an error")
	}
}
