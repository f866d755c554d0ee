// Package checkout drives the short-lived payment workflow: capture the
// cart total, pick a method, confirm, record the order, clear the cart.
package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/PhornSunnich/emall-cambodia/client/shop"
)

type State int

const (
	// SelectingMethod is the initial state: total captured, method
	// changeable.
	SelectingMethod State = iota
	// Confirming is the transient state while payment authorization
	// runs.
	Confirming
	// Completed is terminal: the order is recorded and the cart cleared.
	Completed
	// Declined and TimedOut are authorization failures. Both feed back
	// into method selection so the shopper can retry.
	Declined
	TimedOut
)

func (s State) String() string {
	switch s {
	case SelectingMethod:
		return "selecting_method"
	case Confirming:
		return "confirming"
	case Completed:
		return "completed"
	case Declined:
		return "declined"
	case TimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

var (
	ErrEmptyCart     = errors.New("checkout: cart is empty")
	ErrInvalidState  = errors.New("checkout: operation not valid in current state")
	ErrUnknownMethod = errors.New("checkout: unknown payment method")

	// ErrAuthTimeout distinguishes a hung authorization from a refusal.
	// Authorizers return it (or wrap it) to land the flow in TimedOut
	// instead of Declined.
	ErrAuthTimeout = errors.New("checkout: authorization timed out")
)

// Authorizer settles the payment for a confirmed checkout. A nil return
// approves it.
type Authorizer func(method PaymentMethod, amount float64) error

// approveAll is the storefront's simulated gateway: every payment
// succeeds.
func approveAll(PaymentMethod, float64) error { return nil }

// Flow is one checkout attempt. It captures the cart total when it
// begins and the total stays fixed for the life of the flow, whatever
// happens to the live cart meanwhile.
type Flow struct {
	cart      *shop.Cart
	history   *shop.History
	state     State
	total     float64
	selected  PaymentMethod
	authorize Authorizer
	now       func() time.Time
}

// Begin starts a checkout over the cart's current contents. The cart
// must be non-empty.
func Begin(cart *shop.Cart, history *shop.History) (*Flow, error) {
	if cart.Count() == 0 {
		return nil, ErrEmptyCart
	}
	return &Flow{
		cart:      cart,
		history:   history,
		state:     SelectingMethod,
		total:     cart.Total(),
		selected:  methods[0],
		authorize: approveAll,
		now:       time.Now,
	}, nil
}

// SetAuthorizer replaces the simulated approver, e.g. with a real
// gateway call.
func (f *Flow) SetAuthorizer(a Authorizer) {
	if a != nil {
		f.authorize = a
	}
}

func (f *Flow) State() State            { return f.state }
func (f *Flow) Total() float64          { return f.total }
func (f *Flow) Selected() PaymentMethod { return f.selected }

// selectable reports whether the flow is (back) in method selection.
func (f *Flow) selectable() bool {
	return f.state == SelectingMethod || f.state == Declined || f.state == TimedOut
}

// SelectMethod changes the payment method. Valid while selecting and
// after a failed authorization.
func (f *Flow) SelectMethod(methodID string) error {
	if !f.selectable() {
		return ErrInvalidState
	}
	method, ok := MethodByID(methodID)
	if !ok {
		return ErrUnknownMethod
	}
	f.selected = method
	f.state = SelectingMethod
	return nil
}

// Confirm settles the payment and, on success, freezes the cart into an
// order record, prepends it to the history, clears the cart, and
// completes the flow. Completion is irreversible.
func (f *Flow) Confirm() (shop.Order, error) {
	if !f.selectable() {
		return shop.Order{}, ErrInvalidState
	}

	f.state = Confirming
	if err := f.authorize(f.selected, f.total); err != nil {
		if errors.Is(err, ErrAuthTimeout) {
			f.state = TimedOut
		} else {
			f.state = Declined
		}
		return shop.Order{}, err
	}

	status := shop.OrderStatusPaid
	if f.selected.CashOnDelivery {
		status = shop.OrderStatusPending
	}

	now := f.now()
	order := shop.Order{
		ID:     now.UnixMilli(),
		Date:   now.Format("02/01/2006"),
		Time:   now.Format("15:04"),
		Items:  f.cart.Items(),
		Total:  fmt.Sprintf("%.2f", f.total),
		Method: f.selected.DisplayName,
		Status: status,
	}

	f.history.Append(order)
	f.cart.Clear()
	f.state = Completed
	return order, nil
}
