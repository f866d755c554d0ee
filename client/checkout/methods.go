package checkout

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// PaymentMethod is one entry of the fixed method list. Cash on delivery
// is marked by the CashOnDelivery flag, not by display-name matching,
// so translated labels cannot change order status semantics.
type PaymentMethod struct {
	ID             string
	DisplayName    string
	Account        string
	RequiresQR     bool
	CashOnDelivery bool
}

// methods is the fixed, ordered list the storefront offers. The first
// entry is the default selection.
var methods = []PaymentMethod{
	{ID: "aba", DisplayName: "ABA Pay / KHQR", Account: "eMall Cambodia • 010 888 999", RequiresQR: true},
	{ID: "acleda", DisplayName: "ACLEDA Bank", Account: "eMall Cambodia", RequiresQR: true},
	{ID: "wing", DisplayName: "Wing Pay", Account: "eMall Cambodia", RequiresQR: true},
	{ID: "cod", DisplayName: "Cash on Delivery", CashOnDelivery: true},
}

// Methods returns a copy of the supported payment methods in display
// order.
func Methods() []PaymentMethod {
	out := make([]PaymentMethod, len(methods))
	copy(out, methods)
	return out
}

// MethodByID looks up a payment method by id.
func MethodByID(id string) (PaymentMethod, bool) {
	for _, m := range methods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

// QRImage renders the scan-to-pay code for a QR method as a PNG of the
// given size in pixels.
func QRImage(method PaymentMethod, amount float64, size int) ([]byte, error) {
	if !method.RequiresQR {
		return nil, fmt.Errorf("checkout: method %q has no QR code", method.ID)
	}
	payload := fmt.Sprintf("KHQR|%s|%s|%.2f|USD", method.ID, method.Account, amount)
	return qrcode.Encode(payload, qrcode.Medium, size)
}
