package booking

import (
	"time"
)

// LineItem is one quantity-adjustable add-on in the flow. UnitPrice and
// stock come from the catalog at the moment the quantity is set.
type LineItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Kind         string `json:"kind"` // "equipment" | "food"
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	Stock        int    `json:"stock"`
	StockTracked bool   `json:"stock_tracked"`
}

func (li LineItem) Subtotal() int64 {
	q := li.Quantity
	if q < 0 {
		q = 0
	}
	return li.UnitPrice * int64(q)
}

func ItemsTotal(items []LineItem) int64 {
	var sum int64
	for _, li := range items {
		sum += li.Subtotal()
	}
	return sum
}

// GrandTotal is resource charge + every line-item subtotal. Derived,
// never stored.
func GrandTotal(resourceCharge int64, equipment, food []LineItem) int64 {
	return resourceCharge + ItemsTotal(equipment) + ItemsTotal(food)
}

// The backend accepts fewer payment tags than the portal shows: every
// wallet option collapses onto VNPAY. Likely an unfinished integration
// upstream, but the collapse is backend contract today, so it is kept
// exactly as is.
var backendPaymentTags = map[string]string{
	"cash":    "CASH",
	"vnpay":   "VNPAY",
	"momo":    "VNPAY",
	"zalopay": "VNPAY",
}

// BackendPaymentTag maps a user-facing payment option to the tag the
// backend accepts. Unknown options fail the submission gate.
func BackendPaymentTag(method string) (string, bool) {
	tag, ok := backendPaymentTags[method]
	return tag, ok
}

// OrderItem is a line item as submitted: only items with quantity > 0
// are ever sent.
type OrderItem struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// OrderPayload is the request body for the backend order endpoint.
// Booking window is an absolute UTC timestamp pair, never a local-time
// string.
type OrderPayload struct {
	IdempotencyKey string      `json:"idempotency_key"`
	CourtID        string      `json:"court_id,omitempty"`
	SessionID      string      `json:"session_id,omitempty"`
	StartISO       string      `json:"start_iso,omitempty"`
	EndISO         string      `json:"end_iso,omitempty"`
	Items          []OrderItem `json:"items"`
	PaymentMethod  string      `json:"payment_method"`
	Amount         int64       `json:"amount"`
}

// submitItems drops zero-quantity line items entirely rather than
// sending them with quantity 0.
func submitItems(groups ...[]LineItem) []OrderItem {
	var out []OrderItem
	for _, items := range groups {
		for _, li := range items {
			if li.Quantity <= 0 {
				continue
			}
			out = append(out, OrderItem{ID: li.ID, Kind: li.Kind, UnitPrice: li.UnitPrice, Quantity: li.Quantity})
		}
	}
	return out
}

// windowUTC combines the selected calendar day and times of day into the
// RFC3339 UTC pair the backend expects.
func windowUTC(date, start, end string) (string, string, error) {
	d, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return "", "", err
	}
	sm, ok := slotMinutes(start)
	if !ok {
		return "", "", errInvalidSelection
	}
	em, ok := slotMinutes(end)
	if !ok {
		return "", "", errInvalidSelection
	}
	st := d.Add(time.Duration(sm) * time.Minute)
	et := d.Add(time.Duration(em) * time.Minute)
	return st.Format(time.RFC3339), et.Format(time.RFC3339), nil
}
