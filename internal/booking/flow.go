package booking

import (
	"errors"

	"github.com/google/uuid"

	"github.com/you/badminton-portal/internal/catalog"
)

type Mode string

const (
	ModeCourt   Mode = "COURT"
	ModeSession Mode = "SESSION"
)

var (
	ErrNoResource      = errors.New("no court or session selected")
	ErrNoDuration      = errors.New("booking window is empty")
	ErrNothingToPay    = errors.New("order total is zero")
	ErrNoPaymentMethod = errors.New("no payment method chosen")
	ErrSuperseded      = errors.New("selection changed while resolving resource")

	errInvalidSelection = errors.New("invalid time selection")
)

// Flow is one user's ephemeral booking state: created on first touch,
// snapshotted to the store between requests, discarded on submit or
// logout. Gen is the request-generation token; a resource resolution
// started under an older Gen must never land.
type Flow struct {
	UserID string `json:"user_id"`
	Gen    uint64 `json:"gen"`
	Mode   Mode   `json:"mode"`

	Date  string `json:"date"` // YYYY-MM-DD
	Start string `json:"start"`
	End   string `json:"end"`

	Court   *catalog.Court           `json:"court,omitempty"`
	Session *catalog.TrainingSession `json:"session,omitempty"`

	Equipment []LineItem `json:"equipment"`
	Food      []LineItem `json:"food"`

	PaymentMethod string `json:"payment_method"`

	Quote Quote `json:"quote"`
}

func NewFlow(userID string) *Flow {
	return &Flow{UserID: userID, Mode: ModeCourt}
}

// SetSelection applies date/start/end and normalizes: an end time at or
// before the new start is silently cleared, never an error.
func (f *Flow) SetSelection(date, start, end string) {
	f.Date = date
	if start != "" && !ValidSlot(start) {
		start = ""
	}
	if end != "" && !ValidSlot(end) {
		end = ""
	}
	f.Start = start
	f.End = end
	if f.End != "" && f.End <= f.Start {
		f.End = ""
	}
	f.Recompute()
}

// SetCourt switches the flow to court mode. The previous resource's
// rate is gone the moment this runs.
func (f *Flow) SetCourt(c catalog.Court) {
	f.Mode = ModeCourt
	f.Court = &c
	f.Session = nil
	f.Recompute()
}

// SetSession switches the flow to session-enrollment mode.
func (f *Flow) SetSession(s catalog.TrainingSession) {
	f.Mode = ModeSession
	f.Session = &s
	f.Court = nil
	f.Recompute()
}

// SetItem sets the quantity for one add-on, clamped to [0, stock] when
// stock is tracked. Pricing data is taken from the catalog item now,
// not from whatever an earlier snapshot carried.
func (f *Flow) SetItem(kind string, it catalog.CatalogItem, qty int) {
	if qty < 0 {
		qty = 0
	}
	if it.StockTracked && qty > it.Stock {
		qty = it.Stock
	}
	li := LineItem{ID: it.ID, Name: it.Name, Kind: kind, UnitPrice: it.UnitPrice, Quantity: qty, Stock: it.Stock, StockTracked: it.StockTracked}
	target := &f.Equipment
	if kind == "food" {
		target = &f.Food
	}
	for i := range *target {
		if (*target)[i].ID == it.ID {
			(*target)[i] = li
			f.Recompute()
			return
		}
	}
	*target = append(*target, li)
	f.Recompute()
}

func (f *Flow) SetPaymentMethod(method string) {
	f.PaymentMethod = method
}

// Recompute rebuilds the quote from the full current snapshot. Every
// mutator calls it; nothing else derives prices.
func (f *Flow) Recompute() {
	if f.Mode == ModeSession {
		f.Quote = Quote{}
		return
	}
	f.Quote = PriceCourt(f.Date, f.Start, f.End, f.Court)
}

// ResourceCharge is the court charge from the quote, or the fixed
// package price in session mode.
func (f *Flow) ResourceCharge() int64 {
	if f.Mode == ModeSession {
		if f.Session == nil {
			return 0
		}
		return f.Session.Price
	}
	return f.Quote.Total
}

func (f *Flow) GrandTotal() int64 {
	return GrandTotal(f.ResourceCharge(), f.Equipment, f.Food)
}

// ApplyAt applies fn only while the flow is still at gen. A mutation
// prepared under an older generation gets ErrSuperseded and leaves the
// flow untouched.
func (f *Flow) ApplyAt(gen uint64, fn func(*Flow)) error {
	if f.Gen != gen {
		return ErrSuperseded
	}
	fn(f)
	return nil
}

// BuildOrder gates submission and produces the backend payload. The
// caller supplies nothing: everything submitted comes from the flow's
// latest snapshot.
func (f *Flow) BuildOrder() (OrderPayload, error) {
	tag, ok := BackendPaymentTag(f.PaymentMethod)
	if !ok {
		return OrderPayload{}, ErrNoPaymentMethod
	}

	p := OrderPayload{
		IdempotencyKey: uuid.NewString(),
		Items:          submitItems(f.Equipment, f.Food),
		PaymentMethod:  tag,
		Amount:         f.GrandTotal(),
	}

	switch f.Mode {
	case ModeSession:
		if f.Session == nil {
			return OrderPayload{}, ErrNoResource
		}
		p.SessionID = f.Session.ID
	default:
		if f.Court == nil {
			return OrderPayload{}, ErrNoResource
		}
		if f.Quote.DurationHours <= 0 {
			return OrderPayload{}, ErrNoDuration
		}
		if p.Amount <= 0 {
			return OrderPayload{}, ErrNothingToPay
		}
		start, end, err := windowUTC(f.Date, f.Start, f.End)
		if err != nil {
			return OrderPayload{}, ErrNoDuration
		}
		p.CourtID = f.Court.ID
		p.StartISO = start
		p.EndISO = end
	}
	return p, nil
}
