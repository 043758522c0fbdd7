package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrandTotal(t *testing.T) {
	equipment := []LineItem{{ID: "racket", Kind: "equipment", UnitPrice: 50000, Quantity: 2}}
	food := []LineItem{{ID: "water", Kind: "food", UnitPrice: 20000, Quantity: 1}}

	// 300000 + 2x50000 + 1x20000
	assert.Equal(t, int64(420000), GrandTotal(300000, equipment, food))
}

func TestItemsTotalNegativeQuantityCountsAsZero(t *testing.T) {
	items := []LineItem{
		{ID: "a", UnitPrice: 10000, Quantity: -3},
		{ID: "b", UnitPrice: 5000, Quantity: 2},
	}
	assert.Equal(t, int64(10000), ItemsTotal(items))
}

func TestBackendPaymentTag(t *testing.T) {
	tests := []struct {
		method string
		tag    string
		ok     bool
	}{
		{method: "cash", tag: "CASH", ok: true},
		{method: "vnpay", tag: "VNPAY", ok: true},
		{method: "momo", tag: "VNPAY", ok: true},
		{method: "zalopay", tag: "VNPAY", ok: true},
		{method: "bitcoin", ok: false},
		{method: "", ok: false},
	}
	for _, tt := range tests {
		t.Run("method "+tt.method, func(t *testing.T) {
			tag, ok := BackendPaymentTag(tt.method)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.tag, tag)
		})
	}
}

func TestBuildOrderFiltersZeroQuantities(t *testing.T) {
	f := NewFlow("u1")
	f.SetCourt(*stdCourt())
	f.SetSelection(tuesday, "10:00", "12:00")
	f.Equipment = []LineItem{
		{ID: "racket", Kind: "equipment", UnitPrice: 50000, Quantity: 2},
		{ID: "shoes", Kind: "equipment", UnitPrice: 30000, Quantity: 0},
	}
	f.Food = []LineItem{
		{ID: "water", Kind: "food", UnitPrice: 20000, Quantity: 0},
	}
	f.SetPaymentMethod("cash")

	p, err := f.BuildOrder()
	require.NoError(t, err)

	require.Len(t, p.Items, 1)
	assert.Equal(t, "racket", p.Items[0].ID)
	for _, it := range p.Items {
		assert.Greater(t, it.Quantity, 0, "zero-quantity items must not be submitted")
	}
}

func TestBuildOrderWindowIsUTC(t *testing.T) {
	f := NewFlow("u1")
	f.SetCourt(*stdCourt())
	f.SetSelection(tuesday, "18:00", "19:30")
	f.SetPaymentMethod("momo")

	p, err := f.BuildOrder()
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10T18:00:00Z", p.StartISO)
	assert.Equal(t, "2025-06-10T19:30:00Z", p.EndISO)
	assert.Equal(t, "VNPAY", p.PaymentMethod)
	assert.Equal(t, "court-1", p.CourtID)
	assert.NotEmpty(t, p.IdempotencyKey)
	// 130000/h peak rate for 1.5h
	assert.Equal(t, int64(195000), p.Amount)
}

func TestBuildOrderGate(t *testing.T) {
	base := func() *Flow {
		f := NewFlow("u1")
		f.SetCourt(*stdCourt())
		f.SetSelection(tuesday, "10:00", "12:00")
		f.SetPaymentMethod("cash")
		return f
	}

	t.Run("complete selection passes", func(t *testing.T) {
		_, err := base().BuildOrder()
		assert.NoError(t, err)
	})

	t.Run("no payment method", func(t *testing.T) {
		f := base()
		f.PaymentMethod = ""
		_, err := f.BuildOrder()
		assert.ErrorIs(t, err, ErrNoPaymentMethod)
	})

	t.Run("no court", func(t *testing.T) {
		f := base()
		f.Court = nil
		_, err := f.BuildOrder()
		assert.ErrorIs(t, err, ErrNoResource)
	})

	t.Run("no duration", func(t *testing.T) {
		f := base()
		f.SetSelection(tuesday, "10:00", "")
		_, err := f.BuildOrder()
		assert.ErrorIs(t, err, ErrNoDuration)
	})

	t.Run("session mode needs a session only", func(t *testing.T) {
		f := base()
		f.Mode = ModeSession
		f.Session = nil
		_, err := f.BuildOrder()
		assert.ErrorIs(t, err, ErrNoResource)
	})
}
