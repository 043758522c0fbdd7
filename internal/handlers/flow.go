package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/you/badminton-portal/internal/backend"
	"github.com/you/badminton-portal/internal/booking"
	"github.com/you/badminton-portal/internal/catalog"
	"github.com/you/badminton-portal/pkg/money"
)

type FlowHandler struct {
	flows *booking.FlowStore
	cat   *catalog.Catalog
	be    *backend.Client
	fmt   *money.Formatter
}

func NewFlowHandler(flows *booking.FlowStore, cat *catalog.Catalog, be *backend.Client, fmt *money.Formatter) *FlowHandler {
	return &FlowHandler{flows: flows, cat: cat, be: be, fmt: fmt}
}

func (h *FlowHandler) view(f *booking.Flow) gin.H {
	grand := f.GrandTotal()
	return gin.H{
		"flow":            f,
		"resource_charge": f.ResourceCharge(),
		"equipment_total": booking.ItemsTotal(f.Equipment),
		"food_total":      booking.ItemsTotal(f.Food),
		"grand_total":     grand,
		"grand_display":   h.fmt.Format(grand),
	}
}

// GET /v1/flow
func (h *FlowHandler) Get(c *gin.Context) {
	f, err := h.flows.Load(c.Request.Context(), sessionSub(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.view(f))
}

// PUT /v1/flow/selection: date and times. An end at or before the new
// start is cleared silently and the quote drops to zero.
func (h *FlowHandler) SetSelection(c *gin.Context) {
	var in struct {
		Date  string `json:"date"`
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f, err := h.flows.Update(c.Request.Context(), sessionSub(c), func(f *booking.Flow) error {
		f.SetSelection(in.Date, in.Start, in.End)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.view(f))
}

// PUT /v1/flow/resource: pick a court or a training session. The flow
// generation is bumped before the resource is resolved; if a newer pick
// lands first, this resolution is dropped instead of overwriting it.
func (h *FlowHandler) SetResource(c *gin.Context) {
	var in struct {
		CourtID   string `json:"court_id"`
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (in.CourtID == "") == (in.SessionID == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pick exactly one of court_id, session_id"})
		return
	}

	ctx := c.Request.Context()
	sub := sessionSub(c)

	var gen uint64
	if _, err := h.flows.Update(ctx, sub, func(f *booking.Flow) error {
		f.Gen++
		gen = f.Gen
		return nil
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	apply, err := h.resolveResource(c, in.CourtID, in.SessionID)
	if err != nil || apply == nil {
		return // response already written
	}

	f, err := h.flows.ApplyIfCurrent(ctx, sub, gen, apply)
	if errors.Is(err, booking.ErrSuperseded) {
		// A newer pick won the race; this result is ignored.
		logrus.WithField("user", sub).Debug("stale resource resolution dropped")
		f, err = h.flows.Load(ctx, sub)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.view(f))
}

// resolveResource looks up the chosen resource. A nil apply func means
// the lookup failed and the response was already answered.
func (h *FlowHandler) resolveResource(c *gin.Context, courtID, sessionID string) (func(*booking.Flow), error) {
	if courtID != "" {
		court, ok := catalog.CourtByID(courtID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown court"})
			return nil, nil
		}
		return func(f *booking.Flow) { f.SetCourt(court) }, nil
	}
	sess, ok, err := h.cat.SessionByID(c.Request.Context(), sessionID)
	if err != nil {
		answerBackendErr(c, err)
		return nil, err
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return nil, nil
	}
	return func(f *booking.Flow) { f.SetSession(sess) }, nil
}

// PUT /v1/flow/items: set the quantity for one add-on. Unit price and
// stock ceiling are resolved from the catalog now, never from the
// snapshot.
func (h *FlowHandler) SetItem(c *gin.Context) {
	var in struct {
		Kind     string `json:"kind" binding:"required,oneof=equipment food"`
		ID       string `json:"id" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, ok, err := h.cat.ItemByID(c.Request.Context(), in.Kind, in.ID)
	if err != nil {
		answerBackendErr(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown item"})
		return
	}
	f, err := h.flows.Update(c.Request.Context(), sessionSub(c), func(f *booking.Flow) error {
		f.SetItem(in.Kind, item, in.Quantity)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.view(f))
}

// PUT /v1/flow/payment-method
func (h *FlowHandler) SetPaymentMethod(c *gin.Context) {
	var in struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := booking.BackendPaymentTag(in.Method); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported payment method"})
		return
	}
	f, err := h.flows.Update(c.Request.Context(), sessionSub(c), func(f *booking.Flow) error {
		f.SetPaymentMethod(in.Method)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.view(f))
}

// GET /v1/flow/quote
func (h *FlowHandler) Quote(c *gin.Context) {
	f, err := h.flows.Load(c.Request.Context(), sessionSub(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quote":         f.Quote,
		"grand_total":   f.GrandTotal(),
		"grand_display": h.fmt.Format(f.GrandTotal()),
	})
}

// POST /v1/flow/checkout: court-mode submission. The gate runs here;
// on success the flow is discarded (order state now lives upstream).
// On failure nothing is retried: the error surfaces and local state is
// left to be re-fetched from the backend.
func (h *FlowHandler) Checkout(c *gin.Context) {
	ctx := c.Request.Context()
	sub := sessionSub(c)
	f, err := h.flows.Load(ctx, sub)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if f.Mode != booking.ModeCourt {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "flow is not in court-booking mode"})
		return
	}
	payload, err := f.BuildOrder()
	if err != nil {
		answerGateErr(c, err)
		return
	}
	receipt, err := h.be.SubmitOrder(ctx, sessionToken(c), payload)
	if err != nil {
		answerBackendErr(c, err)
		return
	}
	_ = h.flows.Delete(ctx, sub)
	c.JSON(http.StatusCreated, gin.H{"receipt": receipt, "amount_display": h.fmt.Format(receipt.Amount)})
}

// POST /v1/flow/enroll: session-enrollment submission. Success
// invalidates the cached session list so enrolled counts come back
// authoritative.
func (h *FlowHandler) Enroll(c *gin.Context) {
	ctx := c.Request.Context()
	sub := sessionSub(c)
	f, err := h.flows.Load(ctx, sub)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if f.Mode != booking.ModeSession {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "flow is not in session-enrollment mode"})
		return
	}
	payload, err := f.BuildOrder()
	if err != nil {
		answerGateErr(c, err)
		return
	}
	receipt, err := h.be.Enroll(ctx, sessionToken(c), payload)
	if err != nil {
		answerBackendErr(c, err)
		return
	}
	_ = h.flows.Delete(ctx, sub)
	_ = h.cat.InvalidateSessions(ctx)
	c.JSON(http.StatusCreated, gin.H{"receipt": receipt, "amount_display": h.fmt.Format(receipt.Amount)})
}

// DELETE /v1/flow: discard the selection, e.g. on navigation away.
func (h *FlowHandler) Reset(c *gin.Context) {
	if err := h.flows.Delete(c.Request.Context(), sessionSub(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
