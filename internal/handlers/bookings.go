package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/badminton-portal/internal/backend"
	"github.com/you/badminton-portal/internal/catalog"
)

type BookingsHandler struct {
	be    *backend.Client
	cache *catalog.Cache
}

func NewBookingsHandler(be *backend.Client, cache *catalog.Cache) *BookingsHandler {
	return &BookingsHandler{be: be, cache: cache}
}

func bookingsKey(sub string) string { return "bookings:" + sub }

// GET /v1/bookings: the user's bookings, cache-aside per user.
func (h *BookingsHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	key := bookingsKey(sessionSub(c))

	var list []backend.Booking
	if h.cache.Get(ctx, key, &list) {
		c.JSON(http.StatusOK, gin.H{"bookings": list})
		return
	}
	list, err := h.be.MyBookings(ctx, sessionToken(c))
	if err != nil {
		answerBackendErr(c, err)
		return
	}
	_ = h.cache.Set(ctx, key, list)
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// POST /v1/bookings/:id/cancel: the cached list is dropped up front
// (optimistic removal); whether the cancel succeeds or fails, the next
// read re-fetches the authoritative list from the backend, so a failed
// cancel rolls the view back instead of leaving a phantom removal.
func (h *BookingsHandler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	_ = h.cache.Invalidate(ctx, bookingsKey(sessionSub(c)))

	if err := h.be.CancelBooking(ctx, sessionToken(c), id); err != nil {
		list, ferr := h.be.MyBookings(ctx, sessionToken(c))
		if ferr == nil {
			_ = h.cache.Set(ctx, bookingsKey(sessionSub(c)), list)
		}
		answerBackendErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "id": id})
}
