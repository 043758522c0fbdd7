package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/badminton-portal/internal/booking"
	"github.com/you/badminton-portal/internal/catalog"
	"github.com/you/badminton-portal/pkg/money"
)

type CatalogHandler struct {
	cat *catalog.Catalog
	fmt *money.Formatter
}

func NewCatalogHandler(cat *catalog.Catalog, fmt *money.Formatter) *CatalogHandler {
	return &CatalogHandler{cat: cat, fmt: fmt}
}

// GET /v1/courts: static facility floor plan with display prices.
func (h *CatalogHandler) Courts(c *gin.Context) {
	type courtView struct {
		catalog.Court
		PriceDisplay string `json:"price_display"`
	}
	var out []courtView
	for _, ct := range catalog.Courts() {
		out = append(out, courtView{Court: ct, PriceDisplay: h.fmt.Format(ct.PricePerHour)})
	}
	c.JSON(http.StatusOK, gin.H{"courts": out})
}

func (h *CatalogHandler) Sessions(c *gin.Context) {
	list, err := h.cat.Sessions(c.Request.Context())
	if err != nil {
		answerBackendErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": list})
}

func (h *CatalogHandler) Equipment(c *gin.Context) {
	list, err := h.cat.Equipment(c.Request.Context())
	if err != nil {
		answerBackendErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"equipment": list})
}

func (h *CatalogHandler) Food(c *gin.Context) {
	list, err := h.cat.Food(c.Request.Context())
	if err != nil {
		answerBackendErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"food": list})
}

// POST /v1/admin/catalog/refresh: staff-only. Drops every cached
// listing so the next reads go back to the backend.
func (h *CatalogHandler) Refresh(c *gin.Context) {
	if err := h.cat.InvalidateAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}

// GET /v1/slots?start=HH:MM: the selectable start times, and when a
// start is given, the end times still valid for it.
func (h *CatalogHandler) Slots(c *gin.Context) {
	resp := gin.H{"slots": booking.Slots()}
	if start := c.Query("start"); start != "" {
		resp["end_options"] = booking.EndOptions(start)
	}
	c.JSON(http.StatusOK, resp)
}
