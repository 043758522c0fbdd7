package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/you/badminton-portal/internal/backend"
	"github.com/you/badminton-portal/internal/booking"
)

// answerBackendErr maps a backend client error onto our own response.
// 401 forces the client back to login; validation bodies pass through;
// everything else degrades to a dismissible 502 message. Nothing here
// is retried.
func answerBackendErr(c *gin.Context, err error) {
	if errors.Is(err, backend.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired, please log in again"})
		return
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Status < 500 {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	logrus.WithError(err).Warn("backend call failed")
	c.JSON(http.StatusBadGateway, gin.H{"error": "facility service unavailable, please try again"})
}

// answerGateErr maps submission-gate failures to 422: the selection is
// readable but not submittable yet.
func answerGateErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNoResource),
		errors.Is(err, booking.ErrNoDuration),
		errors.Is(err, booking.ErrNothingToPay),
		errors.Is(err, booking.ErrNoPaymentMethod):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func sessionToken(c *gin.Context) string {
	v, _ := c.Get("token")
	tok, _ := v.(string)
	return tok
}

func sessionSub(c *gin.Context) string {
	v, _ := c.Get("sub")
	sub, _ := v.(string)
	return sub
}
