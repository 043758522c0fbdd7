package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/badminton-portal/internal/middlewares"
	"github.com/you/badminton-portal/pkg/auth"
	"github.com/you/badminton-portal/pkg/money"
)

func TestSlotsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ch := NewCatalogHandler(nil, money.NewFormatter("vi"))
	r.GET("/v1/slots", ch.Slots)

	t.Run("bare slot list", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/slots", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Slots      []string `json:"slots"`
			EndOptions []string `json:"end_options"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "07:00", body.Slots[0])
		assert.Equal(t, "22:00", body.Slots[len(body.Slots)-1])
		assert.Nil(t, body.EndOptions)
	})

	t.Run("end options for a start", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/slots?start=21:00", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			EndOptions []string `json:"end_options"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"21:30", "22:00"}, body.EndOptions)
	})
}

func TestJWTAuthGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	v := auth.NewVerifier("secret")
	r := gin.New()
	r.GET("/protected", middlewares.JWTAuth(v), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sub": sessionSub(c)})
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		tok, err := auth.Sign("secret", "u1", "USER", "a@b.c", -time.Minute)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes identity through", func(t *testing.T) {
		tok, err := auth.Sign("secret", "u1", "USER", "a@b.c", time.Minute)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"sub":"u1"}`, w.Body.String())
	})
}

func TestRequireRoleGuardsAdminRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	v := auth.NewVerifier("secret")
	r := gin.New()
	r.POST("/admin/catalog/refresh",
		middlewares.JWTAuth(v),
		middlewares.RequireRole("ADMIN", "STAFF"),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "refreshed"}) },
	)

	call := func(role string) *httptest.ResponseRecorder {
		tok, err := auth.Sign("secret", "u1", role, "a@b.c", time.Minute)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/catalog/refresh", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("customer is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, call("USER").Code)
	})

	t.Run("staff roles pass", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, call("ADMIN").Code)
		assert.Equal(t, http.StatusOK, call("STAFF").Code)
	})
}
