package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/you/badminton-portal/internal/booking"
	"github.com/you/badminton-portal/internal/catalog"
)

// ErrUnauthorized means the bearer token was missing, expired or
// rejected. The handler layer turns this into a forced logout; it is
// never retried.
var ErrUnauthorized = errors.New("backend rejected credentials")

// APIError carries a backend-reported failure. 4xx are validation
// problems surfaced to the user as-is; 5xx degrade to a generic
// dismissible message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (%d)", e.Message, e.Status)
}

// Client talks JSON over HTTPS to the facility backend. One request per
// user-facing mutating action, no batching, explicit timeout.
type Client struct {
	base string
	http *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type Booking struct {
	ID       string `json:"id"`
	CourtID  string `json:"court_id,omitempty"`
	StartISO string `json:"start_iso,omitempty"`
	EndISO   string `json:"end_iso,omitempty"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
}

type OrderReceipt struct {
	OrderID    string `json:"order_id"`
	BookingID  string `json:"booking_id,omitempty"`
	Status     string `json:"status"`
	Amount     int64  `json:"amount"`
	PaymentURL string `json:"payment_url,omitempty"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", "", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPost, "/v1/auth/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TrainingSessions(ctx context.Context) ([]catalog.TrainingSession, error) {
	var out []catalog.TrainingSession
	return out, c.do(ctx, http.MethodGet, "/v1/sessions", "", nil, &out)
}

func (c *Client) Equipment(ctx context.Context) ([]catalog.CatalogItem, error) {
	var out []catalog.CatalogItem
	return out, c.do(ctx, http.MethodGet, "/v1/equipment", "", nil, &out)
}

func (c *Client) Food(ctx context.Context) ([]catalog.CatalogItem, error) {
	var out []catalog.CatalogItem
	return out, c.do(ctx, http.MethodGet, "/v1/food", "", nil, &out)
}

func (c *Client) MyBookings(ctx context.Context, token string) ([]Booking, error) {
	var out []Booking
	return out, c.do(ctx, http.MethodGet, "/v1/bookings", token, nil, &out)
}

func (c *Client) SubmitOrder(ctx context.Context, token string, order booking.OrderPayload) (*OrderReceipt, error) {
	var out OrderReceipt
	if err := c.do(ctx, http.MethodPost, "/v1/orders", token, order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Enroll(ctx context.Context, token string, order booking.OrderPayload) (*OrderReceipt, error) {
	var out OrderReceipt
	if err := c.do(ctx, http.MethodPost, "/v1/enrollments", token, order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelBooking(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, "/v1/bookings/"+id+"/cancel", token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &APIError{Status: res.StatusCode, Message: errorMessage(res.Body)}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func errorMessage(r io.Reader) string {
	raw, _ := io.ReadAll(r)
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &e); err == nil {
		if e.Error != "" {
			return e.Error
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return string(raw)
}
