package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/you/badminton-portal/internal/backend"
	"github.com/you/badminton-portal/internal/booking"
	"github.com/you/badminton-portal/internal/catalog"
	"github.com/you/badminton-portal/internal/handlers"
	"github.com/you/badminton-portal/internal/middlewares"
	"github.com/you/badminton-portal/pkg/auth"
	"github.com/you/badminton-portal/pkg/config"
	"github.com/you/badminton-portal/pkg/money"
	"github.com/you/badminton-portal/pkg/obs"
)

func main() {
	_ = godotenv.Load(".env")
	logrus.SetFormatter(new(logrus.JSONFormatter))

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	shutdown := obs.InitTracer("booking-portal")
	defer func() { _ = shutdown(context.Background()) }()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("redis ping: %v", err)
	}

	be := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)
	cache := catalog.NewCache(rdb, cfg.CatalogTTL)
	cat := catalog.New(be, cache)
	flows := booking.NewFlowStore(rdb, cfg.FlowTTL)
	verifier := auth.NewVerifier(cfg.JWTSecret)
	formatter := money.NewFormatter(cfg.Locale)

	r := gin.Default()
	r.Use(otelgin.Middleware("booking-portal"))

	a := handlers.NewAuthHandler(be)
	ch := handlers.NewCatalogHandler(cat, formatter)
	fh := handlers.NewFlowHandler(flows, cat, be, formatter)
	bh := handlers.NewBookingsHandler(be, cache)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", a.Register)
		v1.POST("/auth/login", a.Login)

		v1.GET("/courts", ch.Courts)
		v1.GET("/sessions", ch.Sessions)
		v1.GET("/equipment", ch.Equipment)
		v1.GET("/food", ch.Food)
		v1.GET("/slots", ch.Slots)

		secured := v1.Group("")
		secured.Use(middlewares.JWTAuth(verifier))
		{
			secured.GET("/flow", fh.Get)
			secured.PUT("/flow/selection", fh.SetSelection)
			secured.PUT("/flow/resource", fh.SetResource)
			secured.PUT("/flow/items", fh.SetItem)
			secured.PUT("/flow/payment-method", fh.SetPaymentMethod)
			secured.GET("/flow/quote", fh.Quote)
			secured.POST("/flow/checkout", fh.Checkout)
			secured.POST("/flow/enroll", fh.Enroll)
			secured.DELETE("/flow", fh.Reset)

			secured.GET("/bookings", bh.List)
			secured.POST("/bookings/:id/cancel", bh.Cancel)

			admin := secured.Group("/admin")
			admin.Use(middlewares.RequireRole("ADMIN", "STAFF"))
			{
				admin.POST("/catalog/refresh", ch.Refresh)
			}
		}
	}

	logrus.WithField("addr", cfg.PortalHTTPAddr).Info("booking-portal listening")
	if err := r.Run(cfg.PortalHTTPAddr); err != nil {
		logrus.Fatal(err)
	}
}
