package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// Upstream facility backend
	BackendBaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	BackendTimeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`

	// JWT (shared secret with the backend)
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// Redis (flow snapshots + catalog cache)
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	FlowTTL       time.Duration `envconfig:"FLOW_TTL" default:"30m"`
	CatalogTTL    time.Duration `envconfig:"CATALOG_TTL" default:"2m"`

	// Currency display locale (thousands grouping, no subunit)
	Locale string `envconfig:"LOCALE" default:"vi"`

	// Network
	PortalHTTPAddr string `envconfig:"PORTAL_HTTP_ADDR" default:":8080"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
