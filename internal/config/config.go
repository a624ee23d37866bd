package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
	KeyUUID    = key("uuid")
)

type Config struct {
	Service  Service
	Platform Platform
	API      API
	Socket   Socket
	Typing   Typing
	Cache    Cache
	Status   Status
	Logger   Logger
	Metrics  Metrics
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"sync-client"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type API struct {
	BaseURL string        `env:"API_BASE_URL" env-required:"true"`
	Timeout time.Duration `env:"API_TIMEOUT" env-default:"15s"`
}

type Socket struct {
	URL               string        `env:"SOCKET_URL" env-required:"true"`
	HandshakeTimeout  time.Duration `env:"SOCKET_HANDSHAKE_TIMEOUT" env-default:"10s"`
	ReconnectInterval time.Duration `env:"SOCKET_RECONNECT_INTERVAL" env-default:"3s"`
	PingInterval      time.Duration `env:"SOCKET_PING_INTERVAL" env-default:"30s"`
}

// Typing holds the client-side typing indicator timing contracts.
// The defaults mirror the platform front-end: a 500ms trailing debounce on
// outbound typing, a stop signal after 2s of idle input, and a 3s expiry on
// inbound indicators that never received an explicit stop.
type Typing struct {
	Debounce   time.Duration `env:"TYPING_DEBOUNCE" env-default:"500ms"`
	StopAfter  time.Duration `env:"TYPING_STOP_AFTER" env-default:"2s"`
	PeerExpiry time.Duration `env:"TYPING_PEER_EXPIRY" env-default:"3s"`
}

type Cache struct {
	Path string `env:"CACHE_PATH" env-default:"./data/sync.db"`
}

type Status struct {
	Port string `env:"STATUS_PORT" env-default:"8844"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST"`
	Port int    `env:"METRICS_PORT"`
}

func MustLoad() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env config: %v", err)
	}

	return cfg
}
