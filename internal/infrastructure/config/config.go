package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/esgmate/esg-platform/internal/core/domain"
)

// ServiceURLs are the base URLs of every registered downstream service.
// Loaded once at startup; immutable for the process lifetime.
type ServiceURLs struct {
	Gateway     string `env:"GATEWAY_SERVICE_URL,     default=http://localhost:8080"`
	Chatbot     string `env:"CHATBOT_SERVICE_URL,     default=http://localhost:8001"`
	Materiality string `env:"MATERIALITY_SERVICE_URL, default=http://localhost:8002"`
	GRI         string `env:"GRI_SERVICE_URL,         default=http://localhost:8003"`
	TCFD        string `env:"TCFD_SERVICE_URL,        default=http://localhost:8005"`
	Auth        string `env:"AUTH_SERVICE_URL,        default=http://localhost:8008"`
}

// Endpoints expands the URLs into the static service registry, in the fixed
// order services are reported in.
func (s ServiceURLs) Endpoints() []domain.ServiceEndpoint {
	return []domain.ServiceEndpoint{
		domain.NewServiceEndpoint("gateway", s.Gateway),
		domain.NewServiceEndpoint("chatbot", s.Chatbot),
		domain.NewServiceEndpoint("materiality", s.Materiality),
		domain.NewServiceEndpoint("gri", s.GRI),
		domain.NewServiceEndpoint("tcfd", s.TCFD),
		domain.NewServiceEndpoint("auth", s.Auth),
	}
}

// GatewayConfig configures the API gateway.
type GatewayConfig struct {
	Host                string   `env:"HOST,            default=0.0.0.0"`
	Port                int      `env:"PORT,            default=8080"`
	Env                 string   `env:"ENV,             default=development"`
	LogLevel            string   `env:"LOG_LEVEL,       default=info"`
	AllowedOrigins      []string `env:"ALLOWED_ORIGINS, default=*"`
	ProbeTimeoutSeconds int      `env:"SERVICE_TIMEOUT, default=5"`

	Services ServiceURLs
}

// AuthConfig configures the authentication service.
type AuthConfig struct {
	Host           string   `env:"HOST,            default=0.0.0.0"`
	Port           int      `env:"PORT,            default=8008"`
	Env            string   `env:"ENV,             default=development"`
	LogLevel       string   `env:"LOG_LEVEL,       default=info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=*"`

	JWTSecret         string `env:"JWT_SECRET_KEY,                  default=your-secret-key-here"`
	TokenTTLMinutes   int    `env:"JWT_ACCESS_TOKEN_EXPIRE_MINUTES, default=60"`
	PasswordMinLength int    `env:"PASSWORD_MIN_LENGTH,             default=8"`
	BcryptCost        int    `env:"BCRYPT_COST,                     default=10"`
}

// GRIConfig configures the GRI standards service.
type GRIConfig struct {
	Host           string   `env:"HOST,            default=0.0.0.0"`
	Port           int      `env:"PORT,            default=8003"`
	Env            string   `env:"ENV,             default=development"`
	LogLevel       string   `env:"LOG_LEVEL,       default=info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=*"`
}

// MaterialityConfig configures the materiality assessment service.
type MaterialityConfig struct {
	Host           string   `env:"HOST,            default=0.0.0.0"`
	Port           int      `env:"PORT,            default=8002"`
	Env            string   `env:"ENV,             default=development"`
	LogLevel       string   `env:"LOG_LEVEL,       default=info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=*"`
}

// LoadGateway reads gateway configuration from environment variables.
func LoadGateway() *GatewayConfig {
	var cfg GatewayConfig
	load(&cfg)
	return &cfg
}

// LoadAuth reads auth service configuration from environment variables.
func LoadAuth() *AuthConfig {
	var cfg AuthConfig
	load(&cfg)
	return &cfg
}

// LoadGRI reads GRI service configuration from environment variables.
func LoadGRI() *GRIConfig {
	var cfg GRIConfig
	load(&cfg)
	return &cfg
}

// LoadMateriality reads materiality service configuration from environment
// variables.
func LoadMateriality() *MaterialityConfig {
	var cfg MaterialityConfig
	load(&cfg)
	return &cfg
}

func load(cfg any) {
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
}
