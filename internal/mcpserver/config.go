package mcpserver

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// envPrefix namespaces every MCP server setting.
const envPrefix = "HUBDOC_MCP_"

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool          `env:"CACHE_ENABLED"        envDefault:"true"`
	CacheMaxSize       int           `env:"CACHE_MAX_SIZE"       envDefault:"10"       validate:"gt=0"`
	CacheDirTTL        time.Duration `env:"CACHE_DIR_TTL"        envDefault:"2m"       validate:"gt=0"`
	CacheContentTTL    time.Duration `env:"CACHE_CONTENT_TTL"    envDefault:"15m"      validate:"gt=0"`
	CacheSweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" envDefault:"60s"      validate:"gt=0"`

	// list_hubs defaults.
	ListLimit       int `env:"LIST_LIMIT"        envDefault:"100" validate:"gt=0"`
	ListDetailLimit int `env:"LIST_DETAIL_LIMIT" envDefault:"25"  validate:"gt=0"`
	MaxLimit        int `env:"MAX_LIMIT"         envDefault:"1000" validate:"gt=0"`

	// MaxInlineSize bounds inline Go source accepted by every tool.
	MaxInlineSize int64 `env:"MAX_INLINE_SIZE" envDefault:"1048576" validate:"gt=0"`

	// Generation defaults.
	Document       string `env:"DOCUMENT"        envDefault:"v1" validate:"required"`
	ValidateStrict bool   `env:"VALIDATE_STRICT" envDefault:"false"`
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// loadConfig reads configuration from HUBDOC_MCP_* environment variables.
func loadConfig() *serverConfig {
	return loadConfigFrom(nil)
}

// loadConfigFrom parses environ, or the process environment when environ
// is nil. Unparsable or out-of-range values log a warning and the whole
// configuration falls back to its defaults.
func loadConfigFrom(environ map[string]string) *serverConfig {
	c := &serverConfig{}
	err := env.ParseWithOptions(c, env.Options{Prefix: envPrefix, Environment: environ})
	if err == nil {
		err = configValidator.Struct(c)
	}
	if err != nil {
		slog.Warn("invalid MCP server environment, using defaults", "prefix", envPrefix, "error", err)
		return defaultConfig()
	}
	return c
}

// defaultConfig returns the configuration with every envDefault applied.
func defaultConfig() *serverConfig {
	c := &serverConfig{}
	// An empty, non-nil environment yields the tag defaults.
	_ = env.ParseWithOptions(c, env.Options{Prefix: envPrefix, Environment: map[string]string{}})
	return c
}
