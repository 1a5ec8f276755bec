package config

import (
	"time"

	"github.com/prepstack/interview-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Engine    EngineConfig    `yaml:"engine"`
	Roadmap   RoadmapConfig   `yaml:"roadmap"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds JWT authentication settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"prepstack"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// EngineConfig holds the progress-engine tunables. Every threshold the
// engine applies is settable here rather than compiled in.
type EngineConfig struct {
	MasteryThreshold int     `yaml:"mastery_threshold" env:"ENGINE_MASTERY_THRESHOLD" env-default:"80"`
	GrowthFactor     float64 `yaml:"growth_factor"     env:"ENGINE_GROWTH_FACTOR"     env-default:"2.0"`
	UnlockThreshold  int     `yaml:"unlock_threshold"  env:"ENGINE_UNLOCK_THRESHOLD"  env-default:"70"`
	ActivityWindow   int     `yaml:"activity_window_days" env:"ENGINE_ACTIVITY_WINDOW_DAYS" env-default:"30"`

	WeightConfidence float64 `yaml:"weight_confidence" env:"ENGINE_WEIGHT_CONFIDENCE" env-default:"0.25"`
	WeightClarity    float64 `yaml:"weight_clarity"    env:"ENGINE_WEIGHT_CLARITY"    env-default:"0.25"`
	WeightTechnical  float64 `yaml:"weight_technical"  env:"ENGINE_WEIGHT_TECHNICAL"  env-default:"0.30"`
	WeightFiller     float64 `yaml:"weight_filler"     env:"ENGINE_WEIGHT_FILLER"     env-default:"0.20"`
}

// RoadmapConfig holds curriculum catalogue settings. CataloguePath points
// at a YAML document mapping roles to ordered phase definitions; when
// empty, the compiled-in default catalogue is used.
type RoadmapConfig struct {
	CataloguePath string `yaml:"catalogue_path" env:"ROADMAP_CATALOGUE_PATH"`
}

// RateLimitConfig holds per-IP rate limiting settings for the auth
// endpoints.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ScoreWeights assembles the configured weights into the domain type.
func (c EngineConfig) ScoreWeights() domain.ScoreWeights {
	return domain.ScoreWeights{
		Confidence:        c.WeightConfidence,
		Clarity:           c.WeightClarity,
		TechnicalAccuracy: c.WeightTechnical,
		FillerPenalty:     c.WeightFiller,
	}
}

// ReviewPolicy assembles the configured review policy.
func (c EngineConfig) ReviewPolicy() domain.ReviewPolicy {
	return domain.ReviewPolicy{
		MasteryThreshold: c.MasteryThreshold,
		GrowthFactor:     c.GrowthFactor,
	}
}
