package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Compiler  CompilerConfig  `yaml:"compiler"`
	LLM       LLMConfig       `yaml:"llm"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Request-Id,X-Blocks-Failed"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"2097152"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds admin authentication settings.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer         string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"syllabus-backend"`
	AccessTokenTTL    time.Duration `yaml:"access_token_ttl"    env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"12h"`
	AdminUsername     string        `yaml:"admin_username"      env:"AUTH_ADMIN_USERNAME"      env-default:"admin"`
	AdminPasswordHash string        `yaml:"admin_password_hash" env:"AUTH_ADMIN_PASSWORD_HASH"`
}

// AdminLoginEnabled reports whether an admin password has been configured.
func (c AuthConfig) AdminLoginEnabled() bool {
	return c.AdminPasswordHash != ""
}

// CompilerConfig holds schedule compiler settings.
type CompilerConfig struct {
	ReferenceYear   int    `yaml:"reference_year"   env:"COMPILER_REFERENCE_YEAR"   env-default:"2025"`
	Workers         int    `yaml:"workers"          env:"COMPILER_WORKERS"          env-default:"0"`
	DetectionWindow int    `yaml:"detection_window" env:"COMPILER_DETECTION_WINDOW" env-default:"25"`
	Timezone        string `yaml:"timezone"         env:"COMPILER_TIMEZONE"         env-default:"Asia/Jerusalem"`
}

// LLMConfig holds settings for the question answering model.
type LLMConfig struct {
	APIKey          string        `yaml:"api_key"          env:"LLM_API_KEY"`
	Model           string        `yaml:"model"            env:"LLM_MODEL"            env-default:"claude-sonnet-4-5"`
	MaxTokens       int64         `yaml:"max_tokens"       env:"LLM_MAX_TOKENS"       env-default:"1024"`
	Timeout         time.Duration `yaml:"timeout"          env:"LLM_TIMEOUT"          env-default:"45s"`
	HistoryMessages int           `yaml:"history_messages" env:"LLM_HISTORY_MESSAGES" env-default:"10"`
	ContextChars    int           `yaml:"context_chars"    env:"LLM_CONTEXT_CHARS"    env-default:"60000"`
	RetentionDays   int           `yaml:"retention_days"   env:"LLM_RETENTION_DAYS"   env-default:"180"`
}

// Enabled reports whether an API key is configured.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

// RateLimitConfig holds limits for the public chat endpoint.
type RateLimitConfig struct {
	ChatPerMinute  int `yaml:"chat_per_minute"  env:"RATE_LIMIT_CHAT_PER_MINUTE"  env-default:"20"`
	LoginPerMinute int `yaml:"login_per_minute" env:"RATE_LIMIT_LOGIN_PER_MINUTE" env-default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
