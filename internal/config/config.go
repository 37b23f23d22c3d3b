package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Providers ProvidersConfig `yaml:"providers"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	WordOfDay WordOfDayConfig `yaml:"word_of_day"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings. An empty DSN disables
// the persistent response cache.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.DSN != ""
}

// ProvidersConfig holds upstream API endpoints and HTTP client settings.
type ProvidersConfig struct {
	UserAgent     string        `yaml:"user_agent"     env:"PROVIDERS_USER_AGENT"     env-default:"WordExplorer/1.0 (educational project)"`
	Timeout       time.Duration `yaml:"timeout"        env:"PROVIDERS_TIMEOUT"        env-default:"5s"`
	RetryDelay    time.Duration `yaml:"retry_delay"    env:"PROVIDERS_RETRY_DELAY"    env-default:"500ms"`
	DictionaryURL string        `yaml:"dictionary_url" env:"PROVIDERS_DICTIONARY_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	WiktionaryURL string        `yaml:"wiktionary_url" env:"PROVIDERS_WIKTIONARY_URL" env-default:"https://en.wiktionary.org/w/api.php"`
	WikipediaURL  string        `yaml:"wikipedia_url"  env:"PROVIDERS_WIKIPEDIA_URL"  env-default:"https://en.wikipedia.org/api/rest_v1"`
	NgramURL      string        `yaml:"ngram_url"      env:"PROVIDERS_NGRAM_URL"      env-default:"https://books.google.com/ngrams/json"`
	Ngram         NgramConfig   `yaml:"ngram"`
}

// NgramConfig holds the Google Books Ngram query parameters.
type NgramConfig struct {
	YearStart int `yaml:"year_start" env:"NGRAM_YEAR_START" env-default:"1800"`
	YearEnd   int `yaml:"year_end"   env:"NGRAM_YEAR_END"   env-default:"2019"`
	Corpus    int `yaml:"corpus"     env:"NGRAM_CORPUS"     env-default:"26"`
	Smoothing int `yaml:"smoothing"  env:"NGRAM_SMOOTHING"  env-default:"3"`
}

// CacheConfig sizes the response cache.
type CacheConfig struct {
	Size          int           `yaml:"size"           env:"CACHE_SIZE"           env-default:"1024"`
	TTL           time.Duration `yaml:"ttl"            env:"CACHE_TTL"            env-default:"1h"`
	PersistentTTL time.Duration `yaml:"persistent_ttl" env:"CACHE_PERSISTENT_TTL" env-default:"168h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client request limits. Zero disables limiting.
type RateLimitConfig struct {
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"60"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// WordOfDayConfig controls the word-of-the-day cache warmer.
type WordOfDayConfig struct {
	WarmEnabled  bool   `yaml:"warm_enabled"  env:"WOTD_WARM_ENABLED"  env-default:"true"`
	WarmSchedule string `yaml:"warm_schedule" env:"WOTD_WARM_SCHEDULE" env-default:"5 0 * * *"`
}
