package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// lookup providers, background processing and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"90s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// RateLimit is the number of API requests per second allowed per client IP. Zero disables it.
		RateLimit float64 `env:"HTTP_RATE_LIMIT" env-default:"10" yaml:"rateLimit"`
		// RateBurst is the token bucket size of the per client limiter
		RateBurst int `env:"HTTP_RATE_BURST" env-default:"20" yaml:"rateBurst"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"domainintel" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// AutoMigrate applies pending migrations when the server starts
		AutoMigrate bool `env:"DATABASE_AUTO_MIGRATE" env-default:"true" yaml:"autoMigrate"`
	} `yaml:"database"`

	// Checks configures the aggregator
	Checks struct {
		// Concurrency is the number of domains checked at the same time
		Concurrency int `env:"CHECKS_CONCURRENCY" env-default:"5" yaml:"concurrency"`
		// DNSTypes are queried when a request does not name any record type
		DNSTypes []string `env:"CHECKS_DNS_TYPES" env-default:"A,MX,TXT" env-separator:"," yaml:"dnsTypes"`
	} `yaml:"checks"`

	// Poller configures the dashboard liveness poller
	Poller struct {
		// Interval is the pause between two refreshes of a watched domain set
		Interval time.Duration `env:"POLLER_INTERVAL" env-default:"180s" yaml:"interval"`
		// Concurrency is the number of parallel probes of one refresh
		Concurrency int `env:"POLLER_CONCURRENCY" env-default:"10" yaml:"concurrency"`
	} `yaml:"poller"`

	// Sessions bounds the per client session registry
	Sessions struct {
		// IdleTTL evicts sessions not used for this long and stops their polling
		IdleTTL time.Duration `env:"SESSIONS_IDLE_TTL" env-default:"30m" yaml:"idleTTL"`
		// MaxSessions caps the registry. The least recently used session is evicted first.
		MaxSessions int `env:"SESSIONS_MAX" env-default:"1000" yaml:"maxSessions"`
	} `yaml:"sessions"`

	// Worker configures background check jobs
	Worker struct {
		// Enabled starts the river workers next to the API server
		Enabled bool `env:"WORKER_ENABLED" env-default:"true" yaml:"enabled"`
		// MaxWorkers is the number of jobs running at the same time
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// JobsPerSecond throttles job starts. Zero disables throttling.
		JobsPerSecond float64 `env:"WORKER_JOBS_PER_SECOND" env-default:"2" yaml:"jobsPerSecond"`
		// Burst is the number of jobs allowed to start back to back
		Burst int `env:"WORKER_BURST" env-default:"4" yaml:"burst"`
	} `yaml:"worker"`

	// Cache configures the raw WHOIS response cache
	Cache struct {
		// TTL is how long a raw response is reused. Zero disables caching.
		TTL time.Duration `env:"CACHE_TTL" env-default:"1h" yaml:"ttl"`
		// CleanupInterval is how often expired in-memory entries are purged
		CleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" env-default:"10m" yaml:"cleanupInterval"`
		// RedisAddr enables redis as the primary cache when set
		RedisAddr string `env:"CACHE_REDIS_ADDR" yaml:"redisAddr"`
		// RedisPassword authenticates against redis
		RedisPassword string `env:"CACHE_REDIS_PASSWORD" yaml:"redisPassword"`
		// RedisDB selects the redis logical database
		RedisDB int `env:"CACHE_REDIS_DB" env-default:"0" yaml:"redisDB"`
		// HealthRetry is how long an unhealthy redis is bypassed
		HealthRetry time.Duration `env:"CACHE_HEALTH_RETRY" env-default:"30s" yaml:"healthRetry"`
	} `yaml:"cache"`

	// Providers configures the remote lookups
	Providers struct {
		Whois struct {
			// Server overrides automatic WHOIS server discovery
			Server string `env:"WHOIS_SERVER" yaml:"server"`
			// Timeout bounds a single lookup
			Timeout time.Duration `env:"WHOIS_TIMEOUT" env-default:"15s" yaml:"timeout"`
		} `yaml:"whois"`

		DNS struct {
			// Server is the recursive resolver queried for records and DNSSEC material
			Server string `env:"DNS_SERVER" env-default:"8.8.8.8:53" yaml:"server"`
			// Timeout bounds a single query
			Timeout time.Duration `env:"DNS_TIMEOUT" env-default:"5s" yaml:"timeout"`
		} `yaml:"dns"`

		RDAP struct {
			// Servers maps a TLD to its RDAP base URL, overriding the built in table
			Servers map[string]string `env:"RDAP_SERVERS" env-separator:"," yaml:"servers"`
			// Bootstrap is the IANA registry used to find servers for TLDs missing from Servers
			Bootstrap string `env:"RDAP_BOOTSTRAP" env-default:"https://data.iana.org/rdap/" yaml:"bootstrap"`
			// Fallback is queried when bootstrap has no server for a TLD
			Fallback string `env:"RDAP_FALLBACK" env-default:"https://rdap.org/" yaml:"fallback"`
			// Timeout bounds a single query
			Timeout time.Duration `env:"RDAP_TIMEOUT" env-default:"10s" yaml:"timeout"`
		} `yaml:"rdap"`

		HTTPProbe struct {
			// Timeout bounds a single liveness probe
			Timeout time.Duration `env:"HTTP_PROBE_TIMEOUT" env-default:"5s" yaml:"timeout"`
			// Scheme is used to build the probed URL
			Scheme string `env:"HTTP_PROBE_SCHEME" env-default:"https" yaml:"scheme"`
		} `yaml:"httpProbe"`

		DomainTools struct {
			// Username and APIKey authenticate against DomainTools. Both are required.
			Username string `env:"DOMAINTOOLS_USERNAME" yaml:"username"`
			APIKey   string `env:"DOMAINTOOLS_API_KEY" yaml:"apiKey"`
			// BaseURL overrides the public API endpoint
			BaseURL string `env:"DOMAINTOOLS_BASE_URL" env-default:"https://api.domaintools.com/v1/" yaml:"baseURL"`
			// Timeout bounds a single query
			Timeout time.Duration `env:"DOMAINTOOLS_TIMEOUT" env-default:"10s" yaml:"timeout"`
		} `yaml:"domainTools"`

		Gemini struct {
			// APIKey enables name generation
			APIKey string `env:"GEMINI_API_KEY" yaml:"apiKey"`
			// Model is the generative model name
			Model string `env:"GEMINI_MODEL" env-default:"gemini-2.0-flash" yaml:"model"`
			// BaseURL overrides the public API endpoint
			BaseURL string `env:"GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/" yaml:"baseURL"`
			// APIVersion is the path segment placed after BaseURL
			APIVersion string `env:"GEMINI_API_VERSION" env-default:"v1beta" yaml:"apiVersion"`
			// Timeout bounds a single generation
			Timeout time.Duration `env:"GEMINI_TIMEOUT" env-default:"30s" yaml:"timeout"`
		} `yaml:"gemini"`
	} `yaml:"providers"`

	// Pricing configures the registrar price table
	Pricing struct {
		// Path points to a YAML price table. Empty uses the embedded table.
		Path string `env:"PRICING_PATH" yaml:"path"`
	} `yaml:"pricing"`

	// Export configures where the CLI writes exported results
	Export struct {
		// Dir is the directory receiving domain_results.json
		Dir string `env:"EXPORT_DIR" env-default:"." yaml:"dir"`
	} `yaml:"export"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads environment variables and defaults only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
