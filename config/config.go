package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"

	GeminiREST   = "rest"
	GeminiVertex = "vertex"

	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/{model}:generateContent"
	DefaultGeminiModel    = "gemini-1.5-flash-latest"
)

// Config is read once at startup and handed to constructors.
// Nothing below request handlers reads the environment.
type Config struct {
	Server    ServerConfig
	Store     string
	Postgres  PostgresConfig
	Mongo     MongoConfig
	Gemini    GeminiConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	LogLevel  string
}

type ServerConfig struct {
	Addr           string
	APIPrefix      string
	AllowedOrigins []string
}

type PostgresConfig struct {
	URI             string
	AutoMigrate     bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func (c PostgresConfig) String() string {
	return fmt.Sprintf("postgres(uri=%s, max_open=%d)", redact(c.URI), c.MaxOpenConns)
}

type MongoConfig struct {
	URI            string
	Database       string
	ForceTLSConfig bool
	InsecureTLS    bool
}

func (c MongoConfig) String() string {
	return fmt.Sprintf("mongo(uri=%s, db=%s)", redact(c.URI), c.Database)
}

type GeminiConfig struct {
	Backend  string
	APIKey   string
	Endpoint string
	Model    string

	VertexProject  string
	VertexLocation string
}

func (c GeminiConfig) String() string {
	return fmt.Sprintf("gemini(backend=%s, model=%s, key=%s)", c.Backend, c.Model, redact(c.APIKey))
}

// URL expands the endpoint template for the configured model.
func (c GeminiConfig) URL() string {
	return strings.ReplaceAll(c.Endpoint, "{model}", c.Model)
}

type RedisConfig struct {
	Addr string
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

func (c RedisConfig) String() string {
	return fmt.Sprintf("redis(addr=%s)", redact(c.Addr))
}

type RateLimitConfig struct {
	PerMinute int
	Window    time.Duration
}

func (c RateLimitConfig) Enabled() bool { return c.PerMinute > 0 }

// Load builds the Config from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	store := strings.ToLower(getEnvOrDefault("STORE_BACKEND", BackendPostgres))
	var pg PostgresConfig
	var mg MongoConfig
	switch store {
	case BackendPostgres:
		if pg, err = loadPostgresConfig(); err != nil {
			return nil, err
		}
	case BackendMongo:
		if mg, err = loadMongoConfig(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND value %q", store)
	}

	gemini, err := loadGeminiConfig()
	if err != nil {
		return nil, err
	}

	perMinute, err := parseIntEnv("RATE_LIMIT_PER_MINUTE", 30)
	if err != nil {
		return nil, err
	}
	if perMinute < 0 {
		perMinute = 0
	}

	return &Config{
		Server:    server,
		Store:     store,
		Postgres:  pg,
		Mongo:     mg,
		Gemini:    gemini,
		Redis:     RedisConfig{Addr: firstEnv("REDIS_ADDR", "REDIS_URI", "REDIS_URL")},
		RateLimit: RateLimitConfig{PerMinute: perMinute, Window: time.Minute},
		LogLevel:  os.Getenv("LOG_LEVEL"),
	}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}
	addr := port
	if !strings.Contains(port, ":") {
		addr = ":" + port
	}

	prefix := getEnvOrDefault("API_PREFIX", "/api")
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	var origins []string
	for _, o := range strings.Split(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return ServerConfig{
		Addr:           addr,
		APIPrefix:      strings.TrimRight(prefix, "/"),
		AllowedOrigins: origins,
	}, nil
}

func loadPostgresConfig() (PostgresConfig, error) {
	uri := firstEnv("DATABASE_URL", "POSTGRES_URI")
	if uri == "" {
		return PostgresConfig{}, fmt.Errorf("DATABASE_URL (or POSTGRES_URI) environment variable is not set")
	}
	migrate, err := parseBoolEnv("DB_AUTO_MIGRATE", true)
	if err != nil {
		return PostgresConfig{}, err
	}
	idle, err := parseIntEnv("DB_MAX_IDLE_CONNS", 10)
	if err != nil {
		return PostgresConfig{}, err
	}
	open, err := parseIntEnv("DB_MAX_OPEN_CONNS", 100)
	if err != nil {
		return PostgresConfig{}, err
	}
	return PostgresConfig{
		URI:             uri,
		AutoMigrate:     migrate,
		MaxIdleConns:    idle,
		MaxOpenConns:    open,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func loadMongoConfig() (MongoConfig, error) {
	uri := strings.TrimSpace(os.Getenv("MONGO_URI"))
	if uri == "" {
		return MongoConfig{}, fmt.Errorf("MONGO_URI environment variable is not set")
	}
	force, err := parseBoolEnv("MONGO_FORCE_TLS_CONFIG", false)
	if err != nil {
		return MongoConfig{}, err
	}
	insecure, err := parseBoolEnv("MONGO_INSECURE_TLS", false)
	if err != nil {
		return MongoConfig{}, err
	}
	return MongoConfig{
		URI:            uri,
		Database:       getEnvOrDefault("MONGO_DB", "konselor"),
		ForceTLSConfig: force,
		InsecureTLS:    insecure,
	}, nil
}

func loadGeminiConfig() (GeminiConfig, error) {
	cfg := GeminiConfig{
		Backend:        strings.ToLower(getEnvOrDefault("GEMINI_BACKEND", GeminiREST)),
		APIKey:         strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Endpoint:       getEnvOrDefault("GEMINI_ENDPOINT", DefaultGeminiEndpoint),
		Model:          getEnvOrDefault("GEMINI_MODEL", DefaultGeminiModel),
		VertexProject:  strings.TrimSpace(os.Getenv("VERTEX_PROJECT")),
		VertexLocation: getEnvOrDefault("VERTEX_LOCATION", "us-central1"),
	}

	switch cfg.Backend {
	case GeminiREST:
		if cfg.APIKey == "" {
			return GeminiConfig{}, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
		}
	case GeminiVertex:
		if cfg.VertexProject == "" {
			return GeminiConfig{}, fmt.Errorf("VERTEX_PROJECT must be set when GEMINI_BACKEND=vertex")
		}
	default:
		return GeminiConfig{}, fmt.Errorf("invalid GEMINI_BACKEND value %q", cfg.Backend)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func redact(s string) string {
	if s == "" {
		return "<unset>"
	}
	return "<redacted>"
}
