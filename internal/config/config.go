package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Asset sources
const (
	AssetsFS    = "fs"
	AssetsHTTP  = "http"
	AssetsMinIO = "minio"
)

// ErrInvalidConfig wraps configuration validation failures
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Log      LogConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Tracing  TracingConfig
	Assets   AssetsConfig
	MinIO    MinIOConfig
	Catalog  CatalogConfig
	Limits   LimitsConfig
}

type AppConfig struct {
	Name string
	Env  string
}

// IsDevelopment reports whether console logging should be used
func (a AppConfig) IsDevelopment() bool {
	return a.Env == "development"
}

type HTTPConfig struct {
	Port string
}

type LogConfig struct {
	Level string // debug, info, warn, error
}

type StorageConfig struct {
	Driver string // memory, postgres
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr string // empty disables the response cache
	TTL  time.Duration
}

type KafkaConfig struct {
	Brokers []string // empty disables event publishing
	GroupID string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

type AssetsConfig struct {
	Source  string // fs, http, minio
	Root    string
	BaseURL string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Secure    bool
}

type CatalogConfig struct {
	SearchFallback bool
}

// LimitsConfig caps favorite writes per client; it needs Redis
type LimitsConfig struct {
	FavoriteWrites int // zero disables limiting
	Window         time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "virtual-tryon")
	v.SetDefault("app.env", "development")
	v.SetDefault("http.port", "5000")
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "tryon")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.ttl", 5*time.Minute)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.group_id", "tryon-events")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "http://localhost:14268/api/traces")
	v.SetDefault("assets.source", AssetsFS)
	v.SetDefault("assets.root", "./public")
	v.SetDefault("assets.base_url", "")
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.bucket", "models")
	v.SetDefault("minio.secure", false)
	v.SetDefault("catalog.search_fallback", false)
	v.SetDefault("limits.favorite_writes", 60)
	v.SetDefault("limits.window", time.Minute)
}

// Load reads configuration from configFile (optional) and TRYON_* environment
// variables over built-in defaults. An empty configFile looks for tryon.yaml
// in the working directory.
func Load(configFile string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), configFile)
}

// LoadFs is Load on an explicit filesystem
func LoadFs(fs afero.Fs, configFile string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("tryon")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("TRYON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		HTTP: HTTPConfig{
			Port: v.GetString("http.port"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(v.GetString("storage.driver")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetString("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			DBName:   v.GetString("database.dbname"),
			SSLMode:  v.GetString("database.sslmode"),
		},
		Redis: RedisConfig{
			Addr: v.GetString("redis.addr"),
			TTL:  v.GetDuration("redis.ttl"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetStringSlice("kafka.brokers")),
			GroupID: v.GetString("kafka.group_id"),
		},
		Tracing: TracingConfig{
			Enabled:  v.GetBool("tracing.enabled"),
			Endpoint: v.GetString("tracing.endpoint"),
		},
		Assets: AssetsConfig{
			Source:  strings.ToLower(v.GetString("assets.source")),
			Root:    v.GetString("assets.root"),
			BaseURL: v.GetString("assets.base_url"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("minio.endpoint"),
			AccessKey: v.GetString("minio.access_key"),
			SecretKey: v.GetString("minio.secret_key"),
			Bucket:    v.GetString("minio.bucket"),
			Secure:    v.GetBool("minio.secure"),
		},
		Catalog: CatalogConfig{
			SearchFallback: v.GetBool("catalog.search_fallback"),
		},
		Limits: LimitsConfig{
			FavoriteWrites: v.GetInt("limits.favorite_writes"),
			Window:         v.GetDuration("limits.window"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	switch c.Assets.Source {
	case AssetsFS:
	case AssetsHTTP:
		if c.Assets.BaseURL == "" {
			return fmt.Errorf("%w: assets.base_url is required for the http source", ErrInvalidConfig)
		}
	case AssetsMinIO:
		if c.MinIO.Bucket == "" {
			return fmt.Errorf("%w: minio.bucket is required for the minio source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown asset source %q", ErrInvalidConfig, c.Assets.Source)
	}

	if c.Limits.FavoriteWrites > 0 && c.Limits.Window <= 0 {
		return fmt.Errorf("%w: limits.window must be positive", ErrInvalidConfig)
	}

	if c.HTTP.Port == "" {
		return fmt.Errorf("%w: http.port is required", ErrInvalidConfig)
	}
	return nil
}

// splitList accepts both YAML lists and comma-separated env values
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
