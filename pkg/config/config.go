package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable read by Load.
	EnvPrefix = "BENGKELPOS"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "BENGKELPOS_DB_DSN"
	EnvDBHost = "BENGKELPOS_DB_HOST"
	EnvDBUser = "BENGKELPOS_DB_USER"
	EnvDBName = "BENGKELPOS_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	Session       SessionConfig
	AuthRateLimit AuthRateLimitConfig
	Storage       StorageConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BENGKELPOS_APP_ENV" required:"true"`
	Port         string `envconfig:"BENGKELPOS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"BENGKELPOS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BENGKELPOS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BENGKELPOS_DB_DSN"`
	Driver string `envconfig:"BENGKELPOS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BENGKELPOS_DB_HOST"`
	LegacyPort     int    `envconfig:"BENGKELPOS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BENGKELPOS_DB_USER"`
	LegacyPassword string `envconfig:"BENGKELPOS_DB_PASSWORD"`
	LegacyName     string `envconfig:"BENGKELPOS_DB_NAME"`
	LegacySSLMode  string `envconfig:"BENGKELPOS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BENGKELPOS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BENGKELPOS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BENGKELPOS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BENGKELPOS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional: when no URL or address is set, login rate limiting
// is disabled and the API boots without a Redis connection.
type RedisConfig struct {
	URL          string        `envconfig:"BENGKELPOS_REDIS_URL"`
	Address      string        `envconfig:"BENGKELPOS_REDIS_ADDR"`
	Password     string        `envconfig:"BENGKELPOS_REDIS_PASSWORD"`
	DB           int           `envconfig:"BENGKELPOS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BENGKELPOS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BENGKELPOS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BENGKELPOS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BENGKELPOS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BENGKELPOS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type SessionConfig struct {
	Duration time.Duration `envconfig:"BENGKELPOS_SESSION_DURATION" default:"168h"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"BENGKELPOS_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit int           `envconfig:"BENGKELPOS_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"BENGKELPOS_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type StorageConfig struct {
	BaseURL            string        `envconfig:"BENGKELPOS_STORAGE_BASE_URL" required:"true"`
	ServiceKey         string        `envconfig:"BENGKELPOS_STORAGE_SERVICE_KEY" required:"true"`
	ProductImageBucket string        `envconfig:"BENGKELPOS_STORAGE_PRODUCT_IMAGE_BUCKET" default:"productimage_bucket"`
	ReceiptBucket      string        `envconfig:"BENGKELPOS_STORAGE_RECEIPT_BUCKET" default:"receipts"`
	ItemsBucket        string        `envconfig:"BENGKELPOS_STORAGE_ITEMS_BUCKET" default:"items"`
	MaxUploadMB        int           `envconfig:"BENGKELPOS_STORAGE_MAX_UPLOAD_MB" default:"20"`
	RequestTimeout     time.Duration `envconfig:"BENGKELPOS_STORAGE_REQUEST_TIMEOUT" default:"30s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"BENGKELPOS_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
