package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"time"

	"parcel-ledger/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the HTTP API will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Ledger locates the persisted shipment ledger.
	Ledger LedgerConfig `mapstructure:",squash"`

	// Leopard holds the courier merchant API credentials.
	Leopard LeopardConfig `mapstructure:",squash"`

	// Sync tunes the enrichment engine.
	Sync SyncConfig `mapstructure:",squash"`

	// Redis backs the sync run store and the per-ledger run lock.
	Redis RedisConfig `mapstructure:",squash"`

	// Proxy routes courier API calls through an upstream HTTP proxy.
	Proxy proxy.Settings `mapstructure:",squash"`
}

// LedgerConfig identifies the ledger file. Every core operation receives it explicitly.
type LedgerConfig struct {
	// Dir is the directory that holds the ledger workbook.
	Dir string `mapstructure:"LEDGER_DIR" required:"true"`
	// File is the ledger workbook name inside Dir.
	File string `mapstructure:"LEDGER_FILE" default:"final.xlsx"`
}

// Path returns the full path of the ledger workbook.
func (c LedgerConfig) Path() string {
	return filepath.Join(c.Dir, c.File)
}

// LeopardConfig holds the credentials for the Leopards Courier merchant API.
type LeopardConfig struct {
	// BaseURL is the merchant API root, without trailing slash.
	BaseURL string `mapstructure:"LEOPARD_BASE_URL" default:"https://merchantapi.leopardscourier.com/api"`
	// APIKey is the merchant API key.
	APIKey string `mapstructure:"LEOPARD_API_KEY" required:"true"`
	// APIPassword is the merchant API password.
	APIPassword string `mapstructure:"LEOPARD_API_PASSWORD" required:"true"`
	// Timeout bounds a single courier API call.
	Timeout time.Duration `mapstructure:"LEOPARD_TIMEOUT" default:"30s"`
}

// SyncConfig tunes the enrichment engine.
type SyncConfig struct {
	// TrackingWorkers is the number of concurrent tracking lookups.
	TrackingWorkers int `mapstructure:"TRACKING_WORKERS" default:"1"`
	// PaymentBatchSize is the number of ids per payment lookup, capped at 50.
	PaymentBatchSize int `mapstructure:"PAYMENT_BATCH_SIZE" default:"50"`
}

// RedisConfig holds the Redis connection and run bookkeeping settings.
type RedisConfig struct {
	// URL is the Redis connection string (redis://[:password@]host[:port][/database]).
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// RunTTL is how long a finished sync run stays queryable.
	RunTTL time.Duration `mapstructure:"RUN_TTL" default:"24h"`
	// LockTTL bounds how long a crashed run can hold the ledger lock.
	// A live run renews it on every event, so the gap between two progress steps must stay below it.
	LockTTL time.Duration `mapstructure:"RUN_LOCK_TTL" default:"2h"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its environment variable and registers defaults.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
