package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is loaded from the environment, optionally seeded from a .env file.
// Tags used:
//   - mapstructure: environment variable name
//   - default: value used when the variable is unset
//   - required: "true" fails loading when the value is empty
type Config struct {
	Environment string `mapstructure:"APP_ENV" default:"development"`
	LogLevel    string `mapstructure:"LOG_LEVEL" default:"info"`
	HTTPPort    string `mapstructure:"HTTP_PORT" default:"8080"`

	DBHost     string `mapstructure:"DB_HOST" default:"localhost"`
	DBPort     string `mapstructure:"DB_PORT" default:"5432"`
	DBUser     string `mapstructure:"DB_USER" required:"true"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME" required:"true"`
	DBSslMode  string `mapstructure:"DB_SSLMODE" default:"disable"`

	// RedisURL enables cross-instance package locks. Empty means a single
	// instance with in-process locks.
	RedisURL string        `mapstructure:"REDIS_URL"`
	LockTTL  time.Duration `mapstructure:"LOCK_TTL" default:"1m"`

	SMS    SMSConfig    `mapstructure:",squash"`
	Sheets SheetsConfig `mapstructure:",squash"`

	OutboundTimeout     time.Duration `mapstructure:"OUTBOUND_TIMEOUT" default:"5s"`
	SheetResyncSchedule string        `mapstructure:"SHEET_RESYNC_SCHEDULE" default:"@every 1m"`
	SheetResyncBatch    int           `mapstructure:"SHEET_RESYNC_BATCH" default:"100"`
}

// SMSConfig holds gateway credentials. Leaving them empty disables SMS.
type SMSConfig struct {
	GatewayURL string `mapstructure:"SMS_GATEWAY_URL" default:"https://api.twilio.com/2010-04-01"`
	AccountSID string `mapstructure:"SMS_ACCOUNT_SID"`
	AuthToken  string `mapstructure:"SMS_AUTH_TOKEN"`
}

type SheetsConfig struct {
	APIURL string `mapstructure:"SHEETS_API_URL" default:"https://sheets.googleapis.com/v4"`
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads envFile if it exists, then the process environment, which
// takes precedence.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error reading %s: %w", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()

	var config Config
	if err := processTags(v, &config); err != nil {
		return Config{}, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}

// processTags binds every tagged field to its environment variable and
// registers its default.
func processTags(v *viper.Viper, config any) error {
	val := reflect.ValueOf(config).Elem()
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
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

func validateRequired(config any) error {
	val := reflect.ValueOf(config).Elem()
	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
