package config

import (
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type Config struct {
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout" default:"5s"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count" default:"5"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay" default:"2s"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseFilePath          string        `koanf:"database_file_path" required:"true"`
	DatabaseMaxRetries        int           `koanf:"database_max_retries" default:"5"`
	Hostname                  string        `koanf:"hostname"`
	RecentListingsLimit       int           `koanf:"recent_listings_limit" default:"10"`
	ServerHost                string        `koanf:"server_host" default:"0.0.0.0"`
	ServerPort                int           `koanf:"server_port" default:"5000"`
}

const (
	configFileENV     = "CONFIG_FILE"
	defaultConfigFile = "/config/fyyur.yaml"
	dotEnvFile        = ".env"
)

// New loads the config from struct defaults, then the YAML config file, then
// environment variables, with later sources taking precedence.
func New() (*Config, error) {
	// A .env file is optional and never overrides variables that are already
	// set in the environment.
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env file")
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	k := koanf.New(".")

	configFile := os.Getenv(configFileENV)
	if configFile == "" {
		configFile = defaultConfigFile
	}
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "failed to load config file %s", configFile)
	}

	// Every environment variable is offered to koanf lowercased; keys that
	// don't match a config field are ignored on unmarshal.
	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.WithStack(err)
	}

	if cfg.Hostname == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		cfg.Hostname = hostname
	}

	if err := checkRequired(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewForTest returns a config backed by an in-memory database.
func NewForTest() *Config {
	cfg := &Config{}
	_ = defaults.Set(cfg)
	cfg.DatabaseFilePath = ":memory:"
	cfg.Hostname = "test"
	cfg.ServerHost = "127.0.0.1"
	cfg.DatabaseConnectRetryCount = 1
	cfg.DatabaseConnectRetryDelay = 0
	return cfg
}

func checkRequired(cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	missing := []string{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Tag.Get("required") != "true" {
			continue
		}
		if v.Field(i).IsZero() {
			key := strcase.ToSnake(field.Name)
			missing = append(missing, fmt.Sprintf("%s (env) / %s (file)", strings.ToUpper(key), key))
		}
	}

	if len(missing) > 0 {
		return errors.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}
