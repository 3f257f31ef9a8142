package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source/irishrail"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source/rtpi"
	"github.com/travigo/irishtransit/pkg/transport"
	"github.com/travigo/irishtransit/pkg/util"
	"gopkg.in/yaml.v3"
)

const EnvironmentPrefix = "IRISHTRANSIT_"

const defaultHTTPTimeout = "PT15S"
const defaultListen = ":8080"

type Config struct {
	IrishRailEndpoint string `yaml:"irishRailEndpoint" validate:"required,url"`
	RTPIEndpoint      string `yaml:"rtpiEndpoint" validate:"required,url"`

	// HTTPTimeout is an ISO-8601 duration, eg. PT15S
	HTTPTimeout string `yaml:"httpTimeout" validate:"required"`
	UserAgent   string `yaml:"userAgent"`

	Listen string `yaml:"listen" validate:"required"`
}

func Default() Config {
	return Config{
		IrishRailEndpoint: irishrail.DefaultEndpoint,
		RTPIEndpoint:      rtpi.DefaultEndpoint,
		HTTPTimeout:       defaultHTTPTimeout,
		UserAgent:         transport.DefaultUserAgent,
		Listen:            defaultListen,
	}
}

// Load builds the configuration from defaults, then the YAML file named by IRISHTRANSIT_CONFIG
// (if set), then IRISHTRANSIT_* environment variables. A .env file in the working directory is
// loaded into the environment first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	env := util.GetEnvironmentVariables(EnvironmentPrefix)

	if path := env["CONFIG"]; path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnvironment(env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnvironment(env map[string]string) {
	overrides := map[string]*string{
		"IRISHRAIL_ENDPOINT": &c.IrishRailEndpoint,
		"RTPI_ENDPOINT":      &c.RTPIEndpoint,
		"HTTP_TIMEOUT":       &c.HTTPTimeout,
		"USER_AGENT":         &c.UserAgent,
		"LISTEN":             &c.Listen,
	}

	for name, field := range overrides {
		if value := env[name]; value != "" {
			*field = value
		}
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	timeout, err := c.Timeout()
	if err != nil {
		return err
	}
	if timeout <= 0 {
		return errors.New("httpTimeout must be a positive duration")
	}

	return nil
}

// Timeout converts the ISO-8601 HTTPTimeout into a time.Duration
func (c *Config) Timeout() (time.Duration, error) {
	isoDuration, err := iso8601.ParseISO8601(c.HTTPTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid httpTimeout %q: %w", c.HTTPTimeout, err)
	}

	start := time.Now()

	return isoDuration.Shift(start).Sub(start), nil
}
