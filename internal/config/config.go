package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr            = ":8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "console"
	DefaultShutdownTimeout = 10 * time.Second
)

// Config is the executable configuration read from YAML. Command line flags
// override individual fields after loading.
type Config struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	TemplatesDir    string        `yaml:"templates_dir" validate:"omitempty,dir"`
	ContentDir      string        `yaml:"content_dir" validate:"omitempty,dir"`
	Watch           bool          `yaml:"watch"`
	LogLevel        string        `yaml:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat       string        `yaml:"log_format" validate:"oneof=console json"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"min=0"`
	Theme           ThemeConfig   `yaml:"theme"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Addr:            DefaultAddr,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Load reads path on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.normalise()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalise() {
	c.Addr = strings.TrimSpace(c.Addr)
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// Validate checks the configuration and reports the first invalid field.
func (c Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// HumanReadable reports whether logs should use the console writer.
func (c Config) HumanReadable() bool {
	return c.LogFormat != "json"
}

func convertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("config: %w", err)
	}
	first := verrs[0]
	field := strings.TrimPrefix(first.Namespace(), "Config.")
	if first.Param() != "" {
		return fmt.Errorf("config: invalid %s %q: must satisfy %s=%s", field, fmt.Sprint(first.Value()), first.Tag(), first.Param())
	}
	return fmt.Errorf("config: invalid %s %q: must satisfy %s", field, fmt.Sprint(first.Value()), first.Tag())
}
