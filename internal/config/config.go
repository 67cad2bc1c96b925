// Package config loads service settings from defaults, an optional config
// file and FARAID_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"faraid-engine/internal/faraid"
)

const envPrefix = "FARAID"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Calc   CalcConfig   `mapstructure:"calc" validate:"required"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// CalcConfig contains the inheritance computation policy.
type CalcConfig struct {
	SpouseRadd   bool  `mapstructure:"spouse_radd"`
	AmountPlaces int32 `mapstructure:"amount_places" validate:"gte=0,lte=8"`
}

// Calculator builds the calculator described by the config.
func (c CalcConfig) Calculator() faraid.Calculator {
	return faraid.Calculator{SpouseRadd: c.SpouseRadd, AmountPlaces: c.AmountPlaces}
}

// Validate checks the calculation policy against the same rules Load applies.
func (c CalcConfig) Validate() error {
	return validate(c)
}

// Logger builds a production zap logger at the configured level.
func (c ServerConfig) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// Load reads configuration. path may be empty, in which case only defaults
// and the environment are used.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("calc.spouse_radd", false)
	v.SetDefault("calc.amount_places", faraid.DefaultAmountPlaces)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(v any) error {
	err := validator.New().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %s", formatValidationErrors(verrs))
	}
	return fmt.Errorf("invalid config: %w", err)
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %q", e.Namespace(), e.Tag()))
	}
	return strings.Join(msgs, "; ")
}
