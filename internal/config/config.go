// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"enigma/internal/cmdutil"
)

const (
	EnvHost            = "ENIGMA_HOST"
	EnvPort            = "ENIGMA_PORT"
	EnvReadTimeoutSec  = "ENIGMA_READ_TIMEOUT_SEC"
	EnvWriteTimeoutSec = "ENIGMA_WRITE_TIMEOUT_SEC"
	EnvIdleTimeoutSec  = "ENIGMA_IDLE_TIMEOUT_SEC"
	EnvMaxBodyBytes    = "ENIGMA_MAX_BODY_BYTES"
	EnvLogLevel        = "ENIGMA_LOG_LEVEL"
	EnvPassThrough     = "ENIGMA_PASS_THROUGH"

	MinPortNumber = 1
	MaxPortNumber = 65535
)

// Config holds `serve` settings.
type Config struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
	MaxBodyBytes    int64
	LogLevel        string
	PassThrough     bool
}

// Default returns the settings used when nothing is set.
func Default() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            8080,
		ReadTimeoutSec:  15,
		WriteTimeoutSec: 15,
		IdleTimeoutSec:  60,
		MaxBodyBytes:    64 << 10,
		LogLevel:        "info",
	}
}

// LoadFromEnv starts from Default and applies any ENIGMA_* variables.
func LoadFromEnv() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	d := Default()
	var errs []error
	cfg := Config{
		Host:            strOr(getenv, EnvHost, d.Host),
		Port:            intOr(getenv, EnvPort, d.Port, &errs),
		ReadTimeoutSec:  intOr(getenv, EnvReadTimeoutSec, d.ReadTimeoutSec, &errs),
		WriteTimeoutSec: intOr(getenv, EnvWriteTimeoutSec, d.WriteTimeoutSec, &errs),
		IdleTimeoutSec:  intOr(getenv, EnvIdleTimeoutSec, d.IdleTimeoutSec, &errs),
		MaxBodyBytes:    int64(intOr(getenv, EnvMaxBodyBytes, int(d.MaxBodyBytes), &errs)),
		LogLevel:        strOr(getenv, EnvLogLevel, d.LogLevel),
		PassThrough:     boolOr(getenv, EnvPassThrough, d.PassThrough, &errs),
	}
	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return errors.New("host must not be empty")
	}
	if c.Port < MinPortNumber || c.Port > MaxPortNumber {
		return fmt.Errorf("port must be between %d and %d, got %d", MinPortNumber, MaxPortNumber, c.Port)
	}
	if c.ReadTimeoutSec <= 0 || c.WriteTimeoutSec <= 0 || c.IdleTimeoutSec <= 0 {
		return errors.New("timeouts must be > 0 seconds")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("max body bytes must be > 0")
	}
	if _, err := cmdutil.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Addr is host:port for net/http.
func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func (c Config) ReadTimeout() time.Duration { return time.Duration(c.ReadTimeoutSec) * time.Second }
func (c Config) WriteTimeout() time.Duration { return time.Duration(c.WriteTimeoutSec) * time.Second }
func (c Config) IdleTimeout() time.Duration { return time.Duration(c.IdleTimeoutSec) * time.Second }

func strOr(getenv func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intOr(getenv func(string) string, key string, fallback int, errs *[]error) int {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not an integer", key, v))
		return fallback
	}
	return n
}

func boolOr(getenv func(string) string, key string, fallback bool, errs *[]error) bool {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not a boolean", key, v))
		return fallback
	}
	return b
}
