package sessionkit

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ConfigFromEnv builds a Config from SESSIONKIT_-prefixed environment
// variables, loading a .env file first when one exists. Missing variables
// fall back to the same defaults defaultConfig uses.
//
//	SESSIONKIT_STORAGE_REDIS_PREFIX, SESSIONKIT_STORAGE_SESSION_KEY
//	SESSIONKIT_GUARD_LANDING_PATH, SESSIONKIT_GUARD_SIGN_IN_PATH, SESSIONKIT_GUARD_SIGN_UP_PATH
//	SESSIONKIT_AUDIT_ENABLED, SESSIONKIT_AUDIT_BUFFER_SIZE, SESSIONKIT_AUDIT_DROP_IF_FULL
//	SESSIONKIT_METRICS_ENABLED
func ConfigFromEnv() (Config, error) {
	// A missing .env is not an error; explicit environment always wins.
	_ = godotenv.Load()

	var cfg struct {
		Storage StorageConfig `envPrefix:"STORAGE_"`
		Guard   GuardConfig   `envPrefix:"GUARD_"`
		Audit   AuditConfig   `envPrefix:"AUDIT_"`
		Metrics MetricsConfig `envPrefix:"METRICS_"`
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "SESSIONKIT_"}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	out := Config{
		Storage: cfg.Storage,
		Guard:   cfg.Guard,
		Audit:   cfg.Audit,
		Metrics: cfg.Metrics,
	}
	if err := out.Validate(); err != nil {
		return Config{}, err
	}
	return out, nil
}
