package sessionkit

import (
	"errors"
	"strings"
)

// Config defines a public type used by sessionkit APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Storage StorageConfig
	Guard   GuardConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageConfig names the fixed key under which the single credential lives.
// The presence of a value under SessionKey is the entire signal that a
// session might exist.
type StorageConfig struct {
	RedisPrefix string `env:"REDIS_PREFIX" envDefault:"sessionkit"`
	SessionKey  string `env:"SESSION_KEY"  envDefault:"session.credential"`
}

/*
====================================
GUARD CONFIG
====================================
*/

// GuardConfig holds the public paths the route guard treats specially.
type GuardConfig struct {
	LandingPath string `env:"LANDING_PATH" envDefault:"/"`
	SignInPath  string `env:"SIGN_IN_PATH" envDefault:"/sign-in"`
	SignUpPath  string `env:"SIGN_UP_PATH" envDefault:"/sign-up"`
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by sessionkit APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool `env:"ENABLED"      envDefault:"false"`
	BufferSize int  `env:"BUFFER_SIZE"  envDefault:"256"`
	DropIfFull bool `env:"DROP_IF_FULL" envDefault:"true"`
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by sessionkit APIs.
type MetricsConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
}

func defaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			RedisPrefix: "sessionkit",
			SessionKey:  "session.credential",
		},
		Guard: GuardConfig{
			LandingPath: "/",
			SignInPath:  "/sign-in",
			SignUpPath:  "/sign-up",
		},
		Audit: AuditConfig{
			BufferSize: 256,
			DropIfFull: true,
		},
	}
}

// Validate checks structural consistency of the configuration. It does not
// touch any backend.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Storage.SessionKey) == "" {
		return errors.New("storage session key must not be empty")
	}
	for _, p := range []string{c.Guard.LandingPath, c.Guard.SignInPath, c.Guard.SignUpPath} {
		if !strings.HasPrefix(p, "/") {
			return errors.New("guard paths must be absolute")
		}
	}
	if c.Guard.SignInPath == c.Guard.LandingPath {
		return errors.New("sign-in path must differ from landing path")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("audit buffer size must be positive when audit is enabled")
	}
	return nil
}

func cloneConfig(c Config) Config {
	// All fields are value types today; the clone exists so Builder and
	// Manager never alias caller-held config.
	return c
}
