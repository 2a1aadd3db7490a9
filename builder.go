package sessionkit

import (
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/learnware/sessionkit/storage"
)

// Builder defines a public type used by sessionkit APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	store  storage.Store
	redis  *redis.Client
	auth   Authenticator
	sink   AuditSink

	built bool
}

// New returns a Builder loaded with default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the entire configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithStore supplies the durable credential store. Any [storage.Store]
// works; tests typically pass [storage.NewMemoryStore].
func (b *Builder) WithStore(store storage.Store) *Builder {
	b.store = store
	return b
}

// WithRedis supplies a Redis client; Build derives a [storage.RedisStore]
// from it using the configured prefix and session key. WithStore takes
// precedence when both are set.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithAuthenticator supplies the external authentication API collaborator.
func (b *Builder) WithAuthenticator(auth Authenticator) *Builder {
	b.auth = auth
	return b
}

// WithAuditSink supplies the audit event destination. Audit must also be
// enabled in the configuration for events to flow.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.sink = sink
	return b
}

// WithMetricsEnabled toggles the in-process counter set.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the wiring and constructs the Manager in the Loading
// phase. The Builder is single-use.
func (b *Builder) Build() (*Manager, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := b.store
	if store == nil && b.redis != nil {
		store = storage.NewRedisStore(b.redis, cfg.Storage.RedisPrefix, cfg.Storage.SessionKey)
	}
	if store == nil {
		return nil, ErrStoreRequired
	}

	if b.auth == nil {
		return nil, ErrAuthenticatorRequired
	}

	m := &Manager{
		config:      cfg,
		store:       store,
		auth:        b.auth,
		audit:       newAuditDispatcher(cfg.Audit, b.sink),
		metrics:     NewMetrics(cfg.Metrics),
		instanceID:  uuid.NewString(),
		state:       SessionState{Phase: PhaseLoading},
		subscribers: make(map[uint64]Subscriber),
	}

	b.built = true

	return m, nil
}
