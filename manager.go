package sessionkit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/learnware/sessionkit/claims"
	"github.com/learnware/sessionkit/storage"
)

// Manager is the process-wide session state machine. It owns the only
// mutable session state in the core; every transition flows through
// Initialize, Login, or Logout, and every transition notifies all current
// subscribers before the triggering call returns.
//
// Manager instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Manager struct {
	config     Config
	store      storage.Store
	auth       Authenticator
	audit      *auditDispatcher
	metrics    *Metrics
	instanceID string

	mu          sync.Mutex
	state       SessionState
	initialized bool
	subscribers map[uint64]Subscriber
	nextSubID   uint64
}

// CurrentState returns the state every consumer should render from.
func (m *Manager) CurrentState() SessionState {
	if m == nil {
		return SessionState{Phase: PhaseLoading}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Config returns the immutable configuration the Manager was built with.
// Consumers use it to derive guard paths and storage keys consistently.
func (m *Manager) Config() Config {
	if m == nil {
		return defaultConfig()
	}
	return m.config
}

// InstanceID identifies this Manager in audit events. One process holds one
// Manager for its entire lifetime.
func (m *Manager) InstanceID() string {
	if m == nil {
		return ""
	}
	return m.instanceID
}

// Subscribe registers fn for synchronous notification on every state
// transition. The returned cancel function removes the subscription; calling
// it more than once is harmless. No ordering is guaranteed between
// independent subscribers.
func (m *Manager) Subscribe(fn Subscriber) func() {
	if m == nil || fn == nil {
		return func() {}
	}

	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

// Initialize resolves the loading phase by consulting the store exactly once:
// absent credential resolves to Unauthenticated; a decodable, unexpired
// credential resolves to Authenticated; a malformed or expired credential
// resolves to Unauthenticated with the store purged so it is never retried.
//
// The protocol runs once per Manager lifetime. Later calls observe the
// already-resolved state and make no transition, which keeps a repeated
// initialization attempt indistinguishable from the first.
func (m *Manager) Initialize(ctx context.Context) SessionState {
	if m == nil {
		return SessionState{Phase: PhaseLoading}
	}

	m.mu.Lock()
	if m.initialized {
		state := m.state
		m.mu.Unlock()
		return state
	}
	m.mu.Unlock()

	// The read is the one asynchronous boundary of initialization; it must
	// not happen under the state lock.
	credential, ok := m.store.Read(ctx)

	m.mu.Lock()
	if m.initialized {
		state := m.state
		m.mu.Unlock()
		return state
	}
	m.initialized = true
	m.mu.Unlock()

	if !ok {
		m.metricInc(MetricRestoreAbsent)
		return m.transition(SessionState{Phase: PhaseUnauthenticated})
	}

	user, err := m.userFromCredential(credential)
	if err != nil {
		m.store.Clear(ctx)
		m.metricInc(MetricRestoreCorrupt)
		m.metricInc(MetricStoreCleared)
		m.emit(ctx, AuditEvent{
			EventType: AuditSessionRestoreFailed,
			Success:   false,
			Error:     err.Error(),
		})
		return m.transition(SessionState{Phase: PhaseUnauthenticated})
	}

	m.metricInc(MetricRestoreSuccess)
	m.emit(ctx, AuditEvent{
		EventType: AuditSessionRestore,
		SubjectID: user.SubjectID,
		Role:      string(user.Role),
		Success:   true,
	})
	return m.transition(SessionState{Phase: PhaseAuthenticated, User: user})
}

// Login delegates verification to the external Authenticator. On success the
// returned credential is written to the store, decoded, and the state
// transitions to Authenticated. On authenticator failure the state is left
// untouched and the collaborator's error is returned unchanged.
//
// A credential the authenticator returns that this core cannot decode is
// treated like any other corrupt credential: the store is purged, the state
// resolves to Unauthenticated, and [ErrMalformedCredential] is returned.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if m == nil || m.auth == nil {
		return ErrManagerNotReady
	}

	m.mu.Lock()
	initialized := m.initialized
	m.mu.Unlock()
	if !initialized {
		return ErrNotInitialized
	}

	credential, err := m.auth.Authenticate(ctx, email, password)
	if err != nil {
		m.metricInc(MetricLoginFailure)
		m.emit(ctx, AuditEvent{
			EventType: AuditSessionLoginFailed,
			Success:   false,
			Error:     err.Error(),
		})
		return err
	}

	user, decodeErr := m.userFromCredential(credential)
	if decodeErr != nil {
		m.store.Clear(ctx)
		m.metricInc(MetricLoginFailure)
		m.metricInc(MetricStoreCleared)
		m.emit(ctx, AuditEvent{
			EventType: AuditSessionLoginFailed,
			Success:   false,
			Error:     decodeErr.Error(),
		})
		m.transition(SessionState{Phase: PhaseUnauthenticated})
		return decodeErr
	}

	m.store.Write(ctx, credential)
	m.metricInc(MetricLoginSuccess)
	m.emit(ctx, AuditEvent{
		EventType: AuditSessionLogin,
		SubjectID: user.SubjectID,
		Role:      string(user.Role),
		Success:   true,
	})
	m.transition(SessionState{Phase: PhaseAuthenticated, User: user})
	return nil
}

// Logout clears the store and resolves to Unauthenticated unconditionally,
// even when the store was already empty or the session was never
// authenticated.
func (m *Manager) Logout(ctx context.Context) {
	if m == nil {
		return
	}

	m.mu.Lock()
	prev := m.state
	m.initialized = true
	m.mu.Unlock()

	m.store.Clear(ctx)
	m.metricInc(MetricLogout)
	m.metricInc(MetricStoreCleared)

	event := AuditEvent{EventType: AuditSessionLogout, Success: true}
	if prev.User != nil {
		event.SubjectID = prev.User.SubjectID
		event.Role = string(prev.User.Role)
	}
	m.emit(ctx, event)

	m.transition(SessionState{Phase: PhaseUnauthenticated})
}

// Close stops the audit dispatcher. The state machine itself has no terminal
// state; Close only releases background resources.
func (m *Manager) Close() {
	if m == nil {
		return
	}
	if m.audit != nil {
		m.audit.Close()
	}
}

// AuditDropped reports how many audit events were discarded because the
// dispatch buffer was full.
func (m *Manager) AuditDropped() uint64 {
	if m == nil || m.audit == nil {
		return 0
	}
	return m.audit.Dropped()
}

// MetricsSnapshot copies the counter set.
func (m *Manager) MetricsSnapshot() MetricsSnapshot {
	if m == nil || m.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return m.metrics.Snapshot()
}

// userFromCredential decodes and applies the expiry policy the codec itself
// deliberately omits. Any failure means the credential must be discarded.
func (m *Manager) userFromCredential(credential string) (*User, error) {
	decoded, err := claims.Decode(credential)
	if err != nil {
		m.metricInc(MetricDecodeFailure)
		return nil, ErrMalformedCredential
	}
	if !decoded.ExpiresAt.IsZero() && decoded.ExpiresAt.Before(time.Now()) {
		return nil, ErrMalformedCredential
	}
	return &User{
		SubjectID: decoded.SubjectID,
		Role:      Role(decoded.Role).Normalize(),
	}, nil
}

// transition installs the new state and notifies every current subscriber
// before returning to the triggering caller. Callbacks run outside the state
// lock so a subscriber may call CurrentState or Subscribe reentrantly.
func (m *Manager) transition(next SessionState) SessionState {
	m.mu.Lock()
	m.state = next
	subs := make([]Subscriber, 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

func (m *Manager) metricInc(id MetricID) {
	if m == nil || m.metrics == nil {
		return
	}
	m.metrics.Inc(id)
}

func (m *Manager) emit(ctx context.Context, event AuditEvent) {
	if m == nil || m.audit == nil {
		return
	}
	event.EventID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if event.IP == "" {
		event.IP = clientIPFromContext(ctx)
	}
	if event.Metadata == nil {
		event.Metadata = map[string]string{"manager": m.instanceID}
	} else {
		event.Metadata["manager"] = m.instanceID
	}
	m.audit.Emit(ctx, event)
}
