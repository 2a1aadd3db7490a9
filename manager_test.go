package sessionkit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/learnware/sessionkit/storage"
)

type stubAuthenticator struct {
	credential string
	err        error
	calls      int
}

func (a *stubAuthenticator) Authenticate(_ context.Context, _, _ string) (string, error) {
	a.calls++
	if a.err != nil {
		return "", a.err
	}
	return a.credential, nil
}

func mintCredential(t *testing.T, subject, role string, exp time.Time) string {
	t.Helper()

	mapClaims := jwt.MapClaims{"sub": subject, "role": role}
	if !exp.IsZero() {
		mapClaims["exp"] = exp.Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString([]byte("manager-test-secret"))
	if err != nil {
		t.Fatalf("sign credential: %v", err)
	}
	return signed
}

func newTestManager(t *testing.T, store storage.Store, auth Authenticator) *Manager {
	t.Helper()

	if store == nil {
		store = storage.NewMemoryStore()
	}
	if auth == nil {
		auth = &stubAuthenticator{}
	}

	mgr, err := New().
		WithStore(store).
		WithAuthenticator(auth).
		WithMetricsEnabled(true).
		Build()
	if err != nil {
		t.Fatalf("build manager: %v", err)
	}
	t.Cleanup(mgr.Close)
	return mgr
}

func TestManagerStartsLoading(t *testing.T) {
	mgr := newTestManager(t, nil, nil)

	if got := mgr.CurrentState().Phase; got != PhaseLoading {
		t.Fatalf("expected loading before initialization, got %v", got)
	}
}

func TestInitializeAbsentCredential(t *testing.T) {
	mgr := newTestManager(t, nil, nil)

	state := mgr.Initialize(context.Background())
	if state.Phase != PhaseUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", state.Phase)
	}
	if state.User != nil {
		t.Fatalf("expected no user, got %+v", state.User)
	}
	if mgr.MetricsSnapshot().Counters[MetricRestoreAbsent] != 1 {
		t.Fatal("expected restore-absent counter to advance")
	}
}

func TestInitializeRestoresStoredCredential(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Write(context.Background(), mintCredential(t, "user-9", "instructor", time.Now().Add(time.Hour)))
	mgr := newTestManager(t, store, nil)

	state := mgr.Initialize(context.Background())
	if !state.Authenticated() {
		t.Fatalf("expected authenticated, got %v", state.Phase)
	}
	if state.User.SubjectID != "user-9" || state.User.Role != RoleInstructor {
		t.Fatalf("unexpected user %+v", state.User)
	}
}

func TestInitializeUnknownRoleFallsBackToTrainee(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Write(context.Background(), mintCredential(t, "user-9", "superuser", time.Time{}))
	mgr := newTestManager(t, store, nil)

	state := mgr.Initialize(context.Background())
	if !state.Authenticated() || state.User.Role != RoleTrainee {
		t.Fatalf("expected trainee fallback, got %+v", state.User)
	}
}

func TestInitializeCorruptCredentialClearsStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.Write(ctx, "definitely-not-a-token")
	mgr := newTestManager(t, store, nil)

	state := mgr.Initialize(ctx)
	if state.Phase != PhaseUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", state.Phase)
	}
	if _, ok := store.Read(ctx); ok {
		t.Fatal("expected corrupt credential to be purged")
	}

	// A second attempt must behave identically.
	state = mgr.Initialize(ctx)
	if state.Phase != PhaseUnauthenticated {
		t.Fatalf("expected unauthenticated on repeat, got %v", state.Phase)
	}
	if mgr.MetricsSnapshot().Counters[MetricRestoreCorrupt] != 1 {
		t.Fatal("expected exactly one corrupt-restore count")
	}
}

func TestInitializeExpiredCredentialClearsStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.Write(ctx, mintCredential(t, "user-9", "admin", time.Now().Add(-time.Minute)))
	mgr := newTestManager(t, store, nil)

	state := mgr.Initialize(ctx)
	if state.Phase != PhaseUnauthenticated {
		t.Fatalf("expected unauthenticated for expired credential, got %v", state.Phase)
	}
	if _, ok := store.Read(ctx); ok {
		t.Fatal("expected expired credential to be purged")
	}
}

func TestLoginBeforeInitialize(t *testing.T) {
	mgr := newTestManager(t, nil, nil)

	err := mgr.Login(context.Background(), "a@b.c", "pw")
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	credential := mintCredential(t, "user-1", "admin", time.Now().Add(time.Hour))
	auth := &stubAuthenticator{credential: credential}
	mgr := newTestManager(t, store, auth)
	mgr.Initialize(ctx)

	if err := mgr.Login(ctx, "admin@example.com", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	state := mgr.CurrentState()
	if !state.Authenticated() || state.User.Role != RoleAdmin || state.User.SubjectID != "user-1" {
		t.Fatalf("unexpected state %+v", state)
	}
	if stored, ok := store.Read(ctx); !ok || stored != credential {
		t.Fatalf("expected credential persisted, got %q ok=%v", stored, ok)
	}
	if mgr.MetricsSnapshot().Counters[MetricLoginSuccess] != 1 {
		t.Fatal("expected login-success counter to advance")
	}
}

func TestLoginFailurePropagatesVerbatim(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	authErr := errors.New("invalid credentials")
	auth := &stubAuthenticator{err: authErr}
	mgr := newTestManager(t, store, auth)
	mgr.Initialize(ctx)

	err := mgr.Login(ctx, "a@b.c", "wrong")
	if !errors.Is(err, authErr) {
		t.Fatalf("expected collaborator error unchanged, got %v", err)
	}
	if mgr.CurrentState().Phase != PhaseUnauthenticated {
		t.Fatal("expected state untouched on login failure")
	}
	if _, ok := store.Read(ctx); ok {
		t.Fatal("expected store untouched on login failure")
	}
}

func TestLoginFailureLeavesExistingSession(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.Write(ctx, mintCredential(t, "user-5", "trainee", time.Time{}))
	auth := &stubAuthenticator{err: errors.New("rejected")}
	mgr := newTestManager(t, store, auth)
	mgr.Initialize(ctx)

	_ = mgr.Login(ctx, "a@b.c", "wrong")

	state := mgr.CurrentState()
	if !state.Authenticated() || state.User.SubjectID != "user-5" {
		t.Fatalf("expected prior session untouched, got %+v", state)
	}
}

func TestLoginMalformedCredentialFromAuthenticator(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	auth := &stubAuthenticator{credential: "broken"}
	mgr := newTestManager(t, store, auth)
	mgr.Initialize(ctx)

	err := mgr.Login(ctx, "a@b.c", "pw")
	if !errors.Is(err, ErrMalformedCredential) {
		t.Fatalf("expected ErrMalformedCredential, got %v", err)
	}
	if mgr.CurrentState().Phase != PhaseUnauthenticated {
		t.Fatal("expected unauthenticated after malformed credential")
	}
	if _, ok := store.Read(ctx); ok {
		t.Fatal("expected store purged after malformed credential")
	}
}

func TestLogoutUnconditional(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.Write(ctx, mintCredential(t, "user-2", "instructor", time.Time{}))
	mgr := newTestManager(t, store, nil)
	mgr.Initialize(ctx)

	mgr.Logout(ctx)
	if mgr.CurrentState().Phase != PhaseUnauthenticated {
		t.Fatal("expected unauthenticated after logout")
	}
	if _, ok := store.Read(ctx); ok {
		t.Fatal("expected store empty after logout")
	}

	// Logging out again with an empty store is still a clean no-op.
	mgr.Logout(ctx)
	if mgr.CurrentState().Phase != PhaseUnauthenticated {
		t.Fatal("expected unauthenticated after repeated logout")
	}
}

func TestSubscriberNotifiedBeforeCallReturns(t *testing.T) {
	ctx := context.Background()
	credential := mintCredential(t, "user-3", "trainee", time.Time{})
	mgr := newTestManager(t, nil, &stubAuthenticator{credential: credential})
	mgr.Initialize(ctx)

	var seen []Phase
	cancel := mgr.Subscribe(func(s SessionState) {
		seen = append(seen, s.Phase)
	})
	defer cancel()

	if err := mgr.Login(ctx, "a@b.c", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if len(seen) != 1 || seen[0] != PhaseAuthenticated {
		t.Fatalf("expected synchronous authenticated notification, got %v", seen)
	}

	mgr.Logout(ctx)
	if len(seen) != 2 || seen[1] != PhaseUnauthenticated {
		t.Fatalf("expected synchronous logout notification, got %v", seen)
	}
}

func TestSubscribeCancelStopsNotifications(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, nil, nil)
	mgr.Initialize(ctx)

	calls := 0
	cancel := mgr.Subscribe(func(SessionState) { calls++ })
	cancel()
	cancel() // second cancel is harmless

	mgr.Logout(ctx)
	if calls != 0 {
		t.Fatalf("expected no notifications after cancel, got %d", calls)
	}
}

func TestAuditEventsFlowToSink(t *testing.T) {
	ctx := context.Background()
	sink := NewChannelSink(16)
	cfg := defaultConfig()
	cfg.Audit.Enabled = true

	credential := mintCredential(t, "user-4", "admin", time.Time{})
	mgr, err := New().
		WithConfig(cfg).
		WithStore(storage.NewMemoryStore()).
		WithAuthenticator(&stubAuthenticator{credential: credential}).
		WithAuditSink(sink).
		Build()
	if err != nil {
		t.Fatalf("build manager: %v", err)
	}

	mgr.Initialize(ctx)
	if err := mgr.Login(WithClientIP(ctx, "10.0.0.9"), "a@b.c", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	mgr.Logout(ctx)
	mgr.Close()

	var types []string
	for len(types) < 2 {
		select {
		case ev := <-sink.Events():
			if ev.EventID == "" {
				t.Fatal("expected event ID on audit event")
			}
			if ev.EventType == AuditSessionLogin {
				if ev.SubjectID != "user-4" || ev.IP != "10.0.0.9" {
					t.Fatalf("unexpected login event %+v", ev)
				}
			}
			types = append(types, ev.EventType)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for audit events, saw %v", types)
		}
	}
}
