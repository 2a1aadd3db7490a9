package sessionkit

import "context"

// Role is the closed set of privilege classes a dashboard user can hold.
//
// Role instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Role string

const (
	// RoleAdmin is an exported constant or variable used by the session core.
	RoleAdmin Role = "admin"
	// RoleInstructor is an exported constant or variable used by the session core.
	RoleInstructor Role = "instructor"
	// RoleTrainee is an exported constant or variable used by the session core.
	RoleTrainee Role = "trainee"
)

// Known reports whether r is one of the three recognized roles.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleTrainee:
		return true
	}
	return false
}

// Normalize maps any unrecognized role value to [RoleTrainee]. The fallback
// is lowest-privilege and applied uniformly: navigation menus and route-guard
// home redirects both go through Normalize, so an unknown role never lands on
// an admin surface.
func (r Role) Normalize() Role {
	if r.Known() {
		return r
	}
	return RoleTrainee
}

// Phase is the lifecycle position of the session state machine.
type Phase uint8

const (
	// PhaseLoading is the sole initial phase, held until the backing store
	// has been consulted exactly once.
	PhaseLoading Phase = iota
	// PhaseUnauthenticated is an exported constant or variable used by the session core.
	PhaseUnauthenticated
	// PhaseAuthenticated is an exported constant or variable used by the session core.
	PhaseAuthenticated
)

// String describes the phase for logs and test failures.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// User is the authenticated identity derived from decoded credential claims.
// It is a convenience projection for views; it carries no authorization
// weight.
type User struct {
	SubjectID string
	Role      Role
}

// SessionState is the value every consumer observes. User is non-nil exactly
// when Phase is [PhaseAuthenticated].
//
// SessionState instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionState struct {
	Phase Phase
	User  *User
}

// Authenticated reports whether the state carries a signed-in user.
func (s SessionState) Authenticated() bool {
	return s.Phase == PhaseAuthenticated && s.User != nil
}

// Authenticator is the external authentication API collaborator. Implementors
// verify the email/password pair and return the opaque credential string on
// success. Errors are surfaced to Login callers unchanged; sessionkit never
// wraps or reinterprets them.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}

// Subscriber receives every session state transition, synchronously, before
// the triggering Manager call returns. No ordering is guaranteed between
// independent subscribers.
type Subscriber func(SessionState)
