package guard

import (
	sessionkit "github.com/learnware/sessionkit"
)

// Paths names the public pages the guard treats specially.
//
// Paths instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Paths struct {
	Landing string
	SignIn  string
	SignUp  string
}

// DefaultPaths matches the dashboard's conventional layout.
func DefaultPaths() Paths {
	return Paths{
		Landing: "/",
		SignIn:  "/sign-in",
		SignUp:  "/sign-up",
	}
}

// PathsFromConfig projects the guard section of a sessionkit config.
func PathsFromConfig(cfg sessionkit.GuardConfig) Paths {
	return Paths{
		Landing: cfg.LandingPath,
		SignIn:  cfg.SignInPath,
		SignUp:  cfg.SignUpPath,
	}
}

// Decision is the guard's only output. Target is meaningful when Redirect
// is true.
type Decision struct {
	Redirect bool
	Target   string
}

// HomePath maps a role to its dashboard home. Unrecognized roles normalize
// to trainee first, so the fallback is uniformly lowest-privilege rather
// than the admin home.
func HomePath(role sessionkit.Role) string {
	switch role.Normalize() {
	case sessionkit.RoleAdmin:
		return "/admin"
	case sessionkit.RoleInstructor:
		return "/instructor"
	default:
		return "/trainee"
	}
}

// Decide evaluates the redirect policy for one (state, path) pair.
//
//   - Loading: no decision; callers render a placeholder.
//   - Unauthenticated anywhere but the sign-in/sign-up pages: redirect to
//     sign-in.
//   - Authenticated on the landing, sign-in, or sign-up page: redirect to
//     the role's home.
func Decide(state sessionkit.SessionState, currentPath string, p Paths) Decision {
	switch state.Phase {
	case sessionkit.PhaseLoading:
		return Decision{}

	case sessionkit.PhaseUnauthenticated:
		if currentPath == p.SignIn || currentPath == p.SignUp {
			return Decision{}
		}
		return Decision{Redirect: true, Target: p.SignIn}

	case sessionkit.PhaseAuthenticated:
		if currentPath != p.Landing && currentPath != p.SignIn && currentPath != p.SignUp {
			return Decision{}
		}
		var role sessionkit.Role
		if state.User != nil {
			role = state.User.Role
		}
		return Decision{Redirect: true, Target: HomePath(role)}
	}

	return Decision{}
}
