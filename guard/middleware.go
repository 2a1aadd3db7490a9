package guard

import (
	"net/http"

	sessionkit "github.com/learnware/sessionkit"
)

// Middleware applies [Decide] to every request against the manager's current
// state, issuing the redirect when one is decided and passing through
// otherwise. While the session is loading the request is served as-is; views
// are expected to render their neutral state.
func Middleware(mgr *sessionkit.Manager, p Paths) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if mgr == nil {
				next.ServeHTTP(w, r)
				return
			}

			decision := Decide(mgr.CurrentState(), r.URL.Path, p)
			if decision.Redirect {
				http.Redirect(w, r, decision.Target, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
