// Package guard turns session state and the current path into a redirect
// decision: unauthenticated visitors are sent to sign-in, authenticated
// visitors are kept off the landing and sign-in/sign-up pages and sent to
// their role's home.
//
// [Decide] produces only a decision (none, or a target path); issuing the
// redirect is the navigation layer's side effect, kept in [Middleware] so
// the policy stays independently testable. While the session is still
// loading no decision is made and consumers render a neutral placeholder.
//
// # What this package must NOT do
//
//   - Mutate session state or the credential store.
//   - Make authorization decisions; the decoded role steers navigation
//     only, and the server-side API enforces access on every request.
package guard
