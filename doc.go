// Package sessionkit provides the client-held session core for a role-based
// learning dashboard: credential persistence, non-authoritative claim
// decoding, a subscribable session state machine, role-scoped route guarding,
// and navigation active-entry resolution.
//
// The package is designed for concurrent consumers: Manager methods are safe
// to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// sessionkit is the public surface. It exposes [Manager], [Builder],
// [Config], and value types (SessionState, User, Role). The credential codec,
// storage backends, route guard, and navigation resolver live in the claims,
// storage, guard, and nav subpackages; each is a pure function of its inputs
// apart from the storage backends themselves.
//
// # What this package must NOT do
//
//   - Verify credential signatures or make authorization decisions. Decoded
//     claims are a UI convenience read; the server-side API must enforce role
//     checks independently on every request.
//   - Mutate SessionState or the backing store from anywhere but the three
//     Manager operations (Initialize, Login, Logout). Writes that bypass the
//     Manager desynchronize in-memory state from storage.
//   - Expose storage clients or decoding details in its public API.
package sessionkit
