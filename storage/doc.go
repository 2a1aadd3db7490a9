// Package storage persists the single session credential under a fixed key.
//
// The presence of a value under that key is the entire signal that a session
// might exist. Read never reports an error: an absent, unreadable, or
// unavailable backend all surface as "no credential", which the session
// Manager resolves to an unauthenticated state rather than a crash. Write
// and Clear are fire-and-forget; a caller that needs confirmation reads
// back.
//
// # Backends
//
//   - [RedisStore] — durable key-value backend for deployments.
//   - [MemoryStore] — substitutable in-process backend for tests and
//     examples.
//
// # What this package must NOT do
//
//   - Interpret the credential. It is an opaque string here; decoding
//     belongs to the claims package.
//   - Import any other sessionkit package (no upward imports).
package storage
