package sessionkit

import "errors"

var (
	// ErrMalformedCredential is returned when a stored or freshly issued
	// credential cannot be decoded. The Manager recovers by purging storage
	// and resolving to Unauthenticated; a corrupt credential is never
	// retried.
	ErrMalformedCredential = errors.New("malformed credential")
	// ErrNotInitialized is returned when Login is called before Initialize
	// has resolved the loading phase.
	ErrNotInitialized = errors.New("session manager not initialized")
	// ErrBuilderUsed is an exported constant or variable used by the session core.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrStoreRequired is an exported constant or variable used by the session core.
	ErrStoreRequired = errors.New("session store required")
	// ErrAuthenticatorRequired is an exported constant or variable used by the session core.
	ErrAuthenticatorRequired = errors.New("authenticator required")
	// ErrManagerNotReady is returned by Manager methods invoked on a nil or
	// unbuilt receiver.
	ErrManagerNotReady = errors.New("session manager not ready")
)
