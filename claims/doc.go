// Package claims decodes the payload segment of a signed session token into
// the role, subject, and expiry fields the dashboard renders from.
//
// # Non-authoritative by design
//
// Decode reads the middle base64 segment of the three-part token envelope and
// nothing else. It never verifies the signature and never checks expiry: the
// result is a UI convenience projection, not an authorization decision. The
// server-side API must enforce role checks independently on every request,
// and the session Manager owns whatever expiry policy applies to decoded
// claims.
//
// # What this package must NOT do
//
//   - Verify signatures or trust any decoded field for access control.
//   - Persist claims; they are derived on demand and invalidated the moment
//     the source credential changes.
//   - Import any other sessionkit package (no upward imports).
package claims
