package claims

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned when the token envelope, base64 payload, or
// structural parse is invalid. Callers treat the session as absent; no
// failure here is ever fatal.
var ErrMalformed = errors.New("malformed token")

// Claims is the structured record extracted from a credential's payload
// segment. Fields other than role, subject, and expiry are ignored.
//
// Claims instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Claims struct {
	SubjectID string
	Role      string
	ExpiresAt time.Time
}

type tokenPayload struct {
	Role string `json:"role"`
	UID  string `json:"uid"`
	jwt.RegisteredClaims
}

// Decode extracts [Claims] from the middle segment of a three-part signed
// token. The signature is never verified and expiry is never checked here;
// both are outside this codec's contract. Decode is pure and never panics.
func Decode(token string) (*Claims, error) {
	if strings.Count(token, ".") != 2 {
		return nil, fmt.Errorf("%w: expected three dot-separated segments", ErrMalformed)
	}

	var payload tokenPayload
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := &Claims{
		SubjectID: payload.Subject,
		Role:      payload.Role,
	}
	// Some issuers carry the subject in a uid claim instead of sub.
	if out.SubjectID == "" {
		out.SubjectID = payload.UID
	}
	if payload.ExpiresAt != nil {
		out.ExpiresAt = payload.ExpiresAt.Time
	}

	return out, nil
}
