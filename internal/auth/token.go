package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the user resolved from a valid session token. It exists only
// for the duration of one request.
type Identity struct {
	Username string
	Name     string
}

// Claims is the session token payload: the identity plus the registered
// expiry and issued-at claims.
type Claims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// Codec creates and validates signed session tokens over a shared symmetric
// secret (HMAC-SHA256). It keeps no state besides configuration: validation
// is pure recomputation from the token bytes, the secret, and the clock.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a codec. now is the clock used for both the issued expiry
// and the validation cutoff; production callers pass time.Now, tests inject
// a fixed clock to pin the expiry boundary.
func NewCodec(secret []byte, ttl time.Duration, now func() time.Time) *Codec {
	if now == nil {
		now = time.Now
	}
	return &Codec{secret: secret, ttl: ttl, now: now}
}

// Issue signs a token for the given identity, expiring after the configured
// TTL.
func (c *Codec) Issue(username, name string) (string, error) {
	issued := c.now()
	claims := Claims{
		Username: username,
		Name:     name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(issued),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Validate parses and verifies a token, returning the encoded identity.
//
// Every failure mode — bad signature, malformed payload, expired, wrong
// algorithm, missing username — collapses to ErrTokenInvalid. Callers and
// clients never learn which check failed.
func (c *Codec) Validate(tokenStr string) (Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return Identity{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return Identity{}, ErrTokenInvalid
	}

	return Identity{Username: claims.Username, Name: claims.Name}, nil
}
