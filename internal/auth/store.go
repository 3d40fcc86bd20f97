// Package auth implements the session core: the credential store, the
// signed-token codec, and the login service that ties them together.
//
// Tokens are stateless HS256 JWTs. Nothing is stored server-side after
// issuance; validity is determined purely by signature and expiry, so the
// service can scale horizontally with zero coordination.
package auth

import "crypto/subtle"

// Record is one credential entry: the login secret and the display name
// shown in replies. Immutable after startup.
type Record struct {
	Username string
	Password string
	Name     string
}

// Store is a read-only username → Record mapping loaded at process start.
//
// INSECURE BY DESIGN: passwords are compared as plain text to preserve the
// original backend's observable accept/reject contract for its fixed demo
// accounts. A production store must hold salted hashes instead; the
// Authenticate seam is the single place to swap that in.
type Store struct {
	records map[string]Record
}

// NewStore builds a store from the given records. Later duplicates of a
// username win, matching map-literal semantics in the original seed data.
func NewStore(records ...Record) *Store {
	m := make(map[string]Record, len(records))
	for _, r := range records {
		m[r.Username] = r
	}
	return &Store{records: m}
}

// DefaultRecords returns the demo credential seed shipped with the service.
func DefaultRecords() []Record {
	return []Record{
		{Username: "admin", Password: "admin123", Name: "Admin User"},
		{Username: "user", Password: "user123", Name: "Test User"},
	}
}

// Lookup returns the record for username.
func (s *Store) Lookup(username string) (Record, bool) {
	r, ok := s.records[username]
	return r, ok
}

// Authenticate checks a username/password pair. Unknown usernames and wrong
// passwords both return ErrInvalidCredentials; the comparison is constant
// time so the two cases are not distinguishable by timing either.
func (s *Store) Authenticate(username, password string) (Record, error) {
	r, ok := s.records[username]
	if !ok {
		// Burn a comparison anyway so misses cost the same as mismatches.
		subtle.ConstantTimeCompare([]byte(password), []byte(password))
		return Record{}, ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(r.Password), []byte(password)) != 1 {
		return Record{}, ErrInvalidCredentials
	}

	return r, nil
}
