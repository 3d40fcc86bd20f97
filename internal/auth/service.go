package auth

// LoginResult is the successful outcome of a login: a freshly issued token
// and the identity it encodes.
type LoginResult struct {
	Token    string
	Username string
	Name     string
}

// Service exposes the session operations: credential check plus token
// issuance. Verification of existing tokens is the gate's job; the service
// adds nothing there.
type Service struct {
	store *Store
	codec *Codec
}

// NewService wires the credential store and token codec together.
func NewService(store *Store, codec *Codec) *Service {
	return &Service{store: store, codec: codec}
}

// Login authenticates a credential pair and issues a session token.
//
// Empty fields return ErrMissingCredentials, failed authentication returns
// ErrInvalidCredentials, and no token is issued in either case.
func (s *Service) Login(username, password string) (LoginResult, error) {
	if username == "" || password == "" {
		return LoginResult{}, ErrMissingCredentials
	}

	record, err := s.store.Authenticate(username, password)
	if err != nil {
		return LoginResult{}, err
	}

	token, err := s.codec.Issue(record.Username, record.Name)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token:    token,
		Username: record.Username,
		Name:     record.Name,
	}, nil
}
