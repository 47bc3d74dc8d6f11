package identity

import "context"

// Credential is the identity provider's view of a signed-in account. It
// carries no role information; roles come from the backend profile.
type Credential struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	Phone         string `json:"phone,omitempty"`
}

// TokenSource yields a fresh bearer token for the current credential, or
// ErrNoCredential when nobody is signed in.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Provider abstracts the external identity service. Credential lifecycle
// changes (sign-in, refresh, external sign-out) are published on the
// event dispatcher so the session store can react passively.
type Provider interface {
	TokenSource

	SignUp(ctx context.Context, email, password string) (*Credential, error)
	SignIn(ctx context.Context, email, password string) (*Credential, error)
	SignOut(ctx context.Context) error
	Current() *Credential

	SendEmailVerification(ctx context.Context) error
	SendPasswordReset(ctx context.Context, email string) error

	BeginPhoneLink(ctx context.Context, phone string) (string, error)
	ConfirmPhoneLink(ctx context.Context, challengeID, code string) error

	// DeleteAccount removes the current credential. Used to clean up an
	// orphaned identity when backend profile creation fails after sign-up.
	DeleteAccount(ctx context.Context) error
}
