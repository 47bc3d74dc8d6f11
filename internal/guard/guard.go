package guard

import "github.com/Leerm14/restaurantmanagement/internal/domain"

// Decision is the outcome of a route authorization check.
type Decision int

const (
	Allow Decision = iota
	RedirectToSignIn
	RedirectToHome
)

// Redirect targets for the two deny outcomes.
const (
	SignInPath = "/signin"
	HomePath   = "/home"
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToSignIn:
		return "redirect-to-signin"
	case RedirectToHome:
		return "redirect-to-home"
	}
	return "unknown"
}

// Decide gates access to a protected subtree. Unauthenticated callers are
// sent to sign-in; authenticated callers whose role is outside a non-empty
// allow list are sent home; everyone else may render. Pure, no I/O.
func Decide(authenticated bool, role domain.Role, allowed []domain.Role) Decision {
	if !authenticated {
		return RedirectToSignIn
	}
	if len(allowed) > 0 && !role.In(allowed) {
		return RedirectToHome
	}
	return Allow
}
