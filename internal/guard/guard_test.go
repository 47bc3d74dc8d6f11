package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		role          domain.Role
		allowed       []domain.Role
		want          Decision
	}{
		{
			name:          "unauthenticated goes to sign-in",
			authenticated: false,
			want:          RedirectToSignIn,
		},
		{
			name:          "unauthenticated with allow list still goes to sign-in",
			authenticated: false,
			allowed:       []domain.Role{domain.RoleAdmin},
			want:          RedirectToSignIn,
		},
		{
			name:          "authenticated with empty allow list passes",
			authenticated: true,
			role:          domain.RoleUser,
			want:          Allow,
		},
		{
			name:          "role inside allow list passes",
			authenticated: true,
			role:          domain.RoleStaff,
			allowed:       []domain.Role{domain.RoleStaff, domain.RoleAdmin},
			want:          Allow,
		},
		{
			name:          "admin allowed on staff shell",
			authenticated: true,
			role:          domain.RoleAdmin,
			allowed:       []domain.Role{domain.RoleStaff, domain.RoleAdmin},
			want:          Allow,
		},
		{
			name:          "user outside allow list goes home",
			authenticated: true,
			role:          domain.RoleUser,
			allowed:       []domain.Role{domain.RoleStaff, domain.RoleAdmin},
			want:          RedirectToHome,
		},
		{
			name:          "staff outside admin shell goes home",
			authenticated: true,
			role:          domain.RoleStaff,
			allowed:       []domain.Role{domain.RoleAdmin},
			want:          RedirectToHome,
		},
		{
			name:          "unknown role outside allow list goes home",
			authenticated: true,
			role:          domain.Role("visitor"),
			allowed:       []domain.Role{domain.RoleUser},
			want:          RedirectToHome,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Decide(tc.authenticated, tc.role, tc.allowed)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect-to-signin", RedirectToSignIn.String())
	assert.Equal(t, "redirect-to-home", RedirectToHome.String())
}
