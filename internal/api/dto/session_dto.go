package dto

// SignUpRequest payload for account creation.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// SignInRequest payload for login.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest asks for a password-reset email.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// PhoneLinkRequest starts phone-number linking.
type PhoneLinkRequest struct {
	Phone string `json:"phone"`
}

// PhoneConfirmRequest completes phone-number linking.
type PhoneConfirmRequest struct {
	ChallengeID string `json:"challengeId"`
	Code        string `json:"code"`
}
