package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Leerm14/restaurantmanagement/internal/api/dto"
	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/identity"
	"github.com/Leerm14/restaurantmanagement/internal/session"
	apperrors "github.com/Leerm14/restaurantmanagement/pkg/util"
)

// SessionHandler exposes sign-in, sign-up and session inspection.
type SessionHandler struct {
	provider identity.Provider
	sessions *session.Store
	backend  *backend.Client
	logger   *zap.Logger
}

// NewSessionHandler constructs handler.
func NewSessionHandler(provider identity.Provider, sessions *session.Store, client *backend.Client, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{provider: provider, sessions: sessions, backend: client, logger: logger}
}

// SignUp handles POST /auth/signup. The credential is created at the
// identity provider first; if the backend profile creation then fails,
// the just-created credential is deleted so no dangling login remains.
func (h *SessionHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("name, email, password required", nil)
	}

	cred, err := h.provider.SignUp(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	_, err = h.backend.CreateUser(c.Context(), backend.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  domain.RoleUser,
	})
	if err != nil {
		if delErr := h.provider.DeleteAccount(c.Context()); delErr != nil {
			// deletion failure leaves an orphaned credential; log only
			h.logger.Error("orphaned credential cleanup failed",
				zap.String("uid", cred.UID),
				zap.Error(delErr),
			)
		}
		return err
	}

	if verr := h.provider.SendEmailVerification(c.Context()); verr != nil {
		h.logger.Warn("verification email failed", zap.Error(verr))
	}

	if err := h.sessions.Login(c.Context()); err != nil {
		h.logger.Warn("profile fetch after signup failed", zap.Error(err))
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": h.sessions.Snapshot()})
}

// SignIn handles POST /auth/signin.
func (h *SessionHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	if _, err := h.provider.SignIn(c.Context(), req.Email, req.Password); err != nil {
		return err
	}
	if err := h.sessions.Login(c.Context()); err != nil {
		// profile fetch failure means "not authenticated", never fatal
		h.logger.Warn("profile fetch after signin failed", zap.Error(err))
		return apperrors.NewAuthError(apperrors.CodeUserNotFound)
	}
	return c.JSON(fiber.Map{"data": h.sessions.Snapshot()})
}

// SignOut handles POST /auth/signout.
func (h *SessionHandler) SignOut(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c.Context()); err != nil {
		h.logger.Warn("provider signout failed", zap.Error(err))
	}
	return c.SendStatus(http.StatusNoContent)
}

// Session handles GET /auth/session.
func (h *SessionHandler) Session(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.sessions.Snapshot()})
}

// ResetPassword handles POST /auth/reset-password.
func (h *SessionHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}
	if err := h.provider.SendPasswordReset(c.Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"sent": true}})
}

// PhoneLink handles POST /auth/phone/link.
func (h *SessionHandler) PhoneLink(c *fiber.Ctx) error {
	var req dto.PhoneLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Phone == "" {
		return apperrors.NewValidationError("phone required", nil)
	}
	challengeID, err := h.provider.BeginPhoneLink(c.Context(), req.Phone)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"challengeId": challengeID}})
}

// PhoneConfirm handles POST /auth/phone/confirm.
func (h *SessionHandler) PhoneConfirm(c *fiber.Ctx) error {
	var req dto.PhoneConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ChallengeID == "" || req.Code == "" {
		return apperrors.NewValidationError("challengeId and code required", nil)
	}
	if err := h.provider.ConfirmPhoneLink(c.Context(), req.ChallengeID, req.Code); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"linked": true}})
}
