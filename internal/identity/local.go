package identity

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Leerm14/restaurantmanagement/internal/config"
	"github.com/Leerm14/restaurantmanagement/internal/events"
	"github.com/Leerm14/restaurantmanagement/internal/storage"
	apperrors "github.com/Leerm14/restaurantmanagement/pkg/util"
)

// ErrNoCredential signals that no account is currently signed in.
var ErrNoCredential = errors.New("identity: no current credential")

const accountKeyPrefix = "identity:account:"

type account struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	PasswordHash  string `json:"passwordHash"`
	EmailVerified bool   `json:"emailVerified"`
	Phone         string `json:"phone,omitempty"`
}

type phoneChallenge struct {
	Email string
	Phone string
	Code  string
}

// LocalProvider is a self-contained identity provider. Accounts live in
// client-state storage with bcrypt password hashes; tokens are HS256 JWTs.
// It exposes the same surface the hosted provider does, so development and
// tests exercise the full session flow.
type LocalProvider struct {
	store      storage.Store
	tokens     *TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
	minPassLen int

	mu         sync.Mutex
	current    *Credential
	challenges map[string]phoneChallenge
}

// NewLocalProvider builds a provider backed by the given store.
func NewLocalProvider(cfg config.IdentityConfig, store storage.Store, dispatcher events.Dispatcher, logger *zap.Logger) *LocalProvider {
	return &LocalProvider{
		store:      store,
		tokens:     NewTokenManager(cfg.JWTSecret, cfg.TokenTTLMinutes),
		dispatcher: dispatcher,
		logger:     logger,
		bcryptCost: cfg.BcryptCost,
		minPassLen: cfg.MinPasswordLen,
		challenges: make(map[string]phoneChallenge),
	}
}

// TokenManager exposes the underlying manager for middleware usage.
func (p *LocalProvider) TokenManager() *TokenManager {
	return p.tokens
}

// SignUp registers a new account and signs it in.
func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*Credential, error) {
	email = normalizeEmail(email)
	if len(password) < p.minPassLen {
		return nil, apperrors.NewAuthError(apperrors.CodeWeakPassword)
	}
	if _, err := p.loadAccount(ctx, email); err == nil {
		return nil, apperrors.NewAuthError(apperrors.CodeEmailInUse)
	} else if err != storage.ErrNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.bcryptCost)
	if err != nil {
		return nil, err
	}

	acct := account{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := p.saveAccount(ctx, acct); err != nil {
		return nil, err
	}

	cred := credentialFromAccount(acct)
	p.setCurrent(cred)
	p.publish(ctx, events.EventCredentialSignedIn, cred)
	return cred, nil
}

// SignIn authenticates an existing account.
func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Credential, error) {
	email = normalizeEmail(email)
	acct, err := p.loadAccount(ctx, email)
	if err == storage.ErrNotFound {
		return nil, apperrors.NewAuthError(apperrors.CodeUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.NewAuthError(apperrors.CodeInvalidCredential)
	}

	cred := credentialFromAccount(*acct)
	p.setCurrent(cred)
	p.publish(ctx, events.EventCredentialSignedIn, cred)
	return cred, nil
}

// SignOut terminates the current provider session.
func (p *LocalProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	cred := p.current
	p.current = nil
	p.mu.Unlock()

	if cred != nil {
		p.publish(ctx, events.EventCredentialSignedOut, cred)
	}
	return nil
}

// Current returns the signed-in credential, or nil.
func (p *LocalProvider) Current() *Credential {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	copied := *p.current
	return &copied
}

// Token issues a fresh bearer token for the current credential.
func (p *LocalProvider) Token(ctx context.Context) (string, error) {
	cred := p.Current()
	if cred == nil {
		return "", ErrNoCredential
	}
	token, _, err := p.tokens.GenerateToken(cred.UID, cred.Email)
	return token, err
}

// SendEmailVerification marks the current account verified. The hosted
// provider sends a real email; locally the link is short-circuited.
func (p *LocalProvider) SendEmailVerification(ctx context.Context) error {
	cred := p.Current()
	if cred == nil {
		return ErrNoCredential
	}
	acct, err := p.loadAccount(ctx, cred.Email)
	if err != nil {
		return err
	}
	acct.EmailVerified = true
	if err := p.saveAccount(ctx, *acct); err != nil {
		return err
	}
	p.logger.Info("verification email sent", zap.String("email", cred.Email))
	return nil
}

// SendPasswordReset logs a reset token for the given email.
func (p *LocalProvider) SendPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if _, err := p.loadAccount(ctx, email); err == storage.ErrNotFound {
		return apperrors.NewAuthError(apperrors.CodeUserNotFound)
	} else if err != nil {
		return err
	}
	p.logger.Info("password reset email sent",
		zap.String("email", email),
		zap.String("reset_token", uuid.NewString()),
	)
	return nil
}

// BeginPhoneLink starts the phone-number linking flow and returns a
// challenge id. The one-time code is logged in place of an SMS.
func (p *LocalProvider) BeginPhoneLink(ctx context.Context, phone string) (string, error) {
	cred := p.Current()
	if cred == nil {
		return "", ErrNoCredential
	}

	challengeID := uuid.NewString()
	code := oneTimeCode()

	p.mu.Lock()
	p.challenges[challengeID] = phoneChallenge{Email: cred.Email, Phone: phone, Code: code}
	p.mu.Unlock()

	p.logger.Info("phone link code issued",
		zap.String("email", cred.Email),
		zap.String("phone", phone),
		zap.String("code", code),
	)
	return challengeID, nil
}

// ConfirmPhoneLink completes the linking flow with the one-time code.
func (p *LocalProvider) ConfirmPhoneLink(ctx context.Context, challengeID, code string) error {
	p.mu.Lock()
	challenge, ok := p.challenges[challengeID]
	if ok {
		delete(p.challenges, challengeID)
	}
	p.mu.Unlock()

	if !ok || challenge.Code != code {
		return apperrors.NewAuthError(apperrors.CodeInvalidCredential)
	}

	acct, err := p.loadAccount(ctx, challenge.Email)
	if err != nil {
		return err
	}
	acct.Phone = challenge.Phone
	if err := p.saveAccount(ctx, *acct); err != nil {
		return err
	}

	p.mu.Lock()
	if p.current != nil && p.current.Email == challenge.Email {
		p.current.Phone = challenge.Phone
	}
	p.mu.Unlock()
	return nil
}

// DeleteAccount removes the current credential and signs out.
func (p *LocalProvider) DeleteAccount(ctx context.Context) error {
	cred := p.Current()
	if cred == nil {
		return ErrNoCredential
	}
	if err := p.store.Delete(ctx, accountKeyPrefix+cred.Email); err != nil {
		return err
	}

	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()

	p.publish(ctx, events.EventCredentialSignedOut, cred)
	return nil
}

func (p *LocalProvider) loadAccount(ctx context.Context, email string) (*account, error) {
	raw, err := p.store.Get(ctx, accountKeyPrefix+email)
	if err != nil {
		return nil, err
	}
	var acct account
	if err := json.Unmarshal(raw, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

func (p *LocalProvider) saveAccount(ctx context.Context, acct account) error {
	raw, err := json.Marshal(acct)
	if err != nil {
		return err
	}
	return p.store.Set(ctx, accountKeyPrefix+acct.Email, raw)
}

func (p *LocalProvider) setCurrent(cred *Credential) {
	p.mu.Lock()
	copied := *cred
	p.current = &copied
	p.mu.Unlock()
}

func (p *LocalProvider) publish(ctx context.Context, eventType events.EventType, cred *Credential) {
	if p.dispatcher == nil {
		return
	}
	_ = p.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   events.CredentialPayload{CredentialUID: cred.UID, Email: cred.Email},
	})
}

func credentialFromAccount(acct account) *Credential {
	return &Credential{
		UID:           acct.UID,
		Email:         acct.Email,
		EmailVerified: acct.EmailVerified,
		Phone:         acct.Phone,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func oneTimeCode() string {
	id := uuid.New()
	n := binary.BigEndian.Uint32(id[:4]) % 1000000
	return fmt.Sprintf("%06d", n)
}
