package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/events"
	"github.com/Leerm14/restaurantmanagement/internal/identity"
)

// ProfileFetcher is the slice of the backend client the store depends on.
type ProfileFetcher interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// Snapshot is an immutable view of the session for guards and handlers.
// Role and UserID are set iff Authenticated is true.
type Snapshot struct {
	Authenticated bool        `json:"isAuthenticated"`
	Role          domain.Role `json:"role,omitempty"`
	UserID        int64       `json:"userId,omitempty"`
	Loading       bool        `json:"loading"`
}

// Store is the single source of truth for who the current user is. It
// resolves identity from the provider's credential plus a backend profile
// fetch, and re-resolves on credential-change events. Loading starts true
// and is resolved exactly once per transition.
type Store struct {
	provider identity.Provider
	backend  ProfileFetcher
	logger   *zap.Logger

	mu            sync.Mutex
	authenticated bool
	role          domain.Role
	userID        int64
	loading       bool
}

// NewStore builds the store and subscribes it to credential events.
func NewStore(provider identity.Provider, backend ProfileFetcher, dispatcher events.Dispatcher, logger *zap.Logger) *Store {
	s := &Store{
		provider: provider,
		backend:  backend,
		logger:   logger,
		loading:  true,
	}

	if dispatcher != nil {
		dispatcher.Subscribe(events.EventCredentialSignedIn, s.onCredentialPresent)
		dispatcher.Subscribe(events.EventCredentialRefreshed, s.onCredentialPresent)
		dispatcher.Subscribe(events.EventCredentialSignedOut, s.onCredentialAbsent)
	}
	return s
}

// Start performs the initial identity resolution at process start.
func (s *Store) Start(ctx context.Context) {
	if s.provider.Current() != nil {
		if err := s.resolve(ctx); err != nil {
			s.logger.Warn("initial session resolution failed", zap.Error(err))
		}
		return
	}
	s.clear()
}

// Login re-fetches the backend profile for the current credential. A
// failed fetch leaves the session unauthenticated; it is never fatal and
// never retried automatically.
func (s *Store) Login(ctx context.Context) error {
	return s.resolve(ctx)
}

// Logout terminates the identity-provider session, then synchronously
// clears the session fields.
func (s *Store) Logout(ctx context.Context) error {
	err := s.provider.SignOut(ctx)
	s.clear()
	return err
}

// Snapshot returns the current session view.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Authenticated: s.authenticated,
		Role:          s.role,
		UserID:        s.userID,
		Loading:       s.loading,
	}
}

func (s *Store) onCredentialPresent(ctx context.Context, _ events.Event) error {
	if err := s.resolve(ctx); err != nil {
		s.logger.Warn("profile fetch on credential change failed", zap.Error(err))
	}
	return nil
}

func (s *Store) onCredentialAbsent(_ context.Context, _ events.Event) error {
	s.clear()
	return nil
}

func (s *Store) resolve(ctx context.Context) error {
	user, err := s.backend.CurrentUser(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.authenticated = false
		s.role = ""
		s.userID = 0
		return err
	}
	s.authenticated = true
	s.role = user.Role
	s.userID = user.ID
	return nil
}

func (s *Store) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.role = ""
	s.userID = 0
	s.loading = false
}
