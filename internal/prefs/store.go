package prefs

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/storage"
)

// EffectKind names a display effect derived from a preference change.
type EffectKind string

const (
	EffectThemeApplied    EffectKind = "theme_applied"
	EffectLanguageApplied EffectKind = "language_applied"
)

// Effect is the presentation-layer side effect of a state transition.
// The store itself never touches the document; subscribers apply effects.
type Effect struct {
	Kind        EffectKind
	Theme       domain.Theme
	ColorScheme string
	Background  string
	Foreground  string
	Language    string
}

// Subscriber receives effects after a state transition commits.
type Subscriber func(Effect)

// Store holds the theme and language choice. State transitions are pure;
// effects are delivered to subscribers; every change persists the combined
// settings object plus the separate language key. Defaults are not written
// until the user changes a value.
type Store struct {
	storage storage.Store
	logger  *zap.Logger

	mu          sync.Mutex
	prefs       domain.Preferences
	subscribers []Subscriber
}

// NewStore hydrates preferences from storage, falling back to defaults on
// absence or a corrupt payload.
func NewStore(ctx context.Context, store storage.Store, logger *zap.Logger) *Store {
	s := &Store{storage: store, logger: logger, prefs: domain.DefaultPreferences()}

	raw, err := store.Get(ctx, storage.KeyGeneralSettings)
	if err == nil {
		var saved domain.Preferences
		if err := json.Unmarshal(raw, &saved); err != nil {
			logger.Warn("discarding corrupt stored settings", zap.Error(err))
		} else {
			if saved.Theme.Valid() {
				s.prefs.Theme = saved.Theme
			}
			if saved.Language != "" {
				s.prefs.Language = saved.Language
			}
			s.prefs.TimeZone = saved.TimeZone
		}
	} else if err != storage.ErrNotFound {
		logger.Warn("settings hydration failed", zap.Error(err))
	}
	return s
}

// Subscribe registers an effect subscriber.
func (s *Store) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// Preferences returns the current settings.
func (s *Store) Preferences() domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// SetTheme updates the theme, persists, and emits the applied effect.
// ThemeAuto is stored but emits no theme effect; its visual treatment is
// undefined and deliberately not aliased to dark or light.
func (s *Store) SetTheme(ctx context.Context, theme domain.Theme) {
	if !theme.Valid() {
		return
	}

	s.mu.Lock()
	s.prefs.Theme = theme
	s.persistLocked(ctx)
	subs := append([]Subscriber{}, s.subscribers...)
	s.mu.Unlock()

	effect, ok := themeEffect(theme)
	if !ok {
		return
	}
	for _, sub := range subs {
		sub(effect)
	}
}

// SetLanguage updates the language, persists, and emits the applied effect.
func (s *Store) SetLanguage(ctx context.Context, language string) {
	if language == "" {
		return
	}

	s.mu.Lock()
	s.prefs.Language = language
	s.persistLocked(ctx)
	if err := s.storage.Set(ctx, storage.KeyLanguage, []byte(`"`+language+`"`)); err != nil {
		s.logger.Warn("persist language key", zap.Error(err))
	}
	subs := append([]Subscriber{}, s.subscribers...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub(Effect{Kind: EffectLanguageApplied, Language: language})
	}
}

func (s *Store) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(s.prefs)
	if err != nil {
		s.logger.Error("marshal settings", zap.Error(err))
		return
	}
	if err := s.storage.Set(ctx, storage.KeyGeneralSettings, raw); err != nil {
		s.logger.Warn("persist settings", zap.Error(err))
	}
}

func themeEffect(theme domain.Theme) (Effect, bool) {
	switch theme {
	case domain.ThemeDark:
		return Effect{
			Kind:        EffectThemeApplied,
			Theme:       theme,
			ColorScheme: "dark",
			Background:  "#181818",
			Foreground:  "#EAE0D5",
		}, true
	case domain.ThemeLight:
		return Effect{
			Kind:        EffectThemeApplied,
			Theme:       theme,
			ColorScheme: "light",
			Background:  "#FFFFFF",
			Foreground:  "#181818",
		}, true
	}
	return Effect{}, false
}
