package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"prosono/client/internal/api"
	"prosono/client/internal/config"
	"prosono/client/internal/models"
	"prosono/client/internal/tokenstore"
)

var (
	ErrNoRefreshToken = errors.New("session: no refresh token available")
)

var validate = validator.New()

// Manager owns the current-user state and every auth lifecycle operation.
// Operations are serialized: no two of them ever run overlapping requests
// against the same user state.
type Manager struct {
	mu      sync.Mutex
	client  *api.Client
	store   *tokenstore.Store
	cfg     *config.AppConfig
	log     zerolog.Logger
	user    *models.User
	loading bool
}

func NewManager(client *api.Client, store *tokenstore.Store, cfg *config.AppConfig, logger zerolog.Logger) *Manager {
	return &Manager{
		client: client,
		store:  store,
		cfg:    cfg,
		log:    logger,
	}
}

// CurrentUser returns the resolved user, or nil while unresolved.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated is derived state: a stored access token counts even before
// the user record has resolved, so startup is optimistically authenticated.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil || m.store.HasAccessToken()
}

func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Initialize rebuilds the session at startup by exchanging a stored token for
// the user record. It runs unattended, so a failed fetch is recovered locally
// by discarding the stored tokens rather than surfaced to a caller.
func (m *Manager) Initialize(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.store.HasAccessToken() {
		return
	}

	m.loading = true
	defer func() { m.loading = false }()

	var user models.User
	if err := m.client.Get(ctx, "/user", &user); err != nil {
		m.log.Warn().Err(err).Msg("stored session invalid, clearing tokens")
		m.store.Clear()
		return
	}
	m.user = &user
	m.log.Info().Str("user_id", user.ID).Msg("session restored")
}

// Login exchanges credentials for an access token and then fetches the full
// profile. A failed profile fetch does not fail the login: the token is valid,
// so a minimal placeholder user stands in until a later refresh resolves it.
func (m *Manager) Login(ctx context.Context, creds models.LoginCredentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loading = true
	defer func() { m.loading = false }()

	var resp models.LoginResponse
	if err := m.client.Post(ctx, "/auth/login", creds, &resp); err != nil {
		return err
	}
	m.store.SetAccessToken(resp.AccessToken)

	var user models.User
	if err := m.client.Get(ctx, "/user", &user); err != nil {
		m.log.Warn().Err(err).Msg("user fetch after login failed, using placeholder")
		now := time.Now()
		m.user = &models.User{
			ID:        "unknown",
			Email:     creds.Email,
			Status:    models.StatusPreEvaluation,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	}

	m.user = &user
	m.log.Info().Str("user_id", user.ID).Msg("logged in")
	return nil
}

// Register submits a registration. It never establishes a session; the user
// logs in explicitly afterwards. A 409 from the backend means the email is
// already registered (api.IsConflict).
func (m *Manager) Register(ctx context.Context, data models.RegisterData) error {
	if err := validate.Struct(data); err != nil {
		return fmt.Errorf("session: invalid registration data: %w", err)
	}
	if m.cfg.Registration.AgeValidation {
		if err := m.checkAge(data.BirthDate); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.loading = true
	defer func() { m.loading = false }()

	if err := m.client.Post(ctx, "/auth/register", data, nil); err != nil {
		return err
	}
	m.log.Info().Str("email", data.Email).Msg("registration submitted")
	return nil
}

func (m *Manager) checkAge(birthDate string) error {
	born, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return fmt.Errorf("session: invalid birth date %q: %w", birthDate, err)
	}

	now := time.Now()
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}

	min, max := m.cfg.Registration.MinAge, m.cfg.Registration.MaxAge
	if age < min || age > max {
		return fmt.Errorf("session: participants must be between %d and %d years old", min, max)
	}
	return nil
}

// Logout invalidates the session server-side on a best-effort basis and
// always clears local state. It cannot fail from the caller's perspective.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.client.Post(ctx, "/auth/logout", nil, nil); err != nil {
		m.log.Warn().Err(err).Msg("server-side logout failed, clearing locally")
	}
	m.store.Clear()
	m.user = nil
}

// RefreshToken is the explicit refresh path, distinct from the transparent
// one inside the HTTP client. A failed exchange tears the whole session down
// and the error is surfaced.
func (m *Manager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	refresh := m.store.RefreshToken()
	if refresh == "" {
		return ErrNoRefreshToken
	}

	var resp models.RefreshResponse
	err := m.client.Post(ctx, "/auth/refresh", map[string]string{"refreshToken": refresh}, &resp)
	if err != nil {
		m.store.Clear()
		m.user = nil
		return err
	}

	// Rotation is optional per response; SetPair keeps the old refresh token
	// when the backend did not issue a new one.
	m.store.SetPair(resp.Token, resp.RefreshToken)
	return nil
}

// UpdateProfile sends a partial update and replaces the local user wholesale
// with the server's representation. No local merging, so client and server
// state cannot drift.
func (m *Manager) UpdateProfile(ctx context.Context, update models.UserUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var user models.User
	if err := m.client.Put(ctx, "/user", update, &user); err != nil {
		return err
	}
	m.user = &user
	return nil
}

// RefreshUser re-fetches the user record, pulling fresh server-computed
// aggregates after survey submissions.
func (m *Manager) RefreshUser(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var user models.User
	if err := m.client.Get(ctx, "/user", &user); err != nil {
		return err
	}
	m.user = &user
	return nil
}
