// internal/session/manager.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"lazzat-client/internal/api"
	"lazzat-client/internal/pkg/token"
	"lazzat-client/internal/storage"

	"go.uber.org/zap"
)

// Storage keys owned by this manager. The cart manager uses the cart:*
// namespace; the two never overlap.
const (
	keyToken    = "session:token"
	keyRefresh  = "session:refresh"
	keyIdentity = "session:identity"
)

// AuthAPI is the slice of the backend auth surface the manager consumes.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*api.TokenPair, error)
	Register(ctx context.Context, username, password, phone string) error
	GetCurrentUser(ctx context.Context) (*api.CurrentUser, error)
}

// Manager owns the authenticated identity: login, registration, logout,
// restoration on startup and privilege resolution. It is constructed once
// and handed to consumers by reference; there is no package-level instance.
type Manager struct {
	auth   AuthAPI
	reader *token.Reader
	store  storage.Store
	logger *zap.Logger

	mu       sync.RWMutex
	identity *Identity
	token    string
	loading  bool

	// gen invalidates in-flight privilege lookups: logout and login bump
	// it, and a lookup result is discarded when the generation it started
	// under is no longer current.
	gen uint64
}

func NewManager(auth AuthAPI, reader *token.Reader, store storage.Store, logger *zap.Logger) *Manager {
	return &Manager{
		auth:    auth,
		reader:  reader,
		store:   store,
		logger:  logger,
		loading: true,
	}
}

// ========== Restoration ==========

// Restore rebuilds the session from the durable store. Runs once at
// startup; the loading flag clears on every exit path. A malformed or
// expired token collapses to "no session" silently - it is
// indistinguishable from never having logged in.
func (m *Manager) Restore(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	tokenStr, haveToken := m.store.Get(keyToken)
	identityJSON, haveIdentity := m.store.Get(keyIdentity)
	if !haveToken || !haveIdentity {
		return
	}

	claims, err := m.reader.Decode(tokenStr)
	if err != nil {
		m.logger.Debug("stored token malformed, clearing session", zap.Error(err))
		m.purge()
		return
	}
	if claims.ExpiredAt(time.Now()) {
		m.purge()
		return
	}

	var ident Identity
	if err := json.Unmarshal([]byte(identityJSON), &ident); err != nil {
		m.purge()
		return
	}

	m.mu.Lock()
	m.identity = &ident
	m.token = tokenStr
	m.mu.Unlock()

	// Refresh the privilege flag. Failure is non-fatal: the restored
	// identity keeps its persisted value.
	if state := m.resolveAdmin(ctx, claims); state != adminUnresolved {
		m.mu.Lock()
		if m.identity != nil {
			m.identity.IsAdmin = state == adminTrue
			m.persistIdentityLocked()
		}
		m.mu.Unlock()
	}
}

// ========== Login / Register / Logout ==========

// Login authenticates against the backend and establishes the session.
func (m *Manager) Login(ctx context.Context, username, password string) Result {
	pair, err := m.auth.Login(ctx, username, password)
	if err != nil {
		return failure(detailOrFallback(err, "Login failed"))
	}

	claims, err := m.reader.Decode(pair.Access)
	if err != nil {
		m.logger.Error("backend issued an undecodable access token", zap.Error(err))
		return failure("Login failed")
	}

	ident := Identity{
		Username: claims.Username,
		UserID:   claims.UserID,
	}
	if ident.Username == "" {
		ident.Username = username
	}

	m.mu.Lock()
	m.gen++
	m.token = pair.Access
	// A re-login for the same user inherits the previously-known privilege
	// until resolution says otherwise.
	if m.identity != nil && m.identity.UserID == ident.UserID {
		ident.IsAdmin = m.identity.IsAdmin
	}
	m.mu.Unlock()

	switch m.resolveAdmin(ctx, claims) {
	case adminTrue:
		ident.IsAdmin = true
	case adminFalse:
		ident.IsAdmin = false
	}

	m.store.Set(keyToken, pair.Access)
	m.store.Set(keyRefresh, pair.Refresh)

	m.mu.Lock()
	m.identity = &ident
	m.persistIdentityLocked()
	m.mu.Unlock()

	m.logger.Info("logged in",
		zap.String("username", ident.Username),
		zap.Bool("is_admin", ident.IsAdmin))
	return success()
}

// Register creates an account and, on success, logs in with the same
// credentials. A registration failure is returned verbatim and login is
// not attempted.
func (m *Manager) Register(ctx context.Context, username, password, phone string) Result {
	if err := m.auth.Register(ctx, username, password, phone); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			return fieldFailure(apiErr.Error(), apiErr.Fields)
		}
		return failure("Registration failed")
	}
	return m.Login(ctx, username, password)
}

// Logout clears the session synchronously. No network call is made; the
// generation bump orphans any privilege lookup still in flight.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.gen++
	m.identity = nil
	m.token = ""
	m.mu.Unlock()

	m.purge()
	m.logger.Info("logged out")
}

// Invalidate drops the session after the backend rejects its token with a
// 401. Same cleanup as Logout, triggered by the API client rather than a
// user action; idempotent when no session is active.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	had := m.identity != nil || m.token != ""
	m.gen++
	m.identity = nil
	m.token = ""
	m.mu.Unlock()

	m.purge()
	if had {
		m.logger.Info("session invalidated by backend")
	}
}

// ========== Reads ==========

// Identity returns a copy of the active identity, or nil when absent.
func (m *Manager) Identity() *Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.identity == nil {
		return nil
	}
	ident := *m.identity
	return &ident
}

// IsAdmin reports the resolved privilege; false with no session.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity != nil && m.identity.IsAdmin
}

// Loading is true only during the initial restoration pass.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Token returns the active bearer token, empty when no session. Wired into
// the API client as its token source.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// RefreshToken returns the stored refresh token. It is persisted for future
// renewal support but not consumed by this manager.
func (m *Manager) RefreshToken() string {
	v, _ := m.store.Get(keyRefresh)
	return v
}

// ========== Privilege resolution ==========

// resolveAdmin implements the two-tier algorithm: a token that carries an
// is_staff/is_superuser claim (even false) is authoritative and costs no
// network call; otherwise the current-user endpoint decides. A failed or
// superseded lookup resolves to adminUnresolved.
func (m *Manager) resolveAdmin(ctx context.Context, claims *token.Claims) adminState {
	if claims.HasPrivilegeFlags() {
		if claims.IsAdmin() {
			return adminTrue
		}
		return adminFalse
	}

	m.mu.RLock()
	gen := m.gen
	m.mu.RUnlock()

	user, err := m.auth.GetCurrentUser(ctx)
	if err != nil {
		// The endpoint may not exist on this deployment. Keep whatever
		// privilege was known before.
		m.logger.Debug("current-user lookup failed, keeping previous privilege", zap.Error(err))
		return adminUnresolved
	}

	m.mu.RLock()
	stale := m.gen != gen
	m.mu.RUnlock()
	if stale {
		m.logger.Debug("discarding privilege result from a superseded session")
		return adminUnresolved
	}

	if user.IsStaff || user.IsSuperuser {
		return adminTrue
	}
	return adminFalse
}

// ========== Helpers ==========

// purge removes the three session keys from the durable store.
func (m *Manager) purge() {
	m.store.Remove(keyToken)
	m.store.Remove(keyRefresh)
	m.store.Remove(keyIdentity)
}

// persistIdentityLocked writes the identity snapshot. Caller holds mu.
func (m *Manager) persistIdentityLocked() {
	data, err := json.Marshal(m.identity)
	if err != nil {
		m.logger.Error("failed to marshal identity", zap.Error(err))
		return
	}
	m.store.Set(keyIdentity, string(data))
}

func detailOrFallback(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
