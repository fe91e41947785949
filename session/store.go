package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rxdeskhq/pharmaclient/permission"
)

// adminRoleName is the administrative role sentinel. A user whose role name
// matches it case-insensitively bypasses every permission check, as does a
// user carrying the staff flag.
const adminRoleName = "admin"

// persistTimeout bounds adapter writes issued from mutation paths so a hung
// backend cannot wedge the UI thread behind a Login or Logout.
const persistTimeout = 5 * time.Second

// Store is the single source of truth for authentication state. All
// mutations go through its documented operations and are atomic with respect
// to concurrent readers. Operations never fail: persistence errors are
// logged and absorbed.
type Store struct {
	mu      sync.RWMutex
	user    *User
	tokens  *Tokens
	perms   permission.Set
	adapter Adapter
	logger  *zap.Logger
}

// NewStore creates a store backed by the given adapter and rehydrates state
// from the adapter's last snapshot. A missing or unreadable snapshot yields
// an empty store, never an error. A nil adapter disables persistence; a nil
// logger is replaced with zap.NewNop().
func NewStore(adapter Adapter, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		adapter: adapter,
		perms:   permission.Set{},
		logger:  logger,
	}
	s.rehydrate()
	return s
}

func (s *Store) rehydrate() {
	if s.adapter == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	data, err := s.adapter.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			s.logger.Warn("session: snapshot load failed, starting empty", zap.Error(err))
		}
		return
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		s.logger.Warn("session: snapshot decode failed, starting empty", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.user = snap.User
	s.tokens = snap.Tokens
	s.perms = permission.FromList(snap.Permissions)
	s.mu.Unlock()
}

// persistLocked writes the current state through the adapter. Callers must
// hold s.mu (read or write); failures are logged, never returned.
func (s *Store) persistLocked() {
	if s.adapter == nil {
		return
	}

	snap := &Snapshot{
		User:          s.user,
		Tokens:        s.tokens,
		Authenticated: s.tokens != nil,
		Permissions:   s.perms.List(),
	}

	data, err := EncodeSnapshot(snap)
	if err != nil {
		s.logger.Warn("session: snapshot encode failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.adapter.Save(ctx, data); err != nil {
		s.logger.Warn("session: snapshot save failed", zap.Error(err))
	}
}

// Login sets the user and token pair atomically and recomputes the
// permission set from the user's grants.
func (s *Store) Login(user User, tokens Tokens) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user
	t := tokens
	s.user = &u
	s.tokens = &t
	s.perms = permission.FromList(user.Permissions)
	s.persistLocked()
}

// Logout clears the user, tokens, and permission set, and removes the
// persisted snapshot.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.tokens = nil
	s.perms = permission.Set{}
	s.mu.Unlock()

	if s.adapter == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.adapter.Clear(ctx); err != nil {
		s.logger.Warn("session: snapshot clear failed", zap.Error(err))
	}
}

// SetUser replaces the user record and recomputes the permission set. Tokens
// are untouched. A nil user clears the record and empties the permissions.
func (s *Store) SetUser(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user == nil {
		s.user = nil
		s.perms = permission.Set{}
	} else {
		u := *user
		s.user = &u
		s.perms = permission.FromList(user.Permissions)
	}
	s.persistLocked()
}

// SetTokens replaces the token pair. A nil tokens value de-authenticates the
// store without touching the user record.
func (s *Store) SetTokens(tokens *Tokens) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tokens == nil {
		s.tokens = nil
	} else {
		t := *tokens
		s.tokens = &t
	}
	s.persistLocked()
}

// UpdateAccessToken replaces only the access half of the token pair,
// preserving the refresh token. A no-op when no tokens are held.
func (s *Store) UpdateAccessToken(access string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokens == nil {
		return
	}
	s.tokens = &Tokens{Access: access, Refresh: s.tokens.Refresh}
	s.persistLocked()
}

// Authenticated reports whether a token pair is held. It is derived state:
// it is true exactly when Tokens() would return ok.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens != nil
}

// User returns a copy of the current user record, or ok=false when none.
func (s *Store) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Tokens returns a copy of the current token pair, or ok=false when none.
func (s *Store) Tokens() (Tokens, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tokens == nil {
		return Tokens{}, false
	}
	return *s.tokens, true
}

// AccessToken returns the current access token, or ok=false when
// unauthenticated.
func (s *Store) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tokens == nil {
		return "", false
	}
	return s.tokens.Access, true
}

// RefreshToken returns the current refresh token, or ok=false when
// unauthenticated.
func (s *Store) RefreshToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tokens == nil {
		return "", false
	}
	return s.tokens.Refresh, true
}

// Permissions returns the current permission codes in sorted order.
func (s *Store) Permissions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.perms.List()
}

// bypassLocked reports whether the current user short-circuits permission
// checks. Evaluated before set membership so administrators pass even with
// an empty permission set.
func (s *Store) bypassLocked() bool {
	if s.user == nil {
		return false
	}
	return s.user.IsStaff || strings.EqualFold(s.user.RoleName, adminRoleName)
}

// HasPermission reports whether the current user holds code. Administrators
// and staff users always pass.
func (s *Store) HasPermission(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bypassLocked() {
		return true
	}
	return s.perms.Has(code)
}

// HasAnyPermission reports whether the current user holds at least one of
// codes. Administrators and staff users always pass.
func (s *Store) HasAnyPermission(codes []string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bypassLocked() {
		return true
	}
	return s.perms.HasAny(codes)
}

// HasAllPermissions reports whether the current user holds every one of
// codes. Administrators and staff users always pass.
func (s *Store) HasAllPermissions(codes []string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bypassLocked() {
		return true
	}
	return s.perms.HasAll(codes)
}
