package session

import (
	"sync"

	"github.com/oyenscilik/cms-admin/src/models"
)

// Store holds the authenticated admin's identity and bearer token. There is
// exactly one session per process; it is created on successful login and
// destroyed on logout or any 401 from the API.
type Store interface {
	// Current returns the stored admin and token. ok is false when no
	// session is active.
	Current() (user models.AdminUser, token string, ok bool)

	// SetAuth stores the admin and token. The state must be durable before
	// the call returns.
	SetAuth(user models.AdminUser, token string) error

	// Logout clears the session. Durable before return, so a restart
	// immediately after logout does not resurrect the session.
	Logout() error

	// IsAuthenticated reports whether a session is active.
	IsAuthenticated() bool
}

// state is the persisted session blob.
type state struct {
	User            models.AdminUser `json:"user"`
	Token           string           `json:"token"`
	IsAuthenticated bool             `json:"isAuthenticated"`
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu sync.RWMutex
	st state
}

// NewMemStore creates an empty in-memory session store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Current() (models.AdminUser, string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.User, m.st.Token, m.st.IsAuthenticated
}

func (m *MemStore) SetAuth(user models.AdminUser, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st = state{User: user, Token: token, IsAuthenticated: true}
	return nil
}

func (m *MemStore) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st = state{}
	return nil
}

func (m *MemStore) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.IsAuthenticated
}

var _ Store = (*MemStore)(nil)
