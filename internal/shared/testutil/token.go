package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/dormlife/community-api/internal/shared/token"
)

// MockTokenManager is a mock implementation of token.Manager for testing
type MockTokenManager struct {
	GenerateAccessTokenFunc  func(memberID, email string) (string, error)
	GenerateRefreshTokenFunc func(memberID, email, tokenID string) (string, error)
	ValidateTokenFunc        func(tokenString string) (*token.Claims, error)
}

func (m *MockTokenManager) GenerateAccessToken(memberID, email string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(memberID, email)
	}
	return "mock-access-token", nil
}

func (m *MockTokenManager) GenerateRefreshToken(memberID, email, tokenID string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(memberID, email, tokenID)
	}
	return "mock-refresh-token", nil
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*token.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString)
	}
	return nil, nil
}

// Ensure MockTokenManager implements token.Manager
var _ token.Manager = (*MockTokenManager)(nil)

// NewMockTokenManager creates a new mock token manager with default behavior
func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{}
}

// MockRefreshStore keeps refresh tokens in memory.
// Set RevokeAllFunc to inject failures.
type MockRefreshStore struct {
	RevokeAllFunc func(ctx context.Context, memberID string) error

	mu     sync.Mutex
	tokens map[string]map[string]struct{}
}

func NewMockRefreshStore() *MockRefreshStore {
	return &MockRefreshStore{tokens: make(map[string]map[string]struct{})}
}

func (m *MockRefreshStore) Save(_ context.Context, memberID, tokenID string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tokens[memberID] == nil {
		m.tokens[memberID] = make(map[string]struct{})
	}
	m.tokens[memberID][tokenID] = struct{}{}
	return nil
}

// Revoke deletes under the lock and reports whether the token was live,
// matching the single-winner semantics of the Redis store.
func (m *MockRefreshStore) Revoke(_ context.Context, memberID, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.tokens[memberID][tokenID]
	delete(m.tokens[memberID], tokenID)
	return ok, nil
}

func (m *MockRefreshStore) RevokeAll(ctx context.Context, memberID string) error {
	if m.RevokeAllFunc != nil {
		return m.RevokeAllFunc(ctx, memberID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tokens, memberID)
	return nil
}

// Count returns the number of live refresh tokens of memberID.
func (m *MockRefreshStore) Count(memberID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.tokens[memberID])
}

var _ token.RefreshStore = (*MockRefreshStore)(nil)
