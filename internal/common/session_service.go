package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound covers both unknown and expired session ids.
var ErrSessionNotFound = errors.New("session not found")

const sessionTTL = 7 * 24 * time.Hour

// SessionData is the server-side session issued at login.
type SessionData struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	TenantID  string    `json:"tenant_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionService stores sessions through the cache backend, so they are
// in-memory locally and shared via Redis in deployment.
type SessionService struct {
	cache CacheInterface
}

func NewSessionService(cache CacheInterface) *SessionService {
	return &SessionService{cache: cache}
}

func sessionKey(id string) string {
	return "session:" + id
}

// CreateSession issues a new session for an authenticated account.
func (s *SessionService) CreateSession(userID, username, tenantID, role string) (string, error) {
	sessionID := uuid.New().String()
	now := time.Now()

	session := SessionData{
		SessionID: sessionID,
		UserID:    userID,
		Username:  username,
		TenantID:  tenantID,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	s.cache.Set(sessionKey(sessionID), string(data), sessionTTL)
	return sessionID, nil
}

// GetSession resolves a session id.
func (s *SessionService) GetSession(sessionID string) (*SessionData, error) {
	raw, found := s.cache.Get(sessionKey(sessionID))
	if !found {
		return nil, ErrSessionNotFound
	}

	str, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("session store: unexpected value type %T", raw)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(str), &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if time.Now().After(session.ExpiresAt) {
		s.cache.Delete(sessionKey(sessionID))
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

// DeleteSession logs a session out.
func (s *SessionService) DeleteSession(sessionID string) {
	s.cache.Delete(sessionKey(sessionID))
}
