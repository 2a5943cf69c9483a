package services

import (
	"context"
	"errors"

	"fullwoodjoz/visitus/internal/common"
	"fullwoodjoz/visitus/internal/db/repositories"
	"fullwoodjoz/visitus/internal/security"
)

// ErrBadCredentials is returned for unknown users and wrong passwords alike.
var ErrBadCredentials = errors.New("unknown user or incorrect password")

// LoginResult is what a successful login yields: a session id for the
// cookie and a bearer token for API clients.
type LoginResult struct {
	SessionID string
	Token     string
	UserID    string
	Username  string
	TenantID  string
	Role      string
}

// AuthService verifies credentials against the account store and issues
// sessions and tokens.
type AuthService struct {
	accounts *repositories.AccountRepository
	sessions *common.SessionService
	issue    func(userID, username, tenantID, role string) (string, error)
}

func NewAuthService(accounts *repositories.AccountRepository, sessions *common.SessionService, issue func(userID, username, tenantID, role string) (string, error)) *AuthService {
	return &AuthService{accounts: accounts, sessions: sessions, issue: issue}
}

// Login authenticates a username/password pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !security.VerifyPassword(password, account.PasswordHash) {
		return nil, ErrBadCredentials
	}

	sessionID, err := s.sessions.CreateSession(account.ID, account.Username, account.TenantID, account.Role.String())
	if err != nil {
		return nil, err
	}

	token, err := s.issue(account.ID, account.Username, account.TenantID, account.Role.String())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		SessionID: sessionID,
		Token:     token,
		UserID:    account.ID,
		Username:  account.Username,
		TenantID:  account.TenantID,
		Role:      account.Role.String(),
	}, nil
}

// Logout invalidates a session id. Unknown ids are a no-op.
func (s *AuthService) Logout(sessionID string) {
	s.sessions.DeleteSession(sessionID)
}
