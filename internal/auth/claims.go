package auth

import "fullwoodjoz/visitus/internal/constants"

// UserClaims is what the HTTP layer knows about the caller, regardless of
// whether they came in with a session cookie, a bearer token or an API key.
type UserClaims interface {
	UserID() string
	Username() string
	TenantID() string
	Role() string
	Source() string
	IsAdmin() bool
}

// TokenClaims backs both JWT and session logins.
type TokenClaims struct {
	UserUUID    string
	UserName    string
	TenantUUID  string
	RoleValue   constants.Role
	SourceValue string
}

func (c *TokenClaims) UserID() string   { return c.UserUUID }
func (c *TokenClaims) Username() string { return c.UserName }
func (c *TokenClaims) TenantID() string { return c.TenantUUID }
func (c *TokenClaims) Role() string     { return c.RoleValue.String() }
func (c *TokenClaims) Source() string   { return c.SourceValue }
func (c *TokenClaims) IsAdmin() bool    { return c.RoleValue == constants.RoleAdmin }

// APIKeyClaims represents an automation client. Key clients act tenant-wide
// with admin rights; the key id doubles as the user id.
type APIKeyClaims struct {
	KeyID      string
	TenantUUID string
}

func (c *APIKeyClaims) UserID() string   { return c.KeyID }
func (c *APIKeyClaims) Username() string { return "api-key" }
func (c *APIKeyClaims) TenantID() string { return c.TenantUUID }
func (c *APIKeyClaims) Role() string     { return constants.RoleAdmin.String() }
func (c *APIKeyClaims) Source() string   { return "API_KEY" }
func (c *APIKeyClaims) IsAdmin() bool    { return true }
