package middleware

import (
	"net/http"
	"strings"

	"fullwoodjoz/visitus/internal/auth"
	"fullwoodjoz/visitus/internal/common"
	"fullwoodjoz/visitus/internal/constants"
	"fullwoodjoz/visitus/internal/db/repositories"
)

// SessionCookieName carries the dashboard session id.
const SessionCookieName = "visitus_session"

// AuthMiddleware resolves the caller to UserClaims from, in order: a session
// cookie, a bearer token, or an X-API-Key header. keysRepo may be nil when
// the deployment has no key store; key auth is then rejected.
func AuthMiddleware(sessionSvc *common.SessionService, jwtSecret []byte, keysRepo *repositories.KeysRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			var claims auth.UserClaims

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			switch {
			case hasSessionCookie(r):
				cookie, _ := r.Cookie(SessionCookieName)
				session, err := sessionSvc.GetSession(cookie.Value)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid session", http.StatusUnauthorized)
					return
				}
				claims = &auth.TokenClaims{
					UserUUID:    session.UserID,
					UserName:    session.Username,
					TenantUUID:  session.TenantID,
					RoleValue:   constants.Role(session.Role),
					SourceValue: "SESSION",
				}

			case strings.HasPrefix(authHeader, "Bearer "):
				raw := strings.TrimPrefix(authHeader, "Bearer ")
				parsed, err := auth.ParseToken(jwtSecret, raw)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
					return
				}
				claims = parsed

			case apiKey != "":
				if keysRepo == nil {
					http.Error(w, "Unauthorized. API keys not enabled", http.StatusUnauthorized)
					return
				}
				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
					return
				}
				if !keyRes.Status {
					http.Error(w, "Unauthorized. Inactive API Key", http.StatusUnauthorized)
					return
				}
				claims = &auth.APIKeyClaims{KeyID: keyRes.ID, TenantUUID: keyRes.TenantID}

			default:
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAdminMiddleware gates the admin surface (downloads, exports, merges).
func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())
			if claims == nil || !claims.IsAdmin() {
				http.Error(w, "Forbidden. Admin role required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hasSessionCookie(r *http.Request) bool {
	c, err := r.Cookie(SessionCookieName)
	return err == nil && c.Value != ""
}
