package middleware

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionHeader carries the session id for API clients
	SessionHeader = "X-Session-ID"
	// SessionCookie carries the session id for browsers
	SessionCookie = "voicenotes_session"
	// SessionContextKey is the echo context key holding the session id
	SessionContextKey = "session_id"

	sessionMaxAge = 7 * 24 * 60 * 60
)

var validSessionID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// EchoSession resolves the caller's session and sets "session_id" into the
// echo context. The header wins over the cookie. When neither holds a valid
// id a new one is issued and returned as a cookie.
func EchoSession(secureCookie bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := c.Request().Header.Get(SessionHeader)
			if !validSessionID.MatchString(sessionID) {
				sessionID = ""
				if cookie, err := c.Cookie(SessionCookie); err == nil && validSessionID.MatchString(cookie.Value) {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = uuid.New().String()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   sessionMaxAge,
					HttpOnly: true,
					Secure:   secureCookie,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Response().Header().Set(SessionHeader, sessionID)
			c.Set(SessionContextKey, sessionID)

			return next(c)
		}
	}
}

// GetSessionID retrieves the session id set by EchoSession
func GetSessionID(c echo.Context) string {
	sessionID, _ := c.Get(SessionContextKey).(string)
	return sessionID
}
