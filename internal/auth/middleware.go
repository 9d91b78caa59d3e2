package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"ukdtimers/internal/model"
)

const (
	// CookieName is the session cookie set on login.
	CookieName = "ukd_session"

	claimsContextKey  = "session_claims"
	sessionContextKey = "session"
)

var errSessionRevoked = errors.New("session revoked")

// SessionManager issues, reads and revokes cookie sessions.
type SessionManager struct {
	jwt    *JWTService
	tokens TokenStoreInterface
}

// NewSessionManager creates a session manager.
func NewSessionManager(jwtService *JWTService, tokens TokenStoreInterface) *SessionManager {
	return &SessionManager{jwt: jwtService, tokens: tokens}
}

// Middleware resolves the session cookie into a model.Session. Requests
// without a valid cookie continue anonymously.
func (m *SessionManager) Middleware() echo.MiddlewareFunc {
	parse := echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsContextKey,
		TokenLookup: "cookie:" + CookieName,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := m.jwt.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			revoked, _ := m.tokens.IsSessionRevoked(c.Request().Context(), claims.ID)
			if revoked {
				return nil, errSessionRevoked
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if cookie, cerr := c.Cookie(CookieName); cerr == nil && cookie.Value != "" {
				log.Printf("auth: ignoring session cookie: %v", err)
			}
			return nil
		},
		ContinueOnIgnoredError: true,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		load := func(c echo.Context) error {
			if claims, ok := c.Get(claimsContextKey).(*Claims); ok {
				SetSession(c, claims.Session())
			}
			return next(c)
		}
		return parse(load)
	}
}

// SetSession attaches s to the request context.
func SetSession(c echo.Context, s model.Session) {
	c.Set(sessionContextKey, s)
}

// SessionFrom returns the request's session, anonymous when none was loaded.
func SessionFrom(c echo.Context) model.Session {
	if s, ok := c.Get(sessionContextKey).(model.Session); ok {
		return s
	}
	return model.Session{}
}

// Issue signs a token for session and sets it as the session cookie.
func (m *SessionManager) Issue(c echo.Context, session model.Session) error {
	token, err := m.jwt.GenerateSessionToken(session)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(m.jwt.TTL()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Revoke blacklists the current session token, if any, and clears the cookie.
func (m *SessionManager) Revoke(c echo.Context) error {
	defer c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	claims, err := m.jwt.ValidateToken(cookie.Value)
	if err != nil {
		return nil
	}
	return m.tokens.RevokeSession(c.Request().Context(), claims.ID, remaining(claims))
}
