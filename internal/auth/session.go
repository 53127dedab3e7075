package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"hrdashboard/internal/logger"
)

const (
	// CookieName is the signed session cookie.
	CookieName = "hr_session"
	// LoginPath is where rejected requests are sent.
	LoginPath = "/"

	claimsContextKey  = "session_claims"
	sessionContextKey = "session"
)

// Manager creates, resolves and destroys staff sessions. With a nil store
// the signed cookie alone carries the session.
type Manager struct {
	tokens *TokenService
	store  SessionStore
	ttl    time.Duration
	secure bool
}

// NewManager creates a session manager.
func NewManager(tokens *TokenService, store SessionStore, ttl time.Duration, secureCookie bool) *Manager {
	return &Manager{
		tokens: tokens,
		store:  store,
		ttl:    ttl,
		secure: secureCookie,
	}
}

// Start establishes a logged in session for email and writes the cookie.
func (m *Manager) Start(c echo.Context, email string) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Email:     email,
		LoggedIn:  true,
		CreatedAt: time.Now().UTC(),
	}

	if m.store != nil {
		if err := m.store.Save(c.Request().Context(), sess, m.ttl); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
	}

	token, err := m.tokens.Issue(sess.ID, sess.Email, m.ttl)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}

// End destroys the current session, if any, and expires the cookie.
func (m *Manager) End(c echo.Context) {
	ctx := c.Request().Context()
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" && m.store != nil {
		if claims, err := m.tokens.Validate(cookie.Value); err == nil {
			if err := m.store.Delete(ctx, claims.SessionID); err != nil {
				logger.FromContext(ctx).Warn("delete session", "error", err)
			}
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware returns the session gate: the cookie signature is checked by
// echo-jwt, then the session must still be active.
func (m *Manager) Middleware() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		echojwt.WithConfig(echojwt.Config{
			TokenLookup: "cookie:" + CookieName,
			ContextKey:  claimsContextKey,
			ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
				return m.tokens.Validate(auth)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return redirectToLogin(c)
			},
		}),
		m.requireActive,
	}
}

func (m *Manager) requireActive(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(claimsContextKey).(*Claims)
		if !ok {
			return redirectToLogin(c)
		}

		req := c.Request()
		sess, err := m.resolve(req.Context(), claims)
		if err != nil {
			logger.FromContext(req.Context()).Warn("resolve session", "error", err)
			return redirectToLogin(c)
		}
		if sess == nil || !sess.LoggedIn {
			return redirectToLogin(c)
		}

		c.Set(sessionContextKey, sess)
		c.SetRequest(req.WithContext(logger.WithEmail(req.Context(), sess.Email)))
		return next(c)
	}
}

func (m *Manager) resolve(ctx context.Context, claims *Claims) (*Session, error) {
	if m.store == nil {
		sess := &Session{ID: claims.SessionID, Email: claims.Email, LoggedIn: true}
		if claims.IssuedAt != nil {
			sess.CreatedAt = claims.IssuedAt.Time
		}
		return sess, nil
	}

	sess, err := m.store.Load(ctx, claims.SessionID)
	if err != nil || sess == nil {
		return nil, err
	}
	if sess.Email != claims.Email {
		return nil, nil
	}
	return sess, nil
}

// Current returns the session resolved by the gate for this request.
func Current(c echo.Context) (*Session, bool) {
	sess, ok := c.Get(sessionContextKey).(*Session)
	return sess, ok && sess != nil
}

func redirectToLogin(c echo.Context) error {
	return c.Redirect(http.StatusFound, LoginPath)
}
