// Package session carries the authenticated caller of a request. The caller is resolved from a
// signed cookie once per request and handed to handlers explicitly through CallerFrom.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/internal/common"
	"github.com/DhavalSuthar-24/baskettime/internal/user"
	"github.com/DhavalSuthar-24/baskettime/pkg/token"
	"github.com/DhavalSuthar-24/baskettime/pkg/utils"
)

// Caller is the account a request acts for.
type Caller struct {
	UserID   uint
	Username string
}

// Options configure the session cookie.
type Options struct {
	Secret     string
	Lifetime   time.Duration
	CookieName string
	Secure     bool
	// Revoker records logged-out tokens. Nil means logout only clears the cookie.
	Revoker token.Revoker
}

// Manager issues, resolves and clears session cookies.
type Manager struct {
	db   *gorm.DB
	opts Options
}

func NewManager(db *gorm.DB, opts Options) *Manager {
	if opts.Revoker == nil {
		opts.Revoker = token.NoopRevoker{}
	}
	if opts.CookieName == "" {
		opts.CookieName = "session"
	}
	return &Manager{db: db, opts: opts}
}

// Issue signs a new token for userID and sets it as the session cookie, replacing any previous one.
func (m *Manager) Issue(c *gin.Context, userID uint) error {
	signed, _, err := token.Generate(userID, m.opts.Secret, m.opts.Lifetime)
	if err != nil {
		return err
	}
	m.setCookie(c, signed, int(m.opts.Lifetime.Seconds()))
	return nil
}

// Clear expires the session cookie and revokes the presented token. It never fails:
// revocation errors are logged.
func (m *Manager) Clear(c *gin.Context) {
	if raw, err := c.Cookie(m.opts.CookieName); err == nil && raw != "" {
		if claims, err := token.Validate(raw, m.opts.Secret); err == nil {
			if err := m.opts.Revoker.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				zap.L().Warn("failed to revoke session token", zap.Uint("user_id", claims.UserID), zap.Error(err))
			}
		}
	}
	m.setCookie(c, "", -1)
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.opts.CookieName, value, maxAge, "/", "", m.opts.Secure, true)
}

// Resolve attaches the Caller to requests that present a valid session cookie. Requests without
// one continue anonymously; Require decides whether that is acceptable.
func (m *Manager) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		if caller, ok := m.resolve(c); ok {
			c.Set(common.ContextCallerKey, caller)
		}
		c.Next()
	}
}

func (m *Manager) resolve(c *gin.Context) (Caller, bool) {
	raw, err := c.Cookie(m.opts.CookieName)
	if err != nil || raw == "" {
		return Caller{}, false
	}
	claims, err := token.Validate(raw, m.opts.Secret)
	if err != nil {
		zap.L().Debug("ignoring session cookie", zap.Error(err))
		return Caller{}, false
	}

	ctx := c.Request.Context()
	revoked, err := m.opts.Revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		zap.L().Warn("revocation lookup failed, accepting token", zap.Error(err))
	}
	if revoked {
		return Caller{}, false
	}

	u, err := m.lookupUser(ctx, claims.UserID)
	if err != nil {
		zap.L().Error("failed to load session user", zap.Uint("user_id", claims.UserID), zap.Error(err))
		return Caller{}, false
	}
	if u == nil {
		return Caller{}, false
	}
	return Caller{UserID: u.ID, Username: u.Username}, true
}

func (m *Manager) lookupUser(ctx context.Context, id uint) (*user.User, error) {
	var u user.User
	err := m.db.WithContext(ctx).Select("id", "username").Where("id = ?", id).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Require rejects anonymous requests with 401 before any handler runs.
func Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CallerFrom(c); !ok {
			utils.UnauthorizedJSON(c)
			return
		}
		c.Next()
	}
}

// CallerFrom returns the Caller resolved for this request.
func CallerFrom(c *gin.Context) (Caller, bool) {
	v, exists := c.Get(common.ContextCallerKey)
	if !exists {
		return Caller{}, false
	}
	caller, ok := v.(Caller)
	return caller, ok
}

// MustCaller is CallerFrom for handlers mounted behind Require.
func MustCaller(c *gin.Context) Caller {
	caller, ok := CallerFrom(c)
	if !ok {
		panic("session: handler reached without an authenticated caller")
	}
	return caller
}
