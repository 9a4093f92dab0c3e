package cookie

import (
	"net/http"
	"time"

	"offer-landing/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ViewCookieName = "landing_view"

// SetViewCookie binds the browser to its mounted landing view. maxAge tracks
// the idle TTL so the cookie does not outlive the view by much.
func SetViewCookie(c *gin.Context, cfg config.CookieConfig, id uuid.UUID, maxAge time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		ViewCookieName,
		id.String(),
		int(maxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearViewCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		ViewCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

// GetViewID reports false when the cookie is missing or not a UUID.
func GetViewID(c *gin.Context) (uuid.UUID, bool) {
	raw, err := c.Cookie(ViewCookieName)
	if err != nil || raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
