//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"offer-landing/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults apply when only required values are set", func(t *testing.T) {
		t.Setenv("PORT", "8080")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 900*time.Millisecond, cfg.Landing.CheckoutDelay)
		assert.Equal(t, time.Second, cfg.Landing.CountdownTick)
		assert.Equal(t, 25, cfg.Landing.CriticalThreshold)
		assert.Equal(t, 30*time.Minute, cfg.Landing.ViewIdleTTL)
		assert.Empty(t, cfg.Landing.OfferConfigPath)
		assert.Equal(t, 15*time.Second, cfg.Landing.StreamKeepAlive)
		assert.Equal(t, "Lax", cfg.Cookie.SameSite)
	})

	t.Run("overrides are read from the environment", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("CHECKOUT_DELAY", "2s")
		t.Setenv("SCARCITY_CRITICAL_THRESHOLD", "10")
		t.Setenv("OFFER_CONFIG_PATH", "/etc/offer.yaml")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 2*time.Second, cfg.Landing.CheckoutDelay)
		assert.Equal(t, 10, cfg.Landing.CriticalThreshold)
		assert.Equal(t, "/etc/offer.yaml", cfg.Landing.OfferConfigPath)
	})

	t.Run("missing PORT fails", func(t *testing.T) {
		t.Setenv("PORT", "")
		require.NoError(t, os.Unsetenv("PORT"))

		_, err := config.LoadConfig()
		require.Error(t, err)
	})

	t.Run("non-positive tick fails validation", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("COUNTDOWN_TICK", "0s")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "COUNTDOWN_TICK")
	})

	t.Run("negative critical threshold fails validation", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("SCARCITY_CRITICAL_THRESHOLD", "-1")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SCARCITY_CRITICAL_THRESHOLD")
	})

	t.Run("negative idle ttl fails validation", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("VIEW_IDLE_TTL", "-1m")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "VIEW_IDLE_TTL")
	})

	t.Run("empty origin list fails validation", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("CORS_ALLOW_ORIGINS", "")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CORS_ALLOW_ORIGINS")
	})
}

func TestNewTestConfig(t *testing.T) {
	cfg := config.NewTestConfig()
	require.NoError(t, cfg.Landing.Validate())
	require.NoError(t, cfg.CORS.Validate())
}
