//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"offer-landing/cmd/bootstrap"
	"offer-landing/cmd/bootstrap/components"
	"offer-landing/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// CheckoutDelay is shortened so simulated purchases settle within a test.
const CheckoutDelay = 50 * time.Millisecond

// ------------------------------------------------------------
// Builds the whole app the way cmd/main.go does, minus the listener
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	router, cfg, app := buildE2EApp()
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, cfg
}

func buildE2EApp() (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(createTestConfig),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.OfferModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx app started without a router")
	}

	return router, cfg, app
}

func createTestConfig() config.Config {
	cfg := config.NewTestConfig()
	cfg.Landing.CheckoutDelay = CheckoutDelay
	cfg.Landing.MaxViews = 50
	return cfg
}

// ------------------------------------------------------------
// Common setup shared by the e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	router, cfg := setupE2EEnvironment(t)
	s.Router = router
	s.Config = cfg
	require.NotEmpty(t, s.Config, "config missing")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

// NewServer serves the router over a real listener, for event streams that
// need a flushing connection.
func (s *SharedSuite) NewServer() *httptest.Server {
	srv := httptest.NewServer(s.Router)
	s.T().Cleanup(srv.Close)
	return srv
}
