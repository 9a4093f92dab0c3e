//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"offer-landing/internal/domain/checkout"
	"offer-landing/internal/domain/countdown"
	"offer-landing/internal/domain/scarcity"
	"offer-landing/internal/handler/api"
	"offer-landing/internal/handler/sse"
	resdto "offer-landing/internal/handler/dto/response"
	"offer-landing/internal/pkg/config"
	"offer-landing/internal/pkg/errs"
	"offer-landing/internal/usecase/landing"
	"offer-landing/tests/common/httptest"
	"offer-landing/tests/common/testutil"
	landingmock "offer-landing/tests/mock/landing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ViewHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockLanding *landingmock.MockUseCase
	handler     *api.ViewHandler
}

func (s *ViewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLanding = landingmock.NewMockUseCase(s.mockCtrl)
	s.handler = api.NewViewHandler(s.mockLanding, config.NewTestConfig())

	s.router.POST("/api/views", s.handler.Mount)
	s.router.GET("/api/views/:id", s.handler.Get)
	s.router.DELETE("/api/views/:id", s.handler.Unmount)
	s.router.POST("/api/views/:id/checkout", s.handler.OpenCheckout)
	s.router.POST("/api/views/:id/checkout/submit", s.handler.SubmitCheckout)
	s.router.DELETE("/api/views/:id/checkout", s.handler.CancelCheckout)
	s.router.GET("/api/views/:id/events", s.handler.Events)
}

func (s *ViewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestViewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ViewHandlerTestSuite))
}

func sampleSnapshot(id uuid.UUID, state checkout.State) landing.Snapshot {
	return landing.Snapshot{
		ViewID:      id,
		ProductName: "FluxSoft",
		Countdown:   countdown.Breakdown{Diff: 1, Days: 1, Hours: 2, Minutes: 3, Seconds: 4},
		Scarcity: landing.ScarcityView{
			Total:      200,
			Sold:       137,
			Remaining:  63,
			Percentage: 68.5,
			Badge:      scarcity.BadgeNormal,
			BadgeLabel: "Quedan 63",
		},
		Checkout: landing.CheckoutView{
			State:     state,
			Visible:   state != checkout.StateClosed,
			Submitted: state == checkout.StateSubmitting,
			Simulated: true,
		},
	}
}

// ================================================================================
// TestMount
// ================================================================================

func (s *ViewHandlerTestSuite) TestMount() {
	id := uuid.New()

	s.Run("success: returns 201 with the initial snapshot", func() {
		s.mockLanding.EXPECT().Mount(gomock.Any()).
			Return(sampleSnapshot(id, checkout.StateClosed), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/views", nil)

		var got resdto.ViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/views/" + id.String()})

		want := resdto.ViewResponse{
			ID: id,
			Snapshot: resdto.SnapshotResponse{
				ProductName: "FluxSoft",
				Countdown:   resdto.CountdownResponse{Days: 1, Hours: 2, Minutes: 3, Seconds: 4},
				Scarcity: resdto.ScarcityResponse{
					Total: 200, Sold: 137, Remaining: 63, Percentage: 68.5,
					Badge: "normal", BadgeLabel: "Quedan 63",
				},
				Checkout: resdto.CheckoutResponse{State: "closed", Simulated: true},
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: view limit maps to 503", func() {
		s.mockLanding.EXPECT().Mount(gomock.Any()).
			Return(landing.Snapshot{}, errs.ErrTooManyViews).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/views", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Too many")
	})
}

// ================================================================================
// TestGet / TestUnmount
// ================================================================================

func (s *ViewHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockLanding.EXPECT().Snapshot(gomock.Any(), id).
			Return(sampleSnapshot(id, checkout.StateOpen), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/views/"+id.String(), nil)

		var got resdto.ViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("open", got.Snapshot.Checkout.State)
		s.True(got.Snapshot.Checkout.Visible)
	})

	s.Run("error: unknown view is 404", func() {
		s.mockLanding.EXPECT().Snapshot(gomock.Any(), id).
			Return(landing.Snapshot{}, errs.ErrViewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/views/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: malformed id is 400 without reaching the usecase", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/views/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid view id")
	})
}

func (s *ViewHandlerTestSuite) TestUnmount() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockLanding.EXPECT().Unmount(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/views/"+id.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: already unmounted", func() {
		s.mockLanding.EXPECT().Unmount(gomock.Any(), id).Return(errs.ErrViewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/views/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *ViewHandlerTestSuite) TestOpenCheckout() {
	id := uuid.New()
	url := "/api/views/" + id.String() + "/checkout"

	s.Run("success", func() {
		s.mockLanding.EXPECT().OpenCheckout(gomock.Any(), id).
			Return(sampleSnapshot(id, checkout.StateOpen), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var got resdto.ViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("open", got.Snapshot.Checkout.State)
	})

	s.Run("error: submission in flight is 409", func() {
		s.mockLanding.EXPECT().OpenCheckout(gomock.Any(), id).
			Return(landing.Snapshot{}, checkout.ErrCheckoutInFlight).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already being processed")
	})
}

func (s *ViewHandlerTestSuite) TestSubmitCheckout() {
	id := uuid.New()
	url := "/api/views/" + id.String() + "/checkout/submit"
	reqBody := map[string]any{"email": "user@example.com"}

	s.Run("success: 202 while the simulated purchase is pending", func() {
		s.mockLanding.EXPECT().SubmitCheckout(gomock.Any(), id, "user@example.com").
			Return(sampleSnapshot(id, checkout.StateSubmitting), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var got resdto.ViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &got)
		s.True(got.Snapshot.Checkout.Submitted)
		s.True(got.Snapshot.Checkout.Simulated)
	})

	cases := []struct {
		name         string
		mutate       func(m map[string]any)
		err          error
		expectCode   int
		expectInBody string
	}{
		{name: "invalid email is 422", mutate: testutil.Field("email", "nope"), err: checkout.ErrInvalidEmail, expectCode: http.StatusUnprocessableEntity, expectInBody: "email"},
		{name: "missing email reaches the domain check", mutate: testutil.Field("email", nil), err: checkout.ErrInvalidEmail, expectCode: http.StatusUnprocessableEntity},
		{name: "form not open is 409", mutate: nil, err: checkout.ErrCheckoutClosed, expectCode: http.StatusConflict, expectInBody: "not open"},
		{name: "unknown view is 404", mutate: nil, err: errs.ErrViewNotFound, expectCode: http.StatusNotFound},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody)
			if tc.mutate != nil {
				tc.mutate(body)
			}
			s.mockLanding.EXPECT().SubmitCheckout(gomock.Any(), id, gomock.Any()).
				Return(landing.Snapshot{}, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}

	s.Run("error: overlong email fails binding", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", strings.Repeat("a", 320)+"@x.io"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ViewHandlerTestSuite) TestCancelCheckout() {
	id := uuid.New()
	url := "/api/views/" + id.String() + "/checkout"

	s.Run("success", func() {
		s.mockLanding.EXPECT().CancelCheckout(gomock.Any(), id).
			Return(sampleSnapshot(id, checkout.StateClosed), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		var got resdto.ViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.False(got.Snapshot.Checkout.Visible)
	})

	s.Run("error: mid-delay cancel is 409", func() {
		s.mockLanding.EXPECT().CancelCheckout(gomock.Any(), id).
			Return(landing.Snapshot{}, checkout.ErrCheckoutInFlight).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestEvents
// ================================================================================

func (s *ViewHandlerTestSuite) TestEvents() {
	id := uuid.New()
	url := "/api/views/" + id.String() + "/events"

	s.Run("success: streams until the view closes the channel", func() {
		ch := make(chan landing.Snapshot, 1)
		ch <- sampleSnapshot(id, checkout.StateClosed)
		close(ch)
		cancelled := false

		s.mockLanding.EXPECT().Subscribe(gomock.Any(), id).
			Return((<-chan landing.Snapshot)(ch), func() { cancelled = true }, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": sse.ContentType})
		s.Contains(rec.Body.String(), "event:snapshot")
		s.Contains(rec.Body.String(), `"badge_label":"Quedan 63"`)
		s.Contains(rec.Body.String(), "event:close")
		s.True(cancelled, "subscription must be released")
	})

	s.Run("error: unknown view is 404", func() {
		s.mockLanding.EXPECT().Subscribe(gomock.Any(), id).
			Return(nil, nil, errs.ErrViewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
