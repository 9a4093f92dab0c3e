package api

import (
	"net/http"
	"time"

	reqdto "offer-landing/internal/handler/dto/request"
	resdto "offer-landing/internal/handler/dto/response"
	"offer-landing/internal/handler/httperr"
	"offer-landing/internal/handler/sse"
	"offer-landing/internal/pkg/config"
	"offer-landing/internal/usecase/landing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ViewHandler exposes mounted landing views over JSON. The checkout endpoints
// are a simulation: no payment is taken and no e-mail is sent.
type ViewHandler struct {
	landingUseCase landing.UseCase
	keepAlive      time.Duration
}

func NewViewHandler(landingUseCase landing.UseCase, cfg config.Config) *ViewHandler {
	return &ViewHandler{
		landingUseCase: landingUseCase,
		keepAlive:      cfg.Landing.StreamKeepAlive,
	}
}

// @Summary Mount view
// @Description Mount a new landing view with its own countdown, stock counter and checkout
// @Tags views
// @Produce json
// @Success 201 {object} resdto.ViewResponse
// @Failure 503 {object} httperr.Response
// @Router /api/views [post]
func (h *ViewHandler) Mount(c *gin.Context) {
	snap, err := h.landingUseCase.Mount(c.Request.Context())
	if err != nil {
		httperr.AbortWithLandingError(c, err)
		return
	}
	c.Header("Location", "/api/views/"+snap.ViewID.String())
	c.JSON(http.StatusCreated, resdto.FromView(snap))
}

// @Summary Get view
// @Description Current snapshot of a mounted view
// @Tags views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} resdto.ViewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/views/{id} [get]
func (h *ViewHandler) Get(c *gin.Context) {
	id, ok := parseViewID(c)
	if !ok {
		return
	}
	snap, err := h.landingUseCase.Snapshot(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithLandingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromView(snap))
}

// @Summary Unmount view
// @Description Tear down a view, stopping its timers and event streams
// @Tags views
// @Param id path string true "View ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/views/{id} [delete]
func (h *ViewHandler) Unmount(c *gin.Context) {
	id, ok := parseViewID(c)
	if !ok {
		return
	}
	if err := h.landingUseCase.Unmount(c.Request.Context(), id); err != nil {
		httperr.AbortWithLandingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Open checkout
// @Description Show the simulated checkout form
// @Tags checkout
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} resdto.ViewResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/views/{id}/checkout [post]
func (h *ViewHandler) OpenCheckout(c *gin.Context) {
	id, ok := parseViewID(c)
	if !ok {
		return
	}
	snap, err := h.landingUseCase.OpenCheckout(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithLandingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromView(snap))
}

// @Summary Submit checkout
// @Description Submit the e-mail of the simulated checkout. The sold counter moves after a fixed delay; nothing is charged.
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param request body reqdto.SubmitCheckoutRequest true "Checkout request"
// @Success 202 {object} resdto.ViewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/views/{id}/checkout/submit [post]
func (h *ViewHandler) SubmitCheckout(c *gin.Context) {
	id, ok := parseViewID(c)
	if !ok {
		return
	}
	var req reqdto.SubmitCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	snap, err := h.landingUseCase.SubmitCheckout(c.Request.Context(), id, req.Email)
	if err != nil {
		httperr.AbortWithLandingError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromView(snap))
}

// @Summary Cancel checkout
// @Description Close the checkout form without a purchase. Rejected while a submission is pending.
// @Tags checkout
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} resdto.ViewResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/views/{id}/checkout [delete]
func (h *ViewHandler) CancelCheckout(c *gin.Context) {
	id, ok := parseViewID(c)
	if !ok {
		return
	}
	snap, err := h.landingUseCase.CancelCheckout(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithLandingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromView(snap))
}

// @Summary Stream view
// @Description Server-Sent Events: one snapshot event per countdown tick or state change
// @Tags views
// @Produce text/event-stream
// @Param id path string true "View ID"
// @Success 200 {object} resdto.SnapshotResponse
// @Failure 404 {object} httperr.Response
// @Router /api/views/{id}/events [get]
func (h *ViewHandler) Events(c *gin.Context) {
	id, ok := parseViewID(c)
	if !ok {
		return
	}
	ch, cancel, err := h.landingUseCase.Subscribe(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithLandingError(c, err)
		return
	}
	defer cancel()

	sse.Stream(c, ch, h.keepAlive)
}

func parseViewID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid view id", nil)
		return uuid.Nil, false
	}
	return id, true
}
