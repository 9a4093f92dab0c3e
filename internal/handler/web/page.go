// Package web serves the server-rendered landing page. Each browser is bound
// to one mounted landing view through the view cookie; the buy, submit and
// cancel buttons are plain form posts that redirect back to the page.
package web

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"offer-landing/internal/domain/checkout"
	"offer-landing/internal/domain/offer"
	reqdto "offer-landing/internal/handler/dto/request"
	"offer-landing/internal/handler/httperr"
	"offer-landing/internal/handler/sse"
	"offer-landing/internal/handler/web/templates"
	"offer-landing/internal/pkg/clock"
	"offer-landing/internal/pkg/config"
	"offer-landing/internal/pkg/cookie"
	"offer-landing/internal/pkg/errs"
	"offer-landing/internal/usecase/landing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	landingTemplate = "landing.html"
	errorTemplate   = "error.html"
)

// ParseTemplates loads the embedded page templates for engine.SetHTMLTemplate.
func ParseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templates.FS, "*.html")
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse landing templates")
	}
	return tmpl, nil
}

type PageHandler struct {
	landingUseCase landing.UseCase
	clock          clock.Clock
	cookieCfg      config.CookieConfig
	cookieMaxAge   time.Duration
	keepAlive      time.Duration
}

func NewPageHandler(landingUseCase landing.UseCase, clk clock.Clock, cfg config.Config) *PageHandler {
	return &PageHandler{
		landingUseCase: landingUseCase,
		clock:          clk,
		cookieCfg:      cfg.Cookie,
		cookieMaxAge:   cfg.Landing.ViewIdleTTL,
		keepAlive:      cfg.Landing.StreamKeepAlive,
	}
}

type offerData struct {
	ProductName  string
	Tagline      string
	Hero         offer.Hero
	PriceDisplay string
	PriceSummary string
	Currency     string
	Note         string
	Features     []offer.Feature
	FAQ          []offer.FAQ
	Perks        []string
}

type pageData struct {
	Offer      offerData
	Snapshot   landing.Snapshot
	Countdown  string
	Percentage string
	Year       int
	FormEmail  string
	Error      string
}

// Index renders the page for the browser's view, mounting a fresh one when
// the cookie is missing or its view has been reaped.
func (h *PageHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	if id, ok := cookie.GetViewID(c); ok {
		snap, err := h.landingUseCase.Snapshot(ctx, id)
		if err == nil {
			h.render(c, http.StatusOK, snap, "", "")
			return
		}
		if !errors.Is(err, errs.ErrViewNotFound) {
			h.renderError(c, err)
			return
		}
	}

	snap, err := h.landingUseCase.Mount(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}
	cookie.SetViewCookie(c, h.cookieCfg, snap.ViewID, h.cookieMaxAge)
	h.render(c, http.StatusOK, snap, "", "")
}

// OpenCheckout handles the buy buttons.
func (h *PageHandler) OpenCheckout(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}
	snap, err := h.landingUseCase.OpenCheckout(c.Request.Context(), id)
	if err != nil {
		h.handleActionError(c, snap, err, "")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// SubmitCheckout accepts the e-mail of the simulated purchase. An invalid
// address re-renders the open form with the error instead of redirecting.
func (h *PageHandler) SubmitCheckout(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}
	var req reqdto.SubmitCheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		h.handleBindError(c, id, err)
		return
	}
	snap, err := h.landingUseCase.SubmitCheckout(c.Request.Context(), id, req.Email)
	if err != nil {
		h.handleActionError(c, snap, err, req.Email)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) CancelCheckout(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}
	snap, err := h.landingUseCase.CancelCheckout(c.Request.Context(), id)
	if err != nil {
		h.handleActionError(c, snap, err, "")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Events streams the browser's view so the countdown and stock bar update
// without reloading.
func (h *PageHandler) Events(c *gin.Context) {
	id, ok := cookie.GetViewID(c)
	if !ok {
		httperr.AbortWithLandingError(c, errs.ErrViewNotFound)
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

// viewID sends the browser back to the page when it has no view yet; the
// page mounts one.
func (h *PageHandler) viewID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := cookie.GetViewID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		c.Abort()
		return uuid.Nil, false
	}
	return id, true
}

// handleBindError keeps the form open with the e-mail error; the rejected
// value is not echoed back.
func (h *PageHandler) handleBindError(c *gin.Context, id uuid.UUID, err error) {
	snap, serr := h.landingUseCase.Snapshot(c.Request.Context(), id)
	if serr != nil {
		h.handleActionError(c, snap, serr, "")
		return
	}
	_, msg := httperr.Classify(checkout.ErrInvalidEmail)
	_ = c.Error(err)
	h.render(c, http.StatusBadRequest, snap, "", msg)
	c.Abort()
}

func (h *PageHandler) handleActionError(c *gin.Context, snap landing.Snapshot, err error, formEmail string) {
	if errors.Is(err, errs.ErrViewNotFound) {
		cookie.ClearViewCookie(c, h.cookieCfg)
		c.Redirect(http.StatusSeeOther, "/")
		c.Abort()
		return
	}
	status, msg := httperr.Classify(err)
	if status == http.StatusInternalServerError || snap.ViewID == uuid.Nil {
		h.renderError(c, err)
		return
	}
	_ = c.Error(err)
	h.render(c, status, snap, formEmail, msg)
	c.Abort()
}

func (h *PageHandler) render(c *gin.Context, status int, snap landing.Snapshot, formEmail, errMsg string) {
	if formEmail == "" {
		formEmail = snap.Checkout.Email
	}
	c.HTML(status, landingTemplate, pageData{
		Offer:      newOfferData(h.landingUseCase.Offer()),
		Snapshot:   snap,
		Countdown:  snap.Countdown.String(),
		Percentage: strconv.FormatFloat(snap.Scarcity.Percentage, 'f', -1, 64),
		Year:       h.clock.Now().Year(),
		FormEmail:  formEmail,
		Error:      errMsg,
	})
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	status, msg := httperr.Classify(err)
	_ = c.Error(err)
	c.HTML(status, errorTemplate, gin.H{
		"Status":  status,
		"Message": msg,
	})
	c.Abort()
}

func newOfferData(o *offer.Offer) offerData {
	price := o.Price()
	return offerData{
		ProductName:  o.ProductName(),
		Tagline:      o.Tagline(),
		Hero:         o.Hero(),
		PriceDisplay: price.Display(),
		PriceSummary: price.Summary(),
		Currency:     price.Currency().String(),
		Note:         price.Note(),
		Features:     o.Features(),
		FAQ:          o.FAQ(),
		Perks:        o.Perks(),
	}
}
