package api

import (
	"net/http"

	resdto "offer-landing/internal/handler/dto/response"
	"offer-landing/internal/handler/httperr"
	"offer-landing/internal/usecase/landing"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	landingUseCase landing.UseCase
}

func NewOfferHandler(landingUseCase landing.UseCase) *OfferHandler {
	return &OfferHandler{
		landingUseCase: landingUseCase,
	}
}

// @Summary Get offer
// @Description Static offer configuration the landing page renders
// @Tags offer
// @Produce json
// @Success 200 {object} resdto.OfferResponse
// @Router /api/offer [get]
func (h *OfferHandler) Get(c *gin.Context) {
	res, err := resdto.FromOffer(h.landingUseCase.Offer())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render offer", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
