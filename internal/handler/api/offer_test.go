//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"offer-landing/internal/handler/api"
	resdto "offer-landing/internal/handler/dto/response"
	"offer-landing/tests/common/builder"
	"offer-landing/tests/common/httptest"
	landingmock "offer-landing/tests/mock/landing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOfferHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockLanding := landingmock.NewMockUseCase(ctrl)

	o, err := builder.NewOfferBuilder().BuildDomain()
	require.NoError(t, err)
	mockLanding.EXPECT().Offer().Return(o).Times(1)

	router := gin.New()
	router.GET("/api/offer", api.NewOfferHandler(mockLanding).Get)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/offer", nil)

	var got resdto.OfferResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)

	want := resdto.OfferResponse{
		ProductName: "FluxSoft",
		Tagline:     "Tu nueva ventaja silenciosa",
		Hero: resdto.HeroResponse{
			Title:        "Automatiza lo aburrido.",
			Subtitle:     "Licencia anticipada con precio de lanzamiento.",
			CTAPrimary:   "Obtener licencia",
			CTASecondary: "Ver características",
		},
		Price: resdto.PriceResponse{Amount: "49", Currency: "USD", Note: "pago único", Display: "$49"},
		Stock: resdto.StockResponse{
			Total:       200,
			InitialSold: 137,
			EndsAt:      time.Date(2026, 10, 24, 23, 59, 59, 0, time.UTC),
		},
		Features: []resdto.FeatureResponse{
			{Icon: "⚡", Title: "Rápido por diseño", Desc: "Arranca en milisegundos."},
			{Icon: "🔒", Title: "Privado", Desc: "Tus datos no salen de tu equipo."},
		},
		FAQ:   []resdto.FAQResponse{{Q: "¿Es un pago único?", A: "Sí."}},
		Perks: []string{"Soporte prioritario", "Actualizaciones por 12 meses"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("offer mismatch (-want +got):\n%s", diff)
	}
}
