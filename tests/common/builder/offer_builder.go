//go:build unit || e2e

package builder

import (
	"time"

	"offer-landing/internal/domain/offer"

	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	ProductName string
	Tagline     string
	Hero        offer.Hero
	Amount      string
	Currency    string
	Note        string
	Total       int
	InitialSold int
	EndsAt      time.Time
	Features    []offer.Feature
	FAQ         []offer.FAQ
	Perks       []string
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ProductName: "FluxSoft",
		Tagline:     "Tu nueva ventaja silenciosa",
		Hero: offer.Hero{
			Title:        "Automatiza lo aburrido.",
			Subtitle:     "Licencia anticipada con precio de lanzamiento.",
			CTAPrimary:   "Obtener licencia",
			CTASecondary: "Ver características",
		},
		Amount:      "49",
		Currency:    "USD",
		Note:        "pago único",
		Total:       200,
		InitialSold: 137,
		EndsAt:      time.Date(2026, 10, 24, 23, 59, 59, 0, time.UTC),
		Features: []offer.Feature{
			{Icon: "⚡", Title: "Rápido por diseño", Desc: "Arranca en milisegundos."},
			{Icon: "🔒", Title: "Privado", Desc: "Tus datos no salen de tu equipo."},
		},
		FAQ: []offer.FAQ{
			{Q: "¿Es un pago único?", A: "Sí."},
		},
		Perks: []string{"Soporte prioritario", "Actualizaciones por 12 meses"},
	}
}

func (o *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(o)
	return o
}

// Build methods
func (o *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	amount, err := decimal.NewFromString(o.Amount)
	if err != nil {
		return nil, err
	}
	price, err := offer.NewPrice(amount, o.Currency, o.Note)
	if err != nil {
		return nil, err
	}
	stock, err := offer.NewStock(o.Total, o.InitialSold, o.EndsAt)
	if err != nil {
		return nil, err
	}
	return offer.NewOffer(o.ProductName, o.Tagline, o.Hero, price, stock, o.Features, o.FAQ, o.Perks)
}

// MustBuildDomain panics on invalid builder state; tests that exercise
// validation should use BuildDomain.
func (o *OfferBuilder) MustBuildDomain() *offer.Offer {
	built, err := o.BuildDomain()
	if err != nil {
		panic(err)
	}
	return built
}
