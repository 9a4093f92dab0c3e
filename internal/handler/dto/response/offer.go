package response

import (
	"time"

	"offer-landing/internal/domain/offer"

	"github.com/jinzhu/copier"
)

type HeroResponse struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	CTAPrimary   string `json:"cta_primary"`
	CTASecondary string `json:"cta_secondary"`
}

type PriceResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Note     string `json:"note,omitempty"`
	Display  string `json:"display"`
}

type StockResponse struct {
	Total       int       `json:"total"`
	InitialSold int       `json:"initial_sold"`
	EndsAt      time.Time `json:"ends_at"`
}

type FeatureResponse struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type FAQResponse struct {
	Q string `json:"q"`
	A string `json:"a"`
}

type OfferResponse struct {
	ProductName string            `json:"product_name"`
	Tagline     string            `json:"tagline"`
	Hero        HeroResponse      `json:"hero"`
	Price       PriceResponse     `json:"price"`
	Stock       StockResponse     `json:"stock"`
	Features    []FeatureResponse `json:"features"`
	FAQ         []FAQResponse     `json:"faq"`
	Perks       []string          `json:"perks"`
}

func FromOffer(o *offer.Offer) (*OfferResponse, error) {
	res := &OfferResponse{
		ProductName: o.ProductName(),
		Tagline:     o.Tagline(),
		Price: PriceResponse{
			Amount:   o.Price().Amount().String(),
			Currency: o.Price().Currency().String(),
			Note:     o.Price().Note(),
			Display:  o.Price().Display(),
		},
		Stock: StockResponse{
			Total:       o.Stock().Total(),
			InitialSold: o.Stock().InitialSold(),
			EndsAt:      o.Stock().EndsAt(),
		},
		Features: []FeatureResponse{},
		FAQ:      []FAQResponse{},
		Perks:    o.Perks(),
	}
	if res.Perks == nil {
		res.Perks = []string{}
	}

	// field names line up with the domain copy types
	if err := copier.Copy(&res.Hero, o.Hero()); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.Features, o.Features()); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.FAQ, o.FAQ()); err != nil {
		return nil, err
	}
	return res, nil
}
