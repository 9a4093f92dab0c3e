package offer

import (
	"errors"
	"slices"
	"strings"
)

var ErrMissingProductName = errors.New("product name is required")

// Offer is the static configuration a landing page renders. It is built once
// at startup and never mutated; slice getters return copies.
type Offer struct {
	productName string
	tagline     string
	hero        Hero
	price       Price
	stock       Stock
	features    []Feature
	faq         []FAQ
	perks       []string
}

func NewOffer(
	productName, tagline string,
	hero Hero,
	price Price,
	stock Stock,
	features []Feature,
	faq []FAQ,
	perks []string,
) (*Offer, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, ErrMissingProductName
	}

	return &Offer{
		productName: productName,
		tagline:     strings.TrimSpace(tagline),
		hero:        hero,
		price:       price,
		stock:       stock,
		features:    slices.Clone(features),
		faq:         slices.Clone(faq),
		perks:       slices.Clone(perks),
	}, nil
}

func (o *Offer) ProductName() string { return o.productName }
func (o *Offer) Tagline() string     { return o.tagline }
func (o *Offer) Hero() Hero          { return o.hero }
func (o *Offer) Price() Price        { return o.price }
func (o *Offer) Stock() Stock        { return o.stock }
func (o *Offer) Features() []Feature { return slices.Clone(o.features) }
func (o *Offer) FAQ() []FAQ          { return slices.Clone(o.faq) }
func (o *Offer) Perks() []string     { return slices.Clone(o.perks) }
