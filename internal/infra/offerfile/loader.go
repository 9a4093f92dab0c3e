// Package offerfile reads the offer configuration from YAML. The default
// document is embedded so the service starts without any file on disk.
package offerfile

import (
	_ "embed"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"offer-landing/internal/domain/offer"
	"offer-landing/internal/infra"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

type document struct {
	ProductName string `yaml:"productName"`
	Tagline     string `yaml:"tagline"`
	Hero        struct {
		Title        string `yaml:"title"`
		Subtitle     string `yaml:"subtitle"`
		CTAPrimary   string `yaml:"ctaPrimary"`
		CTASecondary string `yaml:"ctaSecondary"`
	} `yaml:"hero"`
	Price struct {
		Amount   string `yaml:"amount"`
		Currency string `yaml:"currency"`
		Note     string `yaml:"note"`
	} `yaml:"price"`
	Stock struct {
		Total       int    `yaml:"total"`
		InitialSold int    `yaml:"initialSold"`
		EndsAt      string `yaml:"endsAt"`
	} `yaml:"stock"`
	Features []struct {
		Icon  string `yaml:"icon"`
		Title string `yaml:"title"`
		Desc  string `yaml:"desc"`
	} `yaml:"features"`
	FAQ []struct {
		Q string `yaml:"q"`
		A string `yaml:"a"`
	} `yaml:"faq"`
	Perks []string `yaml:"perks"`
}

type Loader struct {
	logger *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads path, or the embedded default when path is empty. now anchors
// the default countdown target when the document omits stock.endsAt.
func (l *Loader) Load(path string, now time.Time) (*offer.Offer, error) {
	if path == "" {
		l.logger.Info("Using embedded default offer")
		return l.Parse(defaultDocument, now)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, infra.WrapSourceErr(l.logger, infra.KindNotFound, "offer file not found", err)
		}
		return nil, infra.WrapSourceErr(l.logger, infra.KindUnreadable, "failed to read offer file", err)
	}

	l.logger.Info("Loading offer file", "path", path)
	return l.Parse(data, now)
}

func (l *Loader) Parse(data []byte, now time.Time) (*offer.Offer, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, infra.WrapSourceErr(l.logger, infra.KindMalformed, "failed to decode offer yaml", err)
	}

	o, err := doc.toDomain(now)
	if err != nil {
		return nil, infra.WrapSourceErr(l.logger, infra.KindInvalid, "offer violates configuration rules", err)
	}
	return o, nil
}

func (d *document) toDomain(now time.Time) (*offer.Offer, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(d.Price.Amount))
	if err != nil {
		return nil, err
	}
	price, err := offer.NewPrice(amount, d.Price.Currency, d.Price.Note)
	if err != nil {
		return nil, err
	}

	endsAt := offer.DefaultEndsAt(now)
	if raw := strings.TrimSpace(d.Stock.EndsAt); raw != "" {
		endsAt, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
	}
	stock, err := offer.NewStock(d.Stock.Total, d.Stock.InitialSold, endsAt)
	if err != nil {
		return nil, err
	}

	features := make([]offer.Feature, 0, len(d.Features))
	for _, f := range d.Features {
		features = append(features, offer.Feature{Icon: f.Icon, Title: f.Title, Desc: f.Desc})
	}
	faq := make([]offer.FAQ, 0, len(d.FAQ))
	for _, item := range d.FAQ {
		faq = append(faq, offer.FAQ{Q: item.Q, A: item.A})
	}

	hero := offer.Hero{
		Title:        d.Hero.Title,
		Subtitle:     d.Hero.Subtitle,
		CTAPrimary:   d.Hero.CTAPrimary,
		CTASecondary: d.Hero.CTASecondary,
	}

	return offer.NewOffer(d.ProductName, d.Tagline, hero, price, stock, features, faq, d.Perks)
}
