//go:build unit

package offerfile_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"offer-landing/internal/domain/offer"
	"offer-landing/internal/infra"
	"offer-landing/internal/infra/offerfile"
	"offer-landing/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func newLoader() *offerfile.Loader {
	return offerfile.NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

const minimalDoc = `
productName: Acme
price:
  amount: "19.9"
  currency: eur
  note: once
stock:
  total: 10
  initialSold: 3
  endsAt: "2026-12-31T23:59:59Z"
features:
  - icon: a
    title: First
    desc: one
  - icon: b
    title: Second
    desc: two
faq:
  - q: "Why?"
    a: "Because."
`

func TestLoadDefault(t *testing.T) {
	o, err := newLoader().Load("", now)
	require.NoError(t, err)

	assert.Equal(t, "FluxSoft", o.ProductName())
	assert.Equal(t, "Tu nueva ventaja silenciosa", o.Tagline())
	assert.Equal(t, "Obtener licencia", o.Hero().CTAPrimary)
	assert.True(t, decimal.NewFromInt(49).Equal(o.Price().Amount()))
	assert.Equal(t, offer.Currency("USD"), o.Price().Currency())
	assert.Equal(t, "$49 USD — pago único, actualizaciones por 12 meses", o.Price().Summary())
	assert.Equal(t, 200, o.Stock().Total())
	assert.Equal(t, 137, o.Stock().InitialSold())
	assert.Equal(t, time.Date(2026, 10, 24, 23, 59, 59, 0, time.UTC), o.Stock().EndsAt())
	require.Len(t, o.Features(), 3)
	assert.Equal(t, "Rápido por diseño", o.Features()[0].Title)
	require.Len(t, o.FAQ(), 3)
	assert.Len(t, o.Perks(), 4)
}

func TestParse(t *testing.T) {
	t.Run("explicit target and order-preserving lists", func(t *testing.T) {
		o, err := newLoader().Parse([]byte(minimalDoc), now)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC), o.Stock().EndsAt())
		assert.Equal(t, offer.Currency("EUR"), o.Price().Currency())
		assert.Equal(t, "$19.90", o.Price().Display())
		assert.Equal(t, []offer.Feature{
			{Icon: "a", Title: "First", Desc: "one"},
			{Icon: "b", Title: "Second", Desc: "two"},
		}, o.Features())
		assert.Equal(t, []offer.FAQ{{Q: "Why?", A: "Because."}}, o.FAQ())
	})

	cases := []struct {
		name  string
		doc   string
		kind  infra.SourceErrorKind
		errIs error
	}{
		{name: "malformed yaml", doc: "productName: [unterminated", kind: infra.KindMalformed},
		{name: "sold above total", doc: "productName: X\nprice: {amount: '1', currency: USD}\nstock: {total: 5, initialSold: 6}", kind: infra.KindInvalid, errIs: offer.ErrInitialSoldOutRange},
		{name: "negative total", doc: "productName: X\nprice: {amount: '1', currency: USD}\nstock: {total: -1}", kind: infra.KindInvalid, errIs: offer.ErrNegativeStock},
		{name: "bad currency", doc: "productName: X\nprice: {amount: '1', currency: dollars}\nstock: {total: 5}", kind: infra.KindInvalid, errIs: offer.ErrInvalidCurrency},
		{name: "negative price", doc: "productName: X\nprice: {amount: '-1', currency: USD}\nstock: {total: 5}", kind: infra.KindInvalid, errIs: offer.ErrNegativePrice},
		{name: "missing product name", doc: "price: {amount: '1', currency: USD}\nstock: {total: 5}", kind: infra.KindInvalid, errIs: offer.ErrMissingProductName},
		{name: "unparseable amount", doc: "productName: X\nprice: {amount: abc, currency: USD}\nstock: {total: 5}", kind: infra.KindInvalid},
		{name: "unparseable target", doc: "productName: X\nprice: {amount: '1', currency: USD}\nstock: {total: 5, endsAt: tomorrow}", kind: infra.KindInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := newLoader().Parse([]byte(tc.doc), now)
			require.Error(t, err)
			require.Nil(t, o)

			assert.True(t, infra.IsKind(err, tc.kind), "unexpected kind: %v", err)
			assert.ErrorIs(t, err, errs.ErrInvalidOffer)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("reads a file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "offer.yaml")
		require.NoError(t, os.WriteFile(path, []byte(minimalDoc), 0o600))

		o, err := newLoader().Load(path, now)
		require.NoError(t, err)
		assert.Equal(t, "Acme", o.ProductName())
	})

	t.Run("missing file is a source error", func(t *testing.T) {
		_, err := newLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"), now)
		require.Error(t, err)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.ErrorIs(t, err, errs.ErrOfferSourceUnavailable)
		assert.NotErrorIs(t, err, errs.ErrInvalidOffer)
	})
}

func TestSourceErrorMessage(t *testing.T) {
	_, err := newLoader().Parse([]byte("productName: [unterminated"), now)
	require.Error(t, err)

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "MALFORMED: failed to decode offer yaml: "), msg)
	assert.Equal(t, 1, strings.Count(msg, "failed to decode offer yaml"), msg)
}
