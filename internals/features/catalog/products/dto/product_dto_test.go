package dto

import (
	"encoding/json"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virgimotor_backend/internals/features/catalog/products/model"
)

func strPtr(s string) *string { return &s }

func TestToPublicProductDTO_PromoAbsentWhenInactive(t *testing.T) {
	m := model.ProductModel{
		Name:        "All New BeAT CBS",
		Slug:        "all-new-beat-cbs",
		Category:    "Matic",
		Price:       18430000,
		DpMin:       2000000,
		CC:          "110cc",
		Image:       "/all_bike/beat.webp",
		Features:    pq.StringArray{"ESP", "ISS"},
		PromoActive: false,
		// data promo lama boleh tersisa di kolom; proyeksi tetap tanpa promo
		PromoBadgeText: strPtr("PROMO"),
	}

	out := ToPublicProductDTO(m)
	assert.Nil(t, out.Promo)
	assert.Equal(t, "all-new-beat-cbs", out.ID)
	assert.Equal(t, int64(2000000), out.DpMin)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"promo"`)
	assert.Contains(t, string(raw), `"dp_min":2000000`)
	assert.NotContains(t, string(raw), `"dpMin"`)
}

func TestToPublicProductDTO_PromoPresentWhenActive(t *testing.T) {
	m := model.ProductModel{
		Name:            "Vario 160",
		Slug:            "vario-160",
		Category:        "Matic",
		Price:           27420000,
		DpMin:           3000000,
		CC:              "160cc",
		PromoActive:     true,
		PromoBadgeText:  strPtr("DP Ringan"),
		PromoHighlights: pq.StringArray{"Cashback 500rb"},
	}

	out := ToPublicProductDTO(m)
	require.NotNil(t, out.Promo)
	assert.True(t, out.Promo.IsActive)
	assert.Equal(t, "DP Ringan", *out.Promo.BadgeText)
	assert.Equal(t, []string{"Cashback 500rb"}, out.Promo.Highlights)
}

func TestToPublicProductDTO_NilFeaturesBecomesEmptyArray(t *testing.T) {
	out := ToPublicProductDTO(model.ProductModel{Slug: "x", PromoActive: true})
	assert.NotNil(t, out.Features)
	assert.Empty(t, out.Features)
	assert.NotNil(t, out.Promo.Highlights)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"features":[]`)
}

func TestParsePromoEndsAt(t *testing.T) {
	got, err := ParsePromoEndsAt(strPtr("2026-12-31"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2026-12-31", got.Format("2006-01-02"))

	got, err = ParsePromoEndsAt(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParsePromoEndsAt(strPtr(""))
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParsePromoEndsAt(strPtr("31-12-2026"))
	assert.Error(t, err)
}
