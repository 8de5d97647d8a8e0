package dto

import (
	"time"

	"github.com/lib/pq"

	"virgimotor_backend/internals/features/catalog/products/model"
)

// ============================
// Create & Update Request DTO
// ============================
// Update memakai semantik full-replace: seluruh field editable wajib
// dikirim ulang; optional yang tidak dikirim jatuh ke null/default.

type CreateProductRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=255"`
	Category string   `json:"category" validate:"required,oneof=Matic Sport Cub EV"`
	Price    int64    `json:"price" validate:"required,gt=0"`
	DpMin    int64    `json:"dpMin" validate:"required,gt=0"`
	CC       string   `json:"cc" validate:"required,max=20"`
	Image    string   `json:"image"`
	Features []string `json:"features"`
	Order    int      `json:"order"`

	PromoActive        bool     `json:"promoActive"`
	PromoBadgeText     *string  `json:"promoBadgeText"`
	PromoHighlights    []string `json:"promoHighlights"`
	PromoCardBgColor   *string  `json:"promoCardBgColor"`
	PromoCardTextColor *string  `json:"promoCardTextColor"`
	PromoEndsAt        *string  `json:"promoEndsAt"` // "YYYY-MM-DD"
}

type UpdateProductRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=255"`
	Category string   `json:"category" validate:"required,oneof=Matic Sport Cub EV"`
	Price    int64    `json:"price" validate:"required,gt=0"`
	DpMin    int64    `json:"dpMin" validate:"required,gt=0"`
	CC       string   `json:"cc" validate:"required,max=20"`
	Image    string   `json:"image" validate:"required"`
	Features []string `json:"features"`
	Order    int      `json:"order"`

	PromoActive        bool     `json:"promoActive"`
	PromoBadgeText     *string  `json:"promoBadgeText"`
	PromoHighlights    []string `json:"promoHighlights"`
	PromoCardBgColor   *string  `json:"promoCardBgColor"`
	PromoCardTextColor *string  `json:"promoCardTextColor"`
	PromoEndsAt        *string  `json:"promoEndsAt"`
}

type TogglePromoRequest struct {
	PromoActive bool `json:"promoActive"`
}

// ============================
// Public projection
// ============================
// Kontrak nama field publik HARUS dipertahankan persis:
// dp_min (bukan dpMin), dan objek promo absen (bukan kosong)
// saat promoActive=false.

type PublicPromoDTO struct {
	IsActive      bool     `json:"isActive"`
	BadgeText     *string  `json:"badgeText"`
	Highlights    []string `json:"highlights"`
	CardBgColor   *string  `json:"cardBgColor"`
	CardTextColor *string  `json:"cardTextColor"`
}

type PublicProductDTO struct {
	ID       string          `json:"id"` // slug dipakai sebagai id publik
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    int64           `json:"price"`
	Image    string          `json:"image"`
	Features []string        `json:"features"`
	CC       string          `json:"cc"`
	DpMin    int64           `json:"dp_min"`
	Promo    *PublicPromoDTO `json:"promo,omitempty"`
}

// ============================
// Converters
// ============================

func ToPublicProductDTO(m model.ProductModel) PublicProductDTO {
	out := PublicProductDTO{
		ID:       m.Slug,
		Name:     m.Name,
		Category: m.Category,
		Price:    m.Price,
		Image:    m.Image,
		Features: stringSlice(m.Features),
		CC:       m.CC,
		DpMin:    m.DpMin,
	}
	if m.PromoActive {
		out.Promo = &PublicPromoDTO{
			IsActive:      true,
			BadgeText:     m.PromoBadgeText,
			Highlights:    stringSlice(m.PromoHighlights),
			CardBgColor:   m.PromoCardBgColor,
			CardTextColor: m.PromoCardTextColor,
		}
	}
	return out
}

func ToPublicProductDTOs(models []model.ProductModel) []PublicProductDTO {
	out := make([]PublicProductDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToPublicProductDTO(m))
	}
	return out
}

func stringSlice(a pq.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return []string(a)
}

// ParsePromoEndsAt menerima "YYYY-MM-DD" (nil/kosong = tanpa batas).
func ParsePromoEndsAt(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
