package dto

import "virgimotor_backend/internals/features/content/hero_slides/model"

// ============================
// Create & Update Request DTO
// ============================

type CreateHeroSlideRequest struct {
	Image string  `json:"image" validate:"required"`
	Title *string `json:"title"`
	Order int     `json:"order"`
}

type UpdateHeroSlideRequest struct {
	Image    string  `json:"image" validate:"required"`
	Title    *string `json:"title"`
	IsActive *bool   `json:"isActive"`
	Order    int     `json:"order"`
}

// ============================
// Public projection
// ============================

type PublicHeroSlideDTO struct {
	ID    string  `json:"id"`
	Image string  `json:"image"`
	Title *string `json:"title"`
}

func ToPublicHeroSlideDTO(m model.HeroSlideModel) PublicHeroSlideDTO {
	return PublicHeroSlideDTO{
		ID:    m.ID.String(),
		Image: m.Image,
		Title: m.Title,
	}
}

func ToPublicHeroSlideDTOs(models []model.HeroSlideModel) []PublicHeroSlideDTO {
	out := make([]PublicHeroSlideDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToPublicHeroSlideDTO(m))
	}
	return out
}
