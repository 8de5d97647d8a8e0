package dto

import "virgimotor_backend/internals/features/content/gallery/model"

// ============================
// Create & Update Request DTO
// ============================

type CreateGalleryImageRequest struct {
	Image    string  `json:"image" validate:"required"`
	Label    *string `json:"label"`
	Category *string `json:"category"`
	Order    int     `json:"order"`
}

type UpdateGalleryImageRequest struct {
	Image    string  `json:"image" validate:"required"`
	Label    *string `json:"label"`
	Category *string `json:"category"`
	IsActive *bool   `json:"isActive"`
	Order    int     `json:"order"`
}

// ============================
// Public projection
// ============================
// Flag aktif dan timestamp tidak pernah bocor ke publik.

type PublicGalleryImageDTO struct {
	ID       string  `json:"id"`
	Image    string  `json:"image"`
	Label    *string `json:"label"`
	Category *string `json:"category"`
}

func ToPublicGalleryImageDTO(m model.GalleryImageModel) PublicGalleryImageDTO {
	return PublicGalleryImageDTO{
		ID:       m.ID.String(),
		Image:    m.Image,
		Label:    m.Label,
		Category: m.Category,
	}
}

func ToPublicGalleryImageDTOs(models []model.GalleryImageModel) []PublicGalleryImageDTO {
	out := make([]PublicGalleryImageDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToPublicGalleryImageDTO(m))
	}
	return out
}
