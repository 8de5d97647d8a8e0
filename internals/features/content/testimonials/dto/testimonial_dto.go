package dto

import "virgimotor_backend/internals/features/content/testimonials/model"

// ============================
// Create & Update Request DTO
// ============================
// Rating wajib 1..5; di luar itu ditolak sebagai error validasi.
// Rating 0 (tidak dikirim) saat create jatuh ke default 5 mengikuti
// perilaku admin form lama.

type CreateTestimonialRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Photo    *string `json:"photo"`
	Motor    *string `json:"motor"`
	Rating   int     `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Message  string  `json:"message" validate:"required"`
	IsActive *bool   `json:"isActive"`
	Order    int     `json:"order"`
}

type UpdateTestimonialRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Photo    *string `json:"photo"`
	Motor    *string `json:"motor"`
	Rating   int     `json:"rating" validate:"required,gte=1,lte=5"`
	Message  string  `json:"message" validate:"required"`
	IsActive *bool   `json:"isActive"`
	Order    int     `json:"order"`
}

// ============================
// Public projection
// ============================

type PublicTestimonialDTO struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Photo   *string `json:"photo"`
	Motor   *string `json:"motor"`
	Rating  int     `json:"rating"`
	Message string  `json:"message"`
}

func ToPublicTestimonialDTO(m model.TestimonialModel) PublicTestimonialDTO {
	return PublicTestimonialDTO{
		ID:      m.ID.String(),
		Name:    m.Name,
		Photo:   m.Photo,
		Motor:   m.Motor,
		Rating:  m.Rating,
		Message: m.Message,
	}
}

func ToPublicTestimonialDTOs(models []model.TestimonialModel) []PublicTestimonialDTO {
	out := make([]PublicTestimonialDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToPublicTestimonialDTO(m))
	}
	return out
}
