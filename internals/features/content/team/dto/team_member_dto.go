package dto

import "virgimotor_backend/internals/features/content/team/model"

// ============================
// Create & Update Request DTO
// ============================

type CreateTeamMemberRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Role     string  `json:"role" validate:"required,max=100"`
	Photo    *string `json:"photo"`
	Whatsapp *string `json:"whatsapp"`
	IsActive *bool   `json:"isActive"`
	Order    int     `json:"order"`
}

type UpdateTeamMemberRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Role     string  `json:"role" validate:"required,max=100"`
	Photo    *string `json:"photo"`
	Whatsapp *string `json:"whatsapp"`
	IsActive *bool   `json:"isActive"`
	Order    int     `json:"order"`
}

// ============================
// Public projection
// ============================

type PublicTeamMemberDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Photo    *string `json:"photo"`
	Whatsapp *string `json:"whatsapp"`
}

func ToPublicTeamMemberDTO(m model.TeamMemberModel) PublicTeamMemberDTO {
	return PublicTeamMemberDTO{
		ID:       m.ID.String(),
		Name:     m.Name,
		Role:     m.Role,
		Photo:    m.Photo,
		Whatsapp: m.Whatsapp,
	}
}

func ToPublicTeamMemberDTOs(models []model.TeamMemberModel) []PublicTeamMemberDTO {
	out := make([]PublicTeamMemberDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToPublicTeamMemberDTO(m))
	}
	return out
}
