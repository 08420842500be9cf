package request

import "cosme-store/internal/usecase/commands"

type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName" binding:"omitempty,max=100"`
	Phone       *string `json:"phone"`
}

func (r *UpdateProfileRequest) ToInput() commands.ProfileInput {
	return commands.ProfileInput{DisplayName: r.DisplayName, Phone: r.Phone}
}
