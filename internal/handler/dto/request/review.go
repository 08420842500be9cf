package request

import (
	"cosme-store/internal/usecase/commands"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=1000"`
}

func (r *CreateReviewRequest) ToCommand(productID string) commands.CreateReviewRequest {
	return commands.CreateReviewRequest{ProductID: productID, Rating: r.Rating, Comment: r.Comment}
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

func (r *UpdateReviewRequest) ToCommand() commands.UpdateReviewRequest {
	return commands.UpdateReviewRequest{Rating: r.Rating, Comment: r.Comment}
}
