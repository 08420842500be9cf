package request

import (
	"cosme-store/internal/domain/cart"
	"cosme-store/internal/usecase/commands"
)

type AddCartItemRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	VariantSize string `json:"variantSize" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1,max=10000"`
}

func (r *AddCartItemRequest) ToInput() commands.AddItemInput {
	return commands.AddItemInput{ProductID: r.ProductID, VariantSize: r.VariantSize, Quantity: r.Quantity}
}

type CartLineRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	VariantSize string `json:"variantSize" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1,max=10000"`
	Selected    bool   `json:"selected"`
}

// ReplaceCartRequest pushes a client-held cart, such as a guest cart after
// login, over the stored one.
type ReplaceCartRequest struct {
	Items []CartLineRequest `json:"items" binding:"dive"`
}

func (r *ReplaceCartRequest) ToInput() []commands.CartLineInput {
	lines := make([]commands.CartLineInput, len(r.Items))
	for i, it := range r.Items {
		lines[i] = commands.CartLineInput{
			ProductID:   it.ProductID,
			VariantSize: it.VariantSize,
			Quantity:    it.Quantity,
			Selected:    it.Selected,
		}
	}
	return lines
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=10000"`
}

type SetSelectionRequest struct {
	LineIDs []string `json:"lineIds"`
}

func (r *SetSelectionRequest) ToLineIDs() []cart.LineID {
	ids := make([]cart.LineID, len(r.LineIDs))
	for i, id := range r.LineIDs {
		ids[i] = cart.LineID(id)
	}
	return ids
}

type ApplyVoucherRequest struct {
	Type string `json:"type" binding:"required,oneof=product shipping"`
	Code string `json:"code" binding:"required"`
}
