package request

import (
	"cosme-store/internal/domain/product"
	"cosme-store/internal/usecase/commands"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ProductImportRequest accepts the catalog export format, where older
// variants carry "name" instead of "size".
type ProductImportRequest struct {
	ID          string               `json:"id" binding:"required"`
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Image       string               `json:"image"`
	Variants    []product.RawVariant `json:"variants" binding:"required,min=1"`
}

type ImportProductsRequest struct {
	Products []ProductImportRequest `json:"products" binding:"required,min=1,dive"`
}

func (r *ImportProductsRequest) ToCommand() []commands.ProductImport {
	out := make([]commands.ProductImport, len(r.Products))
	for i, p := range r.Products {
		out[i] = commands.ProductImport{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Image:       p.Image,
			Variants:    p.Variants,
		}
	}
	return out
}
