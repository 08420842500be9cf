package api

import (
	"net/http"
	"strings"

	reqdto "cosme-store/internal/handler/dto/request"
	resdto "cosme-store/internal/handler/dto/response"
	"cosme-store/internal/handler/httperr"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds     commands.CatalogCommands
	products queries.ProductQueries
	vouchers queries.VoucherQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, products queries.ProductQueries, vouchers queries.VoucherQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, products: products, vouchers: vouchers}
}

// @Summary List products
// @Tags products
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} queries.ProductView
// @Router /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	items, err := h.products.List(c.Request.Context(), strings.TrimSpace(c.Query("category")))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if items == nil {
		items = []*queries.ProductView{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} queries.ProductView
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	view, err := h.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List active vouchers
// @Tags vouchers
// @Produce json
// @Success 200 {array} queries.VoucherView
// @Router /api/vouchers [get]
func (h *CatalogHandler) ListVouchers(c *gin.Context) {
	items, err := h.vouchers.ListActive(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if items == nil {
		items = []*queries.VoucherView{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Import products
// @Description Upsert a catalog export. One invalid product rejects the batch.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ImportProductsRequest true "Products"
// @Success 200 {object} resdto.ImportProductsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/products/import [post]
func (h *CatalogHandler) ImportProducts(c *gin.Context) {
	var req reqdto.ImportProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err)
		return
	}
	res, err := h.cmds.ImportProducts(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ImportProductsResponse{Imported: res.Imported})
}
