package api

import (
	"net/http"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/voucher"
	reqdto "cosme-store/internal/handler/dto/request"
	resdto "cosme-store/internal/handler/dto/response"
	"cosme-store/internal/handler/httperr"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler serves the signed-in user's cart. Every route answers with the
// full cart so the client never has to merge partial state.
type CartHandler struct {
	cmds commands.CartCommands
}

func NewCartHandler(cmds commands.CartCommands) *CartHandler {
	return &CartHandler{cmds: cmds}
}

type cartOp func(c *gin.Context, userID uuid.UUID) (*commands.CartState, error)

func (h *CartHandler) respond(c *gin.Context, status int, op cartOp) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	state, err := op(c, userID)
	if err != nil {
		if !c.IsAborted() {
			httperr.Abort(c, err)
		}
		return
	}
	c.JSON(status, resdto.FromCartState(state))
}

// bind decodes the body into req, aborting with 400 on failure.
func bind(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortBadRequest(c, err)
		return err
	}
	return nil
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	h.respond(c, http.StatusOK, func(c *gin.Context, userID uuid.UUID) (*commands.CartState, error) {
		return h.cmds.Get(c.Request.Context(), userID)
	})
}

// @Summary Replace cart
// @Description Overwrite the stored cart with a client-held line list. Prices are re-read from the catalog.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReplaceCartRequest true "Lines"
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [put]
func (h *CartHandler) Replace(c *gin.Context) {
	h.respond(c, http.StatusOK, func(c *gin.Context, userID uuid.UUID) (*commands.CartState, error) {
		var req reqdto.ReplaceCartRequest
		if err := bind(c, &req); err != nil {
			return nil, err
		}
		return h.cmds.Replace(c.Request.Context(), userID, req.ToInput())
	})
}

// @Summary Add item
// @Description Add a product variant; an existing line for the same variant is merged
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Item"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	h.respond(c, http.StatusOK, func(c *gin.Context, userID uuid.UUID) (*commands.CartState, error) {
		var req reqdto.AddCartItemRequest
		if err := bind(c, &req); err != nil {
			return nil, err
		}
		return h.cmds.AddItem(c.Request.Context(), userID, req.ToInput())
	})
}

// @Summary Update quantity
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lineId path string true "Line ID (productId|variantSize)"
// @Param request body reqdto.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart/items/{lineId} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	h.respond(c, http.StatusOK, func(c *gin.Context, userID uuid.UUID) (*commands.CartState, error) {
		var req reqdto.UpdateQuantityRequest
		if err := bind(c, &req); err != nil {
			return nil, err
		}
		return h.cmds.UpdateQuantity(c.Request.Context(), userID, lineParam(c), req.Quantity)
	})
}

// @Summary Remove item
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param lineId path string true "Line ID"
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart/items/{lineId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.respond(c, http.StatusOK, func(c *gin.Context, userID uuid.UUID) (*commands.CartState, error) {
		return h.cmds.RemoveItem(c.Request.Context(), userID, lineParam(c))
	})
}

// @Summary Toggle line selection
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param lineId path string true "Line ID"
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart/selection/toggle/{lineId} [post]
func (h *CartHandler) ToggleSelect(c *gin.Context) {
	h.respond(c, http.StatusOK, func(c *gin.Context, userID uuid.UUID) (*commands.CartState, error) {
		return h.cmds.ToggleSelect(c.Request.Context(), userID, lineParam(c))
	})
}

// @Summary Select all lines
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart/selection/select-all [post]
func (h *CartHandler) SelectAll(c *gin.Context) {
	h.respond(c, http.StatusOK, func(c *gin.Context, userID uuid.UUID) (*commands.CartState, error) {
		return h.cmds.SelectAll(c.Request.Context(), userID)
	})
}

// @Summary Deselect all lines
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart/selection/deselect-all [post]
func (h *CartHandler) DeselectAll(c *gin.Context) {
	h.respond(c, http.StatusOK, func(c *gin.Context, userID uuid.UUID) (*commands.CartState, error) {
		return h.cmds.DeselectAll(c.Request.Context(), userID)
	})
}

// @Summary Set selection
// @Description Replace the selected set; unknown line ids are ignored
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetSelectionRequest true "Line IDs"
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart/selection [put]
func (h *CartHandler) SetSelection(c *gin.Context) {
	h.respond(c, http.StatusOK, func(c *gin.Context, userID uuid.UUID) (*commands.CartState, error) {
		var req reqdto.SetSelectionRequest
		if err := bind(c, &req); err != nil {
			return nil, err
		}
		return h.cmds.SetSelection(c.Request.Context(), userID, req.ToLineIDs())
	})
}

// @Summary Apply voucher
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyVoucherRequest true "Voucher"
// @Success 200 {object} resdto.CartResponse
// @Failure 422 {object} httperr.Response
// @Router /api/cart/vouchers [post]
func (h *CartHandler) ApplyVoucher(c *gin.Context) {
	h.respond(c, http.StatusOK, func(c *gin.Context, userID uuid.UUID) (*commands.CartState, error) {
		var req reqdto.ApplyVoucherRequest
		if err := bind(c, &req); err != nil {
			return nil, err
		}
		return h.cmds.ApplyVoucher(c.Request.Context(), userID, voucher.Type(req.Type), req.Code)
	})
}

// @Summary Remove voucher
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param type path string true "product or shipping"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/vouchers/{type} [delete]
func (h *CartHandler) RemoveVoucher(c *gin.Context) {
	h.respond(c, http.StatusOK, func(c *gin.Context, userID uuid.UUID) (*commands.CartState, error) {
		category := voucher.Type(c.Param("type"))
		if !category.IsValid() {
			return nil, errs.Mark(voucher.ErrInvalidType, errs.ErrValidation)
		}
		return h.cmds.RemoveVoucher(c.Request.Context(), userID, category)
	})
}

func lineParam(c *gin.Context) cart.LineID {
	return cart.LineID(c.Param("lineId"))
}
