package api

import (
	"net/http"

	reqdto "cosme-store/internal/handler/dto/request"
	resdto "cosme-store/internal/handler/dto/response"
	"cosme-store/internal/handler/httperr"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	IdempotencyKeyHeader     = "Idempotency-Key"
	IdempotentReplayedHeader = "Idempotent-Replayed"
)

type OrderHandler struct {
	checkout commands.CheckoutCommands
	cmds     commands.OrderCommands
	q        queries.OrderQueries
}

func NewOrderHandler(checkout commands.CheckoutCommands, cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{checkout: checkout, cmds: cmds, q: q}
}

// @Summary Checkout
// @Description Place an order from the selected cart lines and applied vouchers
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID; a retry with the same key returns the first order"
// @Param request body reqdto.CheckoutRequest true "Shipping and payment"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err)
		return
	}
	cmd := req.ToCommand()
	if raw := c.GetHeader(IdempotencyKeyHeader); raw != "" {
		key, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortBadRequest(c, errs.Wrap(err, "invalid idempotency key format"))
			return
		}
		cmd.IdempotencyKey = key
	}
	res, err := h.checkout.PlaceOrder(c.Request.Context(), userID, cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if res.Replayed {
		c.Header(IdempotentReplayedHeader, "true")
	}
	c.Header("Location", "/api/orders/"+res.OrderID.String())
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(res))
}

// @Summary List my orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.OrderListResponse
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListByUser(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(items, next))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := caller(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, actorID, string(role))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cancel order
// @Description Cancel a pending or processing order; stock and voucher usage are given back
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := caller(c)
	if !ok {
		return
	}
	if err := h.cmds.CancelOrder(c.Request.Context(), id, actorID, string(role)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Advance order status
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Next status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/orders/{id}/status [patch]
func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err)
		return
	}
	if err := h.cmds.AdvanceStatus(c.Request.Context(), id, req.Status); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
