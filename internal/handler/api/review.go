package api

import (
	"net/http"

	reqdto "cosme-store/internal/handler/dto/request"
	resdto "cosme-store/internal/handler/dto/response"
	"cosme-store/internal/handler/httperr"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a product from a delivered order
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/products/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err)
		return
	}
	result, err := h.cmds.CreateReview(c.Request.Context(), req.ToCommand(c.Param("id")), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateReviewResponse{ReviewID: result.ReviewID})
}

// @Summary Update review
// @Description Update own review by ID
// @Tags reviews
// @Accept json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := caller(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err)
		return
	}
	if err := h.cmds.UpdateReview(c.Request.Context(), id, req.ToCommand(), actorID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete review
// @Description Delete own review (admins can delete any)
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := caller(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteReview(c.Request.Context(), id, actorID, string(role)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List product reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Product ID"
// @Param min_rating query int false "Minimum rating"
// @Param max_rating query int false "Maximum rating"
// @Param limit query int false "Page size"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/products/{id}/reviews [get]
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	minRating, ok := optionalIntQuery(c, "min_rating")
	if !ok {
		return
	}
	maxRating, ok := optionalIntQuery(c, "max_rating")
	if !ok {
		return
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.ListByProduct(c.Request.Context(), c.Param("id"),
		queries.ReviewFilters{MinRating: minRating, MaxRating: maxRating}, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(items, next))
}

// @Summary Product rating stats
// @Tags reviews
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductRatingStatsResponse
// @Router /api/products/{id}/rating-stats [get]
func (h *ReviewHandler) RatingStats(c *gin.Context) {
	stats, err := h.q.GetProductRatingStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductRatingStats(stats))
}
