package api

import (
	"net/http"

	"cosme-store/internal/handler/httperr"
	"cosme-store/internal/usecase/queries"
	"cosme-store/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type GeographyHandler struct {
	q queries.GeographyQueries
}

func NewGeographyHandler(q queries.GeographyQueries) *GeographyHandler {
	return &GeographyHandler{q: q}
}

// @Summary List provinces
// @Tags geography
// @Produce json
// @Success 200 {array} shared.Division
// @Failure 503 {object} httperr.Response
// @Router /api/geo/provinces [get]
func (h *GeographyHandler) Provinces(c *gin.Context) {
	respondDivisions(c)(h.q.Provinces(c.Request.Context()))
}

// @Summary List districts of a province
// @Tags geography
// @Produce json
// @Param code path string true "Province code"
// @Success 200 {array} shared.Division
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/geo/provinces/{code}/districts [get]
func (h *GeographyHandler) Districts(c *gin.Context) {
	respondDivisions(c)(h.q.Districts(c.Request.Context(), c.Param("code")))
}

// @Summary List wards of a district
// @Tags geography
// @Produce json
// @Param code path string true "District code"
// @Success 200 {array} shared.Division
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/geo/districts/{code}/wards [get]
func (h *GeographyHandler) Wards(c *gin.Context) {
	respondDivisions(c)(h.q.Wards(c.Request.Context(), c.Param("code")))
}

func respondDivisions(c *gin.Context) func([]shared.Division, error) {
	return func(items []shared.Division, err error) {
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		if items == nil {
			items = []shared.Division{}
		}
		c.Header("Cache-Control", "public, max-age=86400")
		c.JSON(http.StatusOK, items)
	}
}
