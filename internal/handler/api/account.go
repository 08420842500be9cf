package api

import (
	"net/http"

	reqdto "cosme-store/internal/handler/dto/request"
	"cosme-store/internal/handler/httperr"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	cmds  commands.AccountCommands
	users queries.UserQueries
}

func NewAccountHandler(cmds commands.AccountCommands, users queries.UserQueries) *AccountHandler {
	return &AccountHandler{cmds: cmds, users: users}
}

// @Summary Update profile
// @Description Change display name and/or phone; omitted fields stay as they are
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/account/profile [patch]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err)
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), userID, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
