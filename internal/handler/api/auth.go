package api

import (
	"net/http"

	reqdto "cosme-store/internal/handler/dto/request"
	resdto "cosme-store/internal/handler/dto/response"
	"cosme-store/internal/handler/httperr"
	"cosme-store/internal/handler/middleware"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/config"
	"cosme-store/internal/pkg/cookie"
	"cosme-store/internal/pkg/jwt"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	users     queries.UserQueries
	cookieCfg config.CookieConfig
	tokens    *jwt.Service
	clock     clock.Clock
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg config.Config, tokens *jwt.Service, clk clock.Clock) *AuthHandler {
	return &AuthHandler{cmds: cmds, users: users, cookieCfg: cfg.Cookie, tokens: tokens, clock: clk}
}

// @Summary Register
// @Description Create a customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err)
		return
	}
	id, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.RegisterResponse{UserID: id})
}

// @Summary User login
// @Description Login with email and password; tokens are also set as cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err)
		return
	}

	res, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), res.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.setCookies(c, res.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: res.TokenPair.AccessToken,
		ExpiresAt:   h.clock.Now().Add(h.tokens.AccessTokenDuration()),
		User:        view,
	})
}

// @Summary Refresh access token
// @Description Issue a new token pair for a live session. The refresh token is read from the body or the cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortBadRequest(c, err)
			return
		}
	}
	token := req.RefreshToken
	if token == "" {
		token = cookie.GetRefreshToken(c)
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.RefreshResponse{
		AccessToken: pair.AccessToken,
		ExpiresAt:   h.clock.Now().Add(h.tokens.AccessTokenDuration()),
	})
}

// @Summary User logout
// @Description Delete the current session and clear the token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortUnauthenticated(c)
		return
	}
	if err := h.cmds.Logout(c.Request.Context(), sessionID); err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.tokens.AccessTokenDuration(), h.tokens.RefreshTokenDuration())
}
