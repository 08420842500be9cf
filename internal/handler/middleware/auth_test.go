//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"cosme-store/internal/domain/user"
	"cosme-store/internal/handler/middleware"
	"cosme-store/internal/pkg/cookie"
	"cosme-store/internal/usecase/commands"
	"cosme-store/tests/common/httptest"
	commandsmock "cosme-store/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *commandsmock.MockAuthCommands
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)

	mw := middleware.NewAuthMiddleware(s.mockAuth)
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.String(), "role": string(role)})
	}
	s.router.GET("/me", mw.RequireAuth(), whoami)
	s.router.GET("/feed", mw.OptionalAuth(), whoami)
	s.router.GET("/staff", mw.RequireAuth(), mw.RequireRoleAtLeast(user.RoleStaff), whoami)
	s.router.GET("/misconfigured", mw.RequireRoleAtLeast(user.RoleStaff), whoami)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) principal(role user.Role) *commands.Principal {
	return &commands.Principal{UserID: uuid.New(), Role: role, SessionID: uuid.New()}
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("bearer token", func() {
		p := s.principal(user.RoleCustomer)
		s.mockAuth.EXPECT().Authenticate(gomock.Any(), "bearer-jwt").Return(p, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "bearer-jwt")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(p.UserID.String(), body["userId"])
		s.Equal("customer", body["role"])
	})

	s.Run("cookie wins over the header", func() {
		s.mockAuth.EXPECT().Authenticate(gomock.Any(), "cookie-jwt").Return(s.principal(user.RoleCustomer), nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-jwt"}}, "bearer-jwt")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("expired session", func() {
		s.mockAuth.EXPECT().Authenticate(gomock.Any(), "stale").Return(nil, commands.ErrSessionExpired)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "stale")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired session")
	})

	s.Run("deactivated user", func() {
		s.mockAuth.EXPECT().Authenticate(gomock.Any(), "jwt").Return(nil, commands.ErrUserInactive)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "jwt")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuth() {
	s.Run("anonymous passes", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/feed", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("invalid token is ignored", func() {
		s.mockAuth.EXPECT().Authenticate(gomock.Any(), "junk").Return(nil, commands.ErrTokenValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/feed", nil, "junk")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(uuid.Nil.String(), body["userId"])
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	testCases := []struct {
		role   user.Role
		status int
	}{
		{role: user.RoleCustomer, status: http.StatusForbidden},
		{role: user.RoleStaff, status: http.StatusOK},
		{role: user.RoleAdmin, status: http.StatusOK},
	}
	for _, tc := range testCases {
		s.Run(string(tc.role), func() {
			s.mockAuth.EXPECT().Authenticate(gomock.Any(), "jwt").Return(s.principal(tc.role), nil)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff", nil, "jwt")
			s.Equal(tc.status, rec.Code)
		})
	}

	s.Run("without RequireAuth in front", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/misconfigured", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
