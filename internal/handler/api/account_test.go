//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"cosme-store/internal/domain/user"
	"cosme-store/internal/handler/api"
	"cosme-store/internal/handler/middleware"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"
	"cosme-store/tests/common/builder"
	"cosme-store/tests/common/httptest"
	commandsmock "cosme-store/tests/mock/commands"
	queriesmock "cosme-store/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAccountCommands
	mockQueries  *queriesmock.MockUserQueries
	userID       uuid.UUID
}

func (s *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAccountCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewAccountHandler(s.mockCommands, s.mockQueries)
	s.router.PATCH("/account/profile", fakeAuth(s.userID, user.RoleCustomer), h.UpdateProfile)
}

func (s *AccountHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) TestUpdateProfile() {
	url := "/account/profile"

	s.Run("success: omitted fields stay nil", func() {
		view := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.ID = s.userID
			b.Phone = "0901234567"
		}).BuildReadModel()
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.ProfileInput) error {
				s.Nil(in.DisplayName)
				s.Require().NotNil(in.Phone)
				s.Equal("0901234567", *in.Phone)
				return nil
			})
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"phone": "0901234567"}, "token")

		var body queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("0901234567", body.Phone)
	})

	s.Run("error: 400 for an invalid phone", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.userID, gomock.Any()).Return(user.ErrInvalidPhone)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"phone": "12"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 without a caller", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
