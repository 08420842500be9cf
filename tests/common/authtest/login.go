//go:build e2e

package authtest

import (
	"net/http"
	"testing"

	"cosme-store/internal/handler/dto/request"
	"cosme-store/internal/pkg/cookie"
	"cosme-store/tests/common/dbtest"
	"cosme-store/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Session is what a browser keeps after logging in.
type Session struct {
	AccessToken string
	Cookies     []*http.Cookie
}

func (s Session) Cookie(name string) *http.Cookie {
	for _, c := range s.Cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) Session {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return Session{AccessToken: accessCookie.Value, Cookies: httptest.ExtractCookies(w)}
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) Session {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.DefaultPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, s Session) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, s.Cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
