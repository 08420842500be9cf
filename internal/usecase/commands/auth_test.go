//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cosme-store/internal/domain/user"
	"cosme-store/internal/infra/sessionstore"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/pkg/jwt"
	"cosme-store/internal/pkg/password"
	"cosme-store/internal/usecase/commands"
	"cosme-store/tests/common/builder"
	"cosme-store/tests/common/fakes"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

const testPassword = "s3cret-pass"

type AuthCommandsSuite struct {
	suite.Suite
	ctx   context.Context
	redis *miniredis.Miniredis
	uow   *fakes.UnitOfWork
	clock *clock.MockClock
	jwt   *jwt.Service
	uc    commands.AuthCommands
	user  *user.User
}

func TestAuthCommands(t *testing.T) {
	suite.Run(t, new(AuthCommandsSuite))
}

func (s *AuthCommandsSuite) SetupTest() {
	s.ctx = context.Background()
	s.redis = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.redis.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })

	hash, err := password.HashPassword(testPassword)
	s.Require().NoError(err)
	s.user, err = builder.NewUserBuilder().WithPasswordHash(hash).BuildDomain()
	s.Require().NoError(err)

	s.uow = fakes.NewUnitOfWork()
	s.uow.AddUser(s.user)
	s.clock = clock.NewMockClock(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
	s.jwt = jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	s.uc = commands.NewAuthCommands(s.uow, sessionstore.NewRedisSessionStore(client), s.jwt, s.clock,
		commands.SessionSettings{IdleTimeout: 30 * time.Minute, MaxLifetime: 7 * 24 * time.Hour})
}

func (s *AuthCommandsSuite) login() *commands.LoginResult {
	res, err := s.uc.Login(s.ctx, s.user.Email().Value(), testPassword)
	s.Require().NoError(err)
	return res
}

func (s *AuthCommandsSuite) TestRegister() {
	id, err := s.uc.Register(s.ctx, commands.RegisterInput{Email: "minh@example.com", Password: "another-pass", DisplayName: "Minh"})
	s.Require().NoError(err)

	u, ok := s.uow.User(id)
	s.Require().True(ok)
	s.Equal(user.RoleCustomer, u.Role())
	s.NoError(password.ComparePassword(u.PasswordHash(), "another-pass"))

	_, err = s.uc.Register(s.ctx, commands.RegisterInput{Email: "minh@example.com", Password: "another-pass", DisplayName: "Minh"})
	s.ErrorIs(err, commands.ErrEmailTaken)
	s.ErrorIs(err, errs.ErrStateConflict)

	_, err = s.uc.Register(s.ctx, commands.RegisterInput{Email: "short@example.com", Password: "short", DisplayName: "Short"})
	s.ErrorIs(err, user.ErrPasswordTooWeak)
}

func (s *AuthCommandsSuite) TestLogin() {
	res := s.login()

	s.Equal(s.user.ID(), res.UserID)
	claims, err := s.jwt.ValidateToken(res.TokenPair.AccessToken)
	s.Require().NoError(err)
	s.Equal(res.SessionID, claims.SessionID)
	s.Equal(jwt.TokenTypeAccess, claims.TokenType)
	s.True(s.redis.Exists("session:" + res.SessionID.String()))

	last, ok := s.uow.LastLogin(s.user.ID())
	s.True(ok)
	s.Equal(s.clock.Now(), last)
}

func (s *AuthCommandsSuite) TestLoginRejected() {
	inactive, err := builder.NewUserBuilder().
		WithEmail("gone@example.com").
		WithPasswordHash(s.user.PasswordHash()).
		AsInactive().
		BuildDomain()
	s.Require().NoError(err)
	s.uow.AddUser(inactive)

	tests := []struct {
		name    string
		email   string
		pw      string
		wantErr error
	}{
		{name: "wrong password", email: s.user.Email().Value(), pw: "not-the-password", wantErr: commands.ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@example.com", pw: testPassword, wantErr: commands.ErrInvalidCredentials},
		{name: "malformed email", email: "not-an-email", pw: testPassword, wantErr: errs.ErrUnauthorized},
		{name: "inactive account", email: "gone@example.com", pw: testPassword, wantErr: commands.ErrUserInactive},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.uc.Login(s.ctx, tt.email, tt.pw)
			s.ErrorIs(err, tt.wantErr)
		})
	}
	s.Empty(s.redis.Keys())
}

func (s *AuthCommandsSuite) TestAuthenticateTouchesSession() {
	res := s.login()

	s.clock.Add(20 * time.Minute)
	p, err := s.uc.Authenticate(s.ctx, res.TokenPair.AccessToken)
	s.Require().NoError(err)
	s.Equal(commands.Principal{UserID: s.user.ID(), Role: user.RoleCustomer, SessionID: res.SessionID}, *p)

	// Activity 20 minutes in keeps the session alive past the original idle window.
	s.clock.Add(20 * time.Minute)
	_, err = s.uc.Authenticate(s.ctx, res.TokenPair.AccessToken)
	s.NoError(err)
}

func (s *AuthCommandsSuite) TestAuthenticateIdleSessionExpires() {
	res := s.login()

	s.clock.Add(31 * time.Minute)
	_, err := s.uc.Authenticate(s.ctx, res.TokenPair.AccessToken)
	s.ErrorIs(err, commands.ErrSessionExpired)
	s.False(s.redis.Exists("session:" + res.SessionID.String()))

	_, err = s.uc.Authenticate(s.ctx, res.TokenPair.AccessToken)
	s.ErrorIs(err, commands.ErrSessionExpired)
}

func (s *AuthCommandsSuite) TestAuthenticateRejectsRefreshToken() {
	res := s.login()
	_, err := s.uc.Authenticate(s.ctx, res.TokenPair.RefreshToken)
	s.ErrorIs(err, commands.ErrTokenValidation)

	_, err = s.uc.Authenticate(s.ctx, "garbage")
	s.ErrorIs(err, errs.ErrUnauthorized)
}

func (s *AuthCommandsSuite) TestRefreshToken() {
	res := s.login()

	pair, err := s.uc.RefreshToken(s.ctx, res.TokenPair.RefreshToken)
	s.Require().NoError(err)
	claims, err := s.jwt.ValidateToken(pair.AccessToken)
	s.Require().NoError(err)
	s.Equal(res.SessionID, claims.SessionID)

	_, err = s.uc.RefreshToken(s.ctx, res.TokenPair.AccessToken)
	s.ErrorIs(err, commands.ErrTokenValidation)
}

func (s *AuthCommandsSuite) TestRefreshTokenForeignSession() {
	res := s.login()
	other, err := s.jwt.GenerateRefreshToken(uuid.New(), user.RoleCustomer, res.SessionID)
	s.Require().NoError(err)

	_, err = s.uc.RefreshToken(s.ctx, other)
	s.ErrorIs(err, commands.ErrTokenValidation)
}

func (s *AuthCommandsSuite) TestLogout() {
	res := s.login()
	s.Require().NoError(s.uc.Logout(s.ctx, res.SessionID))

	_, err := s.uc.Authenticate(s.ctx, res.TokenPair.AccessToken)
	s.ErrorIs(err, commands.ErrSessionExpired)
	_, err = s.uc.RefreshToken(s.ctx, res.TokenPair.RefreshToken)
	s.ErrorIs(err, commands.ErrSessionExpired)
}
