package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cosme-store/internal/domain/auth"
	"cosme-store/internal/domain/session"
	"cosme-store/internal/domain/user"
	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/pkg/jwt"
	"cosme-store/internal/pkg/password"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionSettings struct {
	IdleTimeout time.Duration
	MaxLifetime time.Duration
}

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	SessionID uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Principal is the caller behind a valid access token and live session.
type Principal struct {
	UserID    uuid.UUID
	Role      user.Role
	SessionID uuid.UUID
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, email, pw string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	// Authenticate validates an access token against its session and records
	// the activity. Expired sessions are deleted.
	Authenticate(ctx context.Context, accessToken string) (*Principal, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	sessions   shared.SessionStore
	jwtService *jwt.Service
	clock      clock.Clock
	settings   SessionSettings
}

func NewAuthCommands(uow shared.UnitOfWork, sessions shared.SessionStore, jwtService *jwt.Service, clk clock.Clock, settings SessionSettings) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		sessions:   sessions,
		jwtService: jwtService,
		clock:      clk,
		settings:   settings,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	reg, err := auth.NewRegistration(in.Email, in.Password, in.DisplayName)
	if err != nil {
		return uuid.Nil, err
	}

	_, err = a.uow.CommandReads().UserByEmail(ctx, reg.Email().Value())
	switch {
	case err == nil:
		return uuid.Nil, ErrEmailTaken
	case !infra.IsKind(err, infra.KindNotFound):
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(reg.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}
	u := user.NewUser(reg.Email(), hash, user.RoleCustomer, reg.DisplayName(), a.clock.Now())

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, err
	}

	slog.Info("user registered", slog.String("user_id", u.ID().String()))
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pw)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	u, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	sess := session.New(u.ID(), now, a.settings.MaxLifetime)
	if err := a.sessions.Save(ctx, sess, session.TTL(sess, now)); err != nil {
		return nil, err
	}

	pair, err := a.issue(u.ID(), u.Role(), sess.ID)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), u.ID(), now)
	})
	if err != nil {
		// Login already succeeded; only last_login is stale.
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:    u.ID(),
		Role:      u.Role(),
		SessionID: sess.ID,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	if _, err := a.liveSession(ctx, claims); err != nil {
		return nil, err
	}

	// The role may have changed since the token was issued.
	u, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	return a.issue(u.ID(), u.Role(), claims.SessionID)
}

func (a *authCommandsImpl) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return a.sessions.Delete(ctx, sessionID)
}

func (a *authCommandsImpl) Authenticate(ctx context.Context, accessToken string) (*Principal, error) {
	claims, err := a.jwtService.ValidateToken(accessToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return nil, ErrTokenValidation
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if _, err := a.liveSession(ctx, claims); err != nil {
		return nil, err
	}
	return &Principal{UserID: claims.UserID, Role: role, SessionID: claims.SessionID}, nil
}

// liveSession loads the session named by claims, rejects it when expired or
// foreign, and stores it back with LastActivity moved to now.
func (a *authCommandsImpl) liveSession(ctx context.Context, claims *jwt.Claims) (session.Session, error) {
	sess, err := a.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, shared.ErrSessionNotFound) {
			return session.Session{}, ErrSessionExpired
		}
		return session.Session{}, err
	}
	if sess.UserID != claims.UserID {
		return session.Session{}, ErrTokenValidation
	}

	now := a.clock.Now()
	if session.IsExpired(sess, now, a.settings.IdleTimeout) {
		if err := a.sessions.Delete(ctx, sess.ID); err != nil {
			slog.Warn("failed to delete expired session", "session_id", sess.ID, "error", err.Error())
		}
		return session.Session{}, ErrSessionExpired
	}

	sess = session.Touch(sess, now)
	if err := a.sessions.Save(ctx, sess, session.TTL(sess, now)); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role, sessionID uuid.UUID) (*TokenPair, error) {
	access, err := a.jwtService.GenerateAccessToken(userID, role, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := a.jwtService.GenerateRefreshToken(userID, role, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*user.User, error) {
	u, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer as a wrong password so emails cannot be probed.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
