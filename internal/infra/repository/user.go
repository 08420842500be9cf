package repository

import (
	"context"
	"time"

	"cosme-store/internal/domain/user"
	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/repository/converter"
	"cosme-store/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db pgsql.DBTX, u pgsql.UserRow) error
	UpdateUserLastLogin(ctx context.Context, db pgsql.DBTX, id uuid.UUID, at pgtype.Timestamptz) error
	UpdateUserProfile(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateUserProfileParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      pgsql.DBTX
}

func NewUserRepository(queries UserWriteQueries, db pgsql.DBTX) *UserRepository {
	return &UserRepository{queries: queries, db: db}
}

// Create inserts u. An email that is already registered yields KindDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, tx pgsql.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, tx, converter.UserToRow(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx pgsql.DBTX, userID uuid.UUID, at time.Time) error {
	if err := r.queries.UpdateUserLastLogin(ctx, tx, userID, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx pgsql.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUserProfile(ctx, tx, pgsql.UpdateUserProfileParams{
		ID:          u.ID(),
		DisplayName: u.DisplayName().Value(),
		Phone:       u.Phone().Value(),
		UpdatedAt:   pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
