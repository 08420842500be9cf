package readstore

import (
	"context"

	"cosme-store/internal/domain/user"
	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/repository/converter"
	"cosme-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.UserRow, error)
	GetUserByEmail(ctx context.Context, db pgsql.DBTX, email string) (pgsql.UserRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgsql.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgsql.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &queries.AuthorizedUserView{
		ID:          row.ID,
		Email:       row.Email,
		Role:        row.Role,
		DisplayName: row.DisplayName,
		Phone:       row.Phone,
		IsActive:    row.IsActive,
	}, nil
}

func (r *UserReadStore) LoadByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUser(row)
}

// LoadByEmail matches the lower-cased address.
func (r *UserReadStore) LoadByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUser(row)
}

func toUser(row pgsql.UserRow) (*user.User, error) {
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user row", err, infra.KindDBFailure)
	}
	return u, nil
}
