package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	DisplayName  string
	Phone        string
	LastLogin    pgtype.Timestamptz
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

const userColumns = `id, email, password_hash, role, display_name, phone, last_login, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (UserRow, error) {
	var u UserRow
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.DisplayName, &u.Phone,
		&u.LastLogin, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const createUser = `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) CreateUser(ctx context.Context, db DBTX, u UserRow) error {
	_, err := db.Exec(ctx, createUser, u.ID, u.Email, u.PasswordHash, u.Role, u.DisplayName, u.Phone,
		u.LastLogin, u.IsActive, u.CreatedAt, u.UpdatedAt)
	return err
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (UserRow, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (UserRow, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const updateUserLastLogin = `UPDATE users SET last_login = $2 WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, updateUserLastLogin, id, at)
	return err
}

const updateUserProfile = `UPDATE users SET display_name = $2, phone = $3, updated_at = $4 WHERE id = $1`

type UpdateUserProfileParams struct {
	ID          uuid.UUID
	DisplayName string
	Phone       string
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) UpdateUserProfile(ctx context.Context, db DBTX, arg UpdateUserProfileParams) (int64, error) {
	tag, err := db.Exec(ctx, updateUserProfile, arg.ID, arg.DisplayName, arg.Phone, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
