package converter

import (
	"cosme-store/internal/domain/user"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/pkg/pgconv"
)

func UserToRow(u *user.User) pgsql.UserRow {
	row := pgsql.UserRow{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		DisplayName:  u.DisplayName().Value(),
		Phone:        u.Phone().Value(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
	if ll := u.LastLogin(); ll != nil {
		row.LastLogin = pgconv.TimeToPgtype(*ll)
	}
	return row
}

// UserFromRow trusts stored values except the role, which gates access.
func UserFromRow(r pgsql.UserRow) (*user.User, error) {
	role, err := user.NewRole(r.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s", r.ID)
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s", r.ID)
	}
	name, _ := user.NewDisplayName(r.DisplayName)
	phone, _ := user.NewPhone(r.Phone)
	return user.Reconstruct(r.ID, email, r.PasswordHash, role, name, phone,
		pgconv.TimePtrFromPgtype(r.LastLogin), r.IsActive,
		pgconv.TimeFromPgtype(r.CreatedAt), pgconv.TimeFromPgtype(r.UpdatedAt)), nil
}
