package queries

import "cosme-store/internal/domain/user"

const (
	RoleCustomer = string(user.RoleCustomer)
	RoleStaff    = string(user.RoleStaff)
	RoleAdmin    = string(user.RoleAdmin)
)

func IsStaff(role string) bool {
	return role == RoleStaff || role == RoleAdmin
}
