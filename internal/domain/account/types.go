package account

import "storefront/internal/pkg/errs"

type Role string

const (
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

var ErrInvalidRole = errs.New("invalid role")

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSeller, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

func (r Role) String() string {
	return string(r)
}
