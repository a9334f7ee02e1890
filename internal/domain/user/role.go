package user

import "errors"

// Role is the only authorization dimension of the shop.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleFrontdesk Role = "frontdesk"
	RoleMechanic  Role = "mechanic"
)

var ErrUnknownRole = errors.New("unrecognized role")

// ParseRole accepts exactly the three known values, case-sensitively.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleFrontdesk, RoleMechanic:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// RoleSet is an allow-list for one category of operation.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

var (
	// ReadRoles may query shop data.
	ReadRoles = NewRoleSet(RoleAdmin, RoleFrontdesk, RoleMechanic)
	// MutateRoles may create, update and delete shop data. Mechanics read only.
	MutateRoles = NewRoleSet(RoleAdmin, RoleFrontdesk)
	// AdminRoles manage users and read the audit trail.
	AdminRoles = NewRoleSet(RoleAdmin)
)
