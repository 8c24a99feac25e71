package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role identifies the already-authenticated actor kind. Authentication itself
// (login, sessions, credentials) lives outside this service; handlers only
// receive a verified identity and role.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
