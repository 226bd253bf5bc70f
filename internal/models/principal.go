package models

// Principal identifies an account that can hold roles and own tickets.
type Principal string

// IsZero reports whether the principal is the empty (zero) principal.
func (p Principal) IsZero() bool {
	return p == ""
}

// Role represents a named capability grantable to principals.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleMinter    Role = "MINTER"
	RoleValidator Role = "VALIDATOR"
)

// Valid reports whether the role is one of the known capabilities.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMinter, RoleValidator:
		return true
	default:
		return false
	}
}
