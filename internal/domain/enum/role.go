package enum

// Role is the permission tier of a user. Roles are flat: superadmin may do
// everything including user management, admin may mutate leads and
// franchises, user is read-only on those surfaces.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// IsValid checks if the role is a known value
func (r Role) IsValid() bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RoleUser
}

// In checks membership of the role in a set of allowed roles
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// CanManageUsers reports whether the role may create, edit or delete users
func (r Role) CanManageUsers() bool {
	return r == RoleSuperAdmin
}

// CanMutate reports whether the role may create, edit or delete leads,
// franchises, tasks and communications
func (r Role) CanMutate() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}
