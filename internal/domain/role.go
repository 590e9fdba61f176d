package domain

import (
	"fmt"
	"strings"
)

// Role is the user type. Lower ids carry higher precedence.
type Role int

const (
	RoleSuperAdmin Role = 1
	RoleAdmin      Role = 2
	RoleUser       Role = 3
)

var roleNames = map[Role]string{
	RoleSuperAdmin: "SUPERADMIN",
	RoleAdmin:      "ADMIN",
	RoleUser:       "USER",
}

// Roles lists every role from highest to lowest precedence.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleUser}
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ROLE(%d)", int(r))
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// AtLeast reports whether r has the same or higher precedence than other.
func (r Role) AtLeast(other Role) bool {
	return r.Valid() && r <= other
}

func ParseRole(name string) (Role, error) {
	for role, n := range roleNames {
		if strings.EqualFold(n, name) {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", name)
}
