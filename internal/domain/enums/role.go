package enums

import "strings"

// Role tags one admin account per extracurricular, plus the super admin
// who manages everything.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RolePramuka    Role = "admin_pramuka"
	RolePaskibra   Role = "admin_paskibra"
	RoleFutsal     Role = "admin_futsal"
	RoleBasket     Role = "admin_basket"
	RoleSilat      Role = "admin_silat"
	RoleMusik      Role = "admin_musik"
	RoleTari       Role = "admin_tari"
	RoleKIR        Role = "admin_kir"
)

var allRoles = []Role{
	RoleSuperAdmin,
	RolePramuka,
	RolePaskibra,
	RoleFutsal,
	RoleBasket,
	RoleSilat,
	RoleMusik,
	RoleTari,
	RoleKIR,
}

func ParseRole(value string) (Role, bool) {
	candidate := Role(strings.TrimSpace(strings.ToLower(value)))
	for _, role := range allRoles {
		if role == candidate {
			return role, true
		}
	}
	return "", false
}

func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

func RoleNames() []string {
	names := make([]string, 0, len(allRoles))
	for _, role := range allRoles {
		names = append(names, string(role))
	}
	return names
}
