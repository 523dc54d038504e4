package entity

import "time"

// Role categoría de cuenta. Conjunto cerrado: determina el dashboard por
// defecto y el acceso a las vistas.
type Role string

// Roles válidos para User.
const (
	RoleProductOwner Role = "PRODUCT_OWNER"
	RoleScrumMaster  Role = "SCRUM_MASTER"
	RoleDeveloper    Role = "DEVELOPER"
	RoleTester       Role = "TESTER"
	RoleAdmin        Role = "ADMIN"
)

// AllRoles lista los roles del conjunto cerrado (útil para validación y tests).
func AllRoles() []Role {
	return []Role{RoleProductOwner, RoleScrumMaster, RoleDeveloper, RoleTester, RoleAdmin}
}

// Valid reporta si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleProductOwner, RoleScrumMaster, RoleDeveloper, RoleTester, RoleAdmin:
		return true
	}
	return false
}

// User representa una cuenta del sistema (lado servidor).
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
