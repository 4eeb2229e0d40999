package entity

import "strings"

// Role describe la categoría de personal de una cuenta.
type Role string

// Conjunto cerrado de roles.
const (
	// RoleAdmin es un administrador del sistema.
	RoleAdmin Role = "ADMIN"
	// RoleUser es un usuario con cuenta.
	RoleUser Role = "USER"
)

// Roles devuelve todos los roles válidos en orden estable.
func Roles() []Role {
	return []Role{RoleAdmin, RoleUser}
}

// ParseRole convierte un string a Role sin distinguir mayúsculas.
// Un valor desconocido devuelve ok=false; no es un error por sí mismo.
func ParseRole(value string) (Role, bool) {
	for _, role := range Roles() {
		if strings.EqualFold(string(role), strings.TrimSpace(value)) {
			return role, true
		}
	}
	return "", false
}

// String implementa fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
