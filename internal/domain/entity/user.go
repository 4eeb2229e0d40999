package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/personnel-api/internal/domain"
)

// User representa un usuario del sistema.
//
// El ID lo asigna el almacén exactamente una vez al insertar y no cambia
// después. HashedPass y Salt nunca participan en igualdad ni en orden.
// Los roles son un snapshot materializado, recuperado en la misma lectura
// lógica que el usuario; nunca se cargan de forma perezosa.
type User struct {
	ID         int
	Login      string
	HashedPass string
	Salt       string
	Email      string
	FirstName  string
	LastName   string
	Active     bool
	Roles      []Role // membresía única, se mantiene ordenada
}

// NewUser construye un usuario sin persistir (ID ausente, cuenta activa).
func NewUser() *User {
	return &User{Active: true}
}

// Validate verifica los invariantes de campo antes de persistir.
// Falla rápido con ErrInvalidInput; ninguna entidad se persiste con un
// campo requerido en blanco.
func (u *User) Validate() error {
	if u == nil {
		return fmt.Errorf("%w: usuario nulo", domain.ErrInvalidInput)
	}
	if u.ID < 0 {
		return fmt.Errorf("%w: id negativo", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(u.Login) == "" {
		return fmt.Errorf("%w: login en blanco", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: email en blanco", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(u.FirstName) == "" {
		return fmt.Errorf("%w: nombre en blanco", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(u.LastName) == "" {
		return fmt.Errorf("%w: apellido en blanco", domain.ErrInvalidInput)
	}
	return nil
}

// Normalize recorta espacios en los campos de texto.
func (u *User) Normalize() {
	u.Login = strings.TrimSpace(u.Login)
	u.HashedPass = strings.TrimSpace(u.HashedPass)
	u.Salt = strings.TrimSpace(u.Salt)
	u.Email = strings.TrimSpace(u.Email)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
}

// FullName devuelve nombre y apellido.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// SetRoles reemplaza los roles de la cuenta. Descarta duplicados y deja la
// lista ordenada.
func (u *User) SetRoles(roles ...Role) *User {
	u.Roles = u.Roles[:0]
	return u.AddRoles(roles...)
}

// AddRoles agrega roles a la cuenta sin duplicar.
func (u *User) AddRoles(roles ...Role) *User {
	for _, role := range roles {
		if role == "" || u.HasRole(role) {
			continue
		}
		u.Roles = append(u.Roles, role)
	}
	sort.Slice(u.Roles, func(i, j int) bool { return u.Roles[i] < u.Roles[j] })
	return u
}

// ClearRoles elimina todos los roles de la cuenta.
func (u *User) ClearRoles() *User {
	u.Roles = nil
	return u
}

// HasRole indica si la cuenta tiene el rol dado.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin indica si la cuenta es administradora del sistema.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// Privileges devuelve las iniciales de los roles, separadas por espacio.
func (u *User) Privileges() string {
	var privs []string
	for _, role := range u.Roles {
		privs = append(privs, string(role[0]))
	}
	return strings.Join(privs, " ")
}

// Equal compara usuarios por identidad y datos visibles.
// HashedPass y Salt quedan fuera deliberadamente.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.ID == other.ID &&
		u.Login == other.Login &&
		u.Email == other.Email &&
		u.FirstName == other.FirstName &&
		u.LastName == other.LastName &&
		u.Active == other.Active
}

// Less define un orden total y determinista para listados estables:
// cuentas activas primero, luego apellido, nombre, login, id y email.
// HashedPass y Salt quedan fuera deliberadamente.
func (u *User) Less(other *User) bool {
	if u.Active != other.Active {
		return u.Active
	}
	if u.LastName != other.LastName {
		return u.LastName < other.LastName
	}
	if u.FirstName != other.FirstName {
		return u.FirstName < other.FirstName
	}
	if u.Login != other.Login {
		return u.Login < other.Login
	}
	if u.ID != other.ID {
		return u.ID < other.ID
	}
	return u.Email < other.Email
}

// SortUsers ordena el slice con el orden canónico de User.Less.
func SortUsers(users []*User) {
	sort.Slice(users, func(i, j int) bool { return users[i].Less(users[j]) })
}
