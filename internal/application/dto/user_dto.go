package dto

import "github.com/jhoicas/personnel-api/internal/domain/entity"

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el use case; el id lo asigna el almacén).
type CreateUserRequest struct {
	Login     string   `json:"login" validate:"required"`
	Password  string   `json:"password" validate:"required,min=8"`
	Email     string   `json:"email" validate:"required,email"`
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name" validate:"required"`
	Active    *bool    `json:"active"` // nil = activa por defecto
	Roles     []string `json:"roles" validate:"dive,oneof=ADMIN USER"`
}

// UpdateUserRequest entrada para actualizar un usuario. Los campos de
// credenciales no existen aquí: update nunca los toca.
type UpdateUserRequest struct {
	Login     string `json:"login" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Active    *bool  `json:"active"`
}

// UserResponse salida de un usuario (sin hash ni salt).
type UserResponse struct {
	ID        int      `json:"id"`
	Login     string   `json:"login"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Active    bool     `json:"active"`
	Roles     []string `json:"roles,omitempty"`
}

// LoginRequest entrada para login (acepta login o email).
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ResetResponse cuerpo de respuesta del reset de contraseña.
// Nunca transporta la contraseña ni el hash.
type ResetResponse struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Msg     string `json:"msg"`
}

// ToUserResponse mapea la entidad a su representación pública.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	roles := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		roles = append(roles, string(role))
	}
	return &UserResponse{
		ID:        u.ID,
		Login:     u.Login,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Active:    u.Active,
		Roles:     roles,
	}
}
