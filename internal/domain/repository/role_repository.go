package repository

import (
	"context"

	"github.com/jhoicas/personnel-api/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para la membresía de roles.
type RoleRepository interface {
	// Get devuelve los roles de un usuario, ordenados.
	Get(ctx context.Context, userID int) ([]entity.Role, error)

	// GetForUsers devuelve los roles de varios usuarios en una sola consulta,
	// agrupados por id. Un usuario sin roles simplemente no aparece en el mapa.
	GetForUsers(ctx context.Context, userIDs []int) (map[int][]entity.Role, error)

	// Add asigna roles a un usuario. Asignar un rol ya presente es un no-op.
	Add(ctx context.Context, userID int, roles ...entity.Role) error

	// Delete quita roles de un usuario.
	Delete(ctx context.Context, userID int, roles ...entity.Role) error
}
