package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/personnel-api/internal/domain"
	"github.com/jhoicas/personnel-api/internal/domain/entity"
	"github.com/jhoicas/personnel-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	manager *Manager
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(manager *Manager) *RoleRepo {
	return &RoleRepo{manager: manager}
}

// Get devuelve los roles de un usuario, ordenados.
func (r *RoleRepo) Get(ctx context.Context, userID int) ([]entity.Role, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: id de usuario inválido", domain.ErrInvalidInput)
	}

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	roleMap, err := rolesForUsers(ctx, conn, []int{userID})
	if err != nil {
		return nil, err
	}
	return roleMap[userID], nil
}

// GetForUsers devuelve los roles de varios usuarios en una sola consulta.
func (r *RoleRepo) GetForUsers(ctx context.Context, userIDs []int) (map[int][]entity.Role, error) {
	if len(userIDs) == 0 {
		return map[int][]entity.Role{}, nil
	}

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return rolesForUsers(ctx, conn, userIDs)
}

// Add asigna roles a un usuario. Asignar un rol ya presente es un no-op.
func (r *RoleRepo) Add(ctx context.Context, userID int, roles ...entity.Role) error {
	if userID <= 0 {
		return fmt.Errorf("%w: id de usuario inválido", domain.ErrInvalidInput)
	}
	if len(roles) == 0 {
		return nil
	}

	query := `
		INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
		ON CONFLICT (user_id, role) DO NOTHING`

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, role := range roles {
		if role == "" {
			return fmt.Errorf("%w: rol en blanco", domain.ErrInvalidInput)
		}
		if _, err := conn.Exec(ctx, query, userID, string(role)); err != nil {
			return fmt.Errorf("insert role: %w", err)
		}
	}
	return nil
}

// Delete quita roles de un usuario. Un rol no asignado es un no-op.
func (r *RoleRepo) Delete(ctx context.Context, userID int, roles ...entity.Role) error {
	if userID <= 0 {
		return fmt.Errorf("%w: id de usuario inválido", domain.ErrInvalidInput)
	}
	if len(roles) == 0 {
		return nil
	}

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, role := range roles {
		_, err := conn.Exec(ctx,
			`DELETE FROM user_roles WHERE user_id = $1 AND role = $2`,
			userID, string(role),
		)
		if err != nil {
			return fmt.Errorf("delete role: %w", err)
		}
	}
	return nil
}

// rolesForUsers lanza la consulta agrupada de membresía de roles. La comparte
// RoleRepo con el enrichment de UserRepo para que ambos lean sobre la misma
// conexión que tiene su operación.
func rolesForUsers(ctx context.Context, q querier, userIDs []int) (map[int][]entity.Role, error) {
	rows, err := q.Query(ctx,
		`SELECT user_id, role FROM user_roles WHERE user_id = ANY($1) ORDER BY user_id, role`,
		userIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	out := make(map[int][]entity.Role)
	for rows.Next() {
		var userID int
		var value string
		if err := rows.Scan(&userID, &value); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		// Un valor almacenado que no parsea se descarta; no es un error.
		if role, ok := entity.ParseRole(value); ok {
			out[userID] = append(out[userID], role)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return out, nil
}
