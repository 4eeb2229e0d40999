package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/personnel-api/internal/domain"
	"github.com/jhoicas/personnel-api/internal/domain/entity"
	"github.com/jhoicas/personnel-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	manager *Manager
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(manager *Manager) *UserRepo {
	return &UserRepo{manager: manager}
}

func scanUser(row pgx.Row, includePass bool) (*entity.User, error) {
	var u entity.User
	var err error
	if includePass {
		err = row.Scan(&u.ID, &u.Login, &u.HashedPass, &u.Salt, &u.Email,
			&u.FirstName, &u.LastName, &u.Active)
	} else {
		err = row.Scan(&u.ID, &u.Login, &u.Email, &u.FirstName, &u.LastName, &u.Active)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByLogin busca una cuenta activa por login exacto o email sin distinguir
// mayúsculas. Incluye hashed_pass y salt para los callers de autenticación.
func (r *UserRepo) GetByLogin(ctx context.Context, login string) (*entity.User, error) {
	if strings.TrimSpace(login) == "" {
		return nil, fmt.Errorf("%w: login en blanco", domain.ErrInvalidInput)
	}

	query := `
		SELECT id, login, hashed_pass, salt, email, first_name, last_name, active
		FROM users WHERE active = TRUE AND (login = $1 OR LOWER(email) = LOWER($1))`

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	u, err := scanUser(conn.QueryRow(ctx, query, login), true)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by login: %w", err)
	}
	return u, nil
}

// Get obtiene un usuario por id, sin campos de credenciales.
func (r *UserRepo) Get(ctx context.Context, id int, enrichments ...entity.Enrichment) (*entity.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id de usuario inválido", domain.ErrInvalidInput)
	}

	query := `
		SELECT id, login, email, first_name, last_name, active
		FROM users WHERE id = $1`

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	u, err := scanUser(conn.QueryRow(ctx, query, id), false)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	if err := enrichUsers(ctx, conn, []*entity.User{u}, enrichments); err != nil {
		return nil, err
	}
	return u, nil
}

// GetAll obtiene todos los usuarios en el orden canónico, sin credenciales.
func (r *UserRepo) GetAll(ctx context.Context, enrichments ...entity.Enrichment) ([]*entity.User, error) {
	query := `
		SELECT id, login, email, first_name, last_name, active
		FROM users
		ORDER BY active DESC, last_name, first_name, login, id, email`

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows, false)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	rows.Close()

	if err := enrichUsers(ctx, conn, users, enrichments); err != nil {
		return nil, err
	}
	return users, nil
}

// Add inserta usuarios y asigna el id generado sobre cada entidad pasada.
// El id debe estar ausente (cero) antes de la llamada; es la señal de "nuevo".
//
// Las filas se insertan una a una sobre la misma conexión, sin transacción
// que abarque el lote: si una fila posterior viola un constraint, las filas
// anteriores quedan aplicadas.
func (r *UserRepo) Add(ctx context.Context, users ...*entity.User) error {
	if len(users) == 0 {
		return nil
	}
	for _, u := range users {
		if err := u.Validate(); err != nil {
			return err
		}
		if u.ID != 0 {
			return fmt.Errorf("%w: el id ya está asignado (%d)", domain.ErrInvalidInput, u.ID)
		}
		if strings.TrimSpace(u.HashedPass) == "" {
			return fmt.Errorf("%w: hash de contraseña en blanco", domain.ErrInvalidInput)
		}
		if strings.TrimSpace(u.Salt) == "" {
			return fmt.Errorf("%w: salt en blanco", domain.ErrInvalidInput)
		}
	}

	query := `
		INSERT INTO users (login, hashed_pass, salt, email, first_name, last_name, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, u := range users {
		u.Normalize()
		err := conn.QueryRow(ctx, query,
			u.Login, u.HashedPass, u.Salt, u.Email, u.FirstName, u.LastName, u.Active,
		).Scan(&u.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: login o email ya registrado: %v", domain.ErrDuplicate, err)
			}
			return fmt.Errorf("insert user: %w", err)
		}
	}
	return nil
}

// Update reescribe los campos mutables por id. Nunca toca hashed_pass ni salt.
// Un id inexistente afecta cero filas y no es un error.
func (r *UserRepo) Update(ctx context.Context, users ...*entity.User) error {
	if len(users) == 0 {
		return nil
	}
	for _, u := range users {
		if u.ID <= 0 {
			return fmt.Errorf("%w: id de usuario requerido", domain.ErrInvalidInput)
		}
		if err := u.Validate(); err != nil {
			return err
		}
	}

	// hashed_pass y salt no se actualizan por este camino.
	query := `
		UPDATE users SET login = $2, email = $3, first_name = $4, last_name = $5, active = $6
		WHERE id = $1`

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, u := range users {
		u.Normalize()
		_, err := conn.Exec(ctx, query,
			u.ID, u.Login, u.Email, u.FirstName, u.LastName, u.Active,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: login o email ya registrado: %v", domain.ErrDuplicate, err)
			}
			return fmt.Errorf("update user: %w", err)
		}
	}
	return nil
}

// SetPassword es el único camino que muta credenciales.
func (r *UserRepo) SetPassword(ctx context.Context, id int, hashedPass, salt string) error {
	if id <= 0 {
		return fmt.Errorf("%w: id de usuario inválido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(hashedPass) == "" {
		return fmt.Errorf("%w: hash de contraseña en blanco", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(salt) == "" {
		return fmt.Errorf("%w: salt en blanco", domain.ErrInvalidInput)
	}

	query := `UPDATE users SET hashed_pass = $2, salt = $3 WHERE id = $1`

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, query, id, hashedPass, salt); err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	return nil
}

// Delete elimina usuarios por id. Un id inexistente es un no-op silencioso.
func (r *UserRepo) Delete(ctx context.Context, ids ...int) error {
	if len(ids) == 0 {
		return nil
	}

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, id := range ids {
		if _, err := conn.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
	}
	return nil
}

// enrichUsers adjunta los datos auxiliares pedidos sobre la misma conexión
// que cargó el resultado. Un token no soportado hace fallar toda la llamada.
func enrichUsers(ctx context.Context, q querier, users []*entity.User, enrichments []entity.Enrichment) error {
	if len(users) == 0 || len(enrichments) == 0 {
		return nil
	}
	for _, e := range enrichments {
		switch e {
		case entity.EnrichRoles:
			if err := enrichWithRoles(ctx, q, users); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", domain.ErrInvalidEnrichment, e)
		}
	}
	return nil
}

// enrichWithRoles recolecta los ids del resultado, lanza una sola consulta
// agrupada y mezcla los roles por id. Un usuario sin filas conserva su
// conjunto de roles vacío; eso nunca es un error.
func enrichWithRoles(ctx context.Context, q querier, users []*entity.User) error {
	byID := make(map[int]*entity.User, len(users))
	ids := make([]int, 0, len(users))
	for _, u := range users {
		if u.ID > 0 {
			byID[u.ID] = u
			ids = append(ids, u.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	roleMap, err := rolesForUsers(ctx, q, ids)
	if err != nil {
		return err
	}
	for id, roles := range roleMap {
		if u := byID[id]; u != nil {
			u.SetRoles(roles...)
		}
	}
	return nil
}
