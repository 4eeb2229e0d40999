package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/personnel-api/internal/domain"
	"github.com/jhoicas/personnel-api/internal/domain/entity"
	"github.com/jhoicas/personnel-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	manager *Manager
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(manager *Manager) *CompanyRepo {
	return &CompanyRepo{manager: manager}
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Active); err != nil {
		return nil, err
	}
	return &c, nil
}

// Get obtiene una empresa por id.
func (r *CompanyRepo) Get(ctx context.Context, id int) (*entity.Company, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id de empresa inválido", domain.ErrInvalidInput)
	}

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	c, err := scanCompany(conn.QueryRow(ctx,
		`SELECT id, name, active FROM companies WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetAll obtiene todas las empresas en orden estable.
func (r *CompanyRepo) GetAll(ctx context.Context) ([]*entity.Company, error) {
	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		`SELECT id, name, active FROM companies ORDER BY active DESC, name, id`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var companies []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// Add inserta empresas y asigna el id generado sobre cada entidad. Mismas
// semánticas de lote que UserRepo.Add: fila a fila, sin transacción global.
func (r *CompanyRepo) Add(ctx context.Context, companies ...*entity.Company) error {
	if len(companies) == 0 {
		return nil
	}
	for _, c := range companies {
		if err := c.Validate(); err != nil {
			return err
		}
		if c.ID != 0 {
			return fmt.Errorf("%w: el id ya está asignado (%d)", domain.ErrInvalidInput, c.ID)
		}
	}

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, c := range companies {
		err := conn.QueryRow(ctx,
			`INSERT INTO companies (name, active) VALUES ($1, $2) RETURNING id`,
			c.Name, c.Active,
		).Scan(&c.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: nombre de empresa ya registrado: %v", domain.ErrDuplicate, err)
			}
			return fmt.Errorf("insert company: %w", err)
		}
	}
	return nil
}

// Update reescribe nombre y estado por id. Un id inexistente es un no-op.
func (r *CompanyRepo) Update(ctx context.Context, companies ...*entity.Company) error {
	if len(companies) == 0 {
		return nil
	}
	for _, c := range companies {
		if c.ID <= 0 {
			return fmt.Errorf("%w: id de empresa requerido", domain.ErrInvalidInput)
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, c := range companies {
		_, err := conn.Exec(ctx,
			`UPDATE companies SET name = $2, active = $3 WHERE id = $1`,
			c.ID, c.Name, c.Active,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: nombre de empresa ya registrado: %v", domain.ErrDuplicate, err)
			}
			return fmt.Errorf("update company: %w", err)
		}
	}
	return nil
}

// Delete elimina empresas por id. Un id inexistente es un no-op silencioso.
func (r *CompanyRepo) Delete(ctx context.Context, ids ...int) error {
	if len(ids) == 0 {
		return nil
	}

	conn, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, id := range ids {
		if _, err := conn.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete company: %w", err)
		}
	}
	return nil
}
