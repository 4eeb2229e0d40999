package repository

import (
	"context"

	"github.com/jhoicas/personnel-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company.
// Mismas convenciones que UserRepository: (nil, nil) para no encontrado,
// domain.ErrDuplicate en violaciones de unicidad, no-ops silenciosos en
// Update/Delete de ids inexistentes.
type CompanyRepository interface {
	Get(ctx context.Context, id int) (*entity.Company, error)
	GetAll(ctx context.Context) ([]*entity.Company, error)
	Add(ctx context.Context, companies ...*entity.Company) error
	Update(ctx context.Context, companies ...*entity.Company) error
	Delete(ctx context.Context, ids ...int) error
}
