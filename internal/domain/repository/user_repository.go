package repository

import (
	"context"

	"github.com/jhoicas/personnel-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
//
// Convenciones: "no encontrado" se devuelve como (nil, nil), distinguido de
// error. Las violaciones de constraint único se reportan envolviendo
// domain.ErrDuplicate. Update y Delete sobre un id inexistente son no-ops
// silenciosos (cero filas afectadas).
type UserRepository interface {
	// GetByLogin busca una cuenta activa por login exacto o por email sin
	// distinguir mayúsculas. Incluye HashedPass y Salt porque lo consumen
	// los callers de autenticación. Login en blanco es ErrInvalidInput.
	GetByLogin(ctx context.Context, login string) (*entity.User, error)

	// Get obtiene un usuario por id, sin campos de credenciales.
	Get(ctx context.Context, id int, enrichments ...entity.Enrichment) (*entity.User, error)

	// GetAll obtiene todos los usuarios en el orden canónico, sin campos de
	// credenciales.
	GetAll(ctx context.Context, enrichments ...entity.Enrichment) ([]*entity.User, error)

	// Add inserta usuarios y asigna el id generado sobre cada entidad.
	// El id debe estar ausente (cero) antes de la llamada.
	Add(ctx context.Context, users ...*entity.User) error

	// Update reescribe los campos mutables por id. Nunca toca
	// hashed_pass ni salt.
	Update(ctx context.Context, users ...*entity.User) error

	// SetPassword es el único camino que muta credenciales.
	SetPassword(ctx context.Context, id int, hashedPass, salt string) error

	// Delete elimina usuarios por id.
	Delete(ctx context.Context, ids ...int) error
}
