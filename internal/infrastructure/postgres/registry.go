package postgres

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/personnel-api/internal/domain"
	"github.com/jhoicas/personnel-api/internal/domain/repository"
	"github.com/jhoicas/personnel-api/pkg/config"
)

// BackendType identifica la implementación de almacén configurada.
type BackendType string

// Backends soportados.
const (
	BackendPostgres BackendType = "postgres"
)

// ParseBackendType convierte un string a BackendType sin distinguir mayúsculas.
func ParseBackendType(value string) (BackendType, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(BackendPostgres):
		return BackendPostgres, true
	}
	return "", false
}

// Registry posee las instancias de repositorio del proceso, construidas a
// partir de configuración validada y pasadas por referencia a los handlers.
// Reemplaza el cache global implícito: cambiar de backend es una llamada
// explícita de reconfiguración, no una invalidación escondida.
//
// El mutex se toma solo al construir, reconfigurar o resetear; nunca está en
// el camino caliente de una petición ya servida por un repositorio.
type Registry struct {
	mu      sync.Mutex
	backend BackendType
	manager *Manager

	users     repository.UserRepository
	companies repository.CompanyRepository
	roles     repository.RoleRepository
}

// NewRegistry valida el tipo de backend configurado y construye el registry.
// Un tipo no soportado es un error de configuración fatal, no se reintenta.
func NewRegistry(cfg config.DBConfig) (*Registry, error) {
	backend, ok := ParseBackendType(cfg.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrBackendType, cfg.Type)
	}
	return &Registry{
		backend: backend,
		manager: NewManager(cfg),
	}, nil
}

// Users devuelve el repositorio de usuarios del backend configurado,
// construyéndolo y cacheándolo en el primer uso.
func (r *Registry) Users() repository.UserRepository {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.users == nil {
		r.users = NewUserRepository(r.manager)
	}
	return r.users
}

// Companies devuelve el repositorio de empresas del backend configurado.
func (r *Registry) Companies() repository.CompanyRepository {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.companies == nil {
		r.companies = NewCompanyRepository(r.manager)
	}
	return r.companies
}

// Roles devuelve el repositorio de roles del backend configurado.
func (r *Registry) Roles() repository.RoleRepository {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.roles == nil {
		r.roles = NewRoleRepository(r.manager)
	}
	return r.roles
}

// Backend devuelve el tipo de backend vigente.
func (r *Registry) Backend() BackendType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.backend
}

// Reconfigure cambia el tipo de backend. Si el tipo cambia, todos los
// repositorios cacheados se invalidan atómicamente y el manager de
// conexiones se resetea antes de servir el primero nuevo.
func (r *Registry) Reconfigure(backendType string) error {
	backend, ok := ParseBackendType(backendType)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrBackendType, backendType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if backend == r.backend {
		return nil
	}
	r.dropCaches()
	r.manager.Reset()
	r.backend = backend
	return nil
}

// Reset invalida todos los repositorios cacheados y resetea el manager de
// conexiones; el siguiente uso reconstruye todo desde la configuración vigente.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dropCaches()
	r.manager.Reset()
}

// dropCaches descarta los tres repositorios a la vez. Requiere r.mu tomado.
func (r *Registry) dropCaches() {
	r.users = nil
	r.companies = nil
	r.roles = nil
}

// Manager expone el manager de conexiones (health checks, cierre ordenado).
func (r *Registry) Manager() *Manager {
	return r.manager
}
