package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/personnel-api/internal/domain"
	"github.com/jhoicas/personnel-api/pkg/config"
)

// Manager administra el pool de conexiones PostgreSQL con alcance por operación.
//
// Cada operación de repositorio adquiere exactamente una conexión para su
// propia duración y la libera en todo camino de salida (defer conn.Release()).
// Ninguna conexión sobrevive a la operación que la adquirió.
type Manager struct {
	mu   sync.Mutex
	cfg  config.DBConfig
	pool *pgxpool.Pool
}

// NewManager construye el manager sin abrir conexiones; el pool se crea en el
// primer Acquire a partir de la configuración vigente.
func NewManager(cfg config.DBConfig) *Manager {
	return &Manager{cfg: cfg}
}

// Acquire entrega una conexión del pool. Falla envolviendo domain.ErrConnection
// cuando el backend no es alcanzable o rechaza las credenciales.
func (m *Manager) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	pool, err := m.getPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}
	return conn, nil
}

// Reset descarta el pool actual; el siguiente Acquire lo reconstruye desde la
// configuración vigente.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pool != nil {
		m.pool.Close()
		m.pool = nil
	}
}

func (m *Manager) getPool(ctx context.Context) (*pgxpool.Pool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pool != nil {
		return m.pool, nil
	}

	poolConfig, err := pgxpool.ParseConfig(m.cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	m.pool = pool
	return m.pool, nil
}
