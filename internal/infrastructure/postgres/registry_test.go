package postgres_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/personnel-api/internal/domain"
	"github.com/jhoicas/personnel-api/internal/infrastructure/postgres"
	"github.com/jhoicas/personnel-api/pkg/config"
)

func testDBConfig() config.DBConfig {
	return config.DBConfig{
		Type:     "postgres",
		Host:     "localhost",
		Port:     5432,
		User:     "test",
		Password: "test",
		DBName:   "personnel_test",
		SSLMode:  "disable",
	}
}

func TestNewRegistry_BackendDesconocido(t *testing.T) {
	cfg := testDBConfig()
	cfg.Type = "oracle"

	_, err := postgres.NewRegistry(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBackendType),
		"un backend desconocido debe fallar en la construcción, no al primer uso")
}

func TestNewRegistry_TipoCaseInsensitive(t *testing.T) {
	cfg := testDBConfig()
	cfg.Type = "Postgres"

	reg, err := postgres.NewRegistry(cfg)
	require.NoError(t, err)
	assert.Equal(t, postgres.BackendPostgres, reg.Backend())
}

func TestRegistry_RepositoriosCacheados(t *testing.T) {
	reg, err := postgres.NewRegistry(testDBConfig())
	require.NoError(t, err)

	// La construcción es perezosa pero la instancia devuelta es estable.
	assert.Same(t, reg.Users(), reg.Users())
	assert.Same(t, reg.Companies(), reg.Companies())
	assert.Same(t, reg.Roles(), reg.Roles())
}

func TestRegistry_ReconfigureMismoTipoEsNoOp(t *testing.T) {
	reg, err := postgres.NewRegistry(testDBConfig())
	require.NoError(t, err)

	users := reg.Users()
	require.NoError(t, reg.Reconfigure("postgres"))

	assert.Same(t, users, reg.Users(),
		"reconfigurar al mismo backend no debe descartar los repositorios")
}

func TestRegistry_ReconfigureTipoDesconocido(t *testing.T) {
	reg, err := postgres.NewRegistry(testDBConfig())
	require.NoError(t, err)

	users := reg.Users()
	err = reg.Reconfigure("mongodb")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBackendType))

	assert.Same(t, users, reg.Users(),
		"un reconfigure fallido no debe descartar los repositorios")
}

func TestRegistry_ResetDescartaCaches(t *testing.T) {
	reg, err := postgres.NewRegistry(testDBConfig())
	require.NoError(t, err)

	users := reg.Users()
	companies := reg.Companies()
	roles := reg.Roles()

	reg.Reset()

	assert.NotSame(t, users, reg.Users())
	assert.NotSame(t, companies, reg.Companies())
	assert.NotSame(t, roles, reg.Roles())
}

func TestParseBackendType(t *testing.T) {
	bt, ok := postgres.ParseBackendType(" POSTGRES ")
	require.True(t, ok)
	assert.Equal(t, postgres.BackendPostgres, bt)

	_, ok = postgres.ParseBackendType("sqlite")
	assert.False(t, ok)
}
