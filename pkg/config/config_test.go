package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/personnel-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.Type)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_EnteroDesdeEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_EnteroMalformadoCaeAlDefault(t *testing.T) {
	t.Setenv("DB_PORT", "cinco-mil")
	t.Setenv("EMAIL_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.DB.Port, "un entero malformado no debe convertirse en 0")
	assert.Equal(t, 465, cfg.Email.Port)
}

func TestDBConfig_ConnectionStringPrefiereURL(t *testing.T) {
	cfg := config.DBConfig{
		DatabaseURL: "postgres://u:p@db:5432/personnel?sslmode=require",
		Host:        "otro-host",
		Port:        5433,
	}
	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())
}

func TestDBConfig_DSNEscapaCredenciales(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "app",
		Password: "p@ss:word",
		DBName:   "personnel",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aword", "la contraseña va URL-encoded en el DSN")
	assert.Contains(t, dsn, "sslmode=disable")
}
