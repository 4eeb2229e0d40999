package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/personnel-api/pkg/password"
)

func TestRandom_LongitudYAlfabeto(t *testing.T) {
	gen := password.New()

	pass, err := gen.Random()
	require.NoError(t, err)
	assert.Len(t, pass, password.DefaultLength)

	// El alfabeto excluye caracteres ambiguos (0/O, 1/l/I).
	for _, c := range pass {
		assert.NotContains(t, "0O1lI", string(c),
			"la contraseña no debe contener caracteres ambiguos")
	}
}

func TestRandom_NoSeRepite(t *testing.T) {
	gen := password.New()
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		pass, err := gen.Random()
		require.NoError(t, err)
		assert.False(t, seen[pass], "dos llamadas no deben producir la misma contraseña")
		seen[pass] = true
	}
}

func TestRandomSalt_Longitud(t *testing.T) {
	gen := password.New()
	salt, err := gen.RandomSalt()
	require.NoError(t, err)
	assert.Len(t, salt, password.SaltLength)
}

func TestHash_DeterministaPorSalt(t *testing.T) {
	gen := password.New()

	h1 := gen.Hash("secreto", "salt-a")
	h2 := gen.Hash("secreto", "salt-a")
	h3 := gen.Hash("secreto", "salt-b")

	assert.Equal(t, h1, h2, "mismo plain y salt deben producir el mismo hash")
	assert.NotEqual(t, h1, h3, "un salt distinto debe cambiar el hash")
	assert.NotEqual(t, h1, gen.Hash("otro", "salt-a"))
}

func TestHash_FormatoHex(t *testing.T) {
	gen := password.New()
	h := gen.Hash("secreto", "salt")

	// PBKDF2-SHA512 con 64 bytes de clave → 128 caracteres hexadecimales.
	require.Len(t, h, 128)
	assert.Equal(t, strings.ToLower(h), h, "el hash se codifica en hex minúscula")
	for _, c := range h {
		assert.Contains(t, "0123456789abcdef", string(c))
	}
}
