package password

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/crypto/pbkdf2"
)

// Alfabeto sin caracteres ambiguos (sin 0/O, 1/l/I) para contraseñas
// que viajan por correo en texto plano.
const charset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const (
	// DefaultLength largo de una contraseña generada.
	DefaultLength = 14
	// SaltLength largo del salt generado.
	SaltLength = 10

	pbkdf2Iterations = 4096
	pbkdf2KeyLen     = 64
)

// Generator genera contraseñas aleatorias y calcula hashes con salt.
// Es una interfaz para que el workflow de reset se pruebe con una
// implementación determinista.
type Generator interface {
	Random() (string, error)
	RandomSalt() (string, error)
	Hash(plain, salt string) string
}

// Password implementación de Generator sobre crypto/rand y PBKDF2-SHA512.
type Password struct{}

var _ Generator = Password{}

// New construye el generador por defecto.
func New() Password {
	return Password{}
}

// Random genera una contraseña aleatoria de largo por defecto.
func (Password) Random() (string, error) {
	return randomString(DefaultLength)
}

// RandomSalt genera un salt aleatorio.
func (Password) RandomSalt() (string, error) {
	return randomString(SaltLength)
}

// RandomN genera una cadena aleatoria del largo indicado.
func (Password) RandomN(n int) (string, error) {
	return randomString(n)
}

// Hash deriva el hash de una contraseña con su salt (PBKDF2-SHA512, hex).
// Determinista: misma entrada, mismo resultado.
func (Password) Hash(plain, salt string) string {
	key := pbkdf2.Key([]byte(plain), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha512.New)
	return hex.EncodeToString(key)
}

func randomString(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("largo inválido: %d", n)
	}
	out := make([]byte, n)
	max := big.NewInt(int64(len(charset)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generar aleatorio: %w", err)
		}
		out[i] = charset[idx.Int64()]
	}
	return string(out), nil
}
