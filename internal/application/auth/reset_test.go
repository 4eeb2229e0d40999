package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/personnel-api/internal/application/auth"
	"github.com/jhoicas/personnel-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeUserRepo guarda un único usuario en memoria y registra las escrituras
// de credenciales para poder verificar la compensación.
type fakeUserRepo struct {
	user *entity.User

	setPasswordCalls []credentialWrite
	setPasswordSeen  int
	failOnCall       int // número de llamada a SetPassword que falla (1-based, 0 = nunca)
	getByLoginErr    error
}

type credentialWrite struct {
	id         int
	hashedPass string
	salt       string
}

func (f *fakeUserRepo) GetByLogin(_ context.Context, login string) (*entity.User, error) {
	if f.getByLoginErr != nil {
		return nil, f.getByLoginErr
	}
	if f.user == nil || f.user.Login != login {
		return nil, nil
	}
	clone := *f.user
	return &clone, nil
}

func (f *fakeUserRepo) Get(context.Context, int, ...entity.Enrichment) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetAll(context.Context, ...entity.Enrichment) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Add(context.Context, ...*entity.User) error    { return nil }
func (f *fakeUserRepo) Update(context.Context, ...*entity.User) error { return nil }
func (f *fakeUserRepo) Delete(context.Context, ...int) error          { return nil }

func (f *fakeUserRepo) SetPassword(_ context.Context, id int, hashedPass, salt string) error {
	f.setPasswordSeen++
	if f.failOnCall == f.setPasswordSeen {
		return errors.New("almacén no disponible")
	}
	f.setPasswordCalls = append(f.setPasswordCalls, credentialWrite{id, hashedPass, salt})
	f.user.HashedPass = hashedPass
	f.user.Salt = salt
	return nil
}

// fakeMailer registra los envíos y puede fallar a voluntad.
type fakeMailer struct {
	sent []string // contraseñas en texto plano recibidas
	err  error
}

func (f *fakeMailer) Send(_ *entity.User, plaintextPassword string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, plaintextPassword)
	return nil
}

// fixedGenerator produce valores deterministas para poder asertar sobre las
// credenciales escritas.
type fixedGenerator struct{}

func (fixedGenerator) Random() (string, error)     { return "new-password", nil }
func (fixedGenerator) RandomSalt() (string, error) { return "new-salt", nil }
func (fixedGenerator) Hash(plain, salt string) string {
	return "hashed-" + plain + "-" + salt
}

func storedUser() *entity.User {
	u := entity.NewUser()
	u.ID = 7
	u.Login = "jdoe"
	u.Email = "jdoe@example.com"
	u.FirstName = "John"
	u.LastName = "Doe"
	u.HashedPass = "hashed"
	u.Salt = "salt"
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del workflow
// ──────────────────────────────────────────────────────────────────────────────

func TestReset_RotaCredencialYNotifica(t *testing.T) {
	repo := &fakeUserRepo{user: storedUser()}
	mailer := &fakeMailer{}
	wf := auth.NewPasswordResetWorkflow(repo, mailer, fixedGenerator{}, nil)

	out := wf.Reset(context.Background(), "jdoe")

	assert.Equal(t, auth.ResetOK, out.Status)
	assert.NoError(t, out.Err)

	// La credencial almacenada es la nueva, hasheada con el salt nuevo.
	assert.Equal(t, "hashed-new-password-new-salt", repo.user.HashedPass)
	assert.Equal(t, "new-salt", repo.user.Salt)

	// El correo lleva la contraseña en texto plano, no el hash.
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "new-password", mailer.sent[0])
}

func TestReset_LoginEnBlanco(t *testing.T) {
	repo := &fakeUserRepo{user: storedUser()}
	wf := auth.NewPasswordResetWorkflow(repo, &fakeMailer{}, fixedGenerator{}, nil)

	out := wf.Reset(context.Background(), "   ")

	assert.Equal(t, auth.ResetBadRequest, out.Status)
	assert.Empty(t, repo.setPasswordCalls, "un login en blanco no debe tocar el almacén")
}

func TestReset_UsuarioNoExiste(t *testing.T) {
	repo := &fakeUserRepo{user: storedUser()}
	mailer := &fakeMailer{}
	wf := auth.NewPasswordResetWorkflow(repo, mailer, fixedGenerator{}, nil)

	out := wf.Reset(context.Background(), "desconocido")

	assert.Equal(t, auth.ResetNotFound, out.Status)
	assert.Empty(t, repo.setPasswordCalls)
	assert.Empty(t, mailer.sent)
	assert.Equal(t, "hashed", repo.user.HashedPass, "la credencial no debe cambiar")
}

func TestReset_FalloDeCorreoCompensa(t *testing.T) {
	repo := &fakeUserRepo{user: storedUser()}
	mailer := &fakeMailer{err: errors.New("smtp caído")}
	wf := auth.NewPasswordResetWorkflow(repo, mailer, fixedGenerator{}, nil)

	out := wf.Reset(context.Background(), "jdoe")

	assert.Equal(t, auth.ResetMailFailed, out.Status)
	assert.Error(t, out.Err)

	// Dos escrituras: la rotación y la compensación que restaura la original.
	require.Len(t, repo.setPasswordCalls, 2)
	assert.Equal(t, credentialWrite{7, "hashed-new-password-new-salt", "new-salt"}, repo.setPasswordCalls[0])
	assert.Equal(t, credentialWrite{7, "hashed", "salt"}, repo.setPasswordCalls[1])

	// El estado final es la credencial previa al reset.
	assert.Equal(t, "hashed", repo.user.HashedPass)
	assert.Equal(t, "salt", repo.user.Salt)
}

func TestReset_FalloDeCompensacionNoEnmascara(t *testing.T) {
	// La primera escritura (rotación) pasa; la segunda (compensación) falla.
	repo := &fakeUserRepo{user: storedUser(), failOnCall: 2}
	mailer := &fakeMailer{err: errors.New("smtp caído")}
	wf := auth.NewPasswordResetWorkflow(repo, mailer, fixedGenerator{}, nil)

	out := wf.Reset(context.Background(), "jdoe")

	// El resultado sigue siendo el fallo de correo; la compensación fallida
	// solo se registra en el log.
	assert.Equal(t, auth.ResetMailFailed, out.Status)
	require.Len(t, repo.setPasswordCalls, 1, "solo la rotación llegó a escribirse")
	assert.Equal(t, "hashed-new-password-new-salt", repo.user.HashedPass,
		"la credencial queda rotada sin notificar")
}

func TestReset_FalloDeLecturaEsError(t *testing.T) {
	repo := &fakeUserRepo{user: storedUser(), getByLoginErr: errors.New("conexión caída")}
	wf := auth.NewPasswordResetWorkflow(repo, &fakeMailer{}, fixedGenerator{}, nil)

	out := wf.Reset(context.Background(), "jdoe")

	assert.Equal(t, auth.ResetError, out.Status)
	assert.Error(t, out.Err)
}

func TestReset_FalloDeEscrituraInicialEsError(t *testing.T) {
	repo := &fakeUserRepo{user: storedUser(), failOnCall: 1}
	mailer := &fakeMailer{}
	wf := auth.NewPasswordResetWorkflow(repo, mailer, fixedGenerator{}, nil)

	out := wf.Reset(context.Background(), "jdoe")

	assert.Equal(t, auth.ResetError, out.Status)
	assert.Empty(t, mailer.sent, "si la rotación falla no se envía correo")
	assert.Equal(t, "hashed", repo.user.HashedPass)
}
