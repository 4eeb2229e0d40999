package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/personnel-api/internal/application/auth"
	"github.com/jhoicas/personnel-api/internal/application/dto"
	apphttp "github.com/jhoicas/personnel-api/internal/interfaces/http"
)

// stubResetter devuelve un resultado fijo y registra el login recibido.
type stubResetter struct {
	outcome auth.ResetOutcome
	login   string
}

func (s *stubResetter) Reset(_ context.Context, login string) auth.ResetOutcome {
	s.login = login
	return s.outcome
}

func buildResetApp(resetter apphttp.PasswordResetter) *fiber.App {
	app := fiber.New()
	app.Post("/login/reset", apphttp.NewResetHandler(resetter).Reset)
	return app
}

// postReset envía el formulario como lo haría la pantalla de login.
func postReset(t *testing.T, app *fiber.App, username string) *http.Response {
	t.Helper()
	form := url.Values{}
	if username != "" {
		form.Set("j_username", username)
	}
	req := httptest.NewRequest(http.MethodPost, "/login/reset", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestResetHandler_Exito(t *testing.T) {
	stub := &stubResetter{outcome: auth.ResetOutcome{Status: auth.ResetOK}}
	app := buildResetApp(stub)

	resp := postReset(t, app, "jdoe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "jdoe", stub.login, "el handler debe pasar j_username tal cual al workflow")

	var body dto.ResetResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "Password Reset", body.Title)
	assert.NotEmpty(t, body.Msg)
}

func TestResetHandler_SinUsername(t *testing.T) {
	stub := &stubResetter{outcome: auth.ResetOutcome{Status: auth.ResetBadRequest}}
	app := buildResetApp(stub)

	resp := postReset(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResetHandler_UsuarioNoExiste(t *testing.T) {
	stub := &stubResetter{outcome: auth.ResetOutcome{Status: auth.ResetNotFound}}
	app := buildResetApp(stub)

	resp := postReset(t, app, "desconocido")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResetHandler_FalloDeCorreo(t *testing.T) {
	stub := &stubResetter{outcome: auth.ResetOutcome{Status: auth.ResetMailFailed}}
	app := buildResetApp(stub)

	resp := postReset(t, app, "jdoe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MAIL_FAILED", body.Code)
	// En el doble fallo documentado la credencial puede quedar rotada, así
	// que el mensaje no puede prometer que la contraseña no cambió.
	assert.NotContains(t, body.Message, "no cambió")
}

func TestResetHandler_ErrorInterno(t *testing.T) {
	stub := &stubResetter{outcome: auth.ResetOutcome{Status: auth.ResetError}}
	app := buildResetApp(stub)

	resp := postReset(t, app, "jdoe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL", body.Code)
}
