package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/personnel-api/internal/domain/entity"
	"github.com/jhoicas/personnel-api/internal/domain/repository"
	"github.com/jhoicas/personnel-api/pkg/logger"
	"github.com/jhoicas/personnel-api/pkg/password"
)

// Mailer es el puerto de envío del correo de reset.
type Mailer interface {
	Send(user *entity.User, plaintextPassword string) error
}

// ResetStatus es el resultado etiquetado de un intento de reset; los callers
// hacen match sobre él en lugar de capturar tipos de error.
type ResetStatus int

// Resultados posibles de un reset.
const (
	ResetOK ResetStatus = iota
	ResetBadRequest
	ResetNotFound
	ResetMailFailed
	ResetError
)

// ResetOutcome describe el resultado de un reset. Err solo está presente en
// los resultados de fallo; nunca transporta datos sensibles.
type ResetOutcome struct {
	Status ResetStatus
	Err    error
}

// PasswordResetWorkflow orquesta el reset de contraseña: lookup, rotación de
// credenciales, notificación por correo y compensación ante fallo del envío.
//
// Es una saga de dos pasos con una acción compensatoria: la escritura de la
// nueva credencial es el punto de no retorno; si el correo falla se escribe
// de vuelta la credencial anterior. La compensación no es atómica con el
// fallo original: si también falla, queda una contraseña válida que el
// usuario nunca recibió — riesgo aceptado, se registra y no se reintenta.
type PasswordResetWorkflow struct {
	users  repository.UserRepository
	mailer Mailer
	gen    password.Generator
	log    *logger.Logger
}

// NewPasswordResetWorkflow construye el workflow.
func NewPasswordResetWorkflow(users repository.UserRepository, mailer Mailer, gen password.Generator, log *logger.Logger) *PasswordResetWorkflow {
	if log == nil {
		log = logger.New(logger.Config{Level: "error"})
	}
	return &PasswordResetWorkflow{users: users, mailer: mailer, gen: gen, log: log}
}

// Reset ejecuta el workflow completo, estrictamente secuencial.
func (w *PasswordResetWorkflow) Reset(ctx context.Context, login string) ResetOutcome {
	if strings.TrimSpace(login) == "" {
		return ResetOutcome{Status: ResetBadRequest, Err: fmt.Errorf("login en blanco")}
	}

	user, err := w.users.GetByLogin(ctx, login)
	if err != nil {
		return ResetOutcome{Status: ResetError, Err: err}
	}
	if user == nil {
		return ResetOutcome{Status: ResetNotFound}
	}

	newPassword, err := w.gen.Random()
	if err != nil {
		return ResetOutcome{Status: ResetError, Err: err}
	}
	newSalt, err := w.gen.RandomSalt()
	if err != nil {
		return ResetOutcome{Status: ResetError, Err: err}
	}
	hashed := w.gen.Hash(newPassword, newSalt)

	// Punto de no retorno para la credencial almacenada.
	if err := w.users.SetPassword(ctx, user.ID, hashed, newSalt); err != nil {
		return ResetOutcome{Status: ResetError, Err: err}
	}

	if err := w.mailer.Send(user, newPassword); err != nil {
		w.log.Debug().Err(err).Int("user_id", user.ID).
			Msg("falló el envío del correo, restaurando credencial anterior")

		// Compensación: volver a la credencial previa al reset.
		if compErr := w.users.SetPassword(ctx, user.ID, user.HashedPass, user.Salt); compErr != nil {
			w.log.Error().Err(compErr).Int("user_id", user.ID).
				Msg("falló la compensación; la credencial almacenada quedó rotada sin notificar")
		}
		return ResetOutcome{Status: ResetMailFailed, Err: err}
	}

	return ResetOutcome{Status: ResetOK}
}
