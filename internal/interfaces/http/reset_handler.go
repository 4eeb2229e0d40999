package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/personnel-api/internal/application/auth"
	"github.com/jhoicas/personnel-api/internal/application/dto"
)

// PasswordResetter es el contrato que el handler necesita del workflow.
type PasswordResetter interface {
	Reset(ctx context.Context, login string) auth.ResetOutcome
}

// ResetHandler expone el reinicio de contraseña autoservicio.
type ResetHandler struct {
	resetter PasswordResetter
}

// NewResetHandler construye el handler de reinicio de contraseña.
func NewResetHandler(resetter PasswordResetter) *ResetHandler {
	return &ResetHandler{resetter: resetter}
}

// Reset godoc
// @Summary      Reiniciar contraseña por login o email
// @Description  Genera una contraseña nueva y la envía por correo. Si el
// @Description  envío falla, se intenta restaurar la contraseña anterior.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        j_username  formData  string  true  "login o email del usuario"
// @Success      200  {object}  dto.ResetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /login/reset [post]
func (h *ResetHandler) Reset(c *fiber.Ctx) error {
	login := c.FormValue("j_username")

	out := h.resetter.Reset(c.Context(), login)
	switch out.Status {
	case auth.ResetOK:
		return c.JSON(dto.ResetResponse{
			Success: true,
			Title:   "Password Reset",
			Msg:     "Se envió una contraseña nueva a tu correo.",
		})
	case auth.ResetBadRequest:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "j_username es requerido"})
	case auth.ResetNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	case auth.ResetMailFailed:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "MAIL_FAILED", Message: "no se pudo enviar el correo con la nueva contraseña"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
