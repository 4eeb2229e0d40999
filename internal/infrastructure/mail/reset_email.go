package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/personnel-api/internal/domain/entity"
	"github.com/jhoicas/personnel-api/pkg/config"
)

// SendResetPasswordEmail envía al usuario su nueva contraseña en texto plano
// por SMTP. Implementa el puerto auth.Mailer.
type SendResetPasswordEmail struct {
	cfg config.EmailConfig
}

// NewSendResetPasswordEmail construye el sender con la configuración SMTP.
func NewSendResetPasswordEmail(cfg config.EmailConfig) *SendResetPasswordEmail {
	return &SendResetPasswordEmail{cfg: cfg}
}

// Send entrega el correo de reset. Cualquier fallo de mensajería se devuelve
// al caller; el workflow decide la compensación.
func (s *SendResetPasswordEmail) Send(user *entity.User, plaintextPassword string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", "Password Reset")
	m.SetBody("text/plain", s.body(user, plaintextPassword))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	d.SSL = s.cfg.UseSSL

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo de reset: %w", err)
	}
	return nil
}

func (s *SendResetPasswordEmail) body(user *entity.User, plaintextPassword string) string {
	text := fmt.Sprintf(
		"Hola %s:\n\n"+
			"La contraseña de la cuenta %q fue restablecida.\n"+
			"Tu nueva contraseña es: %s\n\n"+
			"Te recomendamos cambiarla después de iniciar sesión.\n",
		user.FullName(), user.Login, plaintextPassword,
	)
	if s.cfg.SystemAdmin != "" {
		text += fmt.Sprintf(
			"\nSi tienes algún problema, contacta al administrador del sitio (%s).\n",
			s.cfg.SystemAdmin,
		)
	}
	return text
}
