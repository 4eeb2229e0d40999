package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/personnel-api/internal/domain/entity"
)

// RouterDeps agrupa los handlers y la configuración que la API necesita.
type RouterDeps struct {
	Auth      *AuthHandler
	Reset     *ResetHandler
	Users     *UserHandler
	Companies *CompanyHandler
	JWTSecret string
}

// Router monta todas las rutas de la API. /login y /login/reset son
// públicas; todo lo que cuelga de /admin exige token con rol ADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	app.Post("/login", deps.Auth.Login)
	app.Post("/login/reset", deps.Reset.Reset)

	admin := app.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin.String()))

	admin.Get("/user", deps.Users.List)
	admin.Post("/user", deps.Users.Create)
	admin.Get("/user/:id", deps.Users.GetByID)
	admin.Put("/user/:id", deps.Users.Update)
	admin.Delete("/user/:id", deps.Users.Delete)

	admin.Get("/company", deps.Companies.List)
	admin.Post("/company", deps.Companies.Create)
	admin.Get("/company/:id", deps.Companies.GetByID)
	admin.Delete("/company/:id", deps.Companies.Delete)
}
