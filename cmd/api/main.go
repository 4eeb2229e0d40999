package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/personnel-api/internal/application/auth"
	"github.com/jhoicas/personnel-api/internal/application/usecase"
	"github.com/jhoicas/personnel-api/internal/infrastructure/mail"
	"github.com/jhoicas/personnel-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/personnel-api/internal/interfaces/http"
	"github.com/jhoicas/personnel-api/pkg/config"
	"github.com/jhoicas/personnel-api/pkg/logger"
	"github.com/jhoicas/personnel-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.RunMigrations(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	registry, err := postgres.NewRegistry(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("db_type", cfg.DB.Type).Msg("backend de persistencia no soportado")
	}
	defer registry.Reset()

	userRepo := registry.Users()
	roleRepo := registry.Roles()
	companyRepo := registry.Companies()

	gen := password.New()
	mailer := mail.NewSendResetPasswordEmail(cfg.Email)

	authUC := auth.NewAuthUseCase(userRepo, roleRepo, gen, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	resetWF := auth.NewPasswordResetWorkflow(userRepo, mailer, gen, log)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo, gen)
	companyUC := usecase.NewCompanyUseCase(companyRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Personnel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Auth:      httpRouter.NewAuthHandler(authUC),
		Reset:     httpRouter.NewResetHandler(resetWF),
		Users:     httpRouter.NewUserHandler(userUC),
		Companies: httpRouter.NewCompanyHandler(companyUC),
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
