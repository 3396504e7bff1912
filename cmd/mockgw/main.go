package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/shadows/nblb-console/internal/interfaces/mockgw"
	"github.com/shadows/nblb-console/pkg/config"
	"github.com/shadows/nblb-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.MockGW.Addr()).
		Msg("iniciando gateway de desarrollo")

	store := mockgw.NewStore()
	mockgw.Seed(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + " mockgw",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "mockgw"})
	})

	mockgw.Router(app, mockgw.RouterDeps{
		Store:      store,
		JWTSecret:  cfg.MockGW.JWTSecret,
		JWTIssuer:  cfg.MockGW.JWTIssuer,
		ExpMinutes: cfg.MockGW.Expiration,
	})

	go func() {
		if err := app.Listen(cfg.MockGW.Addr()); err != nil {
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

	log.Info().Msg("gateway detenida")
}
