package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/tienda-admin/docs"
	"github.com/jhoicas/tienda-admin/internal/application/usecase"
	"github.com/jhoicas/tienda-admin/internal/domain/shell"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/catalog"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/web"
	httpRouter "github.com/jhoicas/tienda-admin/internal/interfaces/http"
	"github.com/jhoicas/tienda-admin/pkg/config"
	"github.com/jhoicas/tienda-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		App:   cfg.App.Name,
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("catalog", cfg.Catalog.Version).
		Msg("iniciando aplicación")

	// Catálogo: tabla versionada validada al arrancar
	catalogRepo, err := catalog.NewStaticRepository(cfg.Catalog.Version)
	if err != nil {
		log.Fatal().Err(err).Str("component", "catalog").Msg("tabla de catálogo")
	}
	catalogUC := usecase.NewCatalogUseCase(catalogRepo, catalogRepo.BrandRepository())

	// Layout de administración: barra lateral + outlet de vistas hijas
	shellSvc := usecase.NewShellService(usecase.ShellConfig{
		Title: cfg.Shell.Title,
		Offsets: shell.Offsets{
			Wide:   shell.Offset(cfg.Shell.WideOffset),
			Narrow: shell.Offset(cfg.Shell.NarrowOffset),
		},
		IdleTTL: cfg.Shell.IdleTTL(),
		Sidebar: web.NewNavSidebar(httpRouter.AdminTogglePath),
		Outlet:  web.NewRouteOutlet(httpRouter.AdminPrefix, catalogUC),
		Log:     log.Component("shell"),
	})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go shellSvc.RunJanitor(ctx, time.Minute)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if err := httpRouter.MountDocs(app, "./docs", cfg.App.Name); err != nil {
		log.Warn().Err(err).Msg("swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "shells": shellSvc.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
		ShellSvc:  shellSvc,
		Log:       log.Component("http"),
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
