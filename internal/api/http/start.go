package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/shifaalhind/backend/config"
	"github.com/shifaalhind/backend/internal/api/http/router"
	"github.com/shifaalhind/backend/internal/app"
)

func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		router.Module,
		Module,

		// Invoking *fiber.App forces its construction, which registers
		// the Listen/Shutdown lifecycle hooks.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	).Run()
}
