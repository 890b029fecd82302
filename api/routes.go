package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpu-scheduling-simulator/config"
)

// NewApp builds the HTTP application with its middleware and routes.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	SetupRoutes(app, NewSchedulerHandlerImpl(cfg), NewRateLimiter(cfg.RateLimit))
	return app
}

func SetupRoutes(app *fiber.App, handler SchedulerHandler, limiter *RateLimiter) {
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	api := app.Group("/api")

	v1 := api.Group("/v1", limiter.Middleware())
	{
		v1.Get("/algorithms", handler.Algorithms)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjn", handler.ShortestJobNext)
		v1.Post("/srt", handler.ShortestRemainingTime)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
	}
}
