package http

import (
	"log"
	"strings"

	"travel-service/config"
	"travel-service/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm/module/apmfiber"
)

// SetupHttpEngine builds the fiber app with the shared middleware stack.
// A nil storage keeps rate-limit counters in memory.
func SetupHttpEngine(cfg *config.HttpServerConfig, storage fiber.Storage, logger *otelzap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimit,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(apmfiber.Middleware())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.ReplaceAll(cfg.CorsAllowOrigins, " ", ""),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
		Storage:    storage,
		LimitReached: func(ctx *fiber.Ctx) error {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(helpers.Response{
				Success: false,
				Message: "too many requests, please try again later",
			})
		},
	}))

	return app
}

func errorHandler(logger *otelzap.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			return ctx.Status(e.Code).JSON(helpers.Response{
				Success: false,
				Message: e.Message,
			})
		}
		return helpers.RespError(ctx, logger, err)
	}
}

func StartHttpServer(app *fiber.App, port string) {
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
