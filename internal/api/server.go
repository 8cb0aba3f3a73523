package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/katakuxiko/qa-service/internal/config"
	"github.com/katakuxiko/qa-service/internal/model"
)

// NewApp creates the fiber app with bounded concurrency, timeouts, panic
// recovery and access logging. Routes are added by RegisterRoutes.
func NewApp(cfg config.ServerConfig, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "qa-service",
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		Concurrency:           cfg.MaxConcurrency,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          errorHandler(logger),
	})
	app.Use(accessLog(logger), recover.New())
	return app
}

// errorHandler turns anything a handler did not answer itself into a JSON
// error body. Internal detail is logged, never returned.
func errorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(model.ErrorResponse{Error: fe.Message})
		}
		logger.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg(msgUnexpected)
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: msgUnexpected})
	}
}

func accessLog(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		logger.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}
