package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/katakuxiko/qa-service/internal/model"
	"github.com/katakuxiko/qa-service/internal/service"
)

const (
	msgNoQuestion     = "No question provided"
	msgProviderFailed = "Failed to get answer from OpenAI API"
	msgDatabaseError  = "Database error"
	msgUnexpected     = "Unexpected error"
)

// Handler хранит зависимости для обработчиков
type Handler struct {
	qa       *service.QAService
	models   service.ModelLister
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewHandler конструктор
func NewHandler(qa *service.QAService, models service.ModelLister, logger zerolog.Logger) *Handler {
	return &Handler{
		qa:       qa,
		models:   models,
		validate: validator.New(),
		logger:   logger,
	}
}

// Health — простая проверка, зависимости не опрашиваются
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(model.HealthResponse{Status: "healthy"})
}

// ListModels — проксирование списка моделей провайдера
func (h *Handler) ListModels(c *fiber.Ctx) error {
	models, err := h.models.ListModels(c.UserContext())
	if err != nil {
		h.logger.Error().Err(err).Msg("list models failed")
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: msgProviderFailed})
	}
	return c.JSON(models)
}

// AskQuestion — ответ на {"question": "..."}, возвращает сохранённую пару
func (h *Handler) AskQuestion(c *fiber.Ctx) error {
	var req model.AskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warn().Err(err).Msg("unparseable ask payload")
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Error: msgNoQuestion})
	}
	if err := h.validate.Struct(req); err != nil {
		h.logger.Warn().Msg(msgNoQuestion)
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Error: msgNoQuestion})
	}

	rec, err := h.qa.Ask(c.UserContext(), req.Question)
	switch {
	case err == nil && rec != nil:
		return c.JSON(rec)
	case err == nil:
		return errors.New("ask returned no record")
	case errors.Is(err, model.ErrProviderFailed):
		h.logger.Error().Err(err).Msg(msgProviderFailed)
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: msgProviderFailed})
	case errors.Is(err, model.ErrStorageFailed):
		h.logger.Error().Err(err).Msg(msgDatabaseError)
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: msgDatabaseError})
	default:
		return err
	}
}
