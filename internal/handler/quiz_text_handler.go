package handler

import (
	"quizmark/internal/domain"
	"quizmark/internal/dto"
	"quizmark/internal/logger"
	"quizmark/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizTextHandler handles quiz text HTTP requests
type QuizTextHandler struct {
	service service.QuizTextService
}

// NewQuizTextHandler creates a new QuizTextHandler instance
func NewQuizTextHandler(service service.QuizTextService) *QuizTextHandler {
	return &QuizTextHandler{
		service: service,
	}
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		logger.Get().Debug("Failed to parse request body", zap.Error(err), zap.String("path", c.Path()))
		return domain.NewInvalidInputError("Invalid request body")
	}
	return nil
}

// Parse godoc
// @Summary Parse quiz text
// @Description Parses the quiz text format into structured questions. Malformed lines are skipped, never rejected.
// @Tags quiz-text
// @Accept json
// @Produce json
// @Param request body dto.ParseTextRequest true "Quiz text"
// @Success 200 {object} dto.ParseTextResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz-text/parse [post]
func (h *QuizTextHandler) Parse(c *fiber.Ctx) error {
	var req dto.ParseTextRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.Parse(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Format godoc
// @Summary Format questions as quiz text
// @Description Renders structured questions in the quiz text format
// @Tags quiz-text
// @Accept json
// @Produce json
// @Param request body dto.FormatRequest true "Questions"
// @Success 200 {object} dto.FormatResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz-text/format [post]
func (h *QuizTextHandler) Format(c *fiber.Ctx) error {
	var req dto.FormatRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.Format(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Validate godoc
// @Summary Validate a quiz
// @Description Validates quiz text or structured questions and reports every problem found
// @Tags quiz-text
// @Accept json
// @Produce json
// @Param request body dto.ValidateRequest true "Text or questions"
// @Success 200 {object} dto.ValidateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz-text/validate [post]
func (h *QuizTextHandler) Validate(c *fiber.Ctx) error {
	var req dto.ValidateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.Validate(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ParseBatch godoc
// @Summary Parse several quiz texts
// @Description Parses each text independently; results are returned in request order
// @Tags quiz-text
// @Accept json
// @Produce json
// @Param request body dto.BatchParseRequest true "Quiz texts"
// @Success 200 {object} dto.BatchParseResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz-text/batch [post]
func (h *QuizTextHandler) ParseBatch(c *fiber.Ctx) error {
	var req dto.BatchParseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.ParseBatch(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Grade godoc
// @Summary Grade answers
// @Description Scores answers against questions. Ordering answers must match exactly, choice answers as a set.
// @Tags quiz-text
// @Accept json
// @Produce json
// @Param request body dto.GradeRequest true "Questions and answers"
// @Success 200 {object} dto.GradeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz-text/grade [post]
func (h *QuizTextHandler) Grade(c *fiber.Ctx) error {
	var req dto.GradeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.Grade(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
