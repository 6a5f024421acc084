package handler

import (
	"quizmark/internal/dto"
	"quizmark/internal/middleware"
	"quizmark/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DraftHandler handles quiz draft HTTP requests
type DraftHandler struct {
	service service.DraftService
}

// NewDraftHandler creates a new DraftHandler instance
func NewDraftHandler(service service.DraftService) *DraftHandler {
	return &DraftHandler{
		service: service,
	}
}

func draftID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalDraftID).(string); ok {
		return id
	}
	return c.Params("id")
}

// Create godoc
// @Summary Create a draft
// @Description Stores a quiz draft. When questions are omitted the text is parsed.
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body dto.DraftRequest true "Draft"
// @Success 201 {object} dto.DraftResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /drafts [post]
func (h *DraftHandler) Create(c *fiber.Ctx) error {
	var req dto.DraftRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	c.Location("/api/drafts/" + resp.ID)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get godoc
// @Summary Get a draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID (ULID)"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	resp, err := h.service.Get(c.UserContext(), draftID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary Replace a draft
// @Description Replaces the draft's quiz and restarts its expiry
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID (ULID)"
// @Param request body dto.DraftRequest true "Draft"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /drafts/{id} [put]
func (h *DraftHandler) Update(c *fiber.Ctx) error {
	var req dto.DraftRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.Update(c.UserContext(), draftID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete a draft
// @Tags drafts
// @Param id path string true "Draft ID (ULID)"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /drafts/{id} [delete]
func (h *DraftHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), draftID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
