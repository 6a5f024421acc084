package middleware

import (
	"quizmark/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// LocalDraftID is the fiber.Ctx local holding a validated draft id.
const LocalDraftID = "validated_draft_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validator,
	}
}

// ValidateDraftID validates the :id path parameter of draft routes
func (vm *ValidationMiddleware) ValidateDraftID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if errors := vm.validator.ValidateDraftID(id); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(LocalDraftID, id)
		return c.Next()
	}
}
