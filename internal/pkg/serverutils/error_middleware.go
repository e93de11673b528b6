package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"plan-migration-be/internal/engine"
)

// ErrorHandlerMiddleware converts errors escaping a handler into the shared
// response envelope with a status matching the error taxonomy: input errors
// are the caller's fault, a missing candidate is a 404-shaped condition, an
// illegal approval transition is a conflict, everything else is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		switch {
		case engine.IsInputError(err):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(fiber.StatusUnprocessableEntity, err.Error()))
		case errors.Is(err, engine.ErrNoCandidate):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, "no recommendation available"))
		case errors.Is(err, engine.ErrInvalidTransition):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(fiber.StatusConflict, err.Error()))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
		}
	}
}
