// Controller for per-account recommendation endpoints
package controller

import (
	"plan-migration-be/internal/pkg/serverutils"
	"plan-migration-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRecommendationController interface {
	RegisterRoutes(api fiber.Router)
}

type recommendationController struct {
	recommendationService service.IRecommendationService
}

func NewRecommendationController(recommendationService service.IRecommendationService) IRecommendationController {
	return &recommendationController{
		recommendationService: recommendationService,
	}
}

func (c *recommendationController) RegisterRoutes(api fiber.Router) {
	api.Get("/accounts/:id/recommendation", c.Show)
	api.Post("/accounts/:id/recommendation", c.Recompute)
}

// Show returns the stored recommendation for one account
// @Summary Get an account's recommendation
// @Tags Recommendations
// @Produce json
// @Success 200 {object} dto.RecommendationResponse
// @Router /api/accounts/{id}/recommendation [get]
func (c *recommendationController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid account ID"))
	}

	rec, err := c.recommendationService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No recommendation computed for this account"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Recommendation retrieved", rec))
}

// Recompute runs the pipeline synchronously for one account
// @Summary Recompute an account's recommendation
// @Tags Recommendations
// @Produce json
// @Success 200 {object} dto.RecommendationResponse
// @Router /api/accounts/{id}/recommendation [post]
func (c *recommendationController) Recompute(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid account ID"))
	}

	rec, err := c.recommendationService.Recompute(ctx.Context(), id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Account not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Recommendation recomputed", rec))
}
