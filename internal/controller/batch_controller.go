// Controller for the batch recompute endpoint
package controller

import (
	"plan-migration-be/internal/pkg/serverutils"
	"plan-migration-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBatchController interface {
	RegisterRoutes(api fiber.Router)
}

type batchController struct {
	batchService service.IBatchService
}

func NewBatchController(batchService service.IBatchService) IBatchController {
	return &batchController{
		batchService: batchService,
	}
}

func (c *batchController) RegisterRoutes(api fiber.Router) {
	api.Post("/batch/recompute", c.Recompute)
}

// Recompute reruns the pipeline for every account against one catalog snapshot
// @Summary Recompute all recommendations
// @Tags Batch
// @Produce json
// @Success 200 {object} dto.BatchReportResponse
// @Router /api/batch/recompute [post]
func (c *batchController) Recompute(ctx *fiber.Ctx) error {
	report, err := c.batchService.RecomputeAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Batch recompute finished", report))
}
