// Controller for catalog endpoints
package controller

import (
	"plan-migration-be/internal/dto"
	"plan-migration-be/internal/pkg/serverutils"
	"plan-migration-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(api fiber.Router)
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(api fiber.Router) {
	api.Get("/plans", c.GetActiveCatalog)
	api.Put("/plans/override", c.InstallOverride)
}

// GetActiveCatalog returns the live catalog version with plans in declared order
// @Summary Get active plan catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /api/plans [get]
func (c *catalogController) GetActiveCatalog(ctx *fiber.Ctx) error {
	catalog, err := c.catalogService.GetActiveCatalog(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Catalog retrieved", catalog))
}

// InstallOverride replaces the active catalog wholesale
// @Summary Install an override catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 201 {object} dto.CatalogResponse
// @Router /api/plans/override [put]
func (c *catalogController) InstallOverride(ctx *fiber.Ctx) error {
	var req dto.InstallOverrideRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	catalog, err := c.catalogService.InstallOverride(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Override catalog installed", catalog))
}
