// Controller for account ingestion and lookup endpoints
package controller

import (
	"plan-migration-be/internal/dto"
	"plan-migration-be/internal/pkg/serverutils"
	"plan-migration-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAccountController interface {
	RegisterRoutes(api fiber.Router)
}

type accountController struct {
	accountService service.IAccountService
}

func NewAccountController(accountService service.IAccountService) IAccountController {
	return &accountController{
		accountService: accountService,
	}
}

func (c *accountController) RegisterRoutes(api fiber.Router) {
	accounts := api.Group("/accounts")
	accounts.Post("/", c.Upsert)
	accounts.Get("/", c.Index)
	accounts.Get("/:id", c.Show)
	accounts.Delete("/:id", c.Delete)
}

// Upsert stores one normalized account and queues its recompute
// @Summary Upsert an account by external key
// @Tags Accounts
// @Accept json
// @Produce json
// @Success 201 {object} dto.UpsertAccountResponse
// @Router /api/accounts [post]
func (c *accountController) Upsert(ctx *fiber.Ctx) error {
	var req dto.UpsertAccountRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.accountService.Upsert(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Account stored", res))
}

func (c *accountController) Index(ctx *fiber.Ctx) error {
	accounts, err := c.accountService.Index(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Accounts retrieved", accounts))
}

func (c *accountController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid account ID"))
	}

	account, err := c.accountService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if account == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Account not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Account retrieved", account))
}

func (c *accountController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid account ID"))
	}

	if err := c.accountService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Account deleted", nil))
}
