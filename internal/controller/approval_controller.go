// Controller for the approval lifecycle endpoints
package controller

import (
	"plan-migration-be/internal/dto"
	"plan-migration-be/internal/pkg/serverutils"
	"plan-migration-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IApprovalController interface {
	RegisterRoutes(api fiber.Router)
}

type approvalController struct {
	approvalService service.IApprovalService
}

func NewApprovalController(approvalService service.IApprovalService) IApprovalController {
	return &approvalController{
		approvalService: approvalService,
	}
}

func (c *approvalController) RegisterRoutes(api fiber.Router) {
	api.Get("/accounts/:id/approval", c.Show)
	api.Post("/accounts/:id/approval/approve", c.Approve)
	api.Post("/accounts/:id/approval/reject", c.Reject)
	api.Get("/approvals/stats", c.Stats)
}

// Stats returns the pending/approved/rejected counts across all accounts
// @Summary Approval progress overview
// @Tags Approvals
// @Produce json
// @Success 200 {object} dto.ApprovalStatsResponse
// @Router /api/approvals/stats [get]
func (c *approvalController) Stats(ctx *fiber.Ctx) error {
	stats, err := c.approvalService.Stats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Approval stats retrieved", stats))
}

func (c *approvalController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid account ID"))
	}

	approval, err := c.approvalService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if approval == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No approval exists for this account"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Approval retrieved", approval))
}

// Approve moves a pending approval to approved
// @Summary Approve an account's recommendation
// @Tags Approvals
// @Accept json
// @Produce json
// @Success 200 {object} dto.ApprovalResponse
// @Router /api/accounts/{id}/approval/approve [post]
func (c *approvalController) Approve(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid account ID"))
	}

	var req dto.ApproveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	approval, err := c.approvalService.Approve(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if approval == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No approval exists for this account"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Recommendation approved", approval))
}

func (c *approvalController) Reject(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid account ID"))
	}

	approval, err := c.approvalService.Reject(ctx.Context(), id)
	if err != nil {
		return err
	}
	if approval == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No approval exists for this account"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Recommendation rejected", approval))
}
