package controller

import (
	"scheduling-agent/core/controller"
	"scheduling-agent/core/errors"
	"scheduling-agent/modules/invite/dto"
	"scheduling-agent/modules/invite/service"

	"github.com/labstack/echo/v4"
)

// InviteController handles booking HTTP requests
type InviteController struct {
	controller.BaseController
	InviteService service.InviteServiceInterface
}

// NewInviteController creates a new controller
func NewInviteController(svc service.InviteServiceInterface) *InviteController {
	return &InviteController{
		BaseController: controller.NewBaseController(),
		InviteService:  svc,
	}
}

// BookProposal handles POST /proposals/book
// @Summary Book a proposed slot and queue invite delivery
// @Tags Invite
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookingRequest true "Booking request"
// @Success 200 {object} dto.InviteResponse
// @Failure 400 {object} errors.AppError
// @Router /private/proposals/book [post]
func (c *InviteController) BookProposal(ctx echo.Context) error {
	var req dto.BookingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.InviteService.BookProposal(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Proposal booked successfully")
}

// ListCandidateInvites handles GET /candidates/:id/invites
// @Summary List a candidate's invites
// @Tags Invite
// @Security BearerAuth
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {array} dto.InviteResponse
// @Router /private/candidates/{id}/invites [get]
func (c *InviteController) ListCandidateInvites(ctx echo.Context) error {
	result, appErr := c.InviteService.GetInvitesForCandidate(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
