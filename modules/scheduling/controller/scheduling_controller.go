package controller

import (
	"scheduling-agent/core/controller"
	"scheduling-agent/core/errors"
	"scheduling-agent/modules/scheduling/dto"
	"scheduling-agent/modules/scheduling/service"

	"github.com/labstack/echo/v4"
)

// SchedulingController handles proposal HTTP requests
type SchedulingController struct {
	controller.BaseController
	SchedulingService service.SchedulingServiceInterface
}

// NewSchedulingController creates a new controller
func NewSchedulingController(svc service.SchedulingServiceInterface) *SchedulingController {
	return &SchedulingController{
		BaseController:    controller.NewBaseController(),
		SchedulingService: svc,
	}
}

// GenerateProposals handles POST /proposals
// @Summary Generate ranked meeting proposals
// @Description Finds and scores meeting slots for a candidate and a set of managers
// @Tags Scheduling
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ProposalRequest true "Meeting request"
// @Success 200 {object} dto.ProposalListResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /private/proposals [post]
func (c *SchedulingController) GenerateProposals(ctx echo.Context) error {
	var req dto.ProposalRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SchedulingService.GenerateProposals(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Proposals generated successfully")
}
