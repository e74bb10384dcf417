package controller

import (
	"scheduling-agent/core/controller"
	"scheduling-agent/core/errors"
	"scheduling-agent/modules/auth/dto"
	"scheduling-agent/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// AuthController handles token HTTP requests
type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

// NewAuthController creates a new controller
func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

// IssueToken handles POST /auth/token
// @Summary Exchange client credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Client credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/token [post]
func (c *AuthController) IssueToken(ctx echo.Context) error {
	var req dto.TokenRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AuthService.IssueToken(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Token issued successfully")
}
