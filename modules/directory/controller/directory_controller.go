package controller

import (
	"scheduling-agent/core/controller"
	"scheduling-agent/core/errors"
	"scheduling-agent/modules/directory/service"

	"github.com/labstack/echo/v4"
)

// DirectoryController handles candidate and manager HTTP requests
type DirectoryController struct {
	controller.BaseController
	DirectoryService service.DirectoryServiceInterface
	HRSyncService    service.HRSyncServiceInterface
	DocumentService  service.DocumentServiceInterface
}

// NewDirectoryController creates a new controller
func NewDirectoryController(
	directorySvc service.DirectoryServiceInterface,
	hrSyncSvc service.HRSyncServiceInterface,
	documentSvc service.DocumentServiceInterface,
) *DirectoryController {
	return &DirectoryController{
		BaseController:   controller.NewBaseController(),
		DirectoryService: directorySvc,
		HRSyncService:    hrSyncSvc,
		DocumentService:  documentSvc,
	}
}

// ListCandidates handles GET /candidates
// @Summary List candidates
// @Tags Directory
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.CandidateResponse
// @Router /private/candidates [get]
func (c *DirectoryController) ListCandidates(ctx echo.Context) error {
	result, appErr := c.DirectoryService.ListCandidates(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetCandidate handles GET /candidates/:id
// @Summary Get candidate details
// @Tags Directory
// @Security BearerAuth
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} errors.AppError
// @Router /private/candidates/{id} [get]
func (c *DirectoryController) GetCandidate(ctx echo.Context) error {
	result, appErr := c.DirectoryService.GetCandidate(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetCandidateManagers handles GET /candidates/:id/personas
// @Summary Get the manager personas attached to a candidate
// @Tags Directory
// @Security BearerAuth
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {array} dto.ManagerResponse
// @Failure 404 {object} errors.AppError
// @Router /private/candidates/{id}/personas [get]
func (c *DirectoryController) GetCandidateManagers(ctx echo.Context) error {
	result, appErr := c.DirectoryService.GetRelatedManagers(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetManager handles GET /managers/:id
// @Summary Get manager details
// @Tags Directory
// @Security BearerAuth
// @Produce json
// @Param id path string true "Manager ID"
// @Success 200 {object} dto.ManagerResponse
// @Failure 404 {object} errors.AppError
// @Router /private/managers/{id} [get]
func (c *DirectoryController) GetManager(ctx echo.Context) error {
	result, appErr := c.DirectoryService.GetManager(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// SyncDirectory handles POST /directory/sync
// @Summary Sync the directory from the HR employee master
// @Tags Directory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SyncResponse
// @Failure 502 {object} errors.AppError
// @Router /private/directory/sync [post]
func (c *DirectoryController) SyncDirectory(ctx echo.Context) error {
	result, appErr := c.HRSyncService.SyncEmployees(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Directory synced successfully")
}

// UploadDocument handles POST /candidates/:id/documents
// @Summary Upload an onboarding document for a candidate
// @Tags Directory
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Candidate ID"
// @Param file formData file true "Document file"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} errors.AppError
// @Router /private/candidates/{id}/documents [post]
func (c *DirectoryController) UploadDocument(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "A file form field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Failed to read uploaded file")
	}
	defer file.Close()

	result, appErr := c.DocumentService.UploadDocument(
		ctx.Request().Context(),
		ctx.Param("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Document uploaded successfully")
}

// ListDocuments handles GET /candidates/:id/documents
// @Summary List a candidate's onboarding documents
// @Tags Directory
// @Security BearerAuth
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {array} dto.DocumentResponse
// @Router /private/candidates/{id}/documents [get]
func (c *DirectoryController) ListDocuments(ctx echo.Context) error {
	result, appErr := c.DocumentService.ListDocuments(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
