package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaanyilmaz/placehub/internal/app/models/dto"
	"github.com/kaanyilmaz/placehub/internal/app/services"
	"github.com/kaanyilmaz/placehub/internal/middleware"
)

// RegistrationController handles drive registrations and their exports
type RegistrationController struct {
	registrationService *services.RegistrationService
	exportService       *services.ExportService
	statsService        *services.StatsService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(
	registrationService *services.RegistrationService,
	exportService *services.ExportService,
	statsService *services.StatsService,
) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		exportService:       exportService,
		statsService:        statsService,
	}
}

// GetAllRegistrations retrieves all registrations
// @Summary Get all registrations
// @Description Retrieves every recorded drive registration
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Registration} "Registrations retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [get]
func (c *RegistrationController) GetAllRegistrations(ctx *gin.Context) {
	registrations, err := c.registrationService.ListRegistrations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      registrations,
		Timestamp: time.Now(),
	})
}

// CreateRegistration records the session user's application to a drive
// @Summary Register for a drive
// @Description Records the session user's application to a company drive
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRegistrationRequest true "Registration form"
// @Success 201 {object} dto.APIResponse{data=models.Registration} "Registration created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [post]
func (c *RegistrationController) CreateRegistration(ctx *gin.Context) {
	var req dto.CreateRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.registrationService.CreateRegistration(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// DeleteAllRegistrations wipes the registration collection
// @Summary Delete all registrations
// @Description Removes every registration; requires the confirm query parameter
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param confirm query bool true "Must be true to proceed"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Registrations deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Confirmation missing"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [delete]
func (c *RegistrationController) DeleteAllRegistrations(ctx *gin.Context) {
	if ctx.Query("confirm") != "true" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Deleting all registrations requires confirm=true")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.registrationService.DeleteAllRegistrations(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "All registrations deleted"},
		Timestamp: time.Now(),
	})
}

// ExportRegistrations downloads the registration report PDF
// @Summary Export registrations
// @Description Renders every registration as a PDF table
// @Tags registrations
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} file "registered-students.pdf"
// @Failure 400 {object} dto.ErrorResponse "No registrations to export"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/export [get]
func (c *RegistrationController) ExportRegistrations(ctx *gin.Context) {
	content, filename, err := c.exportService.ExportRegistrations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/pdf", content)
}

// ExportRegistrationDetail downloads a single registration PDF
// @Summary Export one registration
// @Description Renders one registration as a labeled detail sheet
// @Tags registrations
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Success 200 {file} file "Registration detail PDF"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/{id}/export [get]
func (c *RegistrationController) ExportRegistrationDetail(ctx *gin.Context) {
	content, filename, err := c.exportService.ExportRegistrationDetail(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/pdf", content)
}

// GetStats returns collection counts for the admin dashboard
// @Summary Get dashboard stats
// @Description Returns the size of each stored collection
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StatsResponse} "Stats retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats [get]
func (c *RegistrationController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}
