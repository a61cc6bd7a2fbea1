package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/app/models/dto"
	"github.com/kaanyilmaz/placehub/internal/app/services"
	"github.com/kaanyilmaz/placehub/internal/middleware"
)

// CompanyController handles company drive operations
type CompanyController struct {
	companyService *services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService) *CompanyController {
	return &CompanyController{
		companyService: companyService,
	}
}

// GetAllCompanies retrieves all company drives
// @Summary Get all companies
// @Description Retrieves every recorded company drive
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Company} "Companies retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [get]
func (c *CompanyController) GetAllCompanies(ctx *gin.Context) {
	companies, err := c.companyService.ListCompanies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      companies,
		Timestamp: time.Now(),
	})
}

// GetCompanyRounds retrieves a company with its interview rounds
// @Summary Get company rounds
// @Description Retrieves one company together with all of its recorded rounds
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} dto.APIResponse "Company and rounds retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id}/rounds [get]
func (c *CompanyController) GetCompanyRounds(ctx *gin.Context) {
	company, rounds, err := c.companyService.GetCompanyRounds(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: gin.H{
			"company": company,
			"rounds":  rounds,
		},
		Timestamp: time.Now(),
	})
}

// CreateCompany records a new company drive
// @Summary Create a company
// @Description Records a new company drive
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Company true "Company information"
// @Success 201 {object} dto.APIResponse{data=models.Company} "Company created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [post]
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	var company models.Company
	if err := ctx.ShouldBindJSON(&company); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid company data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if strings.TrimSpace(company.Name) == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Company name is required")
		errorDetail = errorDetail.WithField("name")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.companyService.CreateCompany(ctx, company)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// UpdateCompany updates an existing company drive
// @Summary Update a company
// @Description Updates an existing company drive
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param request body models.Company true "Updated company information"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [put]
func (c *CompanyController) UpdateCompany(ctx *gin.Context) {
	var company models.Company
	if err := ctx.ShouldBindJSON(&company); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid company data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// The path parameter wins over whatever ID the body carries
	company.ID = ctx.Param("id")

	updated, err := c.companyService.UpdateCompany(ctx, company)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      updated,
		Timestamp: time.Now(),
	})
}

// DeleteCompany deletes a company drive
// @Summary Delete a company
// @Description Deletes an existing company drive by its ID
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Company deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [delete]
func (c *CompanyController) DeleteCompany(ctx *gin.Context) {
	if err := c.companyService.DeleteCompany(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Company deleted successfully"},
		Timestamp: time.Now(),
	})
}
