package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaanyilmaz/placehub/internal/app/models/dto"
	"github.com/kaanyilmaz/placehub/internal/app/services"
	"github.com/kaanyilmaz/placehub/internal/middleware"
)

// RoundController handles stored rounds and the multi-step editor
type RoundController struct {
	roundService  *services.RoundService
	editorService *services.RoundEditorService
}

// NewRoundController creates a new RoundController
func NewRoundController(roundService *services.RoundService, editorService *services.RoundEditorService) *RoundController {
	return &RoundController{
		roundService:  roundService,
		editorService: editorService,
	}
}

// GetAllRounds retrieves all stored rounds
// @Summary Get all rounds
// @Description Retrieves every stored interview round
// @Tags rounds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Round} "Rounds retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds [get]
func (c *RoundController) GetAllRounds(ctx *gin.Context) {
	rounds, err := c.roundService.ListRounds(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rounds,
		Timestamp: time.Now(),
	})
}

// UpdateRound updates one stored round
// @Summary Update a round
// @Description Replaces the editable fields of a stored round
// @Tags rounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Round ID"
// @Param request body dto.UpdateRoundRequest true "Updated round fields"
// @Success 200 {object} dto.APIResponse{data=models.Round} "Round updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Round not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/{id} [put]
func (c *RoundController) UpdateRound(ctx *gin.Context) {
	var req dto.UpdateRoundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid round data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.roundService.UpdateRound(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      updated,
		Timestamp: time.Now(),
	})
}

// DeleteRound removes a stored round
// @Summary Delete a round
// @Description Removes a stored round by ID
// @Tags rounds
// @Produce json
// @Security BearerAuth
// @Param id path string true "Round ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Round deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Round not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/{id} [delete]
func (c *RoundController) DeleteRound(ctx *gin.Context) {
	if err := c.roundService.DeleteRound(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Round deleted successfully"},
		Timestamp: time.Now(),
	})
}

// StartEditor opens a round editing session
// @Summary Start the round editor
// @Description Opens an editing session for a company, replacing any prior session
// @Tags editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StartEditorRequest true "Company to edit rounds for"
// @Success 201 {object} dto.APIResponse{data=dto.EditorStateResponse} "Session started"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/editor [post]
func (c *RoundController) StartEditor(ctx *gin.Context) {
	var req dto.StartEditorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid editor request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	state, err := c.editorService.Start(ctx, req.CompanyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      state,
		Timestamp: time.Now(),
	})
}

// GetEditorState returns the current session snapshot
// @Summary Get editor state
// @Description Returns a snapshot of the active editing session
// @Tags editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EditorStateResponse} "Session snapshot"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No session in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/editor [get]
func (c *RoundController) GetEditorState(ctx *gin.Context) {
	state, err := c.editorService.Snapshot(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      state,
		Timestamp: time.Now(),
	})
}

// BeginEditing moves the session onto the first section
// @Summary Begin editing
// @Description Moves the session from the intro step to the first section
// @Tags editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EditorStateResponse} "Editing begun"
// @Failure 400 {object} dto.ErrorResponse "Editing already begun"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No session in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/editor/begin [post]
func (c *RoundController) BeginEditing(ctx *gin.Context) {
	state, err := c.editorService.Begin(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      state,
		Timestamp: time.Now(),
	})
}

// UpdateSection sets the current section's metadata
// @Summary Update current section
// @Description Sets round name, mode and difficulty of the current section
// @Tags editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SectionUpdateRequest true "Section fields"
// @Success 200 {object} dto.APIResponse{data=dto.EditorStateResponse} "Section updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No session in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/editor/section [put]
func (c *RoundController) UpdateSection(ctx *gin.Context) {
	var req dto.SectionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	state, err := c.editorService.UpdateSection(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      state,
		Timestamp: time.Now(),
	})
}

// AddQuestion appends an empty question row
// @Summary Add a question row
// @Description Appends an empty question row to the current section
// @Tags editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EditorStateResponse} "Row added"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No session in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/editor/questions [post]
func (c *RoundController) AddQuestion(ctx *gin.Context) {
	state, err := c.editorService.AddQuestion(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      state,
		Timestamp: time.Now(),
	})
}

// UpdateQuestion sets the texts of one question row
// @Summary Update a question row
// @Description Sets the question and answer texts of one row in the current section
// @Tags editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param index path int true "Question index"
// @Param request body dto.QuestionUpdateRequest true "Question texts"
// @Success 200 {object} dto.APIResponse{data=dto.EditorStateResponse} "Question updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid index or data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No session in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/editor/questions/{index} [put]
func (c *RoundController) UpdateQuestion(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid question index")
		errorDetail = errorDetail.WithDetails("Question index must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.QuestionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid question data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	state, err := c.editorService.UpdateQuestion(ctx, index, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      state,
		Timestamp: time.Now(),
	})
}

// RemoveQuestion deletes one question row
// @Summary Remove a question row
// @Description Deletes one question row from the current section
// @Tags editor
// @Produce json
// @Security BearerAuth
// @Param index path int true "Question index"
// @Success 200 {object} dto.APIResponse{data=dto.EditorStateResponse} "Row removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid index"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No session in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/editor/questions/{index} [delete]
func (c *RoundController) RemoveQuestion(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid question index")
		errorDetail = errorDetail.WithDetails("Question index must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	state, err := c.editorService.RemoveQuestion(ctx, index)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      state,
		Timestamp: time.Now(),
	})
}

// AttachFile uploads an attachment to the current section
// @Summary Attach a file
// @Description Stores a data URL against the round or one of its questions, limited to 5 MB
// @Tags editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AttachmentRequest true "Attachment target and data"
// @Success 200 {object} dto.APIResponse{data=dto.EditorStateResponse} "Attachment stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid or oversized file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No session in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/editor/attachments [post]
func (c *RoundController) AttachFile(ctx *gin.Context) {
	var req dto.AttachmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attachment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	state, err := c.editorService.Attach(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      state,
		Timestamp: time.Now(),
	})
}

// SaveAndNext commits the current section and advances
// @Summary Save and advance
// @Description Commits the current section when valid and advances; invalid sections are skipped
// @Tags editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EditorStateResponse} "Advanced to next section"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No session in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/editor/next [post]
func (c *RoundController) SaveAndNext(ctx *gin.Context) {
	state, err := c.editorService.SaveCurrentAndNext(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      state,
		Timestamp: time.Now(),
	})
}

// PreviousSection steps back one section
// @Summary Go to previous section
// @Description Steps back one section; committed rounds stay committed
// @Tags editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EditorStateResponse} "Moved to previous section"
// @Failure 400 {object} dto.ErrorResponse "Already at the first section"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No session in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/editor/previous [post]
func (c *RoundController) PreviousSection(ctx *gin.Context) {
	state, err := c.editorService.Previous(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      state,
		Timestamp: time.Now(),
	})
}

// FinishEditing commits the current section and ends the session
// @Summary Finish editing
// @Description Commits the current section when valid and closes the session
// @Tags editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EditorStateResponse} "Session finished"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No session in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rounds/editor/finish [post]
func (c *RoundController) FinishEditing(ctx *gin.Context) {
	state, err := c.editorService.Finish(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      state,
		Timestamp: time.Now(),
	})
}
