package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/cabindev/sdnfutsal/internal/apperrors"
	portssvc "github.com/cabindev/sdnfutsal/internal/core/ports/services"
	"github.com/cabindev/sdnfutsal/internal/dto"
	"github.com/cabindev/sdnfutsal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CoachHandler handles the coach registration workflow.
type CoachHandler struct {
	coachService portssvc.CoachSvcFacade
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(cs portssvc.CoachSvcFacade) *CoachHandler {
	return &CoachHandler{coachService: cs}
}

// registerCoachRoutes sets up the authenticated coach routes.
func registerCoachRoutes(rg *gin.RouterGroup, coachService portssvc.CoachSvcFacade) {
	h := NewCoachHandler(coachService)

	coaches := rg.Group("/coaches")
	{
		coaches.POST("", h.RegisterCoach)
		coaches.GET("", h.ListCoaches)
		coaches.GET("/:id", h.GetCoach)
		coaches.PUT("/:id", h.UpdateCoach)
		coaches.PATCH("/:id/approval", h.SetApproval)
		coaches.DELETE("/:id", h.DeleteCoach)
	}
}

// RegisterCoach godoc
// @Summary Register a coach profile
// @Description Creates a coach profile from a form submission and enrolls into the first selected batch.
// @Tags coaches
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 201 {object} dto.ActionResponse
// @Failure 400 {object} dto.ActionResponse
// @Failure 409 {object} dto.ActionResponse
// @Failure 500 {object} dto.ActionResponse
// @Router /coaches [post]
// @Security BearerAuth
func (h *CoachHandler) RegisterCoach(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.FailResponse("Please sign in to register"))
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, dto.FailResponse("Could not read the submitted form"))
		return
	}

	req, err := dto.NormalizeRegistrationForm(c.Request.PostForm, dto.SelectFirstBatchOnly)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.FailResponse(validationMessage(err)))
		return
	}

	details, err := h.coachService.RegisterCoach(c.Request.Context(), userID, *req)
	if err != nil {
		status, msg := coachErrorResponse(err)
		if status == http.StatusInternalServerError {
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Coach registration failed", slog.String("error", err.Error()))
		}
		c.JSON(status, dto.FailResponse(msg))
		return
	}

	c.JSON(http.StatusCreated, dto.OKResponse(dto.ToCoachDetailResponse(details)))
}

// UpdateCoach godoc
// @Summary Update a coach profile
// @Description Updates a coach profile from a form submission and reconciles batch enrollments against the full selection.
// @Tags coaches
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Coach ID"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} dto.ActionResponse
// @Failure 403 {object} dto.ActionResponse
// @Failure 404 {object} dto.ActionResponse
// @Failure 409 {object} dto.ActionResponse
// @Router /coaches/{id} [put]
// @Security BearerAuth
func (h *CoachHandler) UpdateCoach(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.FailResponse("Please sign in to update your registration"))
		return
	}

	coachID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.FailResponse("Invalid coach ID"))
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, dto.FailResponse("Could not read the submitted form"))
		return
	}

	req, err := dto.NormalizeRegistrationForm(c.Request.PostForm, dto.SelectAllBatches)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.FailResponse(validationMessage(err)))
		return
	}

	details, err := h.coachService.UpdateCoach(c.Request.Context(), userID, coachID, *req)
	if err != nil {
		status, msg := coachErrorResponse(err)
		if status == http.StatusInternalServerError {
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Coach update failed", slog.String("error", err.Error()), slog.Int64("coach_id", coachID))
		}
		c.JSON(status, dto.FailResponse(msg))
		return
	}

	c.JSON(http.StatusOK, dto.OKResponse(dto.ToCoachDetailResponse(details)))
}

// GetCoach godoc
// @Summary Get a coach with details
// @Tags coaches
// @Produce json
// @Param id path int true "Coach ID"
// @Success 200 {object} dto.CoachDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /coaches/{id} [get]
// @Security BearerAuth
func (h *CoachHandler) GetCoach(c *gin.Context) {
	coachID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid coach ID"})
		return
	}

	details, err := h.coachService.GetCoachWithDetails(c.Request.Context(), coachID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Coach not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load coach"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCoachDetailResponse(details))
}

// ListCoaches godoc
// @Summary List coaches (admin)
// @Tags coaches
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.CoachDetailResponse
// @Failure 403 {object} ErrorResponse
// @Router /coaches [get]
// @Security BearerAuth
func (h *CoachHandler) ListCoaches(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	coaches, err := h.coachService.ListCoaches(c.Request.Context(), userID, limit, offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Administrator role required"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list coaches"})
		return
	}

	responses := make([]dto.CoachDetailResponse, len(coaches))
	for i := range coaches {
		responses[i] = *dto.ToCoachDetailResponse(&coaches[i])
	}
	c.JSON(http.StatusOK, responses)
}

// SetApproval godoc
// @Summary Approve or revoke a coach (admin)
// @Tags coaches
// @Accept json
// @Produce json
// @Param id path int true "Coach ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /coaches/{id}/approval [patch]
// @Security BearerAuth
func (h *CoachHandler) SetApproval(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	coachID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid coach ID"})
		return
	}

	var body struct {
		Approved bool `json:"approved"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.coachService.ApproveCoach(c.Request.Context(), userID, coachID, body.Approved); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Administrator role required"})
		case errors.Is(err, apperrors.ErrCoachNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Coach not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update approval"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCoach godoc
// @Summary Delete a coach (admin)
// @Tags coaches
// @Param id path int true "Coach ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /coaches/{id} [delete]
// @Security BearerAuth
func (h *CoachHandler) DeleteCoach(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	coachID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid coach ID"})
		return
	}

	if err := h.coachService.DeleteCoach(c.Request.Context(), userID, coachID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Administrator role required"})
		case errors.Is(err, apperrors.ErrCoachNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Coach not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete coach"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// coachErrorResponse maps workflow errors to a status code and a short
// user-facing message.
func coachErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrDuplicateRegistration):
		return http.StatusConflict, "You already have a coach registration"
	case errors.Is(err, apperrors.ErrDuplicateNationalID):
		return http.StatusConflict, "This national ID number is already registered"
	case errors.Is(err, apperrors.ErrLocationPersistence):
		return http.StatusInternalServerError, "Unable to save location information. Please try again."
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, apperrors.ErrCoachNotFound):
		return http.StatusNotFound, "Coach not found"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "You are not allowed to edit this registration"
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, validationMessage(err)
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}

// validationMessage strips the sentinel prefix so the caller sees only the
// actionable part.
func validationMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}
