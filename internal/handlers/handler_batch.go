package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cabindev/sdnfutsal/internal/apperrors"
	portssvc "github.com/cabindev/sdnfutsal/internal/core/ports/services"
	"github.com/cabindev/sdnfutsal/internal/dto"
	"github.com/cabindev/sdnfutsal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// BatchHandler handles training batch and participant requests.
type BatchHandler struct {
	batchService portssvc.BatchSvcFacade
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(bs portssvc.BatchSvcFacade) *BatchHandler {
	return &BatchHandler{batchService: bs}
}

// registerBatchRoutes sets up the authenticated batch routes.
func registerBatchRoutes(rg *gin.RouterGroup, batchService portssvc.BatchSvcFacade) {
	h := NewBatchHandler(batchService)

	batches := rg.Group("/batches")
	{
		batches.GET("", h.ListBatches)
		batches.GET("/:id", h.GetBatch)
		batches.POST("", h.CreateBatch)
		batches.PUT("/:id", h.UpdateBatch)
		batches.POST("/:id/register", h.RegisterToBatch)
		batches.GET("/:id/participants", h.ListParticipants)
		batches.GET("/:id/participants/export.csv", h.ExportParticipants)
	}
	rg.PATCH("/enrollments/:id", h.UpdateEnrollmentStatus)
}

// ListBatches godoc
// @Summary List training batches
// @Tags batches
// @Produce json
// @Param activeOnly query bool false "Only active batches" default(false)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListBatchesResponse
// @Router /batches [get]
// @Security BearerAuth
func (h *BatchHandler) ListBatches(c *gin.Context) {
	var params dto.ListBatchesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	batches, err := h.batchService.ListBatches(c.Request.Context(), params.ActiveOnly, params.Limit, params.Offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list batches"})
		return
	}

	resp := dto.ListBatchesResponse{Batches: make([]dto.BatchResponse, len(batches))}
	for i, b := range batches {
		resp.Batches[i] = dto.ToBatchResponse(b)
	}
	c.JSON(http.StatusOK, resp)
}

// GetBatch godoc
// @Summary Get a training batch
// @Tags batches
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.BatchResponse
// @Failure 404 {object} ErrorResponse
// @Router /batches/{id} [get]
// @Security BearerAuth
func (h *BatchHandler) GetBatch(c *gin.Context) {
	batchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid batch ID"})
		return
	}

	batch, err := h.batchService.GetBatchByID(c.Request.Context(), batchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Batch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load batch"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBatchResponse(*batch))
}

// RegisterToBatch godoc
// @Summary Enroll a coach into a batch
// @Description The only enrollment path enforcing the registration deadline and capacity limit.
// @Tags batches
// @Accept json
// @Produce json
// @Param id path int true "Batch ID"
// @Param enroll body dto.RegisterToBatchRequest true "Coach to enroll"
// @Success 200 {object} dto.RegisterToBatchResponse
// @Failure 400 {object} dto.RegisterToBatchResponse
// @Failure 404 {object} dto.RegisterToBatchResponse
// @Failure 409 {object} dto.RegisterToBatchResponse
// @Router /batches/{id}/register [post]
// @Security BearerAuth
func (h *BatchHandler) RegisterToBatch(c *gin.Context) {
	batchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.RegisterToBatchResponse{Error: "Invalid batch ID"})
		return
	}

	var req dto.RegisterToBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.RegisterToBatchResponse{Error: "Invalid request body"})
		return
	}

	_, err = h.batchService.RegisterCoachToBatch(c.Request.Context(), req.CoachID, batchID)
	if err != nil {
		status, msg := enrollErrorResponse(err)
		if status == http.StatusInternalServerError {
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Batch enrollment failed", slog.String("error", err.Error()), slog.Int64("batch_id", batchID))
		}
		c.JSON(status, dto.RegisterToBatchResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, dto.RegisterToBatchResponse{Success: true})
}

// CreateBatch godoc
// @Summary Create a training batch (admin)
// @Tags batches
// @Accept json
// @Produce json
// @Param batch body dto.SaveBatchRequest true "Batch"
// @Success 201 {object} dto.BatchResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /batches [post]
// @Security BearerAuth
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.SaveBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	batch, err := h.batchService.CreateBatch(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Administrator role required"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A batch with this number and year already exists"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create batch"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBatchResponse(*batch))
}

// UpdateBatch godoc
// @Summary Update a training batch (admin)
// @Tags batches
// @Accept json
// @Produce json
// @Param id path int true "Batch ID"
// @Param batch body dto.SaveBatchRequest true "Batch"
// @Success 200 {object} dto.BatchResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /batches/{id} [put]
// @Security BearerAuth
func (h *BatchHandler) UpdateBatch(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	batchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid batch ID"})
		return
	}

	var req dto.SaveBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	batch, err := h.batchService.UpdateBatch(c.Request.Context(), userID, batchID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Administrator role required"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Batch not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A batch with this number and year already exists"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update batch"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBatchResponse(*batch))
}

// ListParticipants godoc
// @Summary List batch participants (admin)
// @Tags batches
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.ListParticipantsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /batches/{id}/participants [get]
// @Security BearerAuth
func (h *BatchHandler) ListParticipants(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	batchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid batch ID"})
		return
	}

	participants, err := h.batchService.ListParticipants(c.Request.Context(), userID, batchID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Administrator role required"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Batch not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list participants"})
		}
		return
	}

	resp := dto.ListParticipantsResponse{Participants: make([]dto.ParticipantResponse, len(participants))}
	for i, p := range participants {
		resp.Participants[i] = dto.ToParticipantResponse(p)
	}
	c.JSON(http.StatusOK, resp)
}

// ExportParticipants godoc
// @Summary Export batch participants as CSV (admin)
// @Tags batches
// @Produce text/csv
// @Param id path int true "Batch ID"
// @Success 200 {string} string "CSV document"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /batches/{id}/participants/export.csv [get]
// @Security BearerAuth
func (h *BatchHandler) ExportParticipants(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	batchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid batch ID"})
		return
	}

	csvBytes, err := h.batchService.ExportParticipantsCSV(c.Request.Context(), userID, batchID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Administrator role required"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Batch not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export participants"})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="batch-%d-participants.csv"`, batchID))
	c.Data(http.StatusOK, "text/csv", csvBytes)
}

// UpdateEnrollmentStatus godoc
// @Summary Update enrollment status (admin)
// @Tags batches
// @Accept json
// @Param id path int true "Enrollment ID"
// @Param status body dto.UpdateEnrollmentStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /enrollments/{id} [patch]
// @Security BearerAuth
func (h *BatchHandler) UpdateEnrollmentStatus(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	enrollmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid enrollment ID"})
		return
	}

	var req dto.UpdateEnrollmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.batchService.UpdateEnrollmentStatus(c.Request.Context(), userID, enrollmentID, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Administrator role required"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Enrollment not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update enrollment"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// enrollErrorResponse maps enroll flow errors to a status code and message.
func enrollErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrCoachNotFound):
		return http.StatusNotFound, "Coach registration not found"
	case errors.Is(err, apperrors.ErrBatchNotFoundOrClosed):
		return http.StatusNotFound, "This batch is not open for registration"
	case errors.Is(err, apperrors.ErrBatchFull):
		return http.StatusConflict, "This batch is already full"
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		return http.StatusConflict, "Already registered to this batch"
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}
