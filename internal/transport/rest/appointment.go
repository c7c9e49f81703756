package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acnescan/internal/domain"
)

// @Summary Book an appointment
// @Description Books a dermatologist appointment and sends a confirmation email in the background
// @Tags Appointments
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Booking draft"
// @Success 201 {object} domain.Appointment "Created appointment"
// @Failure 400 {object} errorResponseBody "Validation error or date in the past"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 404 {object} errorResponseBody "Dermatologist not found"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Security ApiKeyAuth
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("failed to get user ID", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	var req domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	appointment, err := h.services.Appointment.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.logger.Error("failed to book appointment", zap.Error(err))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			badRequestResponse(c, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			notFoundResponse(c, err.Error())
		default:
			internalServerErrorResponse(c)
		}
		return
	}

	createdResponse(c, appointment)
}

// @Summary Get appointment by ID
// @Description Returns one appointment; only the owner or an admin may view it
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} domain.Appointment "Appointment"
// @Failure 400 {object} errorResponseBody "Invalid ID format"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Access denied"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Security ApiKeyAuth
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("failed to get user ID", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Warn("invalid ID format", zap.Error(err))
		badRequestResponse(c, "invalid ID format")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get appointment", zap.Int64("id", id), zap.Error(err))
		notFoundResponse(c, "appointment not found")
		return
	}

	userRole, _ := getUserRole(c)
	if appointment.UserID != userID && userRole != domain.UserRoleAdmin {
		h.logger.Warn("unauthorized appointment access attempt", zap.Int64("userID", userID))
		forbiddenResponse(c)
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Cancel an appointment
// @Description Cancels an appointment; only the owner or an admin may cancel it
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} messageResponseType "Cancellation confirmation"
// @Failure 400 {object} errorResponseBody "Invalid ID format or cancel error"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Access denied"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Security ApiKeyAuth
// @Router /appointments/{id} [delete]
func (h *Handler) cancelAppointment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("failed to get user ID", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Warn("invalid ID format", zap.Error(err))
		badRequestResponse(c, "invalid ID format")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get appointment", zap.Int64("id", id), zap.Error(err))
		notFoundResponse(c, "appointment not found")
		return
	}

	userRole, _ := getUserRole(c)
	if appointment.UserID != userID && userRole != domain.UserRoleAdmin {
		h.logger.Warn("unauthorized appointment access attempt", zap.Int64("userID", userID))
		forbiddenResponse(c)
		return
	}

	if err := h.services.Appointment.Cancel(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to cancel appointment", zap.Error(err))
		badRequestResponse(c, "failed to cancel appointment")
		return
	}

	messageResponse(c, http.StatusOK, "appointment cancelled")
}

// @Summary List appointments
// @Description Returns the authenticated user's appointments with filtering and pagination
// @Tags Appointments
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Offset (default 0)"
// @Param user_id query int false "User ID (admins only)"
// @Param dermatologist_id query int false "Dermatologist ID"
// @Param status query string false "Appointment status"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} paginatedResponse "Appointments with pagination"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Security ApiKeyAuth
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("failed to get user ID", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := domain.AppointmentFilter{
		Limit:  limit,
		Offset: offset,
	}

	userRole, _ := getUserRole(c)
	if requestedUser := c.Query("user_id"); requestedUser != "" && userRole == domain.UserRoleAdmin {
		requestedID, err := strconv.ParseInt(requestedUser, 10, 64)
		if err == nil {
			filter.UserID = &requestedID
		}
	}
	if filter.UserID == nil {
		filter.UserID = &userID
	}

	if dermIDStr := c.Query("dermatologist_id"); dermIDStr != "" {
		dermID, err := strconv.ParseInt(dermIDStr, 10, 64)
		if err == nil {
			filter.DermatologistID = &dermID
		}
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.AppointmentStatus(statusStr)
		filter.Status = &status
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err == nil {
			filter.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err == nil {
			endDate = endDate.Add(24 * time.Hour).Add(-time.Second)
			filter.EndDate = &endDate
		}
	}

	appointments, total, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list appointments", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to list appointments")
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, appointments, total, page, limit)
}
