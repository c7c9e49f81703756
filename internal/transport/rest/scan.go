package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acnescan/internal/domain"
)

const maxScanImageSize = 10 << 20 // 10 MB

// @Summary Analyze a skin photo
// @Description Uploads a photo, classifies the acne type and stores the scan result
// @Tags Scans
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Photo to analyze"
// @Success 201 {object} domain.Scan "Stored scan with classification"
// @Failure 400 {object} errorResponseBody "Missing or invalid image"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 502 {object} errorResponseBody "Classifier unavailable"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Security ApiKeyAuth
// @Router /scans [post]
func (h *Handler) createScan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("failed to get user ID", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.logger.Warn("missing image file", zap.Error(err))
		badRequestResponse(c, "image file is required")
		return
	}

	if fileHeader.Size > maxScanImageSize {
		badRequestResponse(c, "image is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read uploaded file", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	scan, err := h.services.Scan.Analyze(c.Request.Context(), userID, image, fileHeader.Filename)
	if err != nil {
		h.logger.Error("scan analysis failed", zap.Int64("userID", userID), zap.Error(err))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			badRequestResponse(c, err.Error())
		case errors.Is(err, domain.ErrDependency):
			errorResponse(c, http.StatusBadGateway, "image analysis is temporarily unavailable")
		default:
			internalServerErrorResponse(c)
		}
		return
	}

	createdResponse(c, scan)
}

// @Summary List own scans
// @Description Returns the scan history of the authenticated user, newest first
// @Tags Scans
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} successResponseBody "List of scans"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Security ApiKeyAuth
// @Router /scans [get]
func (h *Handler) getScans(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("failed to get user ID", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	scans, err := h.services.Scan.ListByUserID(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.logger.Error("failed to list scans", zap.Int64("userID", userID), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, scans)
}

// @Summary Get scan by ID
// @Description Returns one scan result; only the owner or an admin may view it
// @Tags Scans
// @Accept json
// @Produce json
// @Param id path int true "Scan ID"
// @Success 200 {object} domain.Scan "Scan result"
// @Failure 400 {object} errorResponseBody "Invalid ID format"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Access denied"
// @Failure 404 {object} errorResponseBody "Scan not found"
// @Security ApiKeyAuth
// @Router /scans/{id} [get]
func (h *Handler) getScanByID(c *gin.Context) {
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

	scan, err := h.services.Scan.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get scan", zap.Int64("id", id), zap.Error(err))
		notFoundResponse(c, "scan not found")
		return
	}

	userRole, _ := getUserRole(c)
	if scan.UserID != userID && userRole != domain.UserRoleAdmin {
		h.logger.Warn("unauthorized scan access attempt", zap.Int64("userID", userID), zap.Int64("scanID", id))
		forbiddenResponse(c)
		return
	}

	successResponse(c, http.StatusOK, scan)
}
