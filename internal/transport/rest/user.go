package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acnescan/internal/domain"
)

// @Summary Current user profile
// @Description Returns the profile of the authenticated user
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} domain.User "User profile"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 404 {object} errorResponseBody "User not found"
// @Security ApiKeyAuth
// @Router /users/me [get]
func (h *Handler) getCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("failed to get user ID", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get user", zap.Int64("id", userID), zap.Error(err))
		notFoundResponse(c, "user not found")
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Update current user
// @Description Updates the profile of the authenticated user
// @Tags Users
// @Accept json
// @Produce json
// @Param input body domain.UpdateUserDTO true "Fields to update"
// @Success 200 {object} messageResponseType "Update confirmation"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Security ApiKeyAuth
// @Router /users/me [put]
func (h *Handler) updateCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("failed to get user ID", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	var input domain.UpdateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.User.Update(c.Request.Context(), userID, input); err != nil {
		h.logger.Error("failed to update user", zap.Int64("id", userID), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "profile updated")
}

// @Summary Change password
// @Description Changes the password of the authenticated user
// @Tags Users
// @Accept json
// @Produce json
// @Param input body domain.PasswordUpdateDTO true "Current and new password"
// @Success 200 {object} messageResponseType "Change confirmation"
// @Failure 400 {object} errorResponseBody "Validation error or wrong current password"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Security ApiKeyAuth
// @Router /users/me/password [put]
func (h *Handler) updatePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("failed to get user ID", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	var input domain.PasswordUpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.User.UpdatePassword(c.Request.Context(), userID, input); err != nil {
		h.logger.Error("failed to update password", zap.Int64("id", userID), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "password updated")
}

// @Summary Create a user
// @Description Creates a user account, admin only
// @Tags Users
// @Accept json
// @Produce json
// @Param input body domain.CreateUserDTO true "User data"
// @Success 201 {object} map[string]interface{} "ID of the created user"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Access denied"
// @Security ApiKeyAuth
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var input domain.CreateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.User.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary List users
// @Description Returns a page of users, admin only
// @Tags Users
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} successResponseBody "List of users"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Access denied"
// @Security ApiKeyAuth
// @Router /users [get]
func (h *Handler) getUsers(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	users, err := h.services.User.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, users)
}

// @Summary Get user by ID
// @Description Returns a user by ID, admin only
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.User "User profile"
// @Failure 400 {object} errorResponseBody "Invalid ID format"
// @Failure 404 {object} errorResponseBody "User not found"
// @Security ApiKeyAuth
// @Router /users/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Warn("invalid ID format", zap.Error(err))
		badRequestResponse(c, "invalid ID format")
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get user", zap.Int64("id", id), zap.Error(err))
		notFoundResponse(c, "user not found")
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Delete a user
// @Description Deactivates a user account, admin only
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 204 {object} nil "User deleted"
// @Failure 400 {object} errorResponseBody "Invalid ID format"
// @Failure 404 {object} errorResponseBody "User not found"
// @Security ApiKeyAuth
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Warn("invalid ID format", zap.Error(err))
		badRequestResponse(c, "invalid ID format")
		return
	}

	if err := h.services.User.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete user", zap.Int64("id", id), zap.Error(err))
		notFoundResponse(c, "user not found")
		return
	}

	noContentResponse(c)
}
