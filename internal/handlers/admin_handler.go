package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medirec/hospital-service/internal/services"
	"github.com/medirec/hospital-service/internal/utils"
	"github.com/medirec/hospital-service/internal/validator"
)

type AdminHandler struct {
	BaseHandler
	service services.AdminService
}

func NewAdminHandler(service services.AdminService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListAdmins returns all admin accounts
// @Summary List admins
// @Tags admins
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/admins [get]
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	h.LogRequest(c, "Listing admins")

	admins, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpGetAll, "ADMIN", map[string]interface{}{"count": len(admins)})

	c.JSON(http.StatusOK, gin.H{"admins": admins})
}

// GetAdmin returns one admin account
// @Summary Get an admin
// @Tags admins
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse "Admin not found"
// @Router /api/admins/{id} [get]
func (h *AdminHandler) GetAdmin(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Getting admin", "admin_id", id)

	admin, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpGet, "ADMIN", map[string]interface{}{"id": id})

	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// UpdateAdmin applies a partial update to an admin account
// @Summary Update an admin
// @Tags admins
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "No valid fields to update"
// @Failure 404 {object} ErrorResponse "Admin not found"
// @Router /api/admins/{id} [put]
func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Updating admin", "admin_id", id)

	var req services.UpdateAdminRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpUpdate, "ADMIN", map[string]interface{}{"id": id})

	c.JSON(http.StatusOK, gin.H{"message": "Admin updated successfully"})
}

// DeleteAdmin removes an admin account
// @Summary Delete an admin
// @Tags admins
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse "Admin not found"
// @Router /api/admins/{id} [delete]
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Deleting admin", "admin_id", id)

	admin, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpDelete, "ADMIN", map[string]interface{}{
		"id":       id,
		"username": admin.Username,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}

func (h *AdminHandler) handleServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: verrs.WireMessage()})
	case errors.Is(err, services.ErrNoFieldsToUpdate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "No valid fields to update"})
	case errors.Is(err, services.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Admin not found"})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}
