package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medirec/hospital-service/internal/services"
	"github.com/medirec/hospital-service/internal/utils"
	"github.com/medirec/hospital-service/internal/validator"
)

type DoctorHandler struct {
	BaseHandler
	service services.DoctorService
}

func NewDoctorHandler(service services.DoctorService, logger utils.Logger) *DoctorHandler {
	return &DoctorHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListDoctors returns all doctor accounts
// @Summary List doctors
// @Tags doctors
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/doctors [get]
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	h.LogRequest(c, "Listing doctors")

	doctors, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpGetAll, "DOCTOR", map[string]interface{}{"count": len(doctors)})

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// GetDoctor returns one doctor account
// @Summary Get a doctor
// @Tags doctors
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse "Doctor not found"
// @Router /api/doctors/{id} [get]
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Getting doctor", "doctor_id", id)

	doctor, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpGet, "DOCTOR", map[string]interface{}{"id": id})

	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// CreateDoctor creates a doctor account
// @Summary Create a doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 409 {object} ErrorResponse "Username already exists"
// @Router /api/doctors [post]
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	h.LogRequest(c, "Creating doctor")

	var req services.CreateDoctorRequest
	if !h.bindJSON(c, &req) {
		return
	}

	doctor, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpCreate, "DOCTOR", map[string]interface{}{
		"id":       doctor.ID,
		"username": doctor.Username,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Doctor created successfully",
		"id":      doctor.ID,
	})
}

// UpdateDoctor applies a partial update to a doctor account
// @Summary Update a doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "No valid fields to update"
// @Failure 404 {object} ErrorResponse "Doctor not found"
// @Router /api/doctors/{id} [put]
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Updating doctor", "doctor_id", id)

	var req services.UpdateDoctorRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpUpdate, "DOCTOR", map[string]interface{}{"id": id})

	c.JSON(http.StatusOK, gin.H{"message": "Doctor updated successfully"})
}

// DeleteDoctor removes a doctor account
// @Summary Delete a doctor
// @Description Delete a doctor. Rejected while appointments still reference the doctor.
// @Tags doctors
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse "Doctor not found"
// @Failure 409 {object} ErrorResponse "Doctor has existing appointments"
// @Router /api/doctors/{id} [delete]
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Deleting doctor", "doctor_id", id)

	doctor, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpDelete, "DOCTOR", map[string]interface{}{
		"id":       id,
		"username": doctor.Username,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted successfully"})
}

func (h *DoctorHandler) handleServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: verrs.WireMessage()})
	case errors.Is(err, services.ErrNoFieldsToUpdate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "No valid fields to update"})
	case errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Username already exists"})
	case errors.Is(err, services.ErrDoctorNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Doctor not found"})
	case errors.Is(err, services.ErrDoctorHasAppointments):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Cannot delete doctor with existing appointments"})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}
