package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medirec/hospital-service/internal/services"
	"github.com/medirec/hospital-service/internal/utils"
	"github.com/medirec/hospital-service/internal/validator"
)

type AppointmentHandler struct {
	BaseHandler
	service services.AppointmentService
}

func NewAppointmentHandler(service services.AppointmentService, logger utils.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListAppointments returns all appointments with patient and doctor details
// @Summary List appointments
// @Description List appointments joined with patient name, doctor name and specialization, newest date first.
// @Tags appointments
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	h.LogRequest(c, "Listing appointments")

	appointments, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpGetAll, "APPOINTMENT", map[string]interface{}{"count": len(appointments)})

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// GetAppointment returns one appointment with patient and doctor details
// @Summary Get an appointment
// @Tags appointments
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse "Appointment not found"
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Getting appointment", "appointment_id", id)

	appointment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpGet, "APPOINTMENT", map[string]interface{}{"id": id})

	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

// CreateAppointment books an appointment
// @Summary Create an appointment
// @Description Book an appointment. Both patient_id and doctor_id must reference existing accounts.
// @Tags appointments
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Patient or doctor not found"
// @Router /api/appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	h.LogRequest(c, "Creating appointment")

	var req services.CreateAppointmentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	appointment, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpCreate, "APPOINTMENT", map[string]interface{}{
		"id":         appointment.ID,
		"patient_id": appointment.PatientID,
		"doctor_id":  appointment.DoctorID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Appointment created successfully",
		"id":      appointment.ID,
	})
}

// UpdateAppointment applies a partial update to an appointment
// @Summary Update an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "No valid fields to update"
// @Failure 404 {object} ErrorResponse "Appointment not found"
// @Router /api/appointments/{id} [put]
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Updating appointment", "appointment_id", id)

	var req services.UpdateAppointmentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpUpdate, "APPOINTMENT", map[string]interface{}{"id": id})

	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated successfully"})
}

// DeleteAppointment removes an appointment
// @Summary Delete an appointment
// @Tags appointments
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse "Appointment not found"
// @Router /api/appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Deleting appointment", "appointment_id", id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpDelete, "APPOINTMENT", map[string]interface{}{"id": id})

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

func (h *AppointmentHandler) handleServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: verrs.WireMessage()})
	case errors.Is(err, services.ErrNoFieldsToUpdate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "No valid fields to update"})
	case errors.Is(err, services.ErrPatientNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Patient not found"})
	case errors.Is(err, services.ErrDoctorNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Doctor not found"})
	case errors.Is(err, services.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Appointment not found"})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}
