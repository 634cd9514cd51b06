package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medirec/hospital-service/internal/services"
	"github.com/medirec/hospital-service/internal/utils"
	"github.com/medirec/hospital-service/internal/validator"
)

type PatientHandler struct {
	BaseHandler
	service services.PatientService
}

func NewPatientHandler(service services.PatientService, logger utils.Logger) *PatientHandler {
	return &PatientHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListPatients returns all patient accounts
// @Summary List patients
// @Tags patients
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/patients [get]
func (h *PatientHandler) ListPatients(c *gin.Context) {
	h.LogRequest(c, "Listing patients")

	patients, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpGetAll, "PATIENT", map[string]interface{}{"count": len(patients)})

	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// GetPatient returns one patient account
// @Summary Get a patient
// @Tags patients
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse "Patient not found"
// @Router /api/patients/{id} [get]
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Getting patient", "patient_id", id)

	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpGet, "PATIENT", map[string]interface{}{"id": id})

	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// CreatePatient creates a patient account
// @Summary Create a patient
// @Tags patients
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 409 {object} ErrorResponse "Username already exists"
// @Router /api/patients [post]
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	h.LogRequest(c, "Creating patient")

	var req services.CreatePatientRequest
	if !h.bindJSON(c, &req) {
		return
	}

	patient, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpCreate, "PATIENT", map[string]interface{}{
		"id":       patient.ID,
		"username": patient.Username,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Patient created successfully",
		"id":      patient.ID,
	})
}

// UpdatePatient applies a partial update to a patient account
// @Summary Update a patient
// @Tags patients
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "No valid fields to update"
// @Failure 404 {object} ErrorResponse "Patient not found"
// @Router /api/patients/{id} [put]
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Updating patient", "patient_id", id)

	var req services.UpdatePatientRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpUpdate, "PATIENT", map[string]interface{}{"id": id})

	c.JSON(http.StatusOK, gin.H{"message": "Patient updated successfully"})
}

// DeletePatient removes a patient account
// @Summary Delete a patient
// @Description Delete a patient. Rejected while appointments still reference the patient.
// @Tags patients
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse "Patient not found"
// @Failure 409 {object} ErrorResponse "Patient has existing appointments"
// @Router /api/patients/{id} [delete]
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Deleting patient", "patient_id", id)

	patient, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpDelete, "PATIENT", map[string]interface{}{
		"id":       id,
		"username": patient.Username,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}

func (h *PatientHandler) handleServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: verrs.WireMessage()})
	case errors.Is(err, services.ErrNoFieldsToUpdate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "No valid fields to update"})
	case errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Username already exists"})
	case errors.Is(err, services.ErrPatientNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Patient not found"})
	case errors.Is(err, services.ErrPatientHasAppointments):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Cannot delete patient with existing appointments"})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}
