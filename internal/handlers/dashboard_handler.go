package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medirec/hospital-service/internal/services"
	"github.com/medirec/hospital-service/internal/utils"
)

type DashboardHandler struct {
	BaseHandler
	service services.DashboardService
}

func NewDashboardHandler(service services.DashboardService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetDashboardStats returns overall dashboard statistics
// @Summary Get dashboard statistics
// @Description Get account totals, the overall appointment count, and today's appointment count
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	h.LogRequest(c, "Getting dashboard stats")

	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpGetStats, "DASHBOARD", map[string]interface{}{
		"total_patients":     stats.TotalPatients,
		"total_doctors":      stats.TotalDoctors,
		"total_admins":       stats.TotalAdmins,
		"today_appointments": stats.TodayAppointments,
		"total_appointments": stats.TotalAppointments,
	})

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *DashboardHandler) handleServiceError(c *gin.Context, err error) {
	h.LogError(c, err, "Unexpected service error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
}
