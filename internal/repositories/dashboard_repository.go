package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/medirec/hospital-service/internal/models"
)

// DashboardRepository answers the dashboard counter queries.
type DashboardRepository interface {
	GetTotalAdmins(ctx context.Context, tx *gorm.DB) (int64, error)
	GetTotalDoctors(ctx context.Context, tx *gorm.DB) (int64, error)
	GetTotalPatients(ctx context.Context, tx *gorm.DB) (int64, error)
	GetTotalAppointments(ctx context.Context, tx *gorm.DB) (int64, error)
	GetAppointmentsOn(ctx context.Context, tx *gorm.DB, date models.DateOnly) (int64, error)
}
