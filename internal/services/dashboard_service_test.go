package services

import (
	"context"
	"testing"
	"time"

	"github.com/medirec/hospital-service/internal/cache"
	"github.com/medirec/hospital-service/internal/events"
	"github.com/medirec/hospital-service/internal/models"
)

func TestNewDashboardService(t *testing.T) {
	repo := newMockRepository()
	statsCache := cache.NewCacheHelper(nil, "")

	service := NewDashboardService(repo, statsCache, testLogger())
	if service == nil {
		t.Fatal("NewDashboardService returned nil")
	}
}

func TestGetStats(t *testing.T) {
	repo := newMockRepository()
	svc := NewDashboardService(repo, cache.NewCacheHelper(nil, ""), testLogger())
	apptSvc := newTestAppointmentService(repo, events.NewMockEventPublisher(testLogger()))
	ctx := context.Background()

	patientID, doctorID := seedAccounts(t, repo)

	todayDate := models.NewDateOnly(time.Now())
	todayTime := models.NewTimeOfDay(10, 0, 0)
	today := &CreateAppointmentRequest{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: &todayDate,
		AppointmentTime: &todayTime,
	}
	if _, err := apptSvc.Create(ctx, today); err != nil {
		t.Fatalf("Create today's appointment: %v", err)
	}
	if _, err := apptSvc.Create(ctx, validCreateRequest(patientID, doctorID)); err != nil {
		t.Fatalf("Create future appointment: %v", err)
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.TotalPatients != 1 || stats.TotalDoctors != 1 || stats.TotalAdmins != 0 {
		t.Errorf("account counts wrong: %+v", stats)
	}
	if stats.TotalAppointments != 2 {
		t.Errorf("TotalAppointments = %d, want 2", stats.TotalAppointments)
	}
	if stats.TodayAppointments != 1 {
		t.Errorf("TodayAppointments = %d, want 1", stats.TodayAppointments)
	}
}
