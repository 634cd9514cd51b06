package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/medirec/hospital-service/internal/cache"
	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/repositories"
)

type dashboardService struct {
	repo       repositories.Repository
	statsCache *cache.CacheHelper
	logger     *slog.Logger
}

func NewDashboardService(repo repositories.Repository, statsCache *cache.CacheHelper, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:       repo,
		statsCache: statsCache,
		logger:     logger,
	}
}

// GetStats returns the dashboard counter block. Counts are cached briefly;
// account and appointment mutations drop the cached block so the counters
// never lag a write by more than the TTL.
func (s *dashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats

	err := s.statsCache.CacheOrExecute(ctx, cache.DashboardStatsKey, &stats, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		return s.computeStats(ctx)
	})
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (s *dashboardService) computeStats(ctx context.Context) (*models.DashboardStats, error) {
	dashboard := s.repo.Dashboard()

	totalAdmins, err := dashboard.GetTotalAdmins(ctx, nil)
	if err != nil {
		return nil, err
	}

	totalDoctors, err := dashboard.GetTotalDoctors(ctx, nil)
	if err != nil {
		return nil, err
	}

	totalPatients, err := dashboard.GetTotalPatients(ctx, nil)
	if err != nil {
		return nil, err
	}

	totalAppointments, err := dashboard.GetTotalAppointments(ctx, nil)
	if err != nil {
		return nil, err
	}

	today := models.NewDateOnly(time.Now())
	todayAppointments, err := dashboard.GetAppointmentsOn(ctx, nil, today)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalPatients:     totalPatients,
		TotalDoctors:      totalDoctors,
		TotalAdmins:       totalAdmins,
		TodayAppointments: todayAppointments,
		TotalAppointments: totalAppointments,
	}, nil
}
