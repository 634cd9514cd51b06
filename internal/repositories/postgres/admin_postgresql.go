package postgres

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/medirec/hospital-service/internal/cache"
	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/repositories"
)

type adminRepository struct {
	db         *gorm.DB
	statsCache *cache.CacheHelper
}

func NewAdminPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.AdminRepository {
	return &adminRepository{
		db:         db,
		statsCache: cache.NewCacheHelper(redisClient, cache.StatsCacheConfig.Prefix),
	}
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return handleDBError(err, "create admin")
	}
	cache.SafeDelete(ctx, r.statsCache, cache.DashboardStatsKey)
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, handleDBError(err, "get admin by id")
	}
	return &admin, nil
}

func (r *adminRepository) List(ctx context.Context) ([]*models.Admin, error) {
	var admins []*models.Admin
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&admins).Error; err != nil {
		return nil, handleDBError(err, "list admins")
	}
	return admins, nil
}

func (r *adminRepository) Update(ctx context.Context, id uint, update repositories.AdminUpdate) error {
	columns := adminUpdateColumns(update)
	if len(columns) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("id = ?", id).
		Updates(columns).Error; err != nil {
		return handleDBError(err, "update admin")
	}
	return nil
}

func (r *adminRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Admin{}, id).Error; err != nil {
		return handleDBError(err, "delete admin")
	}
	cache.SafeDelete(ctx, r.statsCache, cache.DashboardStatsKey)
	return nil
}

func (r *adminRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check admin exists")
	}
	return count > 0, nil
}
