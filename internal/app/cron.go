package app

import (
	"context"
	"time"

	"github.com/codeverse-africa/whingan-core/internal/models"
	pkgcron "github.com/codeverse-africa/whingan-core/internal/pkg/cron"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, db *gorm.DB, logger *zap.Logger) {
	cronLogger := logger.Named("cron")

	sched.Register(pkgcron.Job{
		Name:     "purge_expired_reset_tokens",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			res := db.WithContext(ctx).Model(&models.UserModel{}).
				Where("password_reset_token <> '' AND password_reset_token_expiration < ?", time.Now()).
				Updates(map[string]interface{}{
					"password_reset_token":            "",
					"password_reset_token_expiration": nil,
				})
			if res.Error != nil {
				cronLogger.Warn("reset token purge failed", zap.Error(res.Error))
				return res.Error
			}
			if res.RowsAffected > 0 {
				cronLogger.Info("purged expired reset tokens", zap.Int64("count", res.RowsAffected))
			}
			return nil
		},
	})

	sched.Register(pkgcron.Job{
		Name:     "cleanup_orphan_requirements",
		Interval: 24 * time.Hour,
		Fn: func(ctx context.Context) error {
			res := db.WithContext(ctx).
				Where("job_id NOT IN (?)", db.Model(&models.JobModel{}).Select("id")).
				Delete(&models.RequirementModel{})
			if res.Error != nil {
				cronLogger.Warn("orphan requirement cleanup failed", zap.Error(res.Error))
				return res.Error
			}
			if res.RowsAffected > 0 {
				cronLogger.Info("removed orphaned requirements", zap.Int64("count", res.RowsAffected))
			}
			return nil
		},
	})
}
