// Package notifier invalidates the dashboard caches downstream of order
// data. The cache rows are owned by the dashboard side; this adapter only
// drops them. Invalidation is best-effort: failures are logged and
// swallowed so they never poison the business transaction that triggered
// the sweep.
package notifier

import (
	"context"
	"log/slog"

	"produzione/internal/core/ports"

	"gorm.io/gorm"
)

// CacheEntryDTO represents one materialized dashboard cache row.
type CacheEntryDTO struct {
	Scope   string `gorm:"primaryKey"`
	Bucket  string `gorm:"primaryKey"`
	Payload []byte
}

// TableName specifies the database table name for dashboard cache rows.
func (CacheEntryDTO) TableName() string {
	return "dashboard_caches"
}

// DBCacheNotifier implements CacheNotifier by deleting materialized rows.
// The dashboard repopulates a missing row on its next read.
type DBCacheNotifier struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewDBCacheNotifier creates a notifier over the dashboard cache table.
func NewDBCacheNotifier(db *gorm.DB, logger *slog.Logger) *DBCacheNotifier {
	return &DBCacheNotifier{
		db:     db,
		logger: logger,
	}
}

// Invalidate drops one (scope, bucket) cache row. Errors are logged, not
// returned: the order change already committed and must not be undone by
// a cache hiccup.
func (n *DBCacheNotifier) Invalidate(ctx context.Context, scope ports.CacheScope, bucket ports.CacheBucket) {
	err := n.db.WithContext(ctx).
		Where("scope = ? AND bucket = ?", string(scope), string(bucket)).
		Delete(&CacheEntryDTO{}).Error
	if err != nil {
		n.logger.Warn("cache invalidation failed",
			"scope", string(scope),
			"bucket", string(bucket),
			"error", err)
	}
}
