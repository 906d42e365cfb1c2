package ports

import "context"

// CacheScope enumerates the dashboard caches downstream of order data.
// The set is closed: invalidation fans out over these scopes and
// nothing else.
type CacheScope string

const (
	ScopeStatistics   CacheScope = "statistics"
	ScopeTopCustomers CacheScope = "top_customers"
	ScopeTopArticles  CacheScope = "top_articles"
	ScopePerformance  CacheScope = "performance"
	ScopeUrgentOrders CacheScope = "urgent_orders"
	ScopeRecentOrders CacheScope = "recent_orders"
)

// CacheBucket enumerates the time buckets each scope is cached under.
type CacheBucket string

const (
	BucketAll   CacheBucket = "all"
	BucketToday CacheBucket = "today"
	BucketWeek  CacheBucket = "week"
	BucketMonth CacheBucket = "month"
)

// AllCacheScopes returns every cache scope, in a fixed order.
func AllCacheScopes() []CacheScope {
	return []CacheScope{
		ScopeStatistics,
		ScopeTopCustomers,
		ScopeTopArticles,
		ScopePerformance,
		ScopeUrgentOrders,
		ScopeRecentOrders,
	}
}

// AllCacheBuckets returns every cache bucket, in a fixed order.
func AllCacheBuckets() []CacheBucket {
	return []CacheBucket{BucketAll, BucketToday, BucketWeek, BucketMonth}
}

// CacheNotifier tells downstream dashboards that cached order data is
// stale. Invalidation is best-effort: a failed notification is logged
// and swallowed, never propagated into the business transaction.
type CacheNotifier interface {
	// Invalidate marks one (scope, bucket) cache entry stale.
	Invalidate(ctx context.Context, scope CacheScope, bucket CacheBucket)
}

// InvalidateOrderCaches sweeps every scope and bucket exactly once.
// Called after a status change or removal commits; plain field edits do
// not trigger it.
func InvalidateOrderCaches(ctx context.Context, notifier CacheNotifier) {
	for _, scope := range AllCacheScopes() {
		for _, bucket := range AllCacheBuckets() {
			notifier.Invalidate(ctx, scope, bucket)
		}
	}
}
