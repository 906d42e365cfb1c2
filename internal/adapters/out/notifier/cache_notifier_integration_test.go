package notifier_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"produzione/internal/adapters/out/notifier"
	"produzione/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CacheNotifierIntegrationTestSuite verifies cache invalidation against a
// real PostgreSQL database, including the swallow-on-failure contract.
type CacheNotifierIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	notifier  *notifier.DBCacheNotifier
}

func (suite *CacheNotifierIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.notifier = notifier.NewDBCacheNotifier(db, logger)
}

func (suite *CacheNotifierIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Migrator().DropTable(&notifier.CacheEntryDTO{}))
	suite.Require().NoError(suite.db.AutoMigrate(&notifier.CacheEntryDTO{}))
}

func (suite *CacheNotifierIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CacheNotifierIntegrationTestSuite) TestInvalidate_DropsOnlyTheTargetRow() {
	ctx := context.Background()

	for _, scope := range ports.AllCacheScopes() {
		for _, bucket := range ports.AllCacheBuckets() {
			suite.Require().NoError(suite.db.Create(&notifier.CacheEntryDTO{
				Scope:   string(scope),
				Bucket:  string(bucket),
				Payload: []byte(`{}`),
			}).Error)
		}
	}

	suite.notifier.Invalidate(ctx, ports.ScopeStatistics, ports.BucketToday)

	var count int64
	suite.Require().NoError(suite.db.Model(&notifier.CacheEntryDTO{}).Count(&count).Error)
	suite.Equal(int64(23), count)

	var remaining int64
	suite.Require().NoError(suite.db.Model(&notifier.CacheEntryDTO{}).
		Where("scope = ? AND bucket = ?", "statistics", "today").
		Count(&remaining).Error)
	suite.Zero(remaining)
}

func (suite *CacheNotifierIntegrationTestSuite) TestInvalidate_MissingRow_IsANoOp() {
	ctx := context.Background()

	suite.notifier.Invalidate(ctx, ports.ScopeRecentOrders, ports.BucketMonth)

	var count int64
	suite.Require().NoError(suite.db.Model(&notifier.CacheEntryDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *CacheNotifierIntegrationTestSuite) TestInvalidate_FailureIsSwallowed() {
	ctx := context.Background()

	// Missing table makes the delete fail; the notifier must not panic
	// and must not surface the error.
	suite.Require().NoError(suite.db.Migrator().DropTable(&notifier.CacheEntryDTO{}))

	suite.NotPanics(func() {
		suite.notifier.Invalidate(ctx, ports.ScopeStatistics, ports.BucketAll)
	})
}

func (suite *CacheNotifierIntegrationTestSuite) TestInvalidateOrderCaches_SweepsEveryPair() {
	ctx := context.Background()

	for _, scope := range ports.AllCacheScopes() {
		for _, bucket := range ports.AllCacheBuckets() {
			suite.Require().NoError(suite.db.Create(&notifier.CacheEntryDTO{
				Scope:   string(scope),
				Bucket:  string(bucket),
				Payload: []byte(`{}`),
			}).Error)
		}
	}

	ports.InvalidateOrderCaches(ctx, suite.notifier)

	var count int64
	suite.Require().NoError(suite.db.Model(&notifier.CacheEntryDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func TestCacheNotifierIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CacheNotifierIntegrationTestSuite))
}
