// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work spans one business transaction: every
// repository obtained from it runs on the same database transaction, and
// the sequence generator reserves codes inside that transaction so a
// rollback releases them.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, lockTimeout)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"time"

	"produzione/internal/adapters/out/postgres/offerstaterepo"
	"produzione/internal/adapters/out/postgres/orderrepo"
	"produzione/internal/adapters/out/postgres/planningrepo"
	"produzione/internal/adapters/out/postgres/processingrepo"
	"produzione/internal/adapters/out/postgres/sequencerepo"
	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh instance with proper
// isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. lockTimeout bounds sequence issuance waits; a non-positive
// value falls back to the sequencerepo default.
func NewGormUnitOfWorkFactory(db *gorm.DB, lockTimeout time.Duration) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, lockTimeout: lockTimeout}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		lockTimeout:       f.lockTimeout,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repositories obtained from it execute
// within the current transaction if one is active, otherwise on the main
// connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	lockTimeout       time.Duration
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls on the same instance are safe and will not create nested
// transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction,
// including any sequence codes reserved in it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// handle returns the transaction when one is active, the main connection
// otherwise.
func (uow *GormUnitOfWork) handle() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository provides access to production order persistence within
// the unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.handle(), uow)
}

// PlanningRepository provides access to planning grid persistence within
// the unit of work.
func (uow *GormUnitOfWork) PlanningRepository() ports.PlanningRepository {
	return planningrepo.NewGormPlanningRepository(uow.handle(), uow)
}

// ProcessingRepository provides access to the processing event log within
// the unit of work.
func (uow *GormUnitOfWork) ProcessingRepository() ports.ProcessingRepository {
	return processingrepo.NewGormProcessingRepository(uow.handle(), uow)
}

// OfferOrderStateRepository provides access to the offer/order state
// catalog within the unit of work.
func (uow *GormUnitOfWork) OfferOrderStateRepository() ports.OfferOrderStateRepository {
	return offerstaterepo.NewGormOfferOrderStateRepository(uow.handle(), uow)
}

// SequenceGenerator provides business code issuance bound to the current
// transaction. Issuing outside a transaction would leak codes on failure,
// so callers must Begin first.
func (uow *GormUnitOfWork) SequenceGenerator() ports.SequenceGenerator {
	return sequencerepo.NewGormSequenceGenerator(uow.handle(), uow.lockTimeout)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
