package sequencerepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"produzione/internal/core/domain/model/sequence"
	"produzione/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// DefaultLockTimeout bounds how long an issuance waits for its namespace.
// Past it the caller gets ContentionError instead of queueing forever.
const DefaultLockTimeout = 3 * time.Second

// SQLSTATE codes surfacing as contention rather than failure.
const (
	sqlstateLockNotAvailable   = "55P03"
	sqlstateSerializationError = "40001"
)

// GormSequenceGenerator implements SequenceGenerator on a transactional
// GORM handle. It MUST run inside a transaction: the advisory lock is
// transaction-scoped and SET LOCAL is a no-op outside one.
type GormSequenceGenerator struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewGormSequenceGenerator creates a generator bound to a transaction.
// A non-positive lockTimeout falls back to DefaultLockTimeout.
func NewGormSequenceGenerator(db *gorm.DB, lockTimeout time.Duration) *GormSequenceGenerator {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &GormSequenceGenerator{
		db:          db,
		lockTimeout: lockTimeout,
	}
}

// NextCode reserves and returns the next code of the namespace.
//
// The read-max/insert pair would race under concurrency; the advisory
// lock on the namespace name serializes it. Because the lock is taken
// with pg_advisory_xact_lock it holds until the surrounding transaction
// ends, so two creations cannot interleave between issuing a code and
// committing the row that records it.
func (g *GormSequenceGenerator) NextCode(ctx context.Context, ns sequence.Namespace) (string, error) {
	if err := ns.Validate(); err != nil {
		return "", err
	}

	tx := g.db.WithContext(ctx)

	timeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", g.lockTimeout.Milliseconds())
	if err := tx.Exec(timeout).Error; err != nil {
		return "", err
	}

	if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", ns.Name()).Error; err != nil {
		return "", asContention(ns, err)
	}

	var highest int
	err := tx.Raw(`
		SELECT COALESCE(MAX(suffix), 0) FROM sequence_codes WHERE namespace = ?
	`, ns.Name()).Scan(&highest).Error
	if err != nil {
		return "", err
	}

	suffix := highest + 1
	dto := SequenceCodeDTO{
		Namespace: ns.Name(),
		Suffix:    suffix,
		Code:      ns.Format(suffix),
		IssuedAt:  time.Now().UTC(),
	}
	if err = tx.Create(&dto).Error; err != nil {
		return "", asContention(ns, err)
	}

	return dto.Code, nil
}

// asContention translates lock timeouts and serialization failures into
// the retryable ContentionError; anything else passes through untouched.
func asContention(ns sequence.Namespace, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == sqlstateLockNotAvailable || pgErr.Code == sqlstateSerializationError {
			return errs.NewContentionError(ns.Name(), err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewContentionError(ns.Name(), err)
	}
	return err
}
