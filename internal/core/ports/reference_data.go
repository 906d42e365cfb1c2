package ports

import (
	"context"

	"produzione/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// WorkLine is a production line as the scheduler sees it: a throughput
// rate for hour calculation and a daily capacity for conflict checks.
type WorkLine struct {
	ID             kernel.UUID
	Name           string
	ThroughputRate decimal.Decimal
	DailyCapacity  decimal.Decimal
}

// Article is the catalog view of a produced article. ThroughputRate,
// when set, overrides the work line's rate for this article.
type Article struct {
	ID             kernel.UUID
	ModelCode      string
	Description    string
	ThroughputRate *decimal.Decimal
}

// Employee is the registry view of a worker recording processing events.
type Employee struct {
	ID   kernel.UUID
	Name string
}

// ReferenceDataGateway provides read access to the reference catalogs
// the scheduler depends on: work lines, articles, and employees. The
// catalogs are owned elsewhere; this side only reads them.
type ReferenceDataGateway interface {
	// GetWorkLine retrieves one work line by ID.
	GetWorkLine(ctx context.Context, id kernel.UUID) (WorkLine, error)

	// GetAllWorkLines retrieves every work line.
	GetAllWorkLines(ctx context.Context) ([]WorkLine, error)

	// GetArticle retrieves one article by ID.
	GetArticle(ctx context.Context, id kernel.UUID) (Article, error)

	// GetEmployee retrieves one employee by ID.
	GetEmployee(ctx context.Context, id kernel.UUID) (Employee, error)
}

// EffectiveRate resolves the throughput rate for an article on a work
// line: the article's override when present, the line's rate otherwise.
func EffectiveRate(line WorkLine, article Article) decimal.Decimal {
	if article.ThroughputRate != nil {
		return *article.ThroughputRate
	}
	return line.ThroughputRate
}
