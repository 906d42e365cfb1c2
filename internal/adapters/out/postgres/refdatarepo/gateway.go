package refdatarepo

import (
	"context"
	"errors"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/ports"
	"produzione/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReferenceDataGateway implements ReferenceDataGateway using GORM.
type GormReferenceDataGateway struct {
	db *gorm.DB
}

// NewGormReferenceDataGateway creates a new GORM reference data gateway.
func NewGormReferenceDataGateway(db *gorm.DB) *GormReferenceDataGateway {
	return &GormReferenceDataGateway{db: db}
}

// GetWorkLine retrieves one work line by ID.
func (g *GormReferenceDataGateway) GetWorkLine(ctx context.Context, id kernel.UUID) (ports.WorkLine, error) {
	if err := id.Validate(); err != nil {
		return ports.WorkLine{}, err
	}

	var dto WorkLineDTO
	if err := g.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.WorkLine{}, errs.NewObjectNotFoundError("work line", id.String())
		}
		return ports.WorkLine{}, err
	}

	return workLineToDomain(dto)
}

// GetAllWorkLines retrieves every work line ordered by name.
func (g *GormReferenceDataGateway) GetAllWorkLines(ctx context.Context) ([]ports.WorkLine, error) {
	var dtos []WorkLineDTO
	if err := g.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	lines := make([]ports.WorkLine, 0, len(dtos))
	for _, dto := range dtos {
		line, err := workLineToDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// GetArticle retrieves one article by ID.
func (g *GormReferenceDataGateway) GetArticle(ctx context.Context, id kernel.UUID) (ports.Article, error) {
	if err := id.Validate(); err != nil {
		return ports.Article{}, err
	}

	var dto ArticleDTO
	if err := g.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Article{}, errs.NewObjectNotFoundError("article", id.String())
		}
		return ports.Article{}, err
	}

	return articleToDomain(dto)
}

// GetEmployee retrieves one employee by ID.
func (g *GormReferenceDataGateway) GetEmployee(ctx context.Context, id kernel.UUID) (ports.Employee, error) {
	if err := id.Validate(); err != nil {
		return ports.Employee{}, err
	}

	var dto EmployeeDTO
	if err := g.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Employee{}, errs.NewObjectNotFoundError("employee", id.String())
		}
		return ports.Employee{}, err
	}

	return employeeToDomain(dto)
}
