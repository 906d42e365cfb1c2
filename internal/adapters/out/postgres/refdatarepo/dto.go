// Package refdatarepo reads the reference catalogs the scheduler depends
// on. The catalogs are maintained by the wider back office; this adapter
// only reads them, so it carries no tracker and no write path.
package refdatarepo

import (
	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkLineDTO represents the database structure for a work line.
type WorkLineDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"not null"`
	ThroughputRate decimal.Decimal `gorm:"type:numeric"`
	DailyCapacity  decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for work lines.
func (WorkLineDTO) TableName() string {
	return "work_lines"
}

// ArticleDTO represents the database structure for an article. A null
// throughput rate means the work line's rate applies.
type ArticleDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ModelCode      string    `gorm:"uniqueIndex"`
	Description    string
	ThroughputRate decimal.NullDecimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for articles.
func (ArticleDTO) TableName() string {
	return "articles"
}

// EmployeeDTO represents the database structure for an employee.
type EmployeeDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null"`
}

// TableName specifies the database table name for employees.
func (EmployeeDTO) TableName() string {
	return "employees"
}

func workLineToDomain(dto WorkLineDTO) (ports.WorkLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.WorkLine{}, err
	}
	return ports.WorkLine{
		ID:             id,
		Name:           dto.Name,
		ThroughputRate: dto.ThroughputRate,
		DailyCapacity:  dto.DailyCapacity,
	}, nil
}

func articleToDomain(dto ArticleDTO) (ports.Article, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Article{}, err
	}
	article := ports.Article{
		ID:          id,
		ModelCode:   dto.ModelCode,
		Description: dto.Description,
	}
	if dto.ThroughputRate.Valid {
		rate := dto.ThroughputRate.Decimal
		article.ThroughputRate = &rate
	}
	return article, nil
}

func employeeToDomain(dto EmployeeDTO) (ports.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Employee{}, err
	}
	return ports.Employee{ID: id, Name: dto.Name}, nil
}
