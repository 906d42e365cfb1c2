// Package planningrepo persists the scheduling grid: allocation cells and
// the cached per-date summaries derived from them.
package planningrepo

import (
	"fmt"
	"time"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/planning"
	"produzione/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// AllocationDTO represents the database structure for one grid cell.
// Cells are logically removed on replace, keeping the full history of an
// order's schedule on record.
type AllocationDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID       `gorm:"type:uuid;index"`
	WorkLineID     uuid.UUID       `gorm:"type:uuid;index"`
	Date           datatypes.Date  `gorm:"index"`
	MorningHours   decimal.Decimal `gorm:"type:numeric"`
	AfternoonHours decimal.Decimal `gorm:"type:numeric"`
	NightHours     decimal.Decimal `gorm:"type:numeric"`
	Forced         bool
	Removed        bool `gorm:"index"`
}

// TableName specifies the database table name for allocation cells.
func (AllocationDTO) TableName() string {
	return "planning_allocations"
}

// SummaryDTO represents one cached per-date aggregate row. Summaries are
// rewritten whole per date, so rows carry no history.
type SummaryDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Date        datatypes.Date `gorm:"index"`
	SummaryType string         `gorm:"index"`
	Hours       decimal.Decimal `gorm:"type:numeric"`
	Removed     bool
}

// TableName specifies the database table name for summary rows.
func (SummaryDTO) TableName() string {
	return "planning_summaries"
}

func allocationFromDomain(cell *planning.Allocation) AllocationDTO {
	return AllocationDTO{
		ID:             cell.ID().Bytes(),
		OrderID:        cell.OrderID().Bytes(),
		WorkLineID:     cell.WorkLineID().Bytes(),
		Date:           datatypes.Date(cell.Date().Time()),
		MorningHours:   cell.Hours().Morning(),
		AfternoonHours: cell.Hours().Afternoon(),
		NightHours:     cell.Hours().Night(),
		Forced:         cell.Forced(),
		Removed:        cell.State().IsRemoved(),
	}
}

func allocationToDomain(dto AllocationDTO) (*planning.Allocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	workLineID, err := kernel.UUIDFromBytes(dto.WorkLineID[:])
	if err != nil {
		return nil, err
	}

	hours, err := planning.NewHours(dto.MorningHours, dto.AfternoonHours, dto.NightHours)
	if err != nil {
		return nil, err
	}

	state := kernel.StateActive
	if dto.Removed {
		state = kernel.StateRemoved
	}

	return planning.RestoreAllocation(
		id,
		orderID,
		workLineID,
		kernel.DateFromTime(time.Time(dto.Date)),
		hours,
		dto.Forced,
		state,
	)
}

func summaryFromDomain(summary *planning.Summary) SummaryDTO {
	return SummaryDTO{
		ID:          summary.ID().Bytes(),
		Date:        datatypes.Date(summary.Date().Time()),
		SummaryType: summary.Type().String(),
		Hours:       summary.Hours(),
		Removed:     summary.State().IsRemoved(),
	}
}

func summaryToDomain(dto SummaryDTO) (*planning.Summary, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	summaryType, err := summaryTypeFromName(dto.SummaryType)
	if err != nil {
		return nil, err
	}

	state := kernel.StateActive
	if dto.Removed {
		state = kernel.StateRemoved
	}

	return planning.RestoreSummary(
		id,
		kernel.DateFromTime(time.Time(dto.Date)),
		summaryType,
		dto.Hours,
		state,
	)
}

func summaryTypeFromName(name string) (planning.SummaryType, error) {
	for _, summaryType := range planning.AllSummaryTypes() {
		if summaryType.String() == name {
			return summaryType, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("summary type",
		fmt.Errorf("%q is not a known summary type", name))
}
