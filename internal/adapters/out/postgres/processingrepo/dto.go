// Package processingrepo persists the processing event log. Events are
// append-only apart from logical removal; the sum of an order's active
// events is the authoritative worked quantity.
package processingrepo

import (
	"time"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/processing"

	"github.com/google/uuid"
)

// ProcessingDTO represents the database structure for one work-log event.
type ProcessingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index"`
	Quantity   int
	RecordedAt time.Time
	Removed    bool `gorm:"index"`
}

// TableName specifies the database table name for processing events.
func (ProcessingDTO) TableName() string {
	return "processings"
}

func fromDomain(event *processing.Processing) ProcessingDTO {
	return ProcessingDTO{
		ID:         event.ID().Bytes(),
		OrderID:    event.OrderID().Bytes(),
		EmployeeID: event.EmployeeID().Bytes(),
		Quantity:   event.Quantity(),
		RecordedAt: event.RecordedAt(),
		Removed:    event.State().IsRemoved(),
	}
}

func toDomain(dto ProcessingDTO) (*processing.Processing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}

	state := kernel.StateActive
	if dto.Removed {
		state = kernel.StateRemoved
	}

	return processing.RestoreProcessing(id, orderID, employeeID, dto.Quantity, dto.RecordedAt, state)
}
