// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the production order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Logical removal is a flag, never a row delete: removed orders keep their
// production number reserved and stay available for audit reads.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductionNumber  string    `gorm:"uniqueIndex;not null"`
	ArticleID         uuid.UUID `gorm:"type:uuid;index"`
	Quantity          int
	WorkedQuantity    int
	DeliveryDate      datatypes.Date
	StartDate         datatypes.Date
	LineNumber        int
	Lot               string
	Expiry            *datatypes.Date
	Status            int `gorm:"index"`
	SemaforoLabel     int
	SemaforoPackaging int
	SemaforoProduct   int
	Motivazione       string
	Autocontrollo     bool
	Removed           bool `gorm:"index"`
	Version           int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var expiry *datatypes.Date
	if e := aggregate.Expiry(); e != nil {
		raw := datatypes.Date(e.Time())
		expiry = &raw
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		ProductionNumber:  aggregate.ProductionNumber(),
		ArticleID:         aggregate.ArticleID().Bytes(),
		Quantity:          aggregate.Quantity(),
		WorkedQuantity:    aggregate.WorkedQuantity(),
		DeliveryDate:      datatypes.Date(aggregate.DeliveryDate().Time()),
		StartDate:         datatypes.Date(aggregate.StartDate().Time()),
		LineNumber:        aggregate.LineNumber(),
		Lot:               aggregate.Lot(),
		Expiry:            expiry,
		Status:            int(aggregate.Status()),
		SemaforoLabel:     int(aggregate.Semaforo().Label()),
		SemaforoPackaging: int(aggregate.Semaforo().Packaging()),
		SemaforoProduct:   int(aggregate.Semaforo().Product()),
		Motivazione:       aggregate.Motivazione(),
		Autocontrollo:     aggregate.Autocontrollo(),
		Removed:           aggregate.State().IsRemoved(),
		Version:           aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder so stored rows are
// revalidated on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	articleID, err := kernel.UUIDFromBytes(dto.ArticleID[:])
	if err != nil {
		return nil, err
	}

	var expiry *kernel.Date
	if dto.Expiry != nil {
		e := kernel.DateFromTime(time.Time(*dto.Expiry))
		expiry = &e
	}

	semaforo, err := order.NewSemaforo(
		order.Light(dto.SemaforoLabel),
		order.Light(dto.SemaforoPackaging),
		order.Light(dto.SemaforoProduct),
	)
	if err != nil {
		return nil, err
	}

	state := kernel.StateActive
	if dto.Removed {
		state = kernel.StateRemoved
	}

	return order.RestoreOrder(
		id,
		dto.ProductionNumber,
		articleID,
		dto.Quantity,
		dto.WorkedQuantity,
		kernel.DateFromTime(time.Time(dto.DeliveryDate)),
		kernel.DateFromTime(time.Time(dto.StartDate)),
		dto.LineNumber,
		dto.Lot,
		expiry,
		order.Status(dto.Status),
		semaforo,
		dto.Motivazione,
		dto.Autocontrollo,
		state,
		dto.Version,
	)
}
