package order

import (
	"fmt"

	"produzione/internal/pkg/errs"
)

// Light is one traffic-light indicator of the semaforo flag set.
type Light int

const (
	// LightGreen means the dimension passed its checks.
	LightGreen Light = iota

	// LightYellow means the dimension needs attention.
	LightYellow

	// LightRed means the dimension is blocking.
	LightRed
)

// String returns the light name used for display and persistence mapping.
func (l Light) String() string {
	switch l {
	case LightGreen:
		return "GREEN"
	case LightYellow:
		return "YELLOW"
	case LightRed:
		return "RED"
	default:
		return "UNKNOWN"
	}
}

// Validate checks that the light is one of the defined values.
func (l Light) Validate() error {
	if l < LightGreen || l > LightRed {
		return errs.NewValueIsInvalidErrorWithCause("light",
			fmt.Errorf("%d is not a valid light", l))
	}
	return nil
}

// Semaforo is the structured traffic-light flag set carried by an order.
// Each dimension tracks the readiness of one aspect of the order: the
// printed label, the packaging material, and the product itself.
//
// Semaforo is a value object; mutate an order's semaforo by constructing a
// new value via NewSemaforo.
type Semaforo struct {
	label     Light
	packaging Light
	product   Light
}

// NewSemaforo creates a Semaforo from its three dimensions, validating
// each light.
func NewSemaforo(label, packaging, product Light) (Semaforo, error) {
	for _, l := range []Light{label, packaging, product} {
		if err := l.Validate(); err != nil {
			return Semaforo{}, err
		}
	}
	return Semaforo{label: label, packaging: packaging, product: product}, nil
}

// Label returns the label dimension light.
func (s Semaforo) Label() Light {
	return s.label
}

// Packaging returns the packaging dimension light.
func (s Semaforo) Packaging() Light {
	return s.packaging
}

// Product returns the product dimension light.
func (s Semaforo) Product() Light {
	return s.product
}

// AllGreen reports whether every dimension passed its checks.
func (s Semaforo) AllGreen() bool {
	return s.label == LightGreen && s.packaging == LightGreen && s.product == LightGreen
}
