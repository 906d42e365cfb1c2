package ports

import (
	"context"

	"produzione/internal/core/domain/model/sequence"
)

// SequenceGenerator issues the next business code of a namespace.
//
// Contract:
//   - codes within a namespace are unique and numerically increasing
//   - two concurrent calls for the same namespace never receive the
//     same code; the implementation serializes issuance per namespace
//   - a call that cannot acquire the namespace within its timeout
//     returns ContentionError rather than blocking indefinitely; the
//     caller may retry
//   - issued codes are never reused, including codes of orders that
//     were later removed
type SequenceGenerator interface {
	// NextCode reserves and returns the next code of the namespace.
	// The reservation is part of the surrounding transaction: if the
	// transaction rolls back, so does the reservation, and no gap is
	// left behind.
	NextCode(ctx context.Context, ns sequence.Namespace) (string, error)
}
