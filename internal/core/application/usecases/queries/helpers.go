package queries

import "produzione/internal/core/domain/model/order"

// statusName maps a stored status ordinal to its wire name, rejecting
// values outside the lifecycle.
func statusName(value int) (string, error) {
	status := order.Status(value)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status.String(), nil
}
