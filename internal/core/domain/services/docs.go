// Package services contains domain services coordinating logic that spans
// multiple aggregates. PlanningAllocator implements the scheduling math:
// hour calculation from throughput rates, spreading quantities across
// calendar days, and capacity conflict detection per (date, work line)
// slot. The service is pure domain logic; persistence stays behind the
// ports and is supplied by the application layer.
package services
