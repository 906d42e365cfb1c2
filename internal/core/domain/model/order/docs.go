// Package order provides the production order aggregate and its lifecycle
// state machine.
//
// The package includes:
//   - Order: the aggregate root owning identity, quantities, lot metadata,
//     the motivazione/autocontrollo pair, and logical removal
//   - Status: the seven-state lifecycle machine
//     (PIANIFICATO through SALDATO) enforcing the transition graph
//   - Semaforo: the structured traffic-light flag set per
//     label/packaging/product dimension
//
// Key business rules:
//   - Orders are created in PIANIFICATO and only move along the documented
//     graph; invalid edges are rejected and leave the status unchanged
//   - SOSPESO requires a motivazione and resumes into IN_AVANZAMENTO
//   - EVASO requires the reconciled worked quantity to cover the ordered
//     quantity and sets autocontrollo
//   - EVASO and SALDATO reject further processing events
//   - Deletion is logical; removed orders are retained for audit
//
// The package follows Domain-Driven Design principles: rich behavior,
// encapsulated fields, and construction-time validation.
package order
