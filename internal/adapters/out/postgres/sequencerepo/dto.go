// Package sequencerepo issues gap-free business codes on top of Postgres.
// Issuance is serialized per namespace with a transaction-scoped advisory
// lock, and every issued code is written to the sequence_codes ledger in
// the same transaction, so a rollback releases both the lock and the code.
package sequencerepo

import "time"

// SequenceCodeDTO is one row of the issued-code ledger. The ledger, not
// the orders table, is what the generator reads its high-water mark from:
// codes survive here even when their order is removed, which is what
// keeps removed codes reserved.
type SequenceCodeDTO struct {
	Namespace string `gorm:"primaryKey"`
	Suffix    int    `gorm:"primaryKey"`
	Code      string `gorm:"index;not null"`
	IssuedAt  time.Time
}

// TableName specifies the database table name for issued codes.
func (SequenceCodeDTO) TableName() string {
	return "sequence_codes"
}
