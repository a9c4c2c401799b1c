package dataset

import "github.com/filmlens/filmlens/internal/domain"

// Table is the immutable in-memory rating table shared by every transform.
// It hides the backing slice so higher layers can only read row copies,
// which keeps the load-once table safe to share across handlers.
type Table struct {
	records []domain.Record
}

// NewTable builds a Table from rows, copying them so later mutation of the
// caller's slice cannot reach the table.
func NewTable(records []domain.Record) *Table {
	rows := make([]domain.Record, len(records))
	copy(rows, records)
	return &Table{records: rows}
}

// Len reports the number of rating rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns a copy of the i-th row. Panics if i is out of range, matching
// slice indexing semantics.
func (t *Table) At(i int) domain.Record {
	return t.records[i]
}
