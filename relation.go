package syscat

import (
	"github.com/syscatdb/syscat/schema"
	"github.com/syscatdb/syscat/syscat_errors"
)

// Column is one column of a catalog relation definition.
type Column struct {
	Name     string
	Type     schema.TypeCode
	Nullable bool
}

// Definition is the immutable shape of one catalog relation: its
// columns, the ordering/uniqueness column set, and auxiliary lookup
// column sets over the columns driver metadata calls filter by most.
// Built once at engine initialization and shared by every session.
type Definition struct {
	Name    string
	Columns []Column
	Key     []int
	Lookups [][]int
}

// ColumnIndex returns the ordinal of the named column, or -1.
func (d *Definition) ColumnIndex(name string) int {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return i
		}
	}
	return -1
}

// Row is an ordered tuple matching a Definition. Immutable once appended.
type Row []any

// Relation is one materialized catalog relation. Rows are appended
// during generation; Seal makes the content read-only before it is
// handed to callers.
type Relation struct {
	def    *Definition
	rows   []Row
	sealed bool
}

func newRelation(def *Definition) *Relation {
	return &Relation{def: def}
}

func (r *Relation) Definition() *Definition { return r.def }
func (r *Relation) Name() string            { return r.def.Name }
func (r *Relation) Len() int                { return len(r.rows) }
func (r *Relation) Sealed() bool            { return r.sealed }

// Row returns the i-th row. Callers must not mutate it.
func (r *Relation) Row(i int) Row { return r.rows[i] }

// Rows returns the full row set. Callers must not mutate it.
func (r *Relation) Rows() []Row { return r.rows }

// Insert appends one row, checking arity and not-null declarations.
func (r *Relation) Insert(vals ...any) error {
	if r.sealed {
		return syscat_errors.ErrRelationSealed
	}
	if len(vals) != len(r.def.Columns) {
		return syscat_errors.ErrColumnCount
	}
	for i, v := range vals {
		if v == nil && !r.def.Columns[i].Nullable {
			return syscat_errors.ErrNullValue
		}
	}
	r.rows = append(r.rows, Row(vals))
	return nil
}

func (r *Relation) seal() { r.sealed = true }
