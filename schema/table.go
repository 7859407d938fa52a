package schema

// A table is a set of columns plus the indexes and referential
// constraints declared over them. The catalog engine only ever reads
// these structures; mutation happens in DDL code paths, which must
// invalidate the catalog cache afterwards.

import "github.com/google/uuid"

type TableKind int8

const (
	KindTable TableKind = iota
	KindView
	KindSystem
	KindGlobalTemporary
)

func (k TableKind) String() string {
	switch k {
	case KindView:
		return "VIEW"
	case KindSystem:
		return "SYSTEM TABLE"
	case KindGlobalTemporary:
		return "GLOBAL TEMPORARY"
	default:
		return "TABLE"
	}
}

// TableKinds lists the kind strings in reporting order.
func TableKinds() []string {
	return []string{"GLOBAL TEMPORARY", "SYSTEM TABLE", "TABLE", "VIEW"}
}

type Column struct {
	Name     string
	Type     TypeCode
	Nullable bool
	Size     int32
	Scale    int32
	Default  string
	Identity bool
}

// Index is an ordered column set. Unique indexes double as key
// candidates for best-row-identifier selection.
type Index struct {
	Name    string
	Columns []int
	Unique  bool
}

// RefAction is a referential action declared on a foreign key.
type RefAction int8

const (
	NoAction RefAction = iota
	Cascade
	SetNull
	SetDefault
	Restrict
)

// ForeignKey lives on the referencing table. PKTable names the
// referenced table; FKColumns[i] references PKColumns[i].
type ForeignKey struct {
	Name      string
	PKTable   string
	PKName    string
	FKColumns []int
	PKColumns []int
	OnUpdate  RefAction
	OnDelete  RefAction
}

type Table struct {
	Name        string
	Kind        TableKind
	Columns     []Column
	Indexes     []Index
	ForeignKeys []ForeignKey

	// Declared primary key, if any. PKSynthetic marks a storage-assigned
	// row identifier that was never declared as a key by the user.
	PKColumns   []int
	PKName      string
	PKSynthetic bool

	// Owner is the creating session; meaningful for temporary tables only.
	Owner uuid.UUID

	ReadOnly     bool
	NextIdentity int64
	Remarks      string
}

// Temporary reports whether the table is scoped to its creating session.
func (t *Table) Temporary() bool {
	return t.Kind == KindGlobalTemporary
}

// HasPrimaryKey reports whether the table carries a user-declared
// primary key, as opposed to a synthetic row identifier.
func (t *Table) HasPrimaryKey() bool {
	return len(t.PKColumns) > 0 && !t.PKSynthetic
}

// ColumnIndex returns the ordinal of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return i
		}
	}
	return -1
}

// NotNull reports whether every listed column ordinal is declared not-null.
func (t *Table) NotNull(cols []int) bool {
	for _, c := range cols {
		if c < 0 || c >= len(t.Columns) || t.Columns[c].Nullable {
			return false
		}
	}
	return true
}

// NotNullCount counts the not-null columns among the listed ordinals.
func (t *Table) NotNullCount(cols []int) (n int) {
	for _, c := range cols {
		if c >= 0 && c < len(t.Columns) && !t.Columns[c].Nullable {
			n++
		}
	}
	return
}
