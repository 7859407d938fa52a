package syscat

import (
	"fmt"

	"github.com/syscatdb/syscat/schema"
)

// Scope codes for best-row-identifier rows (SQL CLI values).
const (
	scopeTemporary   int16 = 0
	scopeTransaction int16 = 1
	scopeSession     int16 = 2
)

// Pseudo-column codes.
const (
	bestRowUnknown   int16 = 0
	bestRowNotPseudo int16 = 1
	bestRowPseudo    int16 = 2
)

// bestRowIdentifier selects the column set that best identifies a row
// of t. Strict precedence, first satisfied rule wins:
//
//  1. a declared primary key: its columns, inKey=true;
//  2. the alternate key (unique index whose columns are all not-null)
//     with the fewest columns, ties broken by enumeration order,
//     inKey=true;
//  3. the unique index holding the most not-null columns (at least
//     one), ties broken by enumeration order, inKey=false;
//  4. nothing: ok=false, table contributes no rows.
//
// Candidates are never ranked by estimated lookup cost, only by column
// counts and declaration order.
func bestRowIdentifier(t *schema.Table) (cols []int, inKey bool, ok bool) {
	if t.HasPrimaryKey() {
		return t.PKColumns, true, true
	}

	// Rule 2: smallest alternate key.
	var alt []int
	for i := range t.Indexes {
		idx := &t.Indexes[i]
		if !idx.Unique || len(idx.Columns) == 0 || !t.NotNull(idx.Columns) {
			continue
		}
		if alt == nil || len(idx.Columns) < len(alt) {
			alt = idx.Columns
		}
	}
	if alt != nil {
		return alt, true, true
	}

	// Rule 3: unique index with the highest not-null column count.
	best := -1
	bestCount := 0
	for i := range t.Indexes {
		idx := &t.Indexes[i]
		if !idx.Unique {
			continue
		}
		if n := t.NotNullCount(idx.Columns); n > bestCount {
			best, bestCount = i, n
		}
	}
	if best >= 0 {
		return t.Indexes[best].Columns, false, true
	}
	return nil, false, false
}

// bestRowScope reports how long a best-row-identifier value stays
// valid: the session for read-only databases and session-scoped
// tables, otherwise the enclosing transaction.
func bestRowScope(cat *schema.Catalog, t *schema.Table) int16 {
	if cat.ReadOnly() || t.Kind == schema.KindGlobalTemporary {
		return scopeSession
	}
	return scopeTransaction
}

func defBestRowIdentifier() *Definition {
	return &Definition{
		Name: "SYSTEM_BESTROWIDENTIFIER",
		Columns: []Column{
			{Name: "SCOPE", Type: schema.TypeSmallint},
			{Name: "COLUMN_NAME", Type: schema.TypeVarchar},
			{Name: "DATA_TYPE", Type: schema.TypeSmallint},
			{Name: "TYPE_NAME", Type: schema.TypeVarchar},
			{Name: "COLUMN_SIZE", Type: schema.TypeInteger, Nullable: true},
			{Name: "BUFFER_LENGTH", Type: schema.TypeInteger, Nullable: true},
			{Name: "DECIMAL_DIGITS", Type: schema.TypeSmallint, Nullable: true},
			{Name: "PSEUDO_COLUMN", Type: schema.TypeSmallint},
			{Name: "TABLE_CAT", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_SCHEM", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_NAME", Type: schema.TypeVarchar},
			{Name: "NULLABLE", Type: schema.TypeSmallint},
			{Name: "IN_KEY", Type: schema.TypeBit},
		},
		// Order: SCOPE; catalog/schema/table/column appended for uniqueness.
		Key:     []int{0, 8, 9, 10, 1},
		Lookups: [][]int{{8}, {9}, {10}},
	}
}

func populateBestRowIdentifier(gc *genContext, addRow func(...any) error) error {
	return forEachAccessibleTable(gc, func(t *schema.Table, q schema.Qualified) error {
		cols, inKey, ok := bestRowIdentifier(t)
		if !ok {
			return nil
		}
		scope := bestRowScope(gc.cat, t)
		for _, ci := range cols {
			if ci < 0 || ci >= len(t.Columns) {
				return fmt.Errorf("table %s: key column %d out of range", t.Name, ci)
			}
			c := &t.Columns[ci]
			nullable := schema.NoNulls
			if c.Nullable {
				nullable = schema.Nullable
			}
			if err := addRow(
				scope,             // SCOPE
				c.Name,            // COLUMN_NAME
				int16(c.Type),     // DATA_TYPE
				c.Type.String(),   // TYPE_NAME
				c.Size,            // COLUMN_SIZE
				nil,               // BUFFER_LENGTH
				int16(c.Scale),    // DECIMAL_DIGITS
				bestRowNotPseudo,  // PSEUDO_COLUMN
				q.Catalog,         // TABLE_CAT
				q.Schema,          // TABLE_SCHEM
				q.Name,            // TABLE_NAME
				nullable,          // NULLABLE
				inKey,             // IN_KEY
			); err != nil {
				return err
			}
		}
		return nil
	})
}
