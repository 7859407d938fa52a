package syscat

import (
	"fmt"

	"github.com/syscatdb/syscat/schema"
)

// Population routines for the column-shaped relations: SYSTEM_COLUMNS,
// SYSTEM_INDEXINFO and SYSTEM_PRIMARYKEYS.

func defColumns() *Definition {
	return &Definition{
		Name: "SYSTEM_COLUMNS",
		Columns: []Column{
			{Name: "TABLE_CAT", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_SCHEM", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_NAME", Type: schema.TypeVarchar},
			{Name: "COLUMN_NAME", Type: schema.TypeVarchar},
			{Name: "DATA_TYPE", Type: schema.TypeSmallint},
			{Name: "TYPE_NAME", Type: schema.TypeVarchar},
			{Name: "COLUMN_SIZE", Type: schema.TypeInteger, Nullable: true},
			{Name: "DECIMAL_DIGITS", Type: schema.TypeInteger, Nullable: true},
			{Name: "NULLABLE", Type: schema.TypeInteger},
			{Name: "COLUMN_DEF", Type: schema.TypeVarchar, Nullable: true},
			{Name: "ORDINAL_POSITION", Type: schema.TypeInteger},
			{Name: "IS_NULLABLE", Type: schema.TypeVarchar},
		},
		Key:     []int{1, 2, 10},
		Lookups: [][]int{{0}, {2}, {3}},
	}
}

func populateColumns(gc *genContext, addRow func(...any) error) error {
	return forEachAccessibleTable(gc, func(t *schema.Table, q schema.Qualified) error {
		for i := range t.Columns {
			c := &t.Columns[i]
			nullable := int32(schema.NoNulls)
			isNullable := "NO"
			if c.Nullable {
				nullable = int32(schema.Nullable)
				isNullable = "YES"
			}
			var def any
			if c.Default != "" {
				def = c.Default
			}
			if err := addRow(
				q.Catalog,       // TABLE_CAT
				q.Schema,        // TABLE_SCHEM
				q.Name,          // TABLE_NAME
				c.Name,          // COLUMN_NAME
				int16(c.Type),   // DATA_TYPE
				c.Type.String(), // TYPE_NAME
				c.Size,          // COLUMN_SIZE
				c.Scale,         // DECIMAL_DIGITS
				nullable,        // NULLABLE
				def,             // COLUMN_DEF
				int32(i+1),      // ORDINAL_POSITION
				isNullable,      // IS_NULLABLE
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func defIndexInfo() *Definition {
	return &Definition{
		Name: "SYSTEM_INDEXINFO",
		Columns: []Column{
			{Name: "TABLE_CAT", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_SCHEM", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_NAME", Type: schema.TypeVarchar},
			{Name: "NON_UNIQUE", Type: schema.TypeBit},
			{Name: "INDEX_QUALIFIER", Type: schema.TypeVarchar, Nullable: true},
			{Name: "INDEX_NAME", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TYPE", Type: schema.TypeSmallint},
			{Name: "ORDINAL_POSITION", Type: schema.TypeSmallint, Nullable: true},
			{Name: "COLUMN_NAME", Type: schema.TypeVarchar, Nullable: true},
			{Name: "ASC_OR_DESC", Type: schema.TypeVarchar, Nullable: true},
			{Name: "CARDINALITY", Type: schema.TypeInteger, Nullable: true},
		},
		// Order: NON_UNIQUE, TYPE, INDEX_NAME, ORDINAL_POSITION.
		Key:     []int{3, 6, 5, 7},
		Lookups: [][]int{{0}, {1}, {2}, {5}},
	}
}

// indexTypeOther matches the SQL CLI "other" index type; no index here
// is hashed or clustered as far as drivers are concerned.
const indexTypeOther int16 = 3

func populateIndexInfo(gc *genContext, addRow func(...any) error) error {
	return forEachAccessibleTable(gc, func(t *schema.Table, q schema.Qualified) error {
		for i := range t.Indexes {
			idx := &t.Indexes[i]
			for k, ci := range idx.Columns {
				if ci < 0 || ci >= len(t.Columns) {
					return fmt.Errorf("index %s: column %d out of range", idx.Name, ci)
				}
				if err := addRow(
					q.Catalog,        // TABLE_CAT
					q.Schema,         // TABLE_SCHEM
					q.Name,           // TABLE_NAME
					!idx.Unique,      // NON_UNIQUE
					q.Catalog,        // INDEX_QUALIFIER
					idx.Name,         // INDEX_NAME
					indexTypeOther,   // TYPE
					int16(k+1),       // ORDINAL_POSITION
					t.Columns[ci].Name, // COLUMN_NAME
					"A",              // ASC_OR_DESC
					nil,              // CARDINALITY
				); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func defPrimaryKeys() *Definition {
	return &Definition{
		Name: "SYSTEM_PRIMARYKEYS",
		Columns: []Column{
			{Name: "TABLE_CAT", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_SCHEM", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_NAME", Type: schema.TypeVarchar},
			{Name: "COLUMN_NAME", Type: schema.TypeVarchar},
			{Name: "KEY_SEQ", Type: schema.TypeSmallint},
			{Name: "PK_NAME", Type: schema.TypeVarchar, Nullable: true},
		},
		Key:     []int{3, 2},
		Lookups: [][]int{{0}, {1}, {2}, {5}},
	}
}

func populatePrimaryKeys(gc *genContext, addRow func(...any) error) error {
	return forEachAccessibleTable(gc, func(t *schema.Table, q schema.Qualified) error {
		// Synthetic row identifiers are not reported as primary keys.
		if !t.HasPrimaryKey() {
			return nil
		}
		for j, ci := range t.PKColumns {
			if ci < 0 || ci >= len(t.Columns) {
				return fmt.Errorf("table %s: primary key column %d out of range", t.Name, ci)
			}
			if err := addRow(
				q.Catalog,          // TABLE_CAT
				q.Schema,           // TABLE_SCHEM
				q.Name,             // TABLE_NAME
				t.Columns[ci].Name, // COLUMN_NAME
				int16(j+1),         // KEY_SEQ
				t.PKName,           // PK_NAME
			); err != nil {
				return err
			}
		}
		return nil
	})
}
