package syscat

import (
	"fmt"

	"github.com/syscatdb/syscat/schema"
)

// Referential rule codes reported by SYSTEM_CROSSREFERENCE (SQL CLI
// values, shared with ODBC/JDBC drivers).
const (
	ruleCascade    int16 = 0
	ruleRestrict   int16 = 1
	ruleSetNull    int16 = 2
	ruleNoAction   int16 = 3
	ruleSetDefault int16 = 4

	// The only deferrability currently supported.
	notDeferrable int16 = 7
)

func refActionRule(a schema.RefAction) int16 {
	switch a {
	case schema.Cascade:
		return ruleCascade
	case schema.SetNull:
		return ruleSetNull
	case schema.SetDefault:
		return ruleSetDefault
	case schema.Restrict:
		return ruleRestrict
	default:
		return ruleNoAction
	}
}

func defCrossReference() *Definition {
	return &Definition{
		Name: "SYSTEM_CROSSREFERENCE",
		Columns: []Column{
			{Name: "PKTABLE_CAT", Type: schema.TypeVarchar, Nullable: true},
			{Name: "PKTABLE_SCHEM", Type: schema.TypeVarchar, Nullable: true},
			{Name: "PKTABLE_NAME", Type: schema.TypeVarchar},
			{Name: "PKCOLUMN_NAME", Type: schema.TypeVarchar},
			{Name: "FKTABLE_CAT", Type: schema.TypeVarchar, Nullable: true},
			{Name: "FKTABLE_SCHEM", Type: schema.TypeVarchar, Nullable: true},
			{Name: "FKTABLE_NAME", Type: schema.TypeVarchar},
			{Name: "FKCOLUMN_NAME", Type: schema.TypeVarchar},
			{Name: "KEY_SEQ", Type: schema.TypeSmallint},
			{Name: "UPDATE_RULE", Type: schema.TypeSmallint},
			{Name: "DELETE_RULE", Type: schema.TypeSmallint},
			{Name: "FK_NAME", Type: schema.TypeVarchar, Nullable: true},
			{Name: "PK_NAME", Type: schema.TypeVarchar, Nullable: true},
			{Name: "DEFERRABILITY", Type: schema.TypeSmallint},
		},
		// Order: FKTABLE_CAT, FKTABLE_SCHEM, FKTABLE_NAME, KEY_SEQ.
		Key:     []int{4, 5, 6, 8, 11, 12},
		Lookups: [][]int{{0}, {1}, {2}, {3}, {5}, {6}, {7}},
	}
}

// populateCrossReference assembles the foreign-key cross reference: for
// every foreign key whose referencing and referenced tables are both
// visible, one row per column pair.
func populateCrossReference(gc *genContext, addRow func(...any) error) error {
	// Collect the visible constraints first: reference relationships are
	// recorded on the referencing table only, so a single pass over the
	// tables sees each foreign key exactly once.
	type fkEntry struct {
		fk      *schema.ForeignKey
		fkTable *schema.Table
		fkQual  schema.Qualified
	}
	var fks []fkEntry
	err := forEachAccessibleTable(gc, func(t *schema.Table, q schema.Qualified) error {
		for i := range t.ForeignKeys {
			fks = append(fks, fkEntry{fk: &t.ForeignKeys[i], fkTable: t, fkQual: q})
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, e := range fks {
		pkTable, ok := gc.cat.Table(e.fk.PKTable)
		if !ok {
			return fmt.Errorf("constraint %s references unknown table %s", e.fk.Name, e.fk.PKTable)
		}
		if !accessibleTable(gc.cat, gc.principal, pkTable) {
			continue
		}
		if len(e.fk.FKColumns) != len(e.fk.PKColumns) {
			return fmt.Errorf("constraint %s: column list length mismatch", e.fk.Name)
		}

		pkQual := gc.res.Resolve(pkTable)
		updateRule := refActionRule(e.fk.OnUpdate)
		deleteRule := refActionRule(e.fk.OnDelete)

		for j := range e.fk.FKColumns {
			fkCol := e.fk.FKColumns[j]
			pkCol := e.fk.PKColumns[j]
			if fkCol < 0 || fkCol >= len(e.fkTable.Columns) {
				return fmt.Errorf("constraint %s: bad referencing column %d", e.fk.Name, fkCol)
			}
			if pkCol < 0 || pkCol >= len(pkTable.Columns) {
				return fmt.Errorf("constraint %s: bad referenced column %d", e.fk.Name, pkCol)
			}
			if err := addRow(
				pkQual.Catalog,                 // PKTABLE_CAT
				pkQual.Schema,                  // PKTABLE_SCHEM
				pkQual.Name,                    // PKTABLE_NAME
				pkTable.Columns[pkCol].Name,    // PKCOLUMN_NAME
				e.fkQual.Catalog,               // FKTABLE_CAT
				e.fkQual.Schema,                // FKTABLE_SCHEM
				e.fkQual.Name,                  // FKTABLE_NAME
				e.fkTable.Columns[fkCol].Name,  // FKCOLUMN_NAME
				int16(j+1),                     // KEY_SEQ
				updateRule,                     // UPDATE_RULE
				deleteRule,                     // DELETE_RULE
				e.fk.Name,                      // FK_NAME
				e.fk.PKName,                    // PK_NAME
				notDeferrable,                  // DEFERRABILITY
			); err != nil {
				return err
			}
		}
	}
	return nil
}
