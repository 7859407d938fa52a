package syscat

import "github.com/syscatdb/syscat/schema"

// Population routines for the table-shaped relations: SYSTEM_TABLES,
// SYSTEM_TABLETYPES, SYSTEM_CATALOGS and SYSTEM_SCHEMAS.

func defTables() *Definition {
	return &Definition{
		Name: "SYSTEM_TABLES",
		Columns: []Column{
			{Name: "TABLE_CAT", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_SCHEM", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_NAME", Type: schema.TypeVarchar},
			{Name: "TABLE_TYPE", Type: schema.TypeVarchar},
			{Name: "REMARKS", Type: schema.TypeVarchar, Nullable: true},
			{Name: "NEXT_IDENTITY", Type: schema.TypeBigint, Nullable: true},
			{Name: "READ_ONLY", Type: schema.TypeBit, Nullable: true},
		},
		// Order: TABLE_TYPE, TABLE_SCHEM, TABLE_NAME.
		Key:     []int{3, 1, 2},
		Lookups: [][]int{{0}, {1}, {2}},
	}
}

func populateTables(gc *genContext, addRow func(...any) error) error {
	return forEachAccessibleTable(gc, func(t *schema.Table, q schema.Qualified) error {
		var nextID any
		if t.NextIdentity > 0 {
			nextID = t.NextIdentity
		}
		return addRow(
			q.Catalog,       // TABLE_CAT
			q.Schema,        // TABLE_SCHEM
			q.Name,          // TABLE_NAME
			t.Kind.String(), // TABLE_TYPE
			t.Remarks,       // REMARKS
			nextID,          // NEXT_IDENTITY
			t.ReadOnly,      // READ_ONLY
		)
	})
}

func defTableTypes() *Definition {
	return &Definition{
		Name: "SYSTEM_TABLETYPES",
		Columns: []Column{
			{Name: "TABLE_TYPE", Type: schema.TypeVarchar},
		},
		Key: []int{0},
	}
}

func populateTableTypes(gc *genContext, addRow func(...any) error) error {
	for _, kind := range schema.TableKinds() {
		if err := addRow(kind); err != nil {
			return err
		}
	}
	return nil
}

func defCatalogs() *Definition {
	return &Definition{
		Name: "SYSTEM_CATALOGS",
		Columns: []Column{
			{Name: "TABLE_CAT", Type: schema.TypeVarchar},
		},
		Key: []int{0},
	}
}

func populateCatalogs(gc *genContext, addRow func(...any) error) error {
	return addRow(gc.res.CatalogName())
}

func defSchemas() *Definition {
	return &Definition{
		Name: "SYSTEM_SCHEMAS",
		Columns: []Column{
			{Name: "TABLE_SCHEM", Type: schema.TypeVarchar},
			{Name: "TABLE_CATALOG", Type: schema.TypeVarchar, Nullable: true},
		},
		Key: []int{0},
	}
}

func populateSchemas(gc *genContext, addRow func(...any) error) error {
	for _, name := range gc.res.SchemaNames() {
		if err := addRow(name, gc.res.CatalogName()); err != nil {
			return err
		}
	}
	return nil
}
