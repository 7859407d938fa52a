package syscat

import "github.com/syscatdb/syscat/schema"

// SYSTEM_TYPEINFO is populated from the engine's static type table; it
// is cacheable and identical for every principal. SYSTEM_PROCEDURES and
// SYSTEM_PROCEDURECOLUMNS are schema-only in this build: stored routines
// are not supported, so the relations define their column layout for
// driver metadata calls and stay empty.

func defTypeInfo() *Definition {
	return &Definition{
		Name: "SYSTEM_TYPEINFO",
		Columns: []Column{
			{Name: "TYPE_NAME", Type: schema.TypeVarchar},
			{Name: "DATA_TYPE", Type: schema.TypeSmallint},
			{Name: "PRECISION", Type: schema.TypeInteger, Nullable: true},
			{Name: "LITERAL_PREFIX", Type: schema.TypeVarchar, Nullable: true},
			{Name: "LITERAL_SUFFIX", Type: schema.TypeVarchar, Nullable: true},
			{Name: "CREATE_PARAMS", Type: schema.TypeVarchar, Nullable: true},
			{Name: "NULLABLE", Type: schema.TypeSmallint},
			{Name: "CASE_SENSITIVE", Type: schema.TypeBit},
			{Name: "SEARCHABLE", Type: schema.TypeSmallint},
			{Name: "UNSIGNED_ATTRIBUTE", Type: schema.TypeBit, Nullable: true},
			{Name: "FIXED_PREC_SCALE", Type: schema.TypeBit, Nullable: true},
			{Name: "AUTO_INCREMENT", Type: schema.TypeBit, Nullable: true},
			{Name: "LOCAL_TYPE_NAME", Type: schema.TypeVarchar, Nullable: true},
			{Name: "MINIMUM_SCALE", Type: schema.TypeSmallint, Nullable: true},
			{Name: "MAXIMUM_SCALE", Type: schema.TypeSmallint, Nullable: true},
			{Name: "SQL_DATA_TYPE", Type: schema.TypeInteger, Nullable: true},
			{Name: "SQL_DATETIME_SUB", Type: schema.TypeInteger, Nullable: true},
			{Name: "NUM_PREC_RADIX", Type: schema.TypeInteger, Nullable: true},
		},
		// Order: DATA_TYPE, TYPE_NAME.
		Key:     []int{1, 0},
		Lookups: [][]int{{1}},
	}
}

// nullEmpty maps "" to SQL NULL for the optional varchar attributes.
func nullEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func populateTypeInfo(gc *genContext, addRow func(...any) error) error {
	for _, ti := range schema.AllTypes() {
		var radix any
		if ti.Radix != 0 {
			radix = ti.Radix
		}
		if err := addRow(
			ti.Name,                   // TYPE_NAME
			int16(ti.Code),            // DATA_TYPE
			ti.Precision,              // PRECISION
			nullEmpty(ti.LiteralPrefix),
			nullEmpty(ti.LiteralSuffix),
			nullEmpty(ti.CreateParams),
			schema.Nullable,  // NULLABLE
			ti.CaseSensitive, // CASE_SENSITIVE
			ti.Searchability, // SEARCHABLE
			ti.Unsigned,      // UNSIGNED_ATTRIBUTE
			ti.FixedScale,    // FIXED_PREC_SCALE
			ti.AutoIncrement, // AUTO_INCREMENT
			ti.Name,          // LOCAL_TYPE_NAME
			ti.MinScale,      // MINIMUM_SCALE
			ti.MaxScale,      // MAXIMUM_SCALE
			int32(ti.Code),   // SQL_DATA_TYPE
			nil,              // SQL_DATETIME_SUB
			radix,            // NUM_PREC_RADIX
		); err != nil {
			return err
		}
	}
	return nil
}

func defProcedures() *Definition {
	return &Definition{
		Name: "SYSTEM_PROCEDURES",
		Columns: []Column{
			{Name: "PROCEDURE_CAT", Type: schema.TypeVarchar, Nullable: true},
			{Name: "PROCEDURE_SCHEM", Type: schema.TypeVarchar, Nullable: true},
			{Name: "PROCEDURE_NAME", Type: schema.TypeVarchar},
			{Name: "NUM_INPUT_PARAMS", Type: schema.TypeInteger, Nullable: true},
			{Name: "NUM_OUTPUT_PARAMS", Type: schema.TypeInteger, Nullable: true},
			{Name: "NUM_RESULT_SETS", Type: schema.TypeInteger, Nullable: true},
			{Name: "REMARKS", Type: schema.TypeVarchar, Nullable: true},
			{Name: "PROCEDURE_TYPE", Type: schema.TypeSmallint},
			{Name: "ORIGIN", Type: schema.TypeVarchar},
			{Name: "SPECIFIC_NAME", Type: schema.TypeVarchar},
		},
		Key:     []int{1, 2, 9},
		Lookups: [][]int{{0}, {1}, {2}},
	}
}

func defProcedureColumns() *Definition {
	return &Definition{
		Name: "SYSTEM_PROCEDURECOLUMNS",
		Columns: []Column{
			{Name: "PROCEDURE_CAT", Type: schema.TypeVarchar, Nullable: true},
			{Name: "PROCEDURE_SCHEM", Type: schema.TypeVarchar, Nullable: true},
			{Name: "PROCEDURE_NAME", Type: schema.TypeVarchar},
			{Name: "COLUMN_NAME", Type: schema.TypeVarchar},
			{Name: "COLUMN_TYPE", Type: schema.TypeSmallint},
			{Name: "DATA_TYPE", Type: schema.TypeSmallint},
			{Name: "TYPE_NAME", Type: schema.TypeVarchar},
			{Name: "PRECISION", Type: schema.TypeInteger, Nullable: true},
			{Name: "LENGTH", Type: schema.TypeInteger, Nullable: true},
			{Name: "SCALE", Type: schema.TypeSmallint, Nullable: true},
			{Name: "RADIX", Type: schema.TypeSmallint, Nullable: true},
			{Name: "NULLABLE", Type: schema.TypeSmallint},
			{Name: "REMARKS", Type: schema.TypeVarchar, Nullable: true},
			{Name: "SPECIFIC_NAME", Type: schema.TypeVarchar},
			{Name: "SEQ", Type: schema.TypeInteger},
		},
		Key:     []int{1, 2, 13, 14},
		Lookups: [][]int{{0}, {1}, {2}, {3}},
	}
}
