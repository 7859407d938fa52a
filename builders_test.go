package syscat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syscatdb/syscat/schema"
)

func getRel(t *testing.T, e *Engine, name string, p *schema.Principal) *Relation {
	t.Helper()
	rel, err := e.GetRelation(context.Background(), name, p)
	require.NoError(t, err)
	return rel
}

func TestTablesRelation(t *testing.T) {
	cat := testCatalog()
	e := testEngine(t, cat)
	rel := getRel(t, e, "SYSTEM_TABLES", admin(cat))

	require.Equal(t, 2, rel.Len())
	def := rel.Definition()
	row := rel.Row(0)
	assert.Equal(t, "TESTDB", row[def.ColumnIndex("TABLE_CAT")])
	assert.Equal(t, schema.PublicSchema, row[def.ColumnIndex("TABLE_SCHEM")])
	assert.Equal(t, "CUSTOMERS", row[def.ColumnIndex("TABLE_NAME")])
	assert.Equal(t, "TABLE", row[def.ColumnIndex("TABLE_TYPE")])
	assert.Equal(t, false, row[def.ColumnIndex("READ_ONLY")])
}

func TestTableTypesRelation(t *testing.T) {
	cat := testCatalog()
	e := testEngine(t, cat)
	rel := getRel(t, e, "SYSTEM_TABLETYPES", admin(cat))

	var kinds []any
	for _, row := range rel.Rows() {
		kinds = append(kinds, row[0])
	}
	assert.Equal(t, []any{"GLOBAL TEMPORARY", "SYSTEM TABLE", "TABLE", "VIEW"}, kinds)
}

func TestCatalogsAndSchemasRelations(t *testing.T) {
	cat := testCatalog()
	e := testEngine(t, cat)
	sa := admin(cat)

	rel := getRel(t, e, "SYSTEM_CATALOGS", sa)
	require.Equal(t, 1, rel.Len())
	assert.Equal(t, "TESTDB", rel.Row(0)[0])

	rel = getRel(t, e, "SYSTEM_SCHEMAS", sa)
	require.Equal(t, 2, rel.Len())
	assert.Equal(t, schema.DefinitionSchema, rel.Row(0)[0])
	assert.Equal(t, schema.PublicSchema, rel.Row(1)[0])
	assert.Equal(t, "TESTDB", rel.Row(0)[1])
}

func TestColumnsRelation(t *testing.T) {
	cat := testCatalog()
	e := testEngine(t, cat)
	rel := getRel(t, e, "SYSTEM_COLUMNS", admin(cat))

	// CUSTOMERS has 2 columns, ORDERS has 3.
	require.Equal(t, 5, rel.Len())
	def := rel.Definition()

	row := rel.Row(0)
	assert.Equal(t, "CUSTOMERS", row[def.ColumnIndex("TABLE_NAME")])
	assert.Equal(t, "ID", row[def.ColumnIndex("COLUMN_NAME")])
	assert.Equal(t, int16(schema.TypeInteger), row[def.ColumnIndex("DATA_TYPE")])
	assert.Equal(t, "INTEGER", row[def.ColumnIndex("TYPE_NAME")])
	assert.Equal(t, int32(1), row[def.ColumnIndex("ORDINAL_POSITION")])
	assert.Equal(t, "NO", row[def.ColumnIndex("IS_NULLABLE")])

	row = rel.Row(1)
	assert.Equal(t, "NAME", row[def.ColumnIndex("COLUMN_NAME")])
	assert.Equal(t, int32(2), row[def.ColumnIndex("ORDINAL_POSITION")])
	assert.Equal(t, "YES", row[def.ColumnIndex("IS_NULLABLE")])
}

func TestPrimaryKeysRelation(t *testing.T) {
	cat := testCatalog()
	synthetic := &schema.Table{
		Name:        "ROWIDONLY",
		Columns:     []schema.Column{{Name: "ID", Type: schema.TypeBigint}},
		PKColumns:   []int{0},
		PKSynthetic: true,
	}
	require.NoError(t, cat.AddTable(synthetic))

	e := testEngine(t, cat)
	rel := getRel(t, e, "SYSTEM_PRIMARYKEYS", admin(cat))

	def := rel.Definition()
	require.Equal(t, 2, rel.Len())
	for _, row := range rel.Rows() {
		assert.NotEqual(t, "ROWIDONLY", row[def.ColumnIndex("TABLE_NAME")])
		assert.Equal(t, "ID", row[def.ColumnIndex("COLUMN_NAME")])
		assert.Equal(t, int16(1), row[def.ColumnIndex("KEY_SEQ")])
	}
}

func TestIndexInfoRelation(t *testing.T) {
	cat := schema.NewCatalog("TESTDB")
	tbl := &schema.Table{
		Name: "T",
		Columns: []schema.Column{
			{Name: "A", Type: schema.TypeInteger},
			{Name: "B", Type: schema.TypeVarchar, Nullable: true},
		},
		Indexes: []schema.Index{
			{Name: "UX_A", Columns: []int{0}, Unique: true},
			{Name: "IX_BA", Columns: []int{1, 0}},
		},
	}
	require.NoError(t, cat.AddTable(tbl))
	_ = cat.AddPrincipal(schema.NewPrincipal("SA", true))

	e := testEngine(t, cat)
	rel := getRel(t, e, "SYSTEM_INDEXINFO", admin(cat))

	require.Equal(t, 3, rel.Len())
	def := rel.Definition()

	row := rel.Row(0)
	assert.Equal(t, "UX_A", row[def.ColumnIndex("INDEX_NAME")])
	assert.Equal(t, false, row[def.ColumnIndex("NON_UNIQUE")])
	assert.Equal(t, int16(1), row[def.ColumnIndex("ORDINAL_POSITION")])
	assert.Equal(t, "A", row[def.ColumnIndex("ASC_OR_DESC")])

	row = rel.Row(2)
	assert.Equal(t, "IX_BA", row[def.ColumnIndex("INDEX_NAME")])
	assert.Equal(t, true, row[def.ColumnIndex("NON_UNIQUE")])
	assert.Equal(t, int16(2), row[def.ColumnIndex("ORDINAL_POSITION")])
	assert.Equal(t, "A", row[def.ColumnIndex("COLUMN_NAME")])
}

func TestTablePrivilegesRelation(t *testing.T) {
	cat := testCatalog()
	e := testEngine(t, cat)
	bob, _ := cat.Principal("BOB")

	rel := getRel(t, e, "SYSTEM_TABLEPRIVILEGES", bob)
	require.Equal(t, 1, rel.Len())
	def := rel.Definition()
	row := rel.Row(0)
	assert.Equal(t, "ORDERS", row[def.ColumnIndex("TABLE_NAME")])
	assert.Equal(t, grantorName, row[def.ColumnIndex("GRANTOR")])
	assert.Equal(t, "BOB", row[def.ColumnIndex("GRANTEE")])
	assert.Equal(t, schema.PrivSelect, row[def.ColumnIndex("PRIVILEGE")])
	assert.Equal(t, "NO", row[def.ColumnIndex("IS_GRANTABLE")])

	// Admins hold every privilege on every visible table.
	rel = getRel(t, e, "SYSTEM_TABLEPRIVILEGES", admin(cat))
	for _, r := range rel.Rows() {
		if r[def.ColumnIndex("GRANTEE")] == "SA" {
			assert.Equal(t, "YES", r[def.ColumnIndex("IS_GRANTABLE")])
		}
	}
	saRows := 0
	for _, r := range rel.Rows() {
		if r[def.ColumnIndex("GRANTEE")] == "SA" {
			saRows++
		}
	}
	assert.Equal(t, 2*len(schema.AllPrivileges()), saRows)
}

func TestColumnPrivilegesRelation(t *testing.T) {
	cat := testCatalog()
	e := testEngine(t, cat)
	bob, _ := cat.Principal("BOB")

	rel := getRel(t, e, "SYSTEM_COLUMNPRIVILEGES", bob)
	// One SELECT grant fanned out over the three ORDERS columns.
	require.Equal(t, 3, rel.Len())
	def := rel.Definition()
	assert.Equal(t, "ID", rel.Row(0)[def.ColumnIndex("COLUMN_NAME")])
	assert.Equal(t, "CUST_ID", rel.Row(1)[def.ColumnIndex("COLUMN_NAME")])
	assert.Equal(t, "NOTE", rel.Row(2)[def.ColumnIndex("COLUMN_NAME")])
}

func TestUsersRelationVisibility(t *testing.T) {
	cat := testCatalog()
	e := testEngine(t, cat)

	// Admin sees everybody but PUBLIC.
	rel := getRel(t, e, "SYSTEM_USERS", admin(cat))
	require.Equal(t, 2, rel.Len())
	assert.Equal(t, "SA", rel.Row(0)[0])
	assert.Equal(t, true, rel.Row(0)[1])
	assert.Equal(t, "BOB", rel.Row(1)[0])
	assert.Equal(t, false, rel.Row(1)[1])

	// A plain user sees only itself.
	bob, _ := cat.Principal("BOB")
	rel = getRel(t, e, "SYSTEM_USERS", bob)
	require.Equal(t, 1, rel.Len())
	assert.Equal(t, "BOB", rel.Row(0)[0])
}

func TestTypeInfoRelation(t *testing.T) {
	cat := testCatalog()
	e := testEngine(t, cat)
	rel := getRel(t, e, "SYSTEM_TYPEINFO", admin(cat))

	require.Equal(t, len(schema.AllTypes()), rel.Len())
	def := rel.Definition()

	var varcharRow Row
	for _, row := range rel.Rows() {
		if row[def.ColumnIndex("TYPE_NAME")] == "VARCHAR" {
			varcharRow = row
		}
	}
	require.NotNil(t, varcharRow)
	assert.Equal(t, int16(schema.TypeVarchar), varcharRow[def.ColumnIndex("DATA_TYPE")])
	assert.Equal(t, "'", varcharRow[def.ColumnIndex("LITERAL_PREFIX")])
	assert.Equal(t, "LENGTH", varcharRow[def.ColumnIndex("CREATE_PARAMS")])
	assert.Equal(t, true, varcharRow[def.ColumnIndex("CASE_SENSITIVE")])
	assert.Equal(t, schema.Searchable, varcharRow[def.ColumnIndex("SEARCHABLE")])
	assert.Nil(t, varcharRow[def.ColumnIndex("NUM_PREC_RADIX")])
}

func TestSessionsRelation(t *testing.T) {
	cat := testCatalog()
	e := testEngine(t, cat)
	sa := admin(cat)

	rel := getRel(t, e, "SYSTEM_SESSIONS", sa)
	require.Equal(t, 2, rel.Len())
	def := rel.Definition()
	assert.Equal(t, sa.Session.String(), rel.Row(0)[def.ColumnIndex("SESSION_ID")])
	assert.Equal(t, "SA", rel.Row(0)[def.ColumnIndex("USER_NAME")])
	assert.Equal(t, true, rel.Row(0)[def.ColumnIndex("IS_ADMIN")])
}

func TestPropertiesRelation(t *testing.T) {
	cat := testCatalog()
	e := testEngine(t, cat)
	rel := getRel(t, e, "SYSTEM_PROPERTIES", admin(cat))

	def := rel.Definition()
	props := map[any]any{}
	for _, row := range rel.Rows() {
		props[row[def.ColumnIndex("PROPERTY_NAME")]] = row[def.ColumnIndex("PROPERTY_VALUE")]
	}
	assert.Equal(t, "TESTDB", props["name"])
	assert.Equal(t, "false", props["readonly"])
	assert.Equal(t, "2", props["tables"])
}
