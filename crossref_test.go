package syscat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syscatdb/syscat/schema"
)

func TestRefActionRule(t *testing.T) {
	assert.Equal(t, ruleCascade, refActionRule(schema.Cascade))
	assert.Equal(t, ruleRestrict, refActionRule(schema.Restrict))
	assert.Equal(t, ruleSetNull, refActionRule(schema.SetNull))
	assert.Equal(t, ruleSetDefault, refActionRule(schema.SetDefault))
	assert.Equal(t, ruleNoAction, refActionRule(schema.NoAction))
}

func TestCrossReferenceCascade(t *testing.T) {
	cat := testCatalog()
	e := testEngine(t, cat)
	sa := admin(cat)

	rel, err := e.GetRelation(context.Background(), "SYSTEM_CROSSREFERENCE", sa)
	require.NoError(t, err)
	require.Equal(t, 1, rel.Len())

	def := rel.Definition()
	row := rel.Row(0)
	assert.Equal(t, "CUSTOMERS", row[def.ColumnIndex("PKTABLE_NAME")])
	assert.Equal(t, "ID", row[def.ColumnIndex("PKCOLUMN_NAME")])
	assert.Equal(t, "ORDERS", row[def.ColumnIndex("FKTABLE_NAME")])
	assert.Equal(t, "CUST_ID", row[def.ColumnIndex("FKCOLUMN_NAME")])
	assert.Equal(t, int16(1), row[def.ColumnIndex("KEY_SEQ")])
	assert.Equal(t, ruleCascade, row[def.ColumnIndex("DELETE_RULE")])
	assert.Equal(t, ruleNoAction, row[def.ColumnIndex("UPDATE_RULE")])
	assert.Equal(t, "FK_ORDERS_CUSTOMERS", row[def.ColumnIndex("FK_NAME")])
	assert.Equal(t, "PK_CUSTOMERS", row[def.ColumnIndex("PK_NAME")])
	assert.Equal(t, notDeferrable, row[def.ColumnIndex("DEFERRABILITY")])
}

func TestCrossReferenceCompositeKeySequence(t *testing.T) {
	cat := schema.NewCatalog("TESTDB")
	parent := &schema.Table{
		Name: "PARENT",
		Columns: []schema.Column{
			{Name: "P1", Type: schema.TypeInteger},
			{Name: "P2", Type: schema.TypeInteger},
		},
		PKColumns: []int{0, 1},
		PKName:    "PK_PARENT",
	}
	child := &schema.Table{
		Name: "CHILD",
		Columns: []schema.Column{
			{Name: "C1", Type: schema.TypeInteger},
			{Name: "C2", Type: schema.TypeInteger},
		},
		ForeignKeys: []schema.ForeignKey{{
			Name:      "FK_CHILD",
			PKTable:   "PARENT",
			PKName:    "PK_PARENT",
			FKColumns: []int{0, 1},
			PKColumns: []int{0, 1},
			OnUpdate:  schema.Restrict,
		}},
	}
	require.NoError(t, cat.AddTable(parent))
	require.NoError(t, cat.AddTable(child))
	_ = cat.AddPrincipal(schema.NewPrincipal("SA", true))

	e := testEngine(t, cat)
	rel, err := e.GetRelation(context.Background(), "SYSTEM_CROSSREFERENCE", admin(cat))
	require.NoError(t, err)
	require.Equal(t, 2, rel.Len())

	def := rel.Definition()
	assert.Equal(t, int16(1), rel.Row(0)[def.ColumnIndex("KEY_SEQ")])
	assert.Equal(t, int16(2), rel.Row(1)[def.ColumnIndex("KEY_SEQ")])
	assert.Equal(t, ruleRestrict, rel.Row(0)[def.ColumnIndex("UPDATE_RULE")])
}
