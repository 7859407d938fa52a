package syscat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syscatdb/syscat/schema"
)

func TestBestRowPrimaryKeyWins(t *testing.T) {
	tbl := &schema.Table{
		Name: "T",
		Columns: []schema.Column{
			{Name: "A", Type: schema.TypeInteger},
			{Name: "B", Type: schema.TypeInteger},
			{Name: "C", Type: schema.TypeVarchar},
		},
		PKColumns: []int{0, 1},
		PKName:    "PK_T",
		// An alternate unique index must not displace the declared key.
		Indexes: []schema.Index{{Name: "UX_C", Columns: []int{2}, Unique: true}},
	}
	cols, inKey, ok := bestRowIdentifier(tbl)
	require.True(t, ok)
	assert.True(t, inKey)
	assert.Equal(t, []int{0, 1}, cols)
}

func TestBestRowSmallestAlternateKey(t *testing.T) {
	tbl := &schema.Table{
		Name: "T",
		Columns: []schema.Column{
			{Name: "A", Type: schema.TypeInteger},
			{Name: "B", Type: schema.TypeInteger},
			{Name: "C", Type: schema.TypeInteger},
			{Name: "D", Type: schema.TypeInteger},
			{Name: "E", Type: schema.TypeInteger},
		},
		Indexes: []schema.Index{
			{Name: "UX_3", Columns: []int{0, 1, 2}, Unique: true},
			{Name: "UX_2", Columns: []int{3, 4}, Unique: true},
		},
	}
	cols, inKey, ok := bestRowIdentifier(tbl)
	require.True(t, ok)
	assert.True(t, inKey)
	assert.Equal(t, []int{3, 4}, cols)
}

func TestBestRowAlternateKeyTieByOrder(t *testing.T) {
	tbl := &schema.Table{
		Name: "T",
		Columns: []schema.Column{
			{Name: "A", Type: schema.TypeInteger},
			{Name: "B", Type: schema.TypeInteger},
			{Name: "C", Type: schema.TypeInteger},
			{Name: "D", Type: schema.TypeInteger},
		},
		Indexes: []schema.Index{
			{Name: "UX_FIRST", Columns: []int{0, 1}, Unique: true},
			{Name: "UX_SECOND", Columns: []int{2, 3}, Unique: true},
		},
	}
	cols, _, ok := bestRowIdentifier(tbl)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, cols)
}

func TestBestRowFallsBackToNotNullCount(t *testing.T) {
	tbl := &schema.Table{
		Name: "T",
		Columns: []schema.Column{
			{Name: "A", Type: schema.TypeInteger, Nullable: true},
			{Name: "B", Type: schema.TypeInteger},
			{Name: "C", Type: schema.TypeInteger},
			{Name: "D", Type: schema.TypeInteger, Nullable: true},
		},
		Indexes: []schema.Index{
			// No all-not-null candidate exists; counts decide.
			{Name: "UX_ONE", Columns: []int{0, 3}, Unique: true},
			{Name: "UX_TWO", Columns: []int{1, 2, 3}, Unique: true},
			{Name: "IX_PLAIN", Columns: []int{1, 2}},
		},
	}
	cols, inKey, ok := bestRowIdentifier(tbl)
	require.True(t, ok)
	assert.False(t, inKey)
	assert.Equal(t, []int{1, 2, 3}, cols)
}

func TestBestRowNothingToReport(t *testing.T) {
	tbl := &schema.Table{
		Name: "T",
		Columns: []schema.Column{
			{Name: "A", Type: schema.TypeInteger, Nullable: true},
		},
		Indexes: []schema.Index{
			{Name: "UX_NULL", Columns: []int{0}, Unique: true},
			{Name: "IX_A", Columns: []int{0}},
		},
	}
	_, _, ok := bestRowIdentifier(tbl)
	assert.False(t, ok)
}

func TestBestRowSyntheticKeyIgnored(t *testing.T) {
	tbl := &schema.Table{
		Name: "T",
		Columns: []schema.Column{
			{Name: "A", Type: schema.TypeInteger},
		},
		PKColumns:   []int{0},
		PKSynthetic: true,
	}
	_, _, ok := bestRowIdentifier(tbl)
	assert.False(t, ok)
}

func TestBestRowScope(t *testing.T) {
	cat := schema.NewCatalog("TESTDB")
	plain := &schema.Table{Name: "P"}
	temp := &schema.Table{Name: "TMP", Kind: schema.KindGlobalTemporary}

	assert.Equal(t, scopeTransaction, bestRowScope(cat, plain))
	assert.Equal(t, scopeSession, bestRowScope(cat, temp))

	cat.SetReadOnly(true)
	assert.Equal(t, scopeSession, bestRowScope(cat, plain))
}

func TestBestRowIdentifierRelation(t *testing.T) {
	cat := testCatalog()
	e := testEngine(t, cat)
	sa := admin(cat)

	rel, err := e.GetRelation(context.Background(), "SYSTEM_BESTROWIDENTIFIER", sa)
	require.NoError(t, err)
	// One PK column per table.
	require.Equal(t, 2, rel.Len())
	def := rel.Definition()
	colName := def.ColumnIndex("COLUMN_NAME")
	inKey := def.ColumnIndex("IN_KEY")
	for _, row := range rel.Rows() {
		assert.Equal(t, "ID", row[colName])
		assert.Equal(t, true, row[inKey])
		assert.Equal(t, scopeTransaction, row[def.ColumnIndex("SCOPE")])
		assert.Equal(t, bestRowNotPseudo, row[def.ColumnIndex("PSEUDO_COLUMN")])
	}
}
