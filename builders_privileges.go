package syscat

import "github.com/syscatdb/syscat/schema"

// Population routines for the grant-shaped relations:
// SYSTEM_TABLEPRIVILEGES, SYSTEM_COLUMNPRIVILEGES and SYSTEM_USERS.
//
// Grants are recorded at table granularity, so the column privilege
// relation is the table privilege rows fanned out over the visible
// columns of each table.

// grantorName is reported as the grantor of every privilege; grants are
// always issued by the system authority in this build.
const grantorName = "_SYSTEM"

func defTablePrivileges() *Definition {
	return &Definition{
		Name: "SYSTEM_TABLEPRIVILEGES",
		Columns: []Column{
			{Name: "TABLE_CAT", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_SCHEM", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_NAME", Type: schema.TypeVarchar},
			{Name: "GRANTOR", Type: schema.TypeVarchar},
			{Name: "GRANTEE", Type: schema.TypeVarchar},
			{Name: "PRIVILEGE", Type: schema.TypeVarchar},
			{Name: "IS_GRANTABLE", Type: schema.TypeVarchar},
		},
		// Order: TABLE_SCHEM, TABLE_NAME, PRIVILEGE.
		Key:     []int{1, 2, 5, 4, 3},
		Lookups: [][]int{{0}, {1}, {4}},
	}
}

func grantable(p *schema.Principal) string {
	if p.Admin {
		return "YES"
	}
	return "NO"
}

func populateTablePrivileges(gc *genContext, addRow func(...any) error) error {
	grantees := visiblePrincipals(gc, true)
	return forEachAccessibleTable(gc, func(t *schema.Table, q schema.Qualified) error {
		for _, p := range grantees {
			for _, priv := range p.PrivilegesOn(t.Name) {
				if err := addRow(
					q.Catalog,    // TABLE_CAT
					q.Schema,     // TABLE_SCHEM
					q.Name,       // TABLE_NAME
					grantorName,  // GRANTOR
					p.Name,       // GRANTEE
					priv,         // PRIVILEGE
					grantable(p), // IS_GRANTABLE
				); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func defColumnPrivileges() *Definition {
	return &Definition{
		Name: "SYSTEM_COLUMNPRIVILEGES",
		Columns: []Column{
			{Name: "TABLE_CAT", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_SCHEM", Type: schema.TypeVarchar, Nullable: true},
			{Name: "TABLE_NAME", Type: schema.TypeVarchar},
			{Name: "COLUMN_NAME", Type: schema.TypeVarchar},
			{Name: "GRANTOR", Type: schema.TypeVarchar},
			{Name: "GRANTEE", Type: schema.TypeVarchar},
			{Name: "PRIVILEGE", Type: schema.TypeVarchar},
			{Name: "IS_GRANTABLE", Type: schema.TypeVarchar},
		},
		Key:     []int{3, 6, 5, 4, 2, 1, 0},
		Lookups: [][]int{{0}, {1}, {2}},
	}
}

func populateColumnPrivileges(gc *genContext, addRow func(...any) error) error {
	grantees := visiblePrincipals(gc, true)
	return forEachAccessibleTable(gc, func(t *schema.Table, q schema.Qualified) error {
		for _, p := range grantees {
			for _, priv := range p.PrivilegesOn(t.Name) {
				for i := range t.Columns {
					if err := addRow(
						q.Catalog,         // TABLE_CAT
						q.Schema,          // TABLE_SCHEM
						q.Name,            // TABLE_NAME
						t.Columns[i].Name, // COLUMN_NAME
						grantorName,       // GRANTOR
						p.Name,            // GRANTEE
						priv,              // PRIVILEGE
						grantable(p),      // IS_GRANTABLE
					); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

func defUsers() *Definition {
	return &Definition{
		Name: "SYSTEM_USERS",
		Columns: []Column{
			{Name: "USER", Type: schema.TypeVarchar},
			{Name: "ADMIN", Type: schema.TypeBit},
		},
		Key: []int{0},
	}
}

func populateUsers(gc *genContext, addRow func(...any) error) error {
	for _, p := range visiblePrincipals(gc, false) {
		if err := addRow(p.Name, p.Admin); err != nil {
			return err
		}
	}
	return nil
}
