package syscat

import (
	"strconv"

	"github.com/syscatdb/syscat/schema"
)

// SYSTEM_SESSIONS and SYSTEM_PROPERTIES reflect live engine state, so
// the registry marks them non-cacheable and they are rebuilt on every
// request.

func defSessions() *Definition {
	return &Definition{
		Name: "SYSTEM_SESSIONS",
		Columns: []Column{
			{Name: "SESSION_ID", Type: schema.TypeVarchar},
			{Name: "USER_NAME", Type: schema.TypeVarchar},
			{Name: "IS_ADMIN", Type: schema.TypeBit},
		},
		Key:     []int{0},
		Lookups: [][]int{{1}},
	}
}

func populateSessions(gc *genContext, addRow func(...any) error) error {
	for _, p := range visiblePrincipals(gc, false) {
		if err := addRow(p.Session.String(), p.Name, p.Admin); err != nil {
			return err
		}
	}
	return nil
}

func defProperties() *Definition {
	return &Definition{
		Name: "SYSTEM_PROPERTIES",
		Columns: []Column{
			{Name: "PROPERTY_SCOPE", Type: schema.TypeVarchar},
			{Name: "PROPERTY_NAMESPACE", Type: schema.TypeVarchar},
			{Name: "PROPERTY_NAME", Type: schema.TypeVarchar},
			{Name: "PROPERTY_VALUE", Type: schema.TypeVarchar, Nullable: true},
			{Name: "PROPERTY_CLASS", Type: schema.TypeVarchar},
		},
		Key:     []int{0, 1, 2},
		Lookups: [][]int{{2}},
	}
}

func populateProperties(gc *genContext, addRow func(...any) error) error {
	type prop struct {
		name  string
		value string
		class string
	}
	props := []prop{
		{"name", gc.cat.Name(), "string"},
		{"readonly", boolWord(gc.cat.ReadOnly()), "boolean"},
		{"tables", strconv.Itoa(len(gc.cat.Tables())), "int"},
		{"users", strconv.Itoa(len(gc.cat.Principals())), "int"},
	}
	for _, p := range props {
		if err := addRow(
			"DATABASE", // PROPERTY_SCOPE
			"database", // PROPERTY_NAMESPACE
			p.name,     // PROPERTY_NAME
			p.value,    // PROPERTY_VALUE
			p.class,    // PROPERTY_CLASS
		); err != nil {
			return err
		}
	}
	return nil
}

func boolWord(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
