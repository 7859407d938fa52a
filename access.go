package syscat

import "github.com/syscatdb/syscat/schema"

// accessibleTable is the single security choke point for every catalog
// relation: a table contributes rows somewhere only if this says so.
//
// A table is visible to a principal iff the principal holds at least
// one grant on it (directly, through PUBLIC, or by being an admin),
// and, when the table is session-scoped and not of system kind, the
// principal's session created it.
func accessibleTable(cat *schema.Catalog, p *schema.Principal, t *schema.Table) bool {
	if !hasAnyGrant(cat, p, t.Name) {
		return false
	}
	if t.Temporary() && t.Kind != schema.KindSystem {
		return t.Owner == p.Session
	}
	return true
}

func hasAnyGrant(cat *schema.Catalog, p *schema.Principal, object string) bool {
	if p.HasRight(object) {
		return true
	}
	if pub := cat.Public(); pub != nil && len(pub.PrivilegesOn(object)) > 0 {
		return true
	}
	return false
}
