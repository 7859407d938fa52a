package syscat

import (
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/syscatdb/syscat/syscat_errors"
)

// Ordinals of the catalog relations. The order is part of the engine's
// stable interface: cache slots, definitions and dispatch are all
// indexed by it.
const (
	RelBestRowIdentifier = iota
	RelCatalogs
	RelColumnPrivileges
	RelColumns
	RelCrossReference
	RelIndexInfo
	RelPrimaryKeys
	RelProcedureColumns
	RelProcedures
	RelSchemas
	RelTablePrivileges
	RelTables
	RelTableTypes
	RelTypeInfo
	RelUsers
	RelSessions
	RelProperties

	relationCount
)

// populateFunc appends the content rows of one relation. A nil
// populateFunc marks a relation this engine build defines but does not
// produce content for: requests yield an empty relation, not an error.
type populateFunc func(gc *genContext, addRow func(...any) error) error

// relationSpec is the static description of one catalog relation.
// define builds the column schema and key/lookup declarations; populate
// scans schema objects and appends rows. The two are separate
// operations called at distinct lifecycle points.
type relationSpec struct {
	name     string
	cached   bool
	perUser  bool // content differs by requesting principal
	define   func() *Definition
	populate populateFunc
}

// relations maps ordinal to spec. Consulted by every component, never
// mutated after process initialization.
var relations = [relationCount]relationSpec{
	RelBestRowIdentifier: {name: "SYSTEM_BESTROWIDENTIFIER", cached: true, perUser: true,
		define: defBestRowIdentifier, populate: populateBestRowIdentifier},
	RelCatalogs: {name: "SYSTEM_CATALOGS", cached: true,
		define: defCatalogs, populate: populateCatalogs},
	RelColumnPrivileges: {name: "SYSTEM_COLUMNPRIVILEGES", cached: true, perUser: true,
		define: defColumnPrivileges, populate: populateColumnPrivileges},
	RelColumns: {name: "SYSTEM_COLUMNS", cached: true, perUser: true,
		define: defColumns, populate: populateColumns},
	RelCrossReference: {name: "SYSTEM_CROSSREFERENCE", cached: true, perUser: true,
		define: defCrossReference, populate: populateCrossReference},
	RelIndexInfo: {name: "SYSTEM_INDEXINFO", cached: true, perUser: true,
		define: defIndexInfo, populate: populateIndexInfo},
	RelPrimaryKeys: {name: "SYSTEM_PRIMARYKEYS", cached: true, perUser: true,
		define: defPrimaryKeys, populate: populatePrimaryKeys},
	RelProcedureColumns: {name: "SYSTEM_PROCEDURECOLUMNS", cached: true,
		define: defProcedureColumns},
	RelProcedures: {name: "SYSTEM_PROCEDURES", cached: true,
		define: defProcedures},
	RelSchemas: {name: "SYSTEM_SCHEMAS", cached: true, perUser: true,
		define: defSchemas, populate: populateSchemas},
	RelTablePrivileges: {name: "SYSTEM_TABLEPRIVILEGES", cached: true, perUser: true,
		define: defTablePrivileges, populate: populateTablePrivileges},
	RelTables: {name: "SYSTEM_TABLES", cached: true, perUser: true,
		define: defTables, populate: populateTables},
	RelTableTypes: {name: "SYSTEM_TABLETYPES", cached: true,
		define: defTableTypes, populate: populateTableTypes},
	RelTypeInfo: {name: "SYSTEM_TYPEINFO", cached: true,
		define: defTypeInfo, populate: populateTypeInfo},
	RelUsers: {name: "SYSTEM_USERS", cached: true, perUser: true,
		define: defUsers, populate: populateUsers},
	RelSessions: {name: "SYSTEM_SESSIONS", perUser: true,
		define: defSessions, populate: populateSessions},
	RelProperties: {name: "SYSTEM_PROPERTIES",
		define: defProperties, populate: populateProperties},
}

// registry owns the ordinal/name mapping. The name lookup sits on the
// hot path of every metadata request, hence the lock-free map.
type registry struct {
	specs  []relationSpec
	byName *xsync.MapOf[string, int]
}

func newRegistry(specs []relationSpec) (*registry, error) {
	r := &registry{
		specs:  specs,
		byName: xsync.NewMapOf[string, int](),
	}
	for i := range specs {
		if _, dup := r.byName.Load(specs[i].name); dup {
			return nil, syscat_errors.ErrDuplicateRelation
		}
		r.byName.Store(specs[i].name, i)
	}
	return r, nil
}

func (r *registry) lookup(name string) (int, bool) {
	return r.byName.Load(name)
}

func (r *registry) spec(index int) *relationSpec {
	if index < 0 || index >= len(r.specs) {
		return nil
	}
	return &r.specs[index]
}
