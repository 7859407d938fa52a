package schema

import lru "github.com/hashicorp/golang-lru/v2"

// Default schema display names. User objects live in PUBLIC; objects
// produced by the engine itself live in DEFINITION_SCHEMA.
const (
	PublicSchema     = "PUBLIC"
	DefinitionSchema = "DEFINITION_SCHEMA"
)

// Qualified is the display identity of a schema object.
type Qualified struct {
	Catalog string
	Schema  string
	Name    string
}

// Resolver maps schema objects to their catalog/schema/simple display
// names. Resolution is cheap but sits on the row-append hot path of
// every relation, so results are memoized.
type Resolver struct {
	catalog string
	cache   *lru.Cache[string, Qualified]
}

func NewResolver(c *Catalog, cacheSize int) *Resolver {
	if cacheSize <= 0 {
		cacheSize = 512
	}
	cache, _ := lru.New[string, Qualified](cacheSize)
	return &Resolver{catalog: c.Name(), cache: cache}
}

// Resolve returns the display identity of a table.
func (r *Resolver) Resolve(t *Table) Qualified {
	if q, ok := r.cache.Get(t.Name); ok {
		return q
	}
	q := Qualified{
		Catalog: r.catalog,
		Schema:  PublicSchema,
		Name:    t.Name,
	}
	if t.Kind == KindSystem {
		q.Schema = DefinitionSchema
	}
	r.cache.Add(t.Name, q)
	return q
}

// CatalogName returns the single known catalog name.
func (r *Resolver) CatalogName() string { return r.catalog }

// SchemaNames lists the schema display names defined in this catalog.
func (r *Resolver) SchemaNames() []string {
	return []string{DefinitionSchema, PublicSchema}
}
