package schema

import "errors"

var (
	ErrTableExists     = errors.New("schema: duplicate table name")
	ErrPrincipalExists = errors.New("schema: duplicate principal name")
	ErrTableUnknown    = errors.New("schema: unknown table")
)

// Catalog is the live schema object graph: every persistent table and
// every principal, in a stable enumeration order. The catalog engine
// consumes it read-only; DDL and grant code paths own mutation and are
// responsible for marking the catalog cache dirty afterwards.
type Catalog struct {
	name     string
	readOnly bool

	tables   []*Table
	tableIdx map[string]int

	principals []*Principal
	prinIdx    map[string]int
}

func NewCatalog(name string) *Catalog {
	c := &Catalog{
		name:     name,
		tableIdx: make(map[string]int),
		prinIdx:  make(map[string]int),
	}
	// The PUBLIC pseudo-principal always exists; grants to everyone
	// hang off it.
	_ = c.AddPrincipal(NewPrincipal(PublicName, false))
	return c
}

func (c *Catalog) Name() string { return c.name }

// ReadOnly reports whether the whole database is opened read-only.
func (c *Catalog) ReadOnly() bool     { return c.readOnly }
func (c *Catalog) SetReadOnly(v bool) { c.readOnly = v }

// AddTable appends a table to the enumeration. Order of addition is the
// enumeration order, which key-selection tie-breaks depend on.
func (c *Catalog) AddTable(t *Table) error {
	if _, dup := c.tableIdx[t.Name]; dup {
		return ErrTableExists
	}
	c.tableIdx[t.Name] = len(c.tables)
	c.tables = append(c.tables, t)
	return nil
}

// Tables returns all tables in stable enumeration order.
func (c *Catalog) Tables() []*Table { return c.tables }

func (c *Catalog) Table(name string) (*Table, bool) {
	i, ok := c.tableIdx[name]
	if !ok {
		return nil, false
	}
	return c.tables[i], true
}

func (c *Catalog) AddPrincipal(p *Principal) error {
	if _, dup := c.prinIdx[p.Name]; dup {
		return ErrPrincipalExists
	}
	c.prinIdx[p.Name] = len(c.principals)
	c.principals = append(c.principals, p)
	return nil
}

// Principals returns all principals, PUBLIC included, in stable order.
func (c *Catalog) Principals() []*Principal { return c.principals }

func (c *Catalog) Principal(name string) (*Principal, bool) {
	i, ok := c.prinIdx[name]
	if !ok {
		return nil, false
	}
	return c.principals[i], true
}

// Public returns the PUBLIC pseudo-principal.
func (c *Catalog) Public() *Principal {
	p, _ := c.Principal(PublicName)
	return p
}
