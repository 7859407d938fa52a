package syscat

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/syscatdb/syscat/schema"
	"github.com/syscatdb/syscat/syscat_errors"
	"github.com/syscatdb/syscat/utils"
)

type Options struct {
	Logger        utils.Logger
	ResolverCache int
}

func (o *Options) SetDefaults() {
	if o.Logger == nil {
		o.Logger = utils.NewDefaultLogger(slog.LevelInfo)
	}
	if o.ResolverCache <= 0 {
		o.ResolverCache = 512
	}
}

// slot is one cache slot. A nil rel means the slot holds no content
// (unbuilt or invalidated); owner identifies who the content was built
// for, which matters only for session-dependent relations.
type slot struct {
	rel   *Relation
	owner string
}

// ownerKey binds cached content to both the principal and its session,
// since temporary-object visibility differs between two sessions of the
// same user.
func ownerKey(p *schema.Principal) string {
	return p.Name + "/" + p.Session.String()
}

type engineStats struct {
	hits          atomic.Uint64
	misses        atomic.Uint64
	regenerations atomic.Uint64
	invalidations atomic.Uint64
	failures      atomic.Uint64
}

// Engine serves the catalog relations of one database. It is
// constructed at database-open time and owns all caching state; nothing
// lives at package level, so several databases in one process get
// fully independent engines.
type Engine struct {
	opts Options
	reg  *registry
	cat  *schema.Catalog
	res  *schema.Resolver
	defs [relationCount]*Definition

	lock   sync.Mutex
	slots  [relationCount]slot
	dirty  bool
	closed bool

	stats engineStats
}

// NewEngine builds the engine over a live catalog. Every relation's
// column schema is defined here, before any content request, so
// RelationSchema works during bootstrap on a catalog that has no
// tables yet.
func NewEngine(cat *schema.Catalog, opts Options) (*Engine, error) {
	if cat == nil {
		return nil, syscat_errors.ErrNoCatalog
	}
	opts.SetDefaults()

	reg, err := newRegistry(relations[:])
	if err != nil {
		return nil, err
	}
	e := &Engine{
		opts: opts,
		reg:  reg,
		cat:  cat,
		res:  schema.NewResolver(cat, opts.ResolverCache),
	}
	for i := range relations {
		e.defs[i] = relations[i].define()
	}
	e.opts.Logger.Debug("engine open", "catalog", cat.Name(), "relations", relationCount)
	return e, nil
}

// Catalog returns the live schema the engine reads from.
func (e *Engine) Catalog() *schema.Catalog { return e.cat }

// RelationNames lists every registered relation in ordinal order.
func (e *Engine) RelationNames() []string {
	out := make([]string, relationCount)
	for i := range relations {
		out[i] = relations[i].name
	}
	return out
}

// RelationSchema returns the column definition of the named relation
// without materializing content.
func (e *Engine) RelationSchema(name string) (*Definition, error) {
	i, ok := e.reg.lookup(name)
	if !ok {
		return nil, syscat_errors.ErrRelationUnknown
	}
	return e.defs[i], nil
}

// GetRelation is the sole content read path. It returns a sealed
// relation that remains valid after later invalidations; callers must
// not hold it across schema changes if they need fresh data.
func (e *Engine) GetRelation(ctx context.Context, name string, principal *schema.Principal) (*Relation, error) {
	i, ok := e.reg.lookup(name)
	if !ok {
		return nil, syscat_errors.ErrRelationUnknown
	}
	spec := e.reg.spec(i)

	e.lock.Lock()
	defer e.lock.Unlock()
	if e.closed {
		return nil, syscat_errors.ErrEngineClosed
	}

	// A pending invalidation empties every cacheable slot before the
	// request is served.
	if e.dirty {
		for j := range e.slots {
			if e.reg.spec(j).cached && e.slots[j].rel != nil {
				e.slots[j] = slot{}
				e.stats.invalidations.Add(1)
			}
		}
		e.dirty = false
	}

	owner := ownerKey(principal)
	s := &e.slots[i]

	if spec.cached && s.rel != nil {
		if !spec.perUser || s.owner == owner {
			e.stats.hits.Add(1)
			return s.rel, nil
		}
		// Session-dependent content built for someone else.
	}
	e.stats.misses.Add(1)

	gc := &genContext{
		ctx:       ctx,
		cat:       e.cat,
		res:       e.res,
		principal: principal,
		log:       e.opts.Logger,
	}
	rel, err := generate(gc, spec, e.defs[i])
	if err != nil {
		// The previous snapshot, if any, stays in place.
		e.stats.failures.Add(1)
		e.opts.Logger.Error("relation generation failed", "relation", spec.name, "principal", principal.Name, "error", err)
		return nil, err
	}
	e.stats.regenerations.Add(1)
	e.opts.Logger.Debug("relation generated", "relation", spec.name, "principal", principal.Name, "rows", rel.Len())

	if spec.cached {
		*s = slot{rel: rel, owner: owner}
	}
	return rel, nil
}

// MarkDirty schedules invalidation of every cacheable relation. Schema
// and grant mutators must call it before handing control back to any
// session. The slots are emptied lazily on the next request.
func (e *Engine) MarkDirty() {
	e.lock.Lock()
	defer e.lock.Unlock()
	if e.closed {
		return
	}
	e.dirty = true
	e.opts.Logger.Debug("catalog marked dirty")
}

// Close drops all cached content. Further content requests fail with
// ErrEngineClosed; Close is idempotent.
func (e *Engine) Close() error {
	e.lock.Lock()
	defer e.lock.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	for i := range e.slots {
		e.slots[i] = slot{}
	}
	e.opts.Logger.Debug("engine closed", "catalog", e.cat.Name())
	return nil
}

// cachedCount reports how many slots currently hold content. Used by
// the metrics collector.
func (e *Engine) cachedCount() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	n := 0
	for i := range e.slots {
		if e.slots[i].rel != nil {
			n++
		}
	}
	return n
}
