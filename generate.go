package syscat

import (
	"context"
	"fmt"

	"github.com/syscatdb/syscat/schema"
	"github.com/syscatdb/syscat/syscat_errors"
	"github.com/syscatdb/syscat/utils"
)

// genContext carries everything one regeneration needs. It is built per
// request and threaded through the populate routines explicitly, so two
// requests never share mutable per-call state.
type genContext struct {
	ctx       context.Context
	cat       *schema.Catalog
	res       *schema.Resolver
	principal *schema.Principal
	log       utils.Logger
}

// forEachAccessibleTable runs fn over every table the requesting
// principal may see, in the catalog's stable enumeration order. This is
// the common outer loop of most populate routines; the accessibility
// filter is applied here and nowhere else on the table path.
func forEachAccessibleTable(gc *genContext, fn func(t *schema.Table, q schema.Qualified) error) error {
	for _, t := range gc.cat.Tables() {
		if err := gc.ctx.Err(); err != nil {
			return err
		}
		if !accessibleTable(gc.cat, gc.principal, t) {
			continue
		}
		if err := fn(t, gc.res.Resolve(t)); err != nil {
			return err
		}
	}
	return nil
}

// visiblePrincipals lists the principals the requester may see: admins
// see everyone, other users see only themselves. PUBLIC is included
// only when the relation reports grants, where PUBLIC rows are
// meaningful.
func visiblePrincipals(gc *genContext, withPublic bool) []*schema.Principal {
	var out []*schema.Principal
	for _, p := range gc.cat.Principals() {
		if p.Name == schema.PublicName {
			if withPublic {
				out = append(out, p)
			}
			continue
		}
		if gc.principal.Admin || p.Name == gc.principal.Name {
			out = append(out, p)
		}
	}
	return out
}

// generate materializes one relation into a fresh buffer. The caller
// swaps the result into the cache slot only on success, so a failed
// generation can never replace a valid snapshot with a half-built one.
func generate(gc *genContext, spec *relationSpec, def *Definition) (*Relation, error) {
	rel := newRelation(def)
	if spec.populate != nil {
		if err := spec.populate(gc, rel.Insert); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", syscat_errors.ErrGeneration, spec.name, err)
		}
	}
	rel.seal()
	return rel, nil
}
