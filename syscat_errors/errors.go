// Provides common syscat error definitions.
package syscat_errors

import "errors"

var (
	ErrRelationUnknown = errors.New("syscat: unknown catalog relation")
	ErrRelationSealed  = errors.New("syscat: relation is read-only")

	ErrGeneration        = errors.New("syscat: catalog generation failed")
	ErrDuplicateRelation = errors.New("syscat: duplicate relation name")
	ErrNoCatalog         = errors.New("syscat: no catalog attached")
	ErrEngineClosed      = errors.New("syscat: engine is closed")

	ErrColumnCount = errors.New("syscat: row arity does not match relation definition")
	ErrNullValue   = errors.New("syscat: null value in a not-null relation column")
)
