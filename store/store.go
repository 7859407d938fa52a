// Package store persists schema definitions. Only definitions live
// here: tables and principals as JSON records under prefixed keys.
// Catalog relation content is derived state and is never stored.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/cockroachdb/pebble"
	"github.com/syscatdb/syscat/schema"
	"github.com/syscatdb/syscat/utils"
)

// Key prefixes. Pebble iterates in key order, so prefixing by record
// kind and then name gives a deterministic enumeration order, which
// key-selection tie-breaks depend on across restarts.
const (
	prefixMeta      = 'M'
	prefixTable     = 'T'
	prefixPrincipal = 'U'
)

const metaNameKey = "Mname"

type Store struct {
	db  *pebble.DB
	dir string
	log utils.Logger
}

func Open(dir string, log utils.Logger) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dir, err)
	}
	return &Store{db: db, dir: dir, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func tableKey(name string) []byte {
	return append([]byte{prefixTable}, name...)
}

func principalKey(name string) []byte {
	return append([]byte{prefixPrincipal}, name...)
}

// SetName records the catalog name the store belongs to.
func (s *Store) SetName(name string) error {
	return s.db.Set([]byte(metaNameKey), []byte(name), pebble.Sync)
}

func (s *Store) PutTable(t *schema.Table) error {
	val, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("store: encode table %s: %w", t.Name, err)
	}
	return s.db.Set(tableKey(t.Name), val, pebble.Sync)
}

func (s *Store) DeleteTable(name string) error {
	return s.db.Delete(tableKey(name), pebble.Sync)
}

func (s *Store) PutPrincipal(p *schema.Principal) error {
	val, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("store: encode principal %s: %w", p.Name, err)
	}
	return s.db.Set(principalKey(p.Name), val, pebble.Sync)
}

func (s *Store) DeletePrincipal(name string) error {
	return s.db.Delete(principalKey(name), pebble.Sync)
}

// LoadCatalog rebuilds a catalog from the stored definitions. Records
// come back in key order, so two loads of the same store produce the
// same enumeration order.
func (s *Store) LoadCatalog(fallbackName string) (*schema.Catalog, error) {
	name := fallbackName
	if v, closer, err := s.db.Get([]byte(metaNameKey)); err == nil {
		name = string(v)
		_ = closer.Close()
	} else if err != pebble.ErrNotFound {
		return nil, fmt.Errorf("store: read catalog name: %w", err)
	}
	cat := schema.NewCatalog(name)

	hash := xxhash.New()
	it, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, fmt.Errorf("store: iterate: %w", err)
	}
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		key := it.Key()
		val := it.Value()
		_, _ = hash.Write(key)
		_, _ = hash.Write(val)
		switch key[0] {
		case prefixTable:
			var t schema.Table
			if err := json.Unmarshal(val, &t); err != nil {
				return nil, fmt.Errorf("store: decode table %q: %w", key[1:], err)
			}
			if err := cat.AddTable(&t); err != nil {
				return nil, err
			}
		case prefixPrincipal:
			var p schema.Principal
			if err := json.Unmarshal(val, &p); err != nil {
				return nil, fmt.Errorf("store: decode principal %q: %w", key[1:], err)
			}
			if p.Name == schema.PublicName {
				// NewCatalog already seeded PUBLIC; carry the grants over.
				pub := cat.Public()
				for table, privs := range p.Rights {
					pub.Grant(table, privs...)
				}
				continue
			}
			if err := cat.AddPrincipal(&p); err != nil {
				return nil, err
			}
		case prefixMeta:
		default:
			return nil, fmt.Errorf("store: unknown record kind %q", key[0])
		}
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("store: iterate: %w", err)
	}

	if s.log != nil {
		s.log.Info("catalog loaded", "catalog", name, "dir", s.dir,
			"tables", len(cat.Tables()), "fingerprint", fmt.Sprintf("%016x", hash.Sum64()))
	}
	return cat, nil
}

// Fingerprint hashes every stored record. Two stores with the same
// definitions report the same value.
func (s *Store) Fingerprint() (uint64, error) {
	it, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return 0, fmt.Errorf("store: iterate: %w", err)
	}
	defer it.Close()
	hash := xxhash.New()
	for it.First(); it.Valid(); it.Next() {
		_, _ = hash.Write(it.Key())
		_, _ = hash.Write(it.Value())
	}
	if err := it.Error(); err != nil {
		return 0, fmt.Errorf("store: iterate: %w", err)
	}
	return hash.Sum64(), nil
}
