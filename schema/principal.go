package schema

import "github.com/google/uuid"

// PublicName is the pseudo-principal every grant to "everyone" hangs off.
const PublicName = "PUBLIC"

// Privilege strings as they appear in the privilege relations.
const (
	PrivSelect = "SELECT"
	PrivInsert = "INSERT"
	PrivUpdate = "UPDATE"
	PrivDelete = "DELETE"
)

// AllPrivileges in reporting order.
func AllPrivileges() []string {
	return []string{PrivSelect, PrivInsert, PrivUpdate, PrivDelete}
}

// Principal is an authenticated identity plus its grant set. Session
// distinguishes two connections of the same user; temporary-table
// visibility is keyed on it.
type Principal struct {
	Name    string
	Admin   bool
	Session uuid.UUID

	// Rights maps an object name to the privilege strings granted on it.
	Rights map[string][]string `json:"Rights,omitempty"`
}

func NewPrincipal(name string, admin bool) *Principal {
	return &Principal{
		Name:    name,
		Admin:   admin,
		Session: uuid.New(),
		Rights:  make(map[string][]string),
	}
}

// Grant adds privileges on the named object, skipping duplicates.
func (p *Principal) Grant(object string, privs ...string) {
	if p.Rights == nil {
		p.Rights = make(map[string][]string)
	}
	have := p.Rights[object]
next:
	for _, priv := range privs {
		for _, h := range have {
			if h == priv {
				continue next
			}
		}
		have = append(have, priv)
	}
	p.Rights[object] = have
}

// PrivilegesOn returns the privileges granted on the named object.
// Admins hold every privilege implicitly.
func (p *Principal) PrivilegesOn(object string) []string {
	if p.Admin {
		return AllPrivileges()
	}
	return p.Rights[object]
}

// HasRight reports whether the principal holds any grant at all on the
// object. PUBLIC grants are not consulted here; the accessibility
// filter unions them in.
func (p *Principal) HasRight(object string) bool {
	return p.Admin || len(p.Rights[object]) > 0
}
