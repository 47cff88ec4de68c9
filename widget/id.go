package widget

import "github.com/google/uuid"

// idNamespace scopes named identities so they can never collide with the
// random unique ones.
var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// ID is a stable token addressing a widget instance across tree rebuilds.
// Two widgets constructed with the same name share an identity; unique
// identities are distinct for every call. Equality is the only supported
// operation.
type ID struct {
	value string
}

// NewUnique returns an identity distinct from every other generated in the
// process.
func NewUnique() ID {
	return ID{value: uuid.NewString()}
}

// Named returns a deterministic identity for a logical name, letting the
// application address a widget across rebuilds.
func Named(name string) ID {
	return ID{value: uuid.NewSHA1(idNamespace, []byte(name)).String()}
}

// IsZero reports whether the identity is the zero value.
func (id ID) IsZero() bool {
	return id.value == ""
}

// String returns the identity's token form.
func (id ID) String() string {
	return id.value
}
