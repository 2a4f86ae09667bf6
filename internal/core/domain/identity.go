package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Identity is the durable key identifying a culture across reloads. When the
// server does not assign one, a synthetic identity is allocated from the
// current snapshot (see AllocateIdentities).
type Identity struct {
	Prefix   CultureType
	Sequence int
}

// String renders the identity in wire form, e.g. "soja_3".
func (id Identity) String() string {
	return fmt.Sprintf("%s_%d", id.Prefix, id.Sequence)
}

// IsZero reports whether the identity is unset.
func (id Identity) IsZero() bool {
	return id.Prefix == ""
}

// MarshalText implements encoding.TextMarshaler so identities can key JSON
// objects in the durable store.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identity) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentity(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseIdentity parses a "prefix_sequence" identity string.
func ParseIdentity(s string) (Identity, error) {
	prefix, num, ok := strings.Cut(s, "_")
	if !ok {
		return Identity{}, zerr.With(ErrInvalidIdentity, "id", s)
	}
	t := CultureType(prefix)
	if !t.Valid() {
		return Identity{}, zerr.With(ErrInvalidIdentity, "id", s)
	}
	seq, err := strconv.Atoi(num)
	if err != nil || seq < 0 {
		return Identity{}, zerr.With(ErrInvalidIdentity, "id", s)
	}
	return Identity{Prefix: t, Sequence: seq}, nil
}

// CultureSnapshot is one entry of the entity list as observed on reload,
// before identities are settled.
type CultureSnapshot struct {
	ServerID string
	Type     CultureType
}

// AllocateIdentities assigns an identity to every snapshot entry. Entries
// whose ServerID parses as prefix_sequence keep it verbatim and reserve the
// sequence; the rest receive the smallest non-negative sequence not already
// reserved for their prefix. The function is pure: the same snapshot always
// produces the same assignments, and freed sequences are reused rather than
// growing a counter across reloads.
func AllocateIdentities(snapshot []CultureSnapshot) []Identity {
	reserved := make(map[CultureType]map[int]bool)
	reserve := func(t CultureType, seq int) {
		if reserved[t] == nil {
			reserved[t] = make(map[int]bool)
		}
		reserved[t][seq] = true
	}

	ids := make([]Identity, len(snapshot))

	// First pass: honor server-assigned identities.
	for i, entry := range snapshot {
		if entry.ServerID == "" {
			continue
		}
		id, err := ParseIdentity(entry.ServerID)
		if err != nil {
			continue
		}
		ids[i] = id
		reserve(id.Prefix, id.Sequence)
	}

	// Second pass: fill gaps with the smallest free sequence per prefix.
	for i, entry := range snapshot {
		if !ids[i].IsZero() {
			continue
		}
		seq := 0
		for reserved[entry.Type][seq] {
			seq++
		}
		ids[i] = Identity{Prefix: entry.Type, Sequence: seq}
		reserve(entry.Type, seq)
	}

	return ids
}
