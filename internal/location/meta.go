// Package location defines the metadata flags attachable to framework
// locations.
package location

import (
	"fmt"
	"strings"
)

// Meta is a bit set of location metadata flags.
type Meta uint8

const (
	Default Meta = 1 << iota
	File
	Protected
	Indefinite
	Cleanable
	NormOnLoad
)

var metaNames = []struct {
	flag Meta
	name string
}{
	{Default, "default"},
	{File, "file"},
	{Protected, "protected"},
	{Indefinite, "indefinite"},
	{Cleanable, "cleanable"},
	{NormOnLoad, "norm_on_load"},
}

// BuildMeta assembles a flag set from metadata names, as read from config.
func BuildMeta(names ...string) (Meta, error) {
	var m Meta
outer:
	for _, name := range names {
		for _, entry := range metaNames {
			if entry.name == name {
				m |= entry.flag
				continue outer
			}
		}
		return 0, fmt.Errorf("unknown location metadata flag %q", name)
	}
	return m, nil
}

// Has reports whether every flag in the argument is set.
func (m Meta) Has(flag Meta) bool {
	return m&flag == flag
}

// Names returns the names of the set flags, in declaration order.
func (m Meta) Names() []string {
	var out []string
	for _, entry := range metaNames {
		if m.Has(entry.flag) {
			out = append(out, entry.name)
		}
	}
	return out
}

// String renders the set flags pipe-joined, or "none".
func (m Meta) String() string {
	names := m.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
