package coderef

import (
	"reflect"
	"sort"

	"github.com/jgrey4296/dejavu/internal/compose"
	"github.com/jgrey4296/dejavu/internal/plugins"
	"github.com/jgrey4296/dejavu/internal/registry"
)

// MinimalMixins resolves the mixin list and reduces it: mixins are
// considered most-derived first (longest ancestor chain), and any mixin
// whose entire ancestor set is already covered by previously kept mixins is
// dropped as redundant. The kept mixins are returned in reference form.
func (r *Ref) MinimalMixins(reg *registry.Registry) ([]*Ref, error) {
	type candidate struct {
		ref       *Ref
		ancestors []reflect.Type
	}

	candidates := make([]candidate, 0, len(r.mixins))
	for _, mixin := range r.mixins {
		v, err := mixin.Resolve(reg)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{ref: mixin, ancestors: compose.Ancestors(v)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].ancestors) > len(candidates[j].ancestors)
	})

	covered := make(map[reflect.Type]struct{})
	var minimal []*Ref
	for _, c := range candidates {
		if len(c.ancestors) > 0 && allCovered(c.ancestors, covered) {
			continue
		}
		for _, t := range c.ancestors {
			covered[t] = struct{}{}
		}
		// The candidate already carries its reference form, which keeps
		// registry module names intact for later alias lookups.
		minimal = append(minimal, c.ref)
	}
	return minimal, nil
}

// ToAliases maps the reference back to its short form: the base name is
// substituted with an existing alias from the group when one matches the
// canonical string, and, outside the mixins group itself, the minimal
// mixin set is aliased the same way against the fixed mixins group.
func (r *Ref) ToAliases(group string, table plugins.Table, reg *registry.Registry) (string, []string, error) {
	base := r.String()
	if rec, ok := table.FindByValue(group, base); ok {
		base = rec.Name
	}

	var mixinAliases []string
	if group != plugins.MixinGroup {
		minimal, err := r.MinimalMixins(reg)
		if err != nil {
			return "", nil, err
		}
		for _, mixin := range minimal {
			alias, _, err := mixin.ToAliases(plugins.MixinGroup, table, reg)
			if err != nil {
				return "", nil, err
			}
			mixinAliases = append(mixinAliases, alias)
		}
	}
	return base, mixinAliases, nil
}

func allCovered(ancestors []reflect.Type, covered map[reflect.Type]struct{}) bool {
	for _, t := range ancestors {
		if _, ok := covered[t]; !ok {
			return false
		}
	}
	return true
}
