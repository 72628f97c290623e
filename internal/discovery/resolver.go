package discovery

import (
	"sort"
	"strings"

	"github.com/opsdeck/opsdeck/internal/model"
)

// Resolver replaces schema reference pointers with their registry
// targets. Resolution is memoized per registry name, which also ties
// self-referential schemas into shared cycles instead of recursing
// forever.
type Resolver struct {
	registry map[string]*model.RawSchema
	resolved map[string]*model.ResolvedSchema
}

func NewResolver(registry map[string]*model.RawSchema) *Resolver {
	return &Resolver{
		registry: registry,
		resolved: make(map[string]*model.ResolvedSchema),
	}
}

// ResolveAll resolves every registry entry, in name order.
func (r *Resolver) ResolveAll() map[string]*model.ResolvedSchema {
	names := make([]string, 0, len(r.registry))
	for name := range r.registry {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]*model.ResolvedSchema, len(names))
	for _, name := range names {
		out[name] = r.resolveNamed(name)
	}
	return out
}

// Resolve resolves one schema fragment, descending into properties, items,
// and composition keywords so no reference survives at any depth. A
// reference with no matching registry entry becomes an explicit unresolved
// marker carrying the original pointer.
func (r *Resolver) Resolve(raw *model.RawSchema) *model.ResolvedSchema {
	if raw == nil {
		return nil
	}
	if raw.Ref != "" {
		name := refName(raw.Ref)
		if s := r.resolveNamed(name); s != nil {
			return s
		}
		return &model.ResolvedSchema{Name: name, Unresolved: true, Ref: raw.Ref}
	}
	s := &model.ResolvedSchema{}
	r.fill(s, raw)
	return s
}

func (r *Resolver) resolveNamed(name string) *model.ResolvedSchema {
	if s, ok := r.resolved[name]; ok {
		return s
	}
	raw, ok := r.registry[name]
	if !ok {
		return nil
	}
	// Memoize the node before descending so cycles tie back to it.
	s := &model.ResolvedSchema{Name: name}
	r.resolved[name] = s
	r.fill(s, raw)
	return s
}

func (r *Resolver) fill(s *model.ResolvedSchema, raw *model.RawSchema) {
	s.Type = model.SchemaType(raw.Type)
	s.Format = raw.Format
	s.Description = raw.Description
	s.Enum = raw.Enum
	s.Default = raw.Default
	s.Required = raw.Required

	if raw.Properties != nil {
		s.Properties = make(map[string]*model.ResolvedSchema, len(raw.Properties))
		for name, prop := range raw.Properties {
			s.Properties[name] = r.Resolve(prop)
		}
	}
	s.Items = r.Resolve(raw.Items)
	s.AdditionalProperties = r.Resolve(raw.AdditionalProperties)

	for _, sub := range raw.AllOf {
		s.AllOf = append(s.AllOf, r.Resolve(sub))
	}
	for _, sub := range raw.OneOf {
		s.OneOf = append(s.OneOf, r.Resolve(sub))
	}
	for _, sub := range raw.AnyOf {
		s.AnyOf = append(s.AnyOf, r.Resolve(sub))
	}
}

// refName extracts the registry name from a pointer such as
// "#/components/schemas/User".
func refName(ref string) string {
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}
