package model

import (
	"strings"
	"time"
)

// ParsedSpec is the immutable product of discovery: the resource forest,
// the flat operation list, and the fully resolved schema registry.
// Re-ingestion produces a fresh value; a ParsedSpec is never mutated and is
// safe to share across concurrent readers.
type ParsedSpec struct {
	Product     string
	AdminPrefix string
	Info        Info
	Resources   []*Resource
	Operations  []Operation
	Schemas     map[string]*ResolvedSchema
	ParsedAt    time.Time
}

// Resource is one node of the forest. Key is the dot-join of the ancestor
// path segments followed by PathSegment; ParentKey is Key with its last
// dotted component removed. Children are ordered lexicographically by key.
type Resource struct {
	Key              string
	Name             string
	ParentKey        string
	PathSegment      string
	RequiresParentID bool
	Operations       []Operation
	Children         []*Resource
}

// OperationCount returns the number of discovered operations.
func (s *ParsedSpec) OperationCount() int {
	return len(s.Operations)
}

// ResourceByKey walks the forest for the resource with the given key.
// Returns nil if the key names no resource.
func (s *ParsedSpec) ResourceByKey(key string) *Resource {
	for _, root := range s.Resources {
		if r := root.find(key); r != nil {
			return r
		}
	}
	return nil
}

func (r *Resource) find(key string) *Resource {
	if r.Key == key {
		return r
	}
	if !strings.HasPrefix(key, r.Key+".") {
		return nil
	}
	for _, c := range r.Children {
		if found := c.find(key); found != nil {
			return found
		}
	}
	return nil
}

// OperationsFor returns the operations attached directly to a resource key.
func (s *ParsedSpec) OperationsFor(key string) []Operation {
	var result []Operation
	for _, op := range s.Operations {
		if op.ResourceKey == key {
			result = append(result, op)
		}
	}
	return result
}

// Search returns operations whose path, summary, description, or tags
// contain the query, case-insensitively.
func (s *ParsedSpec) Search(query string) []Operation {
	query = strings.ToLower(query)
	var results []Operation
	for _, op := range s.Operations {
		if operationMatches(query, op) {
			results = append(results, op)
		}
	}
	return results
}

func operationMatches(query string, op Operation) bool {
	if strings.Contains(strings.ToLower(op.Path), query) {
		return true
	}
	if strings.Contains(strings.ToLower(op.Summary), query) {
		return true
	}
	if strings.Contains(strings.ToLower(op.Description), query) {
		return true
	}
	for _, tag := range op.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
