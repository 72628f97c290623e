package discovery

import (
	"sort"
	"strings"

	"github.com/opsdeck/opsdeck/internal/model"
	"github.com/opsdeck/opsdeck/internal/naming"
)

// BuildTree assembles the flat operation list into a resource forest.
// Every dotted ancestor of an operation's resource key is synthesized so
// intermediate resources exist even without direct operations; sibling
// lists are ordered lexicographically by full key.
func BuildTree(ops []model.Operation) []*model.Resource {
	keys := make(map[string]bool)
	for _, op := range ops {
		key := op.ResourceKey
		keys[key] = true
		for {
			idx := strings.LastIndex(key, ".")
			if idx < 0 {
				break
			}
			key = key[:idx]
			keys[key] = true
		}
	}

	nodes := make(map[string]*model.Resource, len(keys))
	for key := range keys {
		segment := key
		parent := ""
		if idx := strings.LastIndex(key, "."); idx >= 0 {
			segment = key[idx+1:]
			parent = key[:idx]
		}
		nodes[key] = &model.Resource{
			Key:              key,
			Name:             naming.Humanize(segment),
			ParentKey:        parent,
			PathSegment:      segment,
			RequiresParentID: requiresParentID(key, ops),
		}
	}

	for _, op := range ops {
		node := nodes[op.ResourceKey]
		node.Operations = append(node.Operations, op)
	}

	var roots []*model.Resource
	for _, node := range nodes {
		if node.ParentKey == "" {
			roots = append(roots, node)
			continue
		}
		parent := nodes[node.ParentKey]
		parent.Children = append(parent.Children, node)
	}

	sortResources(roots)
	return roots
}

// requiresParentID reports whether any operation on the key or one of its
// descendants places a parameter segment before the key's own path
// segment. The key's own segment is its depth-th literal, so a parameter
// seen before that many literals precedes it.
func requiresParentID(key string, ops []model.Operation) bool {
	depth := strings.Count(key, ".") + 1
	for _, op := range ops {
		if op.ResourceKey != key && !strings.HasPrefix(op.ResourceKey, key+".") {
			continue
		}
		literals := 0
		for _, seg := range segments(op.Path) {
			if isParam(seg) {
				if literals < depth {
					return true
				}
			} else {
				literals++
			}
		}
	}
	return false
}

func sortResources(nodes []*model.Resource) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Key < nodes[j].Key })
	for _, n := range nodes {
		sortResources(n.Children)
	}
}
