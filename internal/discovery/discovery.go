// Package discovery ingests a product's API description and derives the
// navigable model the console renders: which resources exist, how they
// nest, and which operations each one supports. Everything here is a pure
// transformation over the neutral document model; callers own caching and
// lifecycle.
package discovery

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/opsdeck/opsdeck/internal/model"
)

// Discover runs the full ingestion pipeline and produces an immutable
// ParsedSpec. Passing a nil document is a caller bug and fails
// immediately; malformed addresses and out-of-prefix paths degrade per
// the filter contracts instead.
func Discover(doc *model.Document, baseAddress, product string) (*model.ParsedSpec, error) {
	if doc == nil {
		return nil, errors.New("discover: nil document")
	}

	prefix := DetectAdminPrefix(baseAddress)
	admitted := FilterPaths(doc.Paths, prefix)
	resolver := NewResolver(doc.Schemas)

	paths := make([]string, 0, len(admitted))
	for p := range admitted {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var ops []model.Operation
	for _, p := range paths {
		item := admitted[p]
		for _, method := range model.Methods {
			raw, ok := item[string(method)]
			if !ok {
				continue
			}
			ops = append(ops, buildOperation(method, p, raw, resolver))
		}
	}

	spec := &model.ParsedSpec{
		Product:     product,
		AdminPrefix: prefix,
		Info:        doc.Info,
		Operations:  ops,
		Schemas:     resolver.ResolveAll(),
		ParsedAt:    time.Now().UTC(),
	}
	spec.Resources = BuildTree(ops)
	return spec, nil
}

func buildOperation(method model.Method, path string, raw model.RawOperation, resolver *Resolver) model.Operation {
	return model.Operation{
		ID:             operationID(method, path),
		ResourceKey:    ResourceKey(path),
		Type:           ClassifyOperation(method, path),
		Method:         method,
		Path:           path,
		PathParams:     PathParams(path),
		RequestSchema:  resolver.Resolve(requestSchema(raw)),
		ResponseSchema: resolver.Resolve(responseSchema(raw)),
		Summary:        raw.Summary,
		Description:    raw.Description,
		Tags:           raw.Tags,
	}
}

func operationID(method model.Method, path string) string {
	return strings.ToLower(string(method)) + " " + path
}

// requestSchema picks the JSON request body schema, falling back to the
// lexicographically first content type for determinism.
func requestSchema(raw model.RawOperation) *model.RawSchema {
	return contentSchema(raw.RequestBody)
}

// responseSchema picks the lowest success status code's content schema,
// or the first declared code when no 2xx response exists.
func responseSchema(raw model.RawOperation) *model.RawSchema {
	if len(raw.Responses) == 0 {
		return nil
	}
	codes := make([]string, 0, len(raw.Responses))
	for code := range raw.Responses {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		if strings.HasPrefix(code, "2") {
			return contentSchema(raw.Responses[code])
		}
	}
	return contentSchema(raw.Responses[codes[0]])
}

func contentSchema(content map[string]*model.RawSchema) *model.RawSchema {
	if len(content) == 0 {
		return nil
	}
	if s, ok := content["application/json"]; ok {
		return s
	}
	types := make([]string, 0, len(content))
	for ct := range content {
		types = append(types, ct)
	}
	sort.Strings(types)
	return content[types[0]]
}
