package loader

import (
	"github.com/opsdeck/opsdeck/internal/model"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
)

type transformer struct {
	componentSchemas map[*base.Schema]string
}

// Transform converts a loaded OpenAPI document into the neutral document
// model the discovery engine consumes. Inline schemas that are really
// component schemas become references again so the registry stays the
// single source for shared shapes.
func Transform(result *Result) (*model.Document, error) {
	doc := result.Document.Model

	t := &transformer{
		componentSchemas: make(map[*base.Schema]string),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			t.componentSchemas[schemaProxy.Schema()] = name
		}
	}

	out := &model.Document{
		Version: result.Version,
		Info:    transformInfo(doc.Info),
		Paths:   make(map[string]model.PathItem),
		Schemas: make(map[string]*model.RawSchema),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			out.Schemas[name] = t.inlineSchema(schemaProxy.Schema())
		}
	}

	if doc.Paths != nil {
		for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
			out.Paths[pathStr] = t.transformPathItem(pathItem)
		}
	}

	return out, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

func (t *transformer) transformPathItem(pathItem *v3.PathItem) model.PathItem {
	// Use a slice for deterministic ordering
	methods := []struct {
		name string
		op   *v3.Operation
	}{
		{"GET", pathItem.Get},
		{"POST", pathItem.Post},
		{"PUT", pathItem.Put},
		{"DELETE", pathItem.Delete},
		{"PATCH", pathItem.Patch},
		{"HEAD", pathItem.Head},
		{"OPTIONS", pathItem.Options},
		{"TRACE", pathItem.Trace},
	}

	item := make(model.PathItem)
	for _, m := range methods {
		if m.op == nil {
			continue
		}
		item[m.name] = t.transformOperation(m.op)
	}
	return item
}

func (t *transformer) transformOperation(op *v3.Operation) model.RawOperation {
	operation := model.RawOperation{
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
	}

	for _, p := range op.Parameters {
		operation.Parameters = append(operation.Parameters, model.RawParameter{
			Name:     p.Name,
			In:       p.In,
			Required: boolPtr(p.Required),
		})
	}

	if op.RequestBody != nil && op.RequestBody.Content != nil {
		operation.RequestBody = make(map[string]*model.RawSchema)
		for mediaType, content := range op.RequestBody.Content.FromOldest() {
			operation.RequestBody[mediaType] = t.schema(content.Schema)
		}
	}

	if op.Responses != nil && op.Responses.Codes != nil {
		operation.Responses = make(map[string]map[string]*model.RawSchema)
		for code, resp := range op.Responses.Codes.FromOldest() {
			if resp.Content == nil {
				operation.Responses[code] = nil
				continue
			}
			content := make(map[string]*model.RawSchema)
			for mediaType, mt := range resp.Content.FromOldest() {
				content[mediaType] = t.schema(mt.Schema)
			}
			operation.Responses[code] = content
		}
	}

	return operation
}

// schema renders a schema proxy as either a reference or an inline
// fragment. Component schemas reached through inlining are turned back
// into references, which also breaks recursion through cyclic components.
func (t *transformer) schema(proxy *base.SchemaProxy) *model.RawSchema {
	if proxy == nil {
		return nil
	}

	if ref := proxy.GetReference(); ref != "" {
		return &model.RawSchema{Ref: ref}
	}
	if name, ok := t.componentSchemas[proxy.Schema()]; ok {
		return &model.RawSchema{Ref: "#/components/schemas/" + name}
	}
	return t.inlineSchema(proxy.Schema())
}

func (t *transformer) inlineSchema(s *base.Schema) *model.RawSchema {
	if s == nil {
		return nil
	}

	raw := &model.RawSchema{
		Format:      s.Format,
		Description: s.Description,
		Default:     s.Default,
		Required:    s.Required,
	}

	if len(s.Type) > 0 {
		raw.Type = s.Type[0]
	}

	for _, e := range s.Enum {
		raw.Enum = append(raw.Enum, e.Value)
	}

	if s.Properties != nil {
		raw.Properties = make(map[string]*model.RawSchema)
		for propName, propProxy := range s.Properties.FromOldest() {
			raw.Properties[propName] = t.schema(propProxy)
		}
	}

	if s.Items != nil && s.Items.A != nil {
		raw.Items = t.schema(s.Items.A)
	}

	if s.AdditionalProperties != nil && s.AdditionalProperties.A != nil {
		raw.AdditionalProperties = t.schema(s.AdditionalProperties.A)
	}

	for _, proxy := range s.AllOf {
		raw.AllOf = append(raw.AllOf, t.schema(proxy))
	}
	for _, proxy := range s.OneOf {
		raw.OneOf = append(raw.OneOf, t.schema(proxy))
	}
	for _, proxy := range s.AnyOf {
		raw.AnyOf = append(raw.AnyOf, t.schema(proxy))
	}

	return raw
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
