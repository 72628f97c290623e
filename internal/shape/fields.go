package shape

import (
	"regexp"
	"sort"

	"github.com/opsdeck/opsdeck/internal/model"
)

// DefaultSampleSize bounds how many items field detection inspects;
// detection is a function of the sample, not the full dataset.
const DefaultSampleSize = 20

// Role is a canonical field role the console knows how to render.
type Role string

const (
	RoleID          Role = "id"
	RoleDate        Role = "date"
	RoleDescription Role = "description"
	RoleType        Role = "type"
	RoleActor       Role = "actor"
)

// Rule binds a field-name pattern and an optional value-shape predicate
// to a role. A field matches when its name matches and, if a predicate is
// set, at least one sampled value satisfies it.
type Rule struct {
	Role  Role
	Name  *regexp.Regexp
	Value func(any) bool
}

// RuleSet is an ordered rule table. Order matters: the first field (in
// first-seen order) matching any rule for a role wins that role.
type RuleSet []Rule

// DefaultRules returns the stock detection table. Callers may build their
// own table to tune detection without touching the control flow.
func DefaultRules() RuleSet {
	return RuleSet{
		{Role: RoleID, Name: regexp.MustCompile(`^(?i:id|uuid|guid)$|_(?i:id|uuid|guid)$|[a-z0-9](Id|ID|UUID)$`)},
		{Role: RoleDate, Name: regexp.MustCompile(`^(?i:date|time|timestamp|created|updated|modified)$|_(?i:at|on|date|time|timestamp)$|[a-z0-9](At|On|Date|Time|Timestamp)$`), Value: isISOTimestamp},
		{Role: RoleDescription, Name: regexp.MustCompile(`^(?i:description|message|summary|detail|details|text|note|notes|reason|comment|title)$`), Value: isString},
		{Role: RoleType, Name: regexp.MustCompile(`^(?i:type|kind|category|status|state|level|severity)$|_(?i:type|status|kind)$|[a-z0-9](Type|Status|Kind)$`), Value: isString},
		{Role: RoleActor, Name: regexp.MustCompile(`^(?i:user|actor|author|owner|account|customer|username|email)$|_(?i:by|user|actor)$|[a-z0-9](By|User|Actor)$`), Value: isActorValue},
	}
}

var isoTimestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}(:\d{2})?(\.\d+)?(Z|[+-]\d{2}:?\d{2})?)?$`)

func isISOTimestamp(v any) bool {
	s, ok := v.(string)
	return ok && isoTimestampPattern.MatchString(s)
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

// isActorValue accepts a plain string or a nested object exposing a
// name-like property.
func isActorValue(v any) bool {
	switch actor := v.(type) {
	case string:
		return true
	case map[string]any:
		for _, key := range []string{"name", "username", "displayName", "email", "id"} {
			if _, ok := actor[key]; ok {
				return true
			}
		}
	}
	return false
}

func isNumeric(v any) bool {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// Detector infers canonical field roles from a bounded sample of
// record-like items. The zero value is not usable; use NewDetector.
type Detector struct {
	Rules      RuleSet
	SampleSize int
}

func NewDetector() *Detector {
	return &Detector{Rules: DefaultRules(), SampleSize: DefaultSampleSize}
}

// Detect runs the rule table over a sample of items. The optional schema
// hint contributes date and identifier candidates from declared formats
// before the name heuristics run. Same sample, same result.
func (d *Detector) Detect(items []any, hint *model.ResolvedSchema) model.DetectedFields {
	sample := d.sample(items)
	names := fieldNames(sample)

	fields := model.DetectedFields{All: names}
	taken := make(map[string]bool)

	applyHint(hint, names, &fields, taken)

	for _, role := range []Role{RoleID, RoleDate, RoleDescription, RoleType, RoleActor} {
		if roleAssigned(role, fields) {
			continue
		}
		name := d.matchRole(role, names, sample, taken)
		if name == "" && role == RoleID {
			name = uniqueField(names, sample, taken)
		}
		if name == "" {
			continue
		}
		taken[name] = true
		assignRole(role, name, &fields)
	}

	for _, name := range names {
		if name == fields.ID || name == fields.Date {
			continue
		}
		if numericField(name, sample) {
			fields.Metrics = append(fields.Metrics, name)
		}
	}

	return fields
}

func (d *Detector) sample(items []any) []map[string]any {
	limit := d.SampleSize
	if limit <= 0 {
		limit = DefaultSampleSize
	}
	var sample []map[string]any
	for _, item := range items {
		if len(sample) == limit {
			break
		}
		if record, ok := item.(map[string]any); ok {
			sample = append(sample, record)
		}
	}
	return sample
}

// fieldNames returns the union of keys across the sample in first-seen
// order, with each record's keys visited in sorted order so the result is
// independent of map iteration.
func fieldNames(sample []map[string]any) []string {
	var names []string
	seen := make(map[string]bool)
	for _, record := range sample {
		keys := make([]string, 0, len(record))
		for k := range record {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	return names
}

func (d *Detector) matchRole(role Role, names []string, sample []map[string]any, taken map[string]bool) string {
	for _, name := range names {
		if taken[name] {
			continue
		}
		for _, rule := range d.Rules {
			if rule.Role != role || !rule.Name.MatchString(name) {
				continue
			}
			if rule.Value == nil || anyValue(name, sample, rule.Value) {
				return name
			}
		}
	}
	return ""
}

func anyValue(name string, sample []map[string]any, pred func(any) bool) bool {
	for _, record := range sample {
		if v, ok := record[name]; ok && pred(v) {
			return true
		}
	}
	return false
}

// uniqueField is the identifier fallback: the first field whose sampled
// values are scalar, present in every record, and pairwise distinct.
// A single-record sample carries no uniqueness signal.
func uniqueField(names []string, sample []map[string]any, taken map[string]bool) string {
	if len(sample) < 2 {
		return ""
	}
	for _, name := range names {
		if taken[name] {
			continue
		}
		seen := make(map[any]bool, len(sample))
		unique := true
		for _, record := range sample {
			v, ok := record[name]
			if !ok || !scalar(v) || seen[v] {
				unique = false
				break
			}
			seen[v] = true
		}
		if unique {
			return name
		}
	}
	return ""
}

func scalar(v any) bool {
	switch v.(type) {
	case string, bool:
		return true
	}
	return isNumeric(v)
}

// numericField reports whether every present sampled value is numeric,
// with at least one present.
func numericField(name string, sample []map[string]any) bool {
	present := false
	for _, record := range sample {
		v, ok := record[name]
		if !ok || v == nil {
			continue
		}
		if !isNumeric(v) {
			return false
		}
		present = true
	}
	return present
}

// applyHint seeds roles from the response schema's declared item
// properties: date-time formats become the date candidate, uuid formats
// the identifier. Property names are visited in sorted order.
func applyHint(hint *model.ResolvedSchema, names []string, fields *model.DetectedFields, taken map[string]bool) {
	if hint == nil || hint.Items == nil || hint.Items.Properties == nil {
		return
	}
	props := hint.Items.Properties

	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}

	sorted := make([]string, 0, len(props))
	for name := range props {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		if !present[name] || taken[name] {
			continue
		}
		prop := props[name]
		switch {
		case fields.Date == "" && prop.IsDateTime():
			fields.Date = name
			taken[name] = true
		case fields.ID == "" && prop.Type == model.TypeString && prop.Format == "uuid":
			fields.ID = name
			taken[name] = true
		}
	}
}

func roleAssigned(role Role, fields model.DetectedFields) bool {
	switch role {
	case RoleID:
		return fields.ID != ""
	case RoleDate:
		return fields.Date != ""
	case RoleDescription:
		return fields.Description != ""
	case RoleType:
		return fields.Type != ""
	case RoleActor:
		return fields.Actor != ""
	}
	return false
}

func assignRole(role Role, name string, fields *model.DetectedFields) {
	switch role {
	case RoleID:
		fields.ID = name
	case RoleDate:
		fields.Date = name
	case RoleDescription:
		fields.Description = name
	case RoleType:
		fields.Type = name
	case RoleActor:
		fields.Actor = name
	}
}
