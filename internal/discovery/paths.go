package discovery

import "strings"

// segments splits a path template into its non-empty segments.
func segments(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// isParam reports whether a segment is a brace-delimited parameter.
// Malformed braces make the segment a literal, never an error.
func isParam(seg string) bool {
	return len(seg) > 2 && strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}

// PathParams returns the parameter names of a path template, read left to
// right from brace-delimited segments.
func PathParams(path string) []string {
	var params []string
	for _, seg := range segments(path) {
		if isParam(seg) {
			params = append(params, seg[1:len(seg)-1])
		}
	}
	return params
}

// ResourceKey derives the hierarchical dotted key for a path template:
// literal segments joined with dots, parameter segments dropped. A path
// made of parameters alone keys to "root".
func ResourceKey(path string) string {
	var literals []string
	for _, seg := range segments(path) {
		if !isParam(seg) {
			literals = append(literals, seg)
		}
	}
	if len(literals) == 0 {
		return "root"
	}
	return strings.Join(literals, ".")
}
