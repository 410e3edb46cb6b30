package gateway

import (
	"sort"
	"strings"
)

// cacheKey builds the canonical cache key for one logical call:
// the operation name followed by the non-empty parameters in stable
// sorted order, so equivalent parameter sets always collide.
func cacheKey(operation string, params map[string]string) string {
	if len(params) == 0 {
		return operation
	}
	names := make([]string, 0, len(params))
	for name, value := range params {
		if strings.TrimSpace(value) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	builder.WriteString(operation)
	for _, name := range names {
		builder.WriteByte('|')
		builder.WriteString(name)
		builder.WriteByte('=')
		builder.WriteString(params[name])
	}
	return builder.String()
}
