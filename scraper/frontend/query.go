package frontend

import (
	"fmt"
	"sort"
	"strings"
)

// BuildQuery serializes the filter options into the query-string convention
// the sites expect: a fixed sort-and-page prefix, list values joined with
// %2C and quoted as one token, scalar strings quoted, numbers bare. Keys are
// emitted in sorted order so the result is deterministic.
func BuildQuery(params map[string]any) string {
	parts := []string{`ordenacao="menor-valor"`, `pagina=1`}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := params[k].(type) {
		case []string:
			parts = append(parts, fmt.Sprintf(`%s="%s"`, k, strings.Join(v, "%2C")))
		case string:
			parts = append(parts, fmt.Sprintf(`%s="%s"`, k, v))
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}

	return strings.Join(parts, "&")
}
