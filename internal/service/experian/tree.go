package experian

import (
	"strings"

	mxj "github.com/clbanning/mxj/v2"
)

// The parsed document is the generic map produced by mxj: every leaf is a
// string, every element a map[string]interface{}, every repeated element a
// []interface{}. The helpers below are the only way the extractors touch it,
// so the single-vs-array ambiguity is handled in exactly one place.

// ParseDocument converts raw XML text into the generic tree.
func ParseDocument(xmlData []byte) (map[string]interface{}, error) {
	m, err := mxj.NewMapXml(xmlData)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}(m), nil
}

// mapAt walks nested maps along path. Returns nil when any step is absent or
// not a map.
func mapAt(m map[string]interface{}, path ...string) map[string]interface{} {
	current := m
	for _, key := range path {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// stringAt walks nested maps along path and returns the trimmed scalar at the
// end, or "" when absent. Elements carrying attributes serialize their text
// under "#text"; that shape is unwrapped here.
func stringAt(m map[string]interface{}, path ...string) string {
	if len(path) == 0 || m == nil {
		return ""
	}

	parent := m
	if len(path) > 1 {
		parent = mapAt(m, path[:len(path)-1]...)
		if parent == nil {
			return ""
		}
	}

	return scalarString(parent[path[len(path)-1]])
}

func scalarString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case map[string]interface{}:
		if text, ok := s["#text"].(string); ok {
			return strings.TrimSpace(text)
		}
	}
	return ""
}

// hasKey reports whether the final path element exists at all, regardless of
// its value. Callers use this to tell "field absent" from "field empty".
func hasKey(m map[string]interface{}, path ...string) bool {
	if len(path) == 0 || m == nil {
		return false
	}

	parent := m
	if len(path) > 1 {
		parent = mapAt(m, path[:len(path)-1]...)
		if parent == nil {
			return false
		}
	}

	_, ok := parent[path[len(path)-1]]
	return ok
}

// asList lifts a single object to a one-element list and passes a list
// through, filtering non-map entries. Applied at every repeatable-element
// boundary: accounts, addresses, history entries.
func asList(v interface{}) []map[string]interface{} {
	switch items := v.(type) {
	case map[string]interface{}:
		return []map[string]interface{}{items}
	case []interface{}:
		list := make([]map[string]interface{}, 0, len(items))
		for _, item := range items {
			if m, ok := item.(map[string]interface{}); ok {
				list = append(list, m)
			}
		}
		return list
	default:
		return nil
	}
}

// listAt walks nested maps and normalizes the value at the end of path.
func listAt(m map[string]interface{}, path ...string) []map[string]interface{} {
	if len(path) == 0 || m == nil {
		return nil
	}

	parent := m
	if len(path) > 1 {
		parent = mapAt(m, path[:len(path)-1]...)
		if parent == nil {
			return nil
		}
	}

	return asList(parent[path[len(path)-1]])
}
