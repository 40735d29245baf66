package api

import (
	"net/url"
	"sort"
	"strings"
)

// DecodeBracketForm expands form keys such as
// protein_settings[activity_level][sedentary][goal][m_maintain_lbs] into
// nested maps. The last value of a repeated key wins; keys ending in []
// keep every value as a list.
func DecodeBracketForm(values url.Values) map[string]any {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any)
	for _, key := range keys {
		vals := values[key]
		if len(vals) == 0 {
			continue
		}
		path, list := splitKey(key)
		if len(path) == 0 || path[0] == "" {
			continue
		}

		var v any = vals[len(vals)-1]
		if list {
			items := make([]any, len(vals))
			for i, s := range vals {
				items[i] = s
			}
			v = items
		}
		setPath(out, path, v)
	}
	return out
}

func splitKey(key string) (path []string, list bool) {
	i := strings.IndexByte(key, '[')
	if i < 0 {
		return []string{key}, false
	}

	path = append(path, key[:i])
	rest := key[i:]
	for len(rest) > 0 && rest[0] == '[' {
		j := strings.IndexByte(rest, ']')
		if j < 0 {
			break
		}
		seg := rest[1:j]
		rest = rest[j+1:]
		if seg == "" {
			list = true
			break
		}
		path = append(path, seg)
	}
	return path, list
}

func setPath(m map[string]any, path []string, v any) {
	for _, p := range path[:len(path)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[p] = next
		}
		m = next
	}
	m[path[len(path)-1]] = v
}
