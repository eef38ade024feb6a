package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// decodeCityList converts a stored city list into plain strings. It accepts
// a JSON array of strings, SQL/JSON null, and the legacy form where the
// array was written as a JSON-encoded string. A legacy string that is not an
// array is read as a comma-separated list. Blank and non-string entries are
// dropped.
func decodeCityList(raw []byte) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '[':
		var items []any
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decoding city list: %w", err)
		}
		out := make([]string, 0, len(items))
		for _, it := range items {
			if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out, nil
	case '"':
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("decoding legacy city list: %w", err)
		}
		inner = strings.TrimSpace(inner)
		if strings.HasPrefix(inner, "[") {
			return decodeCityList([]byte(inner))
		}
		return splitCities(inner), nil
	default:
		return nil, fmt.Errorf("decoding city list: unexpected JSON value %q", truncate(raw, 32))
	}
}

// encodeCityList renders a city list as a JSON array. Nil encodes as [].
func encodeCityList(cities []string) []byte {
	clean := make([]string, 0, len(cities))
	for _, c := range cities {
		if c = strings.TrimSpace(c); c != "" {
			clean = append(clean, c)
		}
	}
	b, _ := json.Marshal(clean) //nolint:errchkjson // []string always marshals
	return b
}

func splitCities(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
