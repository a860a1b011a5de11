package performance

import (
	"encoding/json"
	"strings"
)

// ParseFileURLs normalizes an attachment field that may be a JSON-encoded
// array of URLs or a bare URL string into a list of strings. It never fails:
// anything that does not decode as an array comes back as a single-element
// list, and empty input comes back nil.
func ParseFileURLs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err == nil {
			out := make([]string, 0, len(urls))
			for _, u := range urls {
				if u = strings.TrimSpace(u); u != "" {
					out = append(out, u)
				}
			}
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}

	// A JSON-encoded scalar string still unwraps; anything else is taken as a
	// plain URL.
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return []string{s}
			}
			return nil
		}
	}

	return []string{raw}
}
