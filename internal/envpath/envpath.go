// Package envpath expands %NAME% environment references the way Windows does.
package envpath

import "strings"

// LookupFunc resolves a variable name. ok is false for unknown variables.
type LookupFunc func(name string) (value string, ok bool)

// ExpandWith expands %NAME% references in s using lookup.
// Unknown references and a lone or doubled '%' are left as written.
func ExpandWith(s string, lookup LookupFunc) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for {
		start := strings.IndexByte(s, '%')
		if start < 0 {
			b.WriteString(s)
			break
		}

		end := strings.IndexByte(s[start+1:], '%')
		if end < 0 {
			b.WriteString(s)
			break
		}

		end += start + 1
		name := s[start+1 : end]

		b.WriteString(s[:start])

		if value, ok := lookupName(name, lookup); ok {
			b.WriteString(value)
			s = s[end+1:]
			continue
		}

		// Keep "%NAME" and rescan from the closing '%', which may open the next reference.
		b.WriteString(s[start:end])
		s = s[end:]
	}

	return b.String()
}

func lookupName(name string, lookup LookupFunc) (string, bool) {
	if name == "" || strings.ContainsAny(name, "\r\n") {
		return "", false
	}

	return lookup(name)
}
