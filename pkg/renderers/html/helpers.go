package html

import (
	"sort"
	"strings"
)

func controlID(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	return "bs-" + strings.ReplaceAll(trimmed, ".", "-")
}

func labelID(path string) string {
	id := controlID(path)
	if id == "" {
		return ""
	}
	return id + "-label"
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		value := sanitizeCSSValue(vars[key])
		if value == "" {
			continue
		}
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// sanitizeCSSValue drops characters that could close the declaration or the
// surrounding style element.
func sanitizeCSSValue(value string) string {
	value = strings.TrimSpace(value)
	if strings.ContainsAny(value, ";{}<>") {
		return ""
	}
	return value
}
