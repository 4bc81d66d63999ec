package service

import "strings"

// cleanCompletion quita BOM y espacios del texto devuelto por el LLM.
func cleanCompletion(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "\uFEFF")
	return strings.TrimSpace(s)
}
