package rastercodec

import "strings"

// NormalizeSuffix strips a single leading period and lowercases the
// suffix. This rule is part of the public contract: "DDS", ".dds" and
// "dds" all name the same format.
func NormalizeSuffix(suffix string) string {
	return strings.ToLower(strings.TrimPrefix(suffix, "."))
}

// MatchesSuffix reports whether the declared suffix names one of the
// known suffixes. Comparison is case-insensitive and ignores a leading
// period on either side. An empty known set matches any suffix, which
// defers format acceptance entirely to content probing.
func MatchesSuffix(suffix string, known []string) bool {
	if len(known) == 0 {
		return true
	}

	s := NormalizeSuffix(suffix)
	for _, k := range known {
		if s == NormalizeSuffix(k) {
			return true
		}
	}

	return false
}

// MatchesMIME reports whether the declared MIME type names one of the
// known types, case-insensitively. An empty known set matches anything.
func MatchesMIME(mimeType string, known []string) bool {
	if len(known) == 0 {
		return true
	}

	m := strings.ToLower(strings.TrimSpace(mimeType))
	for _, k := range known {
		if m == strings.ToLower(strings.TrimSpace(k)) {
			return true
		}
	}

	return false
}
