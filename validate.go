package slugkit

// IsValid reports whether s has the canonical slug shape: non-empty runs of
// lowercase ASCII letters and digits joined by single hyphens, with no
// leading or trailing hyphen. Useful for validating inbound route parameters
// before a lookup. Slugs built with a custom separator or preserved case do
// not pass.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	prev := byte('-')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '-':
			if prev == '-' {
				return false
			}
		default:
			return false
		}
		prev = c
	}
	return prev != '-'
}
