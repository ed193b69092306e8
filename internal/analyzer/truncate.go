package analyzer

// Truncate returns the first max runes of s. max <= 0 (including -1, no
// limit) returns s unchanged.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
