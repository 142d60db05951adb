// Package strings provides string manipulation utilities.
package strings

// FirstDuplicate returns the first value that appears more than once in
// values, comparing exactly. Order of the scan follows the slice.
//
// Example:
//
//	FirstDuplicate([]string{"egg", "flour", "egg"})
//	// Returns: "egg", true
func FirstDuplicate(values []string) (string, bool) {
	if len(values) < 2 {
		return "", false
	}

	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	return "", false
}
