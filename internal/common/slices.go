package common

// Duplicates returns the keys that occur more than once, in order of their
// second occurrence.
func Duplicates[S ~[]E, E any](s S, key func(E) string) []string {
	seen := make(map[string]struct{}, len(s))

	var dups []string

	for _, e := range s {
		k := key(e)
		if _, ok := seen[k]; ok {
			dups = append(dups, k)
			continue
		}

		seen[k] = struct{}{}
	}

	return dups
}
