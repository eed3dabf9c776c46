package domain

// union merges lists keeping the first occurrence of every entry, so built-in
// defaults keep their position and manifest additions follow.
func union(lists ...[]string) []string {
	seen := make(map[string]struct{})

	var merged []string

	for _, list := range lists {
		for _, item := range list {
			if _, ok := seen[item]; ok {
				continue
			}

			seen[item] = struct{}{}
			merged = append(merged, item)
		}
	}

	return merged
}
