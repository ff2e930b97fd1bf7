package gha

// entry is one key/value pair in an insertion-ordered scalar map (with,
// env, permissions, matrix axes). Order is semantically meaningful: it
// determines output order, which keeps generated files stable and
// diffable across runs.
type entry struct {
	key   string
	value any
}

// setEntry appends or overwrites a key while preserving the position of
// the first occurrence.
func setEntry(entries []entry, key string, value any) []entry {
	for i := range entries {
		if entries[i].key == key {
			entries[i].value = value
			return entries
		}
	}
	return append(entries, entry{key: key, value: value})
}
