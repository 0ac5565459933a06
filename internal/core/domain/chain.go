package domain

// BuildChain folds an ordered, priority-sorted entry list into an
// InheritanceChain. Entries is the input list verbatim; Resolved is built
// by iterating left to right so that a later entry sharing a key
// overwrites an earlier one's value. Priority ordering must already be
// reflected in input order.
func BuildChain(entries []ConfigEntry) *InheritanceChain {
	resolved := make(map[string]Value, len(entries))
	for _, e := range entries {
		resolved[e.Key] = e.Value
	}
	return &InheritanceChain{
		Entries:  entries,
		Resolved: resolved,
	}
}
