package domain

// Classify compares the user-scope entries against the project-scope
// entries and partitions every key into one of three buckets:
//
//   - Inherited: the project value deep-equals the user value, or the key
//     exists only in the user scope (trivially inherited).
//   - Overridden: both scopes define the key with values that are not
//     deep-equal; OriginalValue carries the user-scope value.
//   - ProjectSpecific: the key exists only in the project scope.
//
// The function is total: it performs no I/O and does not fail for any
// well-formed input, including empty lists and nil values. It runs in
// O(n+m) time.
//
// Within each bucket, entries preserve the scan order: project entries are
// visited first, then user entries whose keys the project does not touch.
// Callers needing a specific display order must re-sort.
func Classify(userEntries, projectEntries []ConfigEntry) Classification {
	userIndex := make(map[string]Value, len(userEntries))
	for _, e := range userEntries {
		userIndex[e.Key] = e.Value
	}

	seen := make(map[string]struct{}, len(projectEntries))
	var c Classification

	for _, e := range projectEntries {
		seen[e.Key] = struct{}{}

		userValue, inUser := userIndex[e.Key]
		switch {
		case !inUser:
			c.ProjectSpecific = append(c.ProjectSpecific, ClassifiedEntry{Key: e.Key, Value: e.Value})
		case DeepEqual(userValue, e.Value):
			c.Inherited = append(c.Inherited, ClassifiedEntry{Key: e.Key, Value: e.Value})
		default:
			c.Overridden = append(c.Overridden, ClassifiedEntry{
				Key:           e.Key,
				Value:         e.Value,
				OriginalValue: userValue,
			})
		}
	}

	// Keys the project does not touch stand as-is from the user scope.
	for _, e := range userEntries {
		if _, touched := seen[e.Key]; !touched {
			c.Inherited = append(c.Inherited, ClassifiedEntry{Key: e.Key, Value: e.Value})
		}
	}

	return c
}
