package domain

// DeepEqual reports whether two JSON values are recursively structurally
// identical: same type, same primitive value, element-wise equal arrays in
// order, and objects with the same key set and equal values per key. There
// is no coercion: "1" is not 1, and nil only equals nil. Inputs originate
// from JSON parsing and are therefore acyclic.
func DeepEqual(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !DeepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bval, present := bv[k]
			if !present || !DeepEqual(v, bval) {
				return false
			}
		}
		return true
	default:
		// Not a JSON-decoded value. Equality is undefined, so be strict.
		return false
	}
}
