// Package compare provides a keyed set-difference/join between two lists.
//
// A lookup is built from the source list via a key function (duplicate keys
// resolve last-write-wins in source order), then the target list is scanned
// once: targets whose key exists in the lookup classify as found, the rest
// as not found. Both outputs preserve target traversal order.
package compare

// Result holds the classification of a target list against a source list.
type Result[S, T any] struct {
	// Found contains the matched source item for each target whose key was
	// present in the source lookup, in target traversal order.
	Found []S

	// NotFound contains the target items whose key was absent from the
	// source lookup, in target traversal order.
	NotFound []T
}

// ByKey classifies target against source. For each target item the lookup
// key is targetKey(item); a hit appends the matched source item to Found, a
// miss appends the target item unchanged to NotFound. Key functions are
// assumed total and side-effect-free.
func ByKey[S, T any, K comparable](source []S, target []T, sourceKey func(S) K, targetKey func(T) K) Result[S, T] {
	found, notFound := classify(source, target, sourceKey, targetKey,
		func(s S, _ T) S { return s })
	return Result[S, T]{Found: found, NotFound: notFound}
}

// ByKeyFunc is ByKey with a merge transform: each matched (source, target)
// pair is passed through merge and the result appended to found.
func ByKeyFunc[S, T, R any, K comparable](source []S, target []T, sourceKey func(S) K, targetKey func(T) K, merge func(S, T) R) (found []R, notFound []T) {
	return classify(source, target, sourceKey, targetKey, merge)
}

func classify[S, T, R any, K comparable](source []S, target []T, sourceKey func(S) K, targetKey func(T) K, merge func(S, T) R) ([]R, []T) {
	lookup := make(map[K]S, len(source))
	for _, s := range source {
		// Last write wins for duplicate keys.
		lookup[sourceKey(s)] = s
	}

	var found []R
	var notFound []T
	for _, t := range target {
		if s, ok := lookup[targetKey(t)]; ok {
			found = append(found, merge(s, t))
		} else {
			notFound = append(notFound, t)
		}
	}

	return found, notFound
}
