package suggest

import "github.com/setforge/setforge/internal/set"

// Ingest feeds externally supplied candidates into the store. Non-string
// elements are silently discarded; deduplication is left to the store. The
// return value is the number of adds that changed membership.
func Ingest(store *set.Store, candidates []any) (added int) {
	for _, candidate := range candidates {
		s, ok := candidate.(string)
		if !ok {
			continue
		}
		if store.Add(s) {
			added++
		}
	}
	return added
}

// CleanCandidates filters candidates down to the usable suggestions: strings
// only, normalized, empties dropped, duplicates removed. Used to decide
// whether the provider returned anything usable at all.
func CleanCandidates(candidates []any) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		s, ok := candidate.(string)
		if !ok {
			continue
		}
		v := set.Normalize(s)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
