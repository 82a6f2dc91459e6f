package catalog

// Merge folds freshly extracted bundles into a previously persisted
// set. Incoming metadata always wins; the downloaded flag is the only
// state carried over from the existing side. Existing bundles whose
// order id no longer appears in the incoming set are appended
// unchanged, so bundles from orders that stopped being re-fetched
// survive. Result ordering: incoming first, then carried-over
// existing, each in original order.
//
// The lookup is keyed by order id alone. Several distinct bundles can
// share an id (direct plus pick-and-mix bundles of one order), in
// which case the last existing entry's flag wins for all of them.
func Merge(existing, incoming []Bundle) []Bundle {
	prior := make(map[string]Bundle, len(existing))
	for _, b := range existing {
		prior[b.ID] = b
	}

	seen := make(map[string]bool, len(incoming))
	merged := make([]Bundle, 0, len(existing)+len(incoming))
	for _, b := range incoming {
		if old, ok := prior[b.ID]; ok {
			b.Downloaded = old.Downloaded
		} else {
			b.Downloaded = false
		}
		seen[b.ID] = true
		merged = append(merged, b)
	}

	for _, b := range existing {
		if !seen[b.ID] {
			merged = append(merged, b)
		}
	}
	return merged
}
