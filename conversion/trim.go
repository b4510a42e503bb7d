package conversion

// trimPaths implements §4.7: a single pass that drops any enumerated path
// that is a strict refinement of another enumerated path. This is the
// known-imperfect historical algorithm — the first containment found
// short-circuits further comparisons for a candidate, so it does not
// compute a fully canonical antichain. It must be reproduced exactly,
// including that ordering sensitivity, for compatibility.
func trimPaths(paths []possiblePath) []possiblePath {
	var kept []possiblePath
	for _, candidate := range paths {
		dropCandidate := false
		keeper := make([]possiblePath, 0, len(kept)+1)
		for _, p := range kept {
			if dropCandidate || p.contains(candidate) {
				dropCandidate = true
				keeper = append(keeper, p)
				continue
			}
			if candidate.contains(p) {
				continue
			}
			keeper = append(keeper, p)
		}
		if !dropCandidate {
			keeper = append(keeper, candidate)
		}
		kept = keeper
	}
	return kept
}
