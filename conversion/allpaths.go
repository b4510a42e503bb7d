package conversion

// graphKey indexes the per-call memoization table described in §4.6 and
// §9: a mapping from (start,end) to an optional best phrase, built
// lazily during the DFS so repeated sub-ranges are only looked up once.
type graphKey struct {
	start, end int
}

type graphEntry struct {
	phrase Phrase
	found  bool
}

// findAllPaths implements §4.6: depth-first enumeration of every
// well-formed cover path from start to target, memoizing findBestPhrase
// results in graph across the whole call.
func (e *ConversionEngine) findAllPaths(graph map[graphKey]graphEntry, seq *ChineseSequence, start, target int, prefix possiblePath) []possiblePath {
	if start == target {
		return []possiblePath{prefix}
	}

	var result []possiblePath
	for end := start; end <= target; end++ {
		key := graphKey{start, end}
		entry, ok := graph[key]
		if !ok {
			phrase, found := e.findBestPhrase(start, seq.Syllables[start:end], seq.Selections, seq.Breaks)
			entry = graphEntry{phrase: phrase, found: found}
			graph[key] = entry
		}
		if !entry.found {
			continue
		}
		p := entry.phrase
		next := prefix.withAppended(possibleInterval{start: start, end: end, phrase: &p})
		result = append(result, e.findAllPaths(graph, seq, end, target, next)...)
	}
	return result
}
