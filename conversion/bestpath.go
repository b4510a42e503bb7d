package conversion

import (
	"sort"

	"github.com/go-chewing/chewconv/internal/chewlog"
)

// findBestPath implements §4.5: dynamic programming over highest[0..n],
// where highest[k] is the best-scoring path covering [0, k). Intervals
// must be processed in non-decreasing end order so highest[start] is
// finalized before it is read. Ties keep the first-seen path — the
// replace test below uses strict '<', not '<=', per the pinned Open
// Question in §9.
func (e *ConversionEngine) findBestPath(n int, intervals []possibleInterval) possiblePath {
	highest := make([]possiblePath, n+1)

	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].end < intervals[j].end
	})

	for _, iv := range intervals {
		if iv.start > 0 && len(highest[iv.start].intervals) == 0 {
			// No path covers [0, iv.start), so iv cannot extend one.
			continue
		}
		candidate := highest[iv.start].withAppended(iv)
		if highest[iv.end].score(e.weights) < candidate.score(e.weights) {
			highest[iv.end] = candidate
			e.log.WithFields(chewlog.Fields{"start": iv.start, "end": iv.end, "score": candidate.score(e.weights)}).Debug("conversion: replaced highest[end]")
		}
	}

	return highest[n]
}
