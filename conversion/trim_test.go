package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkPath(spans ...[3]int) possiblePath {
	// spans: {start, end, freq}; phrase text is irrelevant to trimming.
	var intervals []possibleInterval
	for _, s := range spans {
		p := NewPhrase("x", s[2])
		intervals = append(intervals, possibleInterval{start: s[0], end: s[1], phrase: &p})
	}
	return possiblePath{intervals: intervals}
}

func TestTrimPathsDropsStrictRefinements(t *testing.T) {
	coarse := mkPath([3]int{0, 2, 0}, [3]int{2, 4, 0})
	fine := mkPath([3]int{0, 2, 0}, [3]int{2, 3, 0}, [3]int{3, 4, 0})

	kept := trimPaths([]possiblePath{coarse, fine})
	assert.Len(t, kept, 1)
	assert.Equal(t, coarse.intervals, kept[0].intervals)
}

func TestTrimPathsKeepsIncomparablePaths(t *testing.T) {
	a := mkPath([3]int{0, 2, 0}, [3]int{2, 4, 0})
	b := mkPath([3]int{0, 1, 0}, [3]int{1, 4, 0})

	kept := trimPaths([]possiblePath{a, b})
	assert.Len(t, kept, 2)
}

func TestTrimPathsIsOrderSensitive(t *testing.T) {
	// The first containment short-circuits further comparisons for a
	// candidate. For the three nested paths below both input orders leave
	// only the coarsest; for two paths with identical spans (each contains
	// the other) the input order decides which one is kept. This pins
	// that behavior rather than hiding it behind a "fixed" antichain
	// computation.
	coarsest := mkPath([3]int{0, 4, 0})
	mid := mkPath([3]int{0, 2, 0}, [3]int{2, 4, 0})
	finest := mkPath([3]int{0, 1, 0}, [3]int{1, 2, 0}, [3]int{2, 3, 0}, [3]int{3, 4, 0})

	keptCoarseFirst := trimPaths([]possiblePath{coarsest, mid, finest})
	assert.Len(t, keptCoarseFirst, 1)

	keptFineFirst := trimPaths([]possiblePath{finest, mid, coarsest})
	// finest is kept first (nothing to compare against yet); mid
	// contains finest so it replaces it; coarsest in turn contains mid
	// and replaces it — a single survivor once the coarsest path has
	// been seen, matching the single-pass rule.
	assert.Len(t, keptFineFirst, 1)
	assert.Equal(t, coarsest.intervals, keptFineFirst[0].intervals)

	first := mkPath([3]int{0, 2, 1}, [3]int{2, 4, 1})
	second := mkPath([3]int{0, 2, 2}, [3]int{2, 4, 2})
	keptFirstSecond := trimPaths([]possiblePath{first, second})
	assert.Len(t, keptFirstSecond, 1)
	assert.Equal(t, first.intervals, keptFirstSecond[0].intervals)
	keptSecondFirst := trimPaths([]possiblePath{second, first})
	assert.Len(t, keptSecondFirst, 1)
	assert.Equal(t, second.intervals, keptSecondFirst[0].intervals)
}
