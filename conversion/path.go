package conversion

import (
	"strings"
)

// possiblePath is an ordered, contiguous sequence of possibleIntervals,
// scored by the §4.4 lexicographic-by-weighted-sum rule.
type possiblePath struct {
	intervals []possibleInterval
}

// Weights overrides the §4.4 scoring multipliers (R1, R2, R3, R4). The
// zero value is not valid for scoring — use DefaultWeights() or a
// ConversionEngine built with WithWeights.
type Weights struct {
	R1 int `mapstructure:"r1" yaml:"r1"`
	R2 int `mapstructure:"r2" yaml:"r2"`
	R3 int `mapstructure:"r3" yaml:"r3"`
	R4 int `mapstructure:"r4" yaml:"r4"`
}

// DefaultWeights are the multipliers named in §4.4: 1000, 1000, 100, 1.
func DefaultWeights() Weights {
	return Weights{R1: 1000, R2: 1000, R3: 100, R4: 1}
}

// withAppended returns a new path with iv appended, without mutating p's
// backing array — callers may still hold p as a prefix for sibling
// branches (DP's highest[start], the DFS's shared prefix).
func (p possiblePath) withAppended(iv possibleInterval) possiblePath {
	next := make([]possibleInterval, len(p.intervals), len(p.intervals)+1)
	copy(next, p.intervals)
	next = append(next, iv)
	return possiblePath{intervals: next}
}

func (p possiblePath) toIntervals() []Interval {
	if len(p.intervals) == 0 {
		return nil
	}
	out := make([]Interval, len(p.intervals))
	for i, iv := range p.intervals {
		out[i] = iv.toInterval()
	}
	return out
}

// score is the single integer comparator of §4.4:
// score = w.R1*R1 + w.R2*R2 + w.R3*R3 + w.R4*R4.
func (p possiblePath) score(w Weights) int {
	r1 := p.ruleLargestSum()
	score := w.R1 * r1
	score += w.R2 * p.ruleLargestAvgWordLen(r1)
	score += w.R3 * p.ruleSmallestLenVariance()
	score += w.R4 * p.ruleLargestFreqSum()
	return score
}

// ruleLargestSum (R1) is the sum of interval lengths, always n for any
// well-formed cover path. It is kept — and still computed — because it
// is historically observable, not because it discriminates between
// paths of the same input.
func (p possiblePath) ruleLargestSum() int {
	total := 0
	for _, iv := range p.intervals {
		total += iv.length()
	}
	return total
}

// ruleLargestAvgWordLen (R2) prefers fewer, longer phrases. The factor 6
// (=1*2*3) keeps the division exact enough to discriminate in practice
// while staying integer.
func (p possiblePath) ruleLargestAvgWordLen(r1 int) int {
	if len(p.intervals) == 0 {
		return 0
	}
	return 6 * r1 / len(p.intervals)
}

// ruleSmallestLenVariance (R3) breaks ties by preferring even phrase
// lengths: negated sum of pairwise absolute length differences.
func (p possiblePath) ruleSmallestLenVariance() int {
	score := 0
	n := len(p.intervals)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := p.intervals[i].length() - p.intervals[j].length()
			if d < 0 {
				d = -d
			}
			score += d
		}
	}
	return -score
}

// ruleLargestFreqSum (R4) sums dictionary frequency; single-character
// intervals are attenuated by 1/512 so one high-frequency single
// character cannot outrank a multi-character phrase.
func (p possiblePath) ruleLargestFreqSum() int {
	score := 0
	for _, iv := range p.intervals {
		if iv.length() == 1 {
			score += iv.phrase.Freq() / 512
		} else {
			score += iv.phrase.Freq()
		}
	}
	return score
}

// contains implements §4.7's "Q.contains(P)" relation via the reference
// two-pointer walk: big advances monotonically across p's intervals,
// consuming one of other's intervals whenever it fully covers it. If big
// runs out, or the current p interval starts at or after other's current
// interval ends without covering it, p does not contain other.
func (p possiblePath) contains(other possiblePath) bool {
	big := 0
	for sml := 0; sml < len(other.intervals); sml++ {
		for {
			if big < len(p.intervals) && p.intervals[big].start < other.intervals[sml].end {
				if p.intervals[big].contains(other.intervals[sml]) {
					break
				}
			} else {
				return false
			}
			big++
		}
	}
	return true
}

// less orders two paths for ConvertNext's final listing: by score
// descending, then by path-lexicographic order (interval start, then
// end, then phrase text) ascending as the deterministic tie-break named
// in §4.8 and the corresponding Open Question in §9.
func (p possiblePath) less(other possiblePath, w Weights) bool {
	ps, os := p.score(w), other.score(w)
	if ps != os {
		return ps > os
	}
	n := len(p.intervals)
	if len(other.intervals) < n {
		n = len(other.intervals)
	}
	for i := 0; i < n; i++ {
		a, b := p.intervals[i], other.intervals[i]
		if a.start != b.start {
			return a.start < b.start
		}
		if a.end != b.end {
			return a.end < b.end
		}
		if c := strings.Compare(a.phrase.Text(), b.phrase.Text()); c != 0 {
			return c < 0
		}
	}
	return len(p.intervals) < len(other.intervals)
}
