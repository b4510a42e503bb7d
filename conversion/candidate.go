package conversion

// possibleInterval is the internal counterpart of Interval: it carries a
// shared pointer to the winning Phrase record rather than a copy, so the
// same candidate can be referenced from many PossiblePaths cheaply.
type possibleInterval struct {
	start  int
	end    int
	phrase *Phrase
}

func (pi possibleInterval) length() int {
	return pi.end - pi.start
}

// contains reports whether pi is a coarser segmentation that fully
// covers other — pi.start <= other.start && pi.end >= other.end.
func (pi possibleInterval) contains(other possibleInterval) bool {
	return pi.start <= other.start && pi.end >= other.end
}

func (pi possibleInterval) toInterval() Interval {
	return Interval{Start: pi.start, End: pi.end, Phrase: pi.phrase.Text()}
}

// findBestPhrase implements §4.2: at most one phrase for the syllable
// span [start, start+len(syllables)), honoring breaks and selections.
func (e *ConversionEngine) findBestPhrase(start int, syllables []Syllable, selections []Interval, breaks []Break) (Phrase, bool) {
	end := start + len(syllables)
	for _, b := range breaks {
		if int(b) > start && int(b) < end {
			return Phrase{}, false
		}
	}

	var best Phrase
	found := false
candidates:
	for _, candidate := range e.dict.LookupPhrase(syllables) {
		for _, sel := range selections {
			if start <= sel.Start && end >= sel.End {
				offset := sel.Start - start
				length := sel.End - sel.Start
				runes := []rune(candidate.Text())
				if offset < 0 || offset+length > len(runes) {
					continue candidates
				}
				substring := string(runes[offset : offset+length])
				if substring != sel.Phrase {
					continue candidates
				}
			}
		}
		if !found || candidate.Freq() > best.Freq() {
			best = candidate
			found = true
		}
	}
	return best, found
}

// findIntervals implements §4.3: the candidate grid, at most n(n+1)/2
// entries, one best phrase per sub-range.
func (e *ConversionEngine) findIntervals(seq *ChineseSequence) []possibleInterval {
	n := len(seq.Syllables)
	intervals := make([]possibleInterval, 0, n*(n+1)/2)
	for start := 0; start < n; start++ {
		for end := start + 1; end <= n; end++ {
			phrase, ok := e.findBestPhrase(start, seq.Syllables[start:end], seq.Selections, seq.Breaks)
			if !ok {
				continue
			}
			p := phrase
			intervals = append(intervals, possibleInterval{start: start, end: end, phrase: &p})
		}
	}
	return intervals
}
