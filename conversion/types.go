// Package conversion implements the phrase-segmentation conversion engine
// of a Zhuyin (Bopomofo) input method: given a sequence of phonetic
// syllables, it chooses the best dictionary-phrase segmentation and can
// enumerate alternatives for cycling.
package conversion

import (
	"fmt"

	"github.com/pkg/errors"
)

// Syllable is an opaque phonetic token (initial+medial+final+tone). The
// engine only needs it to be comparable and usable as a map key; it never
// inspects the encoding.
type Syllable string

// Break is a position that forbids any candidate phrase from spanning
// across it. 0 < Break < len(syllables).
type Break int

// Interval is a contiguous cover segment returned by Convert/ConvertNext,
// and also the type used to express a committed Selection on the input.
// Start and End are half-open syllable positions; Phrase has exactly
// End-Start characters.
type Interval struct {
	Start  int
	End    int
	Phrase string
}

func (iv Interval) String() string {
	return fmt.Sprintf("(%d,%d,%q)", iv.Start, iv.End, iv.Phrase)
}

// length returns the number of syllables the interval spans.
func (iv Interval) length() int {
	return iv.End - iv.Start
}

// ChineseSequence is the input to a single conversion. Selections must be
// pairwise non-overlapping and each selection's Phrase must have exactly
// End-Start characters; Breaks must satisfy 0 < p < len(Syllables).
// Violating these is a caller bug — see ChineseSequence.Validate.
type ChineseSequence struct {
	Syllables  []Syllable
	Selections []Interval
	Breaks     []Break
}

// Validate reports whether seq's constraints are internally consistent:
// selections pairwise non-overlapping, each selection's phrase length
// equal to its span, and breaks within (0, n). It does not check that a
// cover actually exists — that is a property of the dictionary, not the
// sequence.
func (seq *ChineseSequence) Validate() error {
	n := len(seq.Syllables)
	for _, b := range seq.Breaks {
		if b <= 0 || int(b) >= n {
			return errors.Errorf("conversion: break %d out of range (0, %d)", b, n)
		}
	}
	for i, s := range seq.Selections {
		if s.Start < 0 || s.End > n || s.Start >= s.End {
			return errors.Errorf("conversion: selection %d has invalid span [%d,%d)", i, s.Start, s.End)
		}
		if got := len([]rune(s.Phrase)); got != s.length() {
			return errors.Errorf("conversion: selection %d phrase %q has %d characters, want %d", i, s.Phrase, got, s.length())
		}
		for j, other := range seq.Selections {
			if i == j {
				continue
			}
			if s.Start < other.End && other.Start < s.End {
				return errors.Errorf("conversion: selection %d [%d,%d) overlaps selection %d [%d,%d)", i, s.Start, s.End, j, other.Start, other.End)
			}
		}
	}
	return nil
}

// mustValidate panics with context on a malformed sequence. Overlapping
// selections or a selection/phrase length mismatch are caller bugs per
// the conversion contract, not recoverable runtime errors.
func (seq *ChineseSequence) mustValidate() {
	if err := seq.Validate(); err != nil {
		panic(errors.Wrap(err, "conversion: malformed ChineseSequence"))
	}
}

// Phrase is a dictionary entry: text paired with a relative frequency
// weight. Freq is not a probability; it is compared among a single
// lookup's candidates and summed into a path's score (§4.4 R4).
type Phrase struct {
	text string
	freq int
}

// NewPhrase constructs a Phrase. freq must be >= 0.
func NewPhrase(text string, freq int) Phrase {
	return Phrase{text: text, freq: freq}
}

// Text returns the phrase's characters.
func (p Phrase) Text() string { return p.text }

// Freq returns the phrase's relative frequency weight.
func (p Phrase) Freq() int { return p.freq }

// runeLen returns the phrase's length in Chinese characters.
func (p Phrase) runeLen() int { return len([]rune(p.text)) }

func (p Phrase) String() string {
	return fmt.Sprintf("%s(%d)", p.text, p.freq)
}
