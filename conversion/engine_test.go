package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapDictionary is a trivial in-memory Dictionary keyed by the joined
// syllable sequence, used only to exercise the engine against the
// concrete scenarios from spec.md §8.
type mapDictionary map[string][]Phrase

func joinSyllables(syllables []Syllable) string {
	s := ""
	for i, syl := range syllables {
		if i > 0 {
			s += " "
		}
		s += string(syl)
	}
	return s
}

func (d mapDictionary) LookupPhrase(syllables []Syllable) []Phrase {
	return d[joinSyllables(syllables)]
}

func testDictionary() mapDictionary {
	return mapDictionary{
		"guo2":           {NewPhrase("國", 1)},
		"min2":           {NewPhrase("民", 1)},
		"da4":            {NewPhrase("大", 1)},
		"hui4":           {NewPhrase("會", 1)},
		"dai4":           {NewPhrase("代", 1)},
		"biao3":          {NewPhrase("表", 1)},
		"guo2 min2":      {NewPhrase("國民", 200)},
		"da4 hui4":       {NewPhrase("大會", 200)},
		"dai4 biao3":     {NewPhrase("代表", 200), NewPhrase("戴錶", 100)},
		"xien":           {NewPhrase("心", 1)},
		"ku4 ien":        {NewPhrase("庫音", 300)},
		"xien ku4 ien":   {NewPhrase("新酷音", 200)},
		"ce4 sh4 i2":     {NewPhrase("測試儀", 42)},
		"ce4 sh4":        {NewPhrase("測試", 9318)},
		"i2 xia4":        {NewPhrase("一下", 10576)},
		"xia4":           {NewPhrase("下", 10576)},
	}
}

func syllables(tokens ...string) []Syllable {
	out := make([]Syllable, len(tokens))
	for i, t := range tokens {
		out[i] = Syllable(t)
	}
	return out
}

func TestConvertEmpty(t *testing.T) {
	engine := NewConversionEngine(testDictionary())
	seq := &ChineseSequence{}

	got, err := engine.Convert(seq)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = engine.ConvertNext(seq, 0)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestConvertGreedyMerge(t *testing.T) {
	engine := NewConversionEngine(testDictionary())
	seq := &ChineseSequence{
		Syllables: syllables("guo2", "min2", "da4", "hui4", "dai4", "biao3"),
	}

	got, err := engine.Convert(seq)
	require.NoError(t, err)
	assert.Equal(t, []Interval{
		{Start: 0, End: 2, Phrase: "國民"},
		{Start: 2, End: 4, Phrase: "大會"},
		{Start: 4, End: 6, Phrase: "代表"},
	}, got)
}

func TestConvertBreaks(t *testing.T) {
	engine := NewConversionEngine(testDictionary())
	seq := &ChineseSequence{
		Syllables: syllables("guo2", "min2", "da4", "hui4", "dai4", "biao3"),
		Breaks:    []Break{1, 5},
	}

	got, err := engine.Convert(seq)
	require.NoError(t, err)
	assert.Equal(t, []Interval{
		{Start: 0, End: 1, Phrase: "國"},
		{Start: 1, End: 2, Phrase: "民"},
		{Start: 2, End: 4, Phrase: "大會"},
		{Start: 4, End: 5, Phrase: "代"},
		{Start: 5, End: 6, Phrase: "表"},
	}, got)
}

func TestConvertSelectionPrefersLowerFreqPhrase(t *testing.T) {
	engine := NewConversionEngine(testDictionary())
	seq := &ChineseSequence{
		Syllables:  syllables("guo2", "min2", "da4", "hui4", "dai4", "biao3"),
		Selections: []Interval{{Start: 4, End: 6, Phrase: "戴錶"}},
	}

	got, err := engine.Convert(seq)
	require.NoError(t, err)
	assert.Equal(t, []Interval{
		{Start: 0, End: 2, Phrase: "國民"},
		{Start: 2, End: 4, Phrase: "大會"},
		{Start: 4, End: 6, Phrase: "戴錶"},
	}, got)
}

func TestConvertSubstringSelectionInsideSuperPhrase(t *testing.T) {
	engine := NewConversionEngine(testDictionary())
	seq := &ChineseSequence{
		Syllables:  syllables("xien", "ku4", "ien"),
		Selections: []Interval{{Start: 1, End: 3, Phrase: "酷音"}},
	}

	got, err := engine.Convert(seq)
	require.NoError(t, err)
	assert.Equal(t, []Interval{
		{Start: 0, End: 3, Phrase: "新酷音"},
	}, got)
}

func TestConvertNextCyclesAlternatives(t *testing.T) {
	engine := NewConversionEngine(testDictionary())
	seq := &ChineseSequence{
		Syllables: syllables("ce4", "sh4", "i2", "xia4"),
	}

	first := []Interval{
		{Start: 0, End: 2, Phrase: "測試"},
		{Start: 2, End: 4, Phrase: "一下"},
	}
	second := []Interval{
		{Start: 0, End: 3, Phrase: "測試儀"},
		{Start: 3, End: 4, Phrase: "下"},
	}

	got, err := engine.ConvertNext(seq, 0)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = engine.ConvertNext(seq, 1)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	got, err = engine.ConvertNext(seq, 2)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	// convert_next(seq, 0) agrees with convert(seq) in this non-degenerate case.
	conv, err := engine.Convert(seq)
	require.NoError(t, err)
	assert.Equal(t, conv, first)
}

func TestConvertNextWrapsModularly(t *testing.T) {
	engine := NewConversionEngine(testDictionary())
	seq := &ChineseSequence{
		Syllables: syllables("ce4", "sh4", "i2", "xia4"),
	}

	base, err := engine.ConvertNext(seq, 0)
	require.NoError(t, err)

	wrapped, err := engine.ConvertNext(seq, 2)
	require.NoError(t, err)

	assert.Equal(t, base, wrapped)
}

func TestConvertUnsatisfiableSelection(t *testing.T) {
	engine := NewConversionEngine(testDictionary())
	seq := &ChineseSequence{
		Syllables:  syllables("xien"),
		Selections: []Interval{{Start: 0, End: 1, Phrase: "Z"}},
	}

	got, err := engine.Convert(seq)
	assert.ErrorIs(t, err, ErrUnsatisfiableConstraints)
	assert.Nil(t, got)
}

func TestValidateRejectsOverlappingSelections(t *testing.T) {
	seq := &ChineseSequence{
		Syllables: syllables("guo2", "min2", "da4"),
		Selections: []Interval{
			{Start: 0, End: 2, Phrase: "國民"},
			{Start: 1, End: 3, Phrase: "民大"},
		},
	}
	assert.Error(t, seq.Validate())
}

func TestValidateRejectsMismatchedSelectionLength(t *testing.T) {
	seq := &ChineseSequence{
		Syllables:  syllables("guo2", "min2"),
		Selections: []Interval{{Start: 0, End: 2, Phrase: "國"}},
	}
	assert.Error(t, seq.Validate())
}

func TestValidateRejectsOutOfRangeBreak(t *testing.T) {
	seq := &ChineseSequence{
		Syllables: syllables("guo2", "min2"),
		Breaks:    []Break{2},
	}
	assert.Error(t, seq.Validate())
}

func TestConvertPanicsOnMalformedSequence(t *testing.T) {
	engine := NewConversionEngine(testDictionary())
	seq := &ChineseSequence{
		Syllables: syllables("guo2", "min2"),
		Breaks:    []Break{5},
	}
	assert.Panics(t, func() {
		_, _ = engine.Convert(seq)
	})
}

func TestConvertIsDeterministic(t *testing.T) {
	engine := NewConversionEngine(testDictionary())
	seq := &ChineseSequence{
		Syllables: syllables("guo2", "min2", "da4", "hui4", "dai4", "biao3"),
	}

	a, errA := engine.Convert(seq)
	b, errB := engine.Convert(seq)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}
