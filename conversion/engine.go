package conversion

import (
	"sort"

	"github.com/go-chewing/chewconv/internal/chewlog"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ConversionEngine is the synchronous, single-threaded-per-call conversion
// engine of §5: a pure function of (dictionary snapshot, sequence). It
// holds a shared, read-only reference to a Dictionary; nothing here
// persists between calls.
type ConversionEngine struct {
	dict    Dictionary
	log     *logrus.Entry
	weights Weights
}

// Option configures a ConversionEngine at construction time.
type Option func(*ConversionEngine)

// WithLogger overrides the engine's debug/warn logger. By default engines
// log to chewlog's shared global entry.
func WithLogger(log *logrus.Entry) Option {
	return func(e *ConversionEngine) { e.log = log }
}

// WithWeights overrides the §4.4 scoring multipliers. By default engines
// score with DefaultWeights.
func WithWeights(w Weights) Option {
	return func(e *ConversionEngine) { e.weights = w }
}

// NewConversionEngine builds an engine over dict. dict must be safe for
// concurrent reads if engines sharing it are used from multiple
// goroutines.
func NewConversionEngine(dict Dictionary, opts ...Option) *ConversionEngine {
	e := &ConversionEngine{dict: dict, log: chewlog.Global(), weights: DefaultWeights()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Convert returns the single best cover of seq.Syllables, per §4.5. An
// empty sequence returns (nil, nil). If seq's breaks and selections admit
// no cover at all, it returns ErrUnsatisfiableConstraints.
func (e *ConversionEngine) Convert(seq *ChineseSequence) ([]Interval, error) {
	n := len(seq.Syllables)
	if n == 0 {
		return nil, nil
	}
	seq.mustValidate()

	intervals := e.findIntervals(seq)
	best := e.findBestPath(n, intervals)
	if len(best.intervals) == 0 {
		e.log.WithFields(chewlog.Fields{"n": n}).Warn("conversion: no path reaches end of sequence")
		return nil, errors.Wrapf(ErrUnsatisfiableConstraints, "no path reaches position %d", n)
	}
	return best.toIntervals(), nil
}

// ConvertNext implements §4.6-4.8: enumerate every cover path, trim
// strict refinements, sort by score descending (ties broken
// lexicographically), and cycle to entry k mod len(alternatives). An
// empty sequence returns (nil, nil).
func (e *ConversionEngine) ConvertNext(seq *ChineseSequence, k int) ([]Interval, error) {
	n := len(seq.Syllables)
	if n == 0 {
		return nil, nil
	}
	seq.mustValidate()

	graph := make(map[graphKey]graphEntry, n*(n+1)/2)
	paths := e.findAllPaths(graph, seq, 0, n, possiblePath{})
	trimmed := trimPaths(paths)
	if len(trimmed) == 0 {
		e.log.WithFields(chewlog.Fields{"n": n}).Warn("conversion: no enumerated path covers sequence")
		return nil, errors.Wrapf(ErrUnsatisfiableConstraints, "no alternative covers position %d", n)
	}

	sort.SliceStable(trimmed, func(i, j int) bool {
		return trimmed[i].less(trimmed[j], e.weights)
	})

	idx := k % len(trimmed)
	if idx < 0 {
		idx += len(trimmed)
	}
	return trimmed[idx].toIntervals(), nil
}
