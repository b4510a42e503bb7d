// Package memdict is a reference conversion.Dictionary implementation:
// an in-memory phrase table backed by an Aho-Corasick automaton (for
// text scanning) and a bounded LRU cache (for hot-path syllable
// lookups), in the dual-purpose shape
// KittClouds-Angular-GO/GoKitt/pkg/dafsa uses Aho-Corasick for both
// dictionary lookup and text scanning, and the caching pattern
// open-policy-agent/opa's dependency on hashicorp/golang-lru models.
//
// Any persistence (SaveGob/LoadGob) or mutation (AddEntry) is local to
// this package's table, not the conversion engine: package conversion
// itself still learns and persists nothing across calls, per its
// Non-goals.
package memdict

import (
	"bufio"
	"encoding/gob"
	"io"
	"os"
	"strconv"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/go-chewing/chewconv/conversion"
)

const defaultCacheSize = 4096

// Entry is one dictionary row: a syllable sequence mapping to one phrase
// at the given frequency. The same syllable sequence may appear in
// multiple Entries to express several candidate phrases.
type Entry struct {
	Syllables []string
	Phrase    string
	Freq      int
}

// Match is a hit from Dictionary.ScanKnownPhrases: a known phrase found as a
// substring of arbitrary text, independent of any syllable sequence.
type Match struct {
	Start int
	End   int
	Text  string
}

// Dictionary is an in-memory conversion.Dictionary. Its read methods
// (LookupPhrase, ScanKnownPhrases) take no lock of their own and are safe
// for concurrent use: the phrase table and automaton are only read, and
// the LRU cache is itself safe for concurrent use. AddEntry mutates the
// table and automaton without locking, so it is not safe to call
// concurrently with any other method.
type Dictionary struct {
	entries   []Entry
	phrases   map[string][]conversion.Phrase
	cache     *lru.Cache[string, []conversion.Phrase]
	ac        ahocorasick.AhoCorasick
	patterns  []string
	cacheSize int
}

// New builds a Dictionary from entries, with cacheSize controlling the
// bounded LRU in front of the syllable-key lookup table. cacheSize <= 0
// uses defaultCacheSize.
func New(entries []Entry, cacheSize int) (*Dictionary, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	phrases := make(map[string][]conversion.Phrase, len(entries))
	seenPattern := make(map[string]bool, len(entries))
	patterns := make([]string, 0, len(entries))

	for _, e := range entries {
		key := joinKey(e.Syllables)
		phrases[key] = append(phrases[key], conversion.NewPhrase(e.Phrase, e.Freq))
		if !seenPattern[e.Phrase] {
			seenPattern[e.Phrase] = true
			patterns = append(patterns, e.Phrase)
		}
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})
	ac := builder.Build(patterns)

	cache, err := lru.New[string, []conversion.Phrase](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "memdict: building LRU cache")
	}

	return &Dictionary{
		entries:   entries,
		phrases:   phrases,
		cache:     cache,
		ac:        ac,
		patterns:  patterns,
		cacheSize: cacheSize,
	}, nil
}

// SaveGob writes the dictionary's entries to path as a gob stream, in the
// spirit of ericlingit/jieba-go's prefix_dictionary.gob: a pre-parsed
// snapshot that LoadGob can read back without re-parsing the tab-separated
// source on every startup.
func (d *Dictionary) SaveGob(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "memdict: creating %s", path)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(d.entries); err != nil {
		return errors.Wrapf(err, "memdict: encoding %s", path)
	}
	return nil
}

// LoadGob reads a dictionary previously written by SaveGob, matching
// jieba-go's newJiebaPrefixDictionary gob-decode shortcut for its built-in
// dictionary.
func LoadGob(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "memdict: opening %s", path)
	}
	defer file.Close()

	var entries []Entry
	if err := gob.NewDecoder(file).Decode(&entries); err != nil {
		return nil, errors.Wrapf(err, "memdict: decoding %s", path)
	}
	return New(entries, 0)
}

// AddEntry inserts e into the dictionary, rebuilding the Aho-Corasick
// automaton if its phrase is new and evicting any cached lookup for its
// syllable key, mirroring jieba-go's Tokenizer.AddWord incremental-update
// shape.
func (d *Dictionary) AddEntry(e Entry) {
	d.entries = append(d.entries, e)

	key := joinKey(e.Syllables)
	d.phrases[key] = append(d.phrases[key], conversion.NewPhrase(e.Phrase, e.Freq))
	d.cache.Remove(key)

	for _, p := range d.patterns {
		if p == e.Phrase {
			return
		}
	}
	d.patterns = append(d.patterns, e.Phrase)
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})
	d.ac = builder.Build(d.patterns)
}

// Load reads a dictionary file: one entry per line, tab-separated as
// "syllable1 syllable2 ...\tphrase\tfrequency", in the spirit of
// ericlingit/jieba-go's buildPrefixDictionary line format, adapted from
// single characters to syllable sequences. cacheSize optionally
// overrides the LRU cache size (see New); omit it, or pass <= 0, to use
// defaultCacheSize.
func Load(path string, cacheSize ...int) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "memdict: opening %s", path)
	}
	defer file.Close()
	return LoadReader(file, cacheSize...)
}

// LoadReader parses r in the Load format directly, useful for tests and
// embedded dictionaries.
func LoadReader(r io.Reader, cacheSize ...int) (*Dictionary, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, errors.Errorf("memdict: line %d: expected 3 tab-separated fields, got %d", lineNo, len(fields))
		}
		freq, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, errors.Wrapf(err, "memdict: line %d: invalid frequency %q", lineNo, fields[2])
		}
		entries = append(entries, Entry{
			Syllables: strings.Fields(fields[0]),
			Phrase:    fields[1],
			Freq:      freq,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "memdict: scanning dictionary")
	}
	size := 0
	if len(cacheSize) > 0 {
		size = cacheSize[0]
	}
	return New(entries, size)
}

func joinKey(syllables []string) string {
	return strings.Join(syllables, " ")
}

func joinSyllableKey(syllables []conversion.Syllable) string {
	strs := make([]string, len(syllables))
	for i, s := range syllables {
		strs[i] = string(s)
	}
	return joinKey(strs)
}

// LookupPhrase implements conversion.Dictionary.
func (d *Dictionary) LookupPhrase(syllables []conversion.Syllable) []conversion.Phrase {
	key := joinSyllableKey(syllables)
	if cached, ok := d.cache.Get(key); ok {
		return cached
	}
	result := d.phrases[key]
	d.cache.Add(key, result)
	return result
}

// ScanKnownPhrases finds every known phrase occurring as a substring of
// text, independent of syllables — useful for inspecting which
// characters a loaded dictionary recognizes.
func (d *Dictionary) ScanKnownPhrases(text string) []Match {
	hits := d.ac.FindAll(text)
	out := make([]Match, 0, len(hits))
	for _, h := range hits {
		out = append(out, Match{Start: h.Start(), End: h.End(), Text: text[h.Start():h.End()]})
	}
	return out
}

// Len reports the number of distinct syllable keys in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.phrases)
}
