package conversion

// Dictionary is the sole external collaborator the engine consumes. An
// implementation must be deterministic for a given snapshot and safe for
// concurrent reads if the host calls engines in parallel — the engine
// itself holds only a read-only reference with lifetime at least that of
// the ConversionEngine.
type Dictionary interface {
	// LookupPhrase returns every candidate phrase for the given syllable
	// sequence, in unspecified order. Ties in Freq are broken by
	// dictionary iteration order, which this interface does not pin down.
	LookupPhrase(syllables []Syllable) []Phrase
}
