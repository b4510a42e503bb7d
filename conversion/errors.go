package conversion

import "github.com/pkg/errors"

// ErrUnsatisfiableConstraints is returned by Convert/ConvertNext when no
// cover path reaches the end of the input — the dynamic-programming
// optimum (or every enumerated-and-trimmed alternative) stays short of
// len(seq.Syllables), which per §7 means the caller's selections and
// breaks are jointly unsatisfiable against the dictionary.
var ErrUnsatisfiableConstraints = errors.New("conversion: constraints are unsatisfiable for this sequence")
