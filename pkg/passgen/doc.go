// Package passgen generates random passwords that satisfy explicit
// composition rules while rejecting trivially predictable outputs.
//
// A password is described by a Constraints value: a target length plus a
// selection of character classes (uppercase, lowercase, digits, special).
// Every selected class is guaranteed to appear in the output at least
// once, a property plain uniform sampling over the combined alphabet
// cannot provide. All randomness comes from crypto/rand; the package is
// unsuitable only where no secure entropy source exists at all.
//
// # Architecture
//
//   • Constraints (constraints.go) is a plain value type with eager
//     validation; no state survives a generation call.
//
//   • Generate (generator.go) runs a seed/fill/shuffle pipeline: one
//     secure draw per selected class, uniform draws over the union
//     alphabet for the rest, then an unbiased Fisher-Yates shuffle.
//
//   • HasPredictablePattern (patterns.go) is a pure predicate that scans
//     for repeated runs, ascending/descending character sequences, and a
//     fixed blocklist of keyboard-row fragments. Generate discards and
//     regenerates candidates that match, up to an internal retry bound.
//
// The package performs no I/O beyond entropy draws and holds no shared
// mutable state, so it is safe for concurrent use.
//
// # Usage
//
//	import "github.com/dmitrymomot/passkit/pkg/passgen"
//
//	pwd, err := passgen.Generate(passgen.Constraints{
//	    Length:    16,
//	    Uppercase: true,
//	    Lowercase: true,
//	    Digits:    true,
//	})
//	if err != nil {
//	    // zero classes selected, length below passgen.MinLength, or
//	    // the entropy source failed
//	}
//
// Batch generation with the defaults (12 characters, all classes):
//
//	pwds, err := passgen.GenerateMany(passgen.DefaultConstraints(), 5)
//
// All constraint violations match ErrInvalidConstraints via errors.Is,
// alongside a more specific sentinel such as ErrNoClassSelected.
package passgen
