package passgen

import (
	"errors"
	"strings"
)

// MinLength is the smallest password length Generate accepts. Anything
// shorter cannot hold one character per class and is too weak to be
// worth generating.
const MinLength = 4

// Constraints describes the composition rules for a generated password.
// The zero value is invalid; start from DefaultConstraints or set Length
// and at least one class explicitly.
type Constraints struct {
	// Length of the generated password. Must be at least MinLength and
	// at least the number of selected classes.
	Length int

	// Character classes to draw from. Each selected class is guaranteed
	// to contribute at least one character to the output.
	Uppercase bool
	Lowercase bool
	Digits    bool
	Special   bool
}

// DefaultConstraints returns a 12-character password drawing from all
// four character classes.
func DefaultConstraints() Constraints {
	return Constraints{
		Length:    12,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Special:   true,
	}
}

// Validate reports whether the constraints describe a satisfiable
// password. Every returned error matches ErrInvalidConstraints as well
// as its specific sentinel.
func (c Constraints) Validate() error {
	if c.classCount() == 0 {
		return errors.Join(ErrInvalidConstraints, ErrNoClassSelected)
	}
	if c.Length < MinLength {
		return errors.Join(ErrInvalidConstraints, ErrLengthTooShort)
	}
	// Unreachable while MinLength >= 4 and there are only four classes,
	// but the seed phase depends on this precondition, so it stays
	// explicit rather than implied by the arithmetic above.
	if c.Length < c.classCount() {
		return errors.Join(ErrInvalidConstraints, ErrLengthTooShortForClasses)
	}
	return nil
}

func (c Constraints) classCount() int {
	n := 0
	for _, selected := range []bool{c.Uppercase, c.Lowercase, c.Digits, c.Special} {
		if selected {
			n++
		}
	}
	return n
}

// selectedSets returns the character set of every selected class, in a
// fixed order.
func (c Constraints) selectedSets() []string {
	sets := make([]string, 0, 4)
	if c.Uppercase {
		sets = append(sets, UppercaseChars)
	}
	if c.Lowercase {
		sets = append(sets, LowercaseChars)
	}
	if c.Digits {
		sets = append(sets, DigitChars)
	}
	if c.Special {
		sets = append(sets, SpecialChars)
	}
	return sets
}

// alphabet returns the union of the selected classes' character sets.
// The class sets are disjoint, so plain concatenation keeps the draw
// uniform over the union.
func (c Constraints) alphabet() string {
	return strings.Join(c.selectedSets(), "")
}
