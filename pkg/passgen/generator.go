package passgen

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// maxAttempts bounds the rejection-sampling loop in Generate. For any
// valid constraint set the chance of a single candidate tripping the
// pattern scan is small, so the bound is effectively unreachable; it
// exists to guarantee termination.
const maxAttempts = 100

// Generate returns one random password satisfying the given constraints.
//
// Constraints are validated eagerly before any entropy is drawn. The
// candidate is built in three phases: one secure draw per selected class
// (so every requested class is represented), uniform draws over the
// union alphabet for the remaining positions, and an unbiased
// Fisher-Yates shuffle of the whole buffer. Candidates containing a
// predictable pattern (see HasPredictablePattern) are discarded and
// regenerated from scratch, up to maxAttempts; if every attempt is
// rejected the last candidate is returned as-is rather than failing.
//
// The only error sources are invalid constraints and entropy-source read
// failures.
func Generate(c Constraints) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	sets := c.selectedSets()
	pool := c.alphabet()

	var candidate []byte
	for attempt := 0; attempt < maxAttempts; attempt++ {
		buf := make([]byte, 0, c.Length)

		// One guaranteed character per selected class.
		for _, set := range sets {
			ch, err := pick(set)
			if err != nil {
				return "", err
			}
			buf = append(buf, ch)
		}

		for len(buf) < c.Length {
			ch, err := pick(pool)
			if err != nil {
				return "", err
			}
			buf = append(buf, ch)
		}

		// Spread the guaranteed characters away from the front.
		if err := shuffle(buf); err != nil {
			return "", err
		}

		candidate = buf
		if !HasPredictablePattern(string(buf)) {
			break
		}
	}

	return string(candidate), nil
}

// GenerateMany returns count passwords, each generated independently
// with the same constraints. There is no cross-call uniqueness
// guarantee; duplicates are possible in principle, merely astronomically
// unlikely.
func GenerateMany(c Constraints, count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	passwords := make([]string, count)
	for i := 0; i < count; i++ {
		pwd, err := Generate(c)
		if err != nil {
			return nil, err
		}
		passwords[i] = pwd
	}
	return passwords, nil
}

// pick draws one byte uniformly from set using crypto/rand.
func pick(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, errors.Join(ErrEntropyFailure, err)
	}
	return set[n.Int64()], nil
}

// shuffle performs an in-place Fisher-Yates permutation with every swap
// index drawn from crypto/rand, so each permutation is equally likely.
func shuffle(buf []byte) error {
	for i := len(buf) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return errors.Join(ErrEntropyFailure, err)
		}
		j := n.Int64()
		buf[i], buf[j] = buf[j], buf[i]
	}
	return nil
}
