package passgen_test

import (
	"testing"

	"github.com/dmitrymomot/passkit/pkg/passgen"

	"github.com/stretchr/testify/assert"
)

func TestHasPredictablePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "empty string", password: "", want: false},
		{name: "too short for any window", password: "ab", want: false},
		{name: "sequential letters and digits", password: "abc12345", want: true},
		{name: "repeated run", password: "aaa12$XY", want: true},
		{name: "clean password", password: "K9$mP2vX", want: false},
		{name: "ascending digits", password: "x567x", want: true},
		{name: "descending digits", password: "x765x", want: true},
		{name: "descending letters", password: "Xfedc", want: true},
		{name: "ascending uppercase", password: "zzMNOzz", want: true},
		{name: "sequential across symbols", password: ";<=", want: true},
		{name: "repeated symbols", password: "a$$$b", want: true},
		{name: "keyboard row lowercase", password: "1qwephrase", want: true},
		{name: "keyboard row uppercase", password: "1QWEphrase", want: true},
		{name: "keyboard row mixed case", password: "mAsDm9", want: true},
		{name: "keyboard row reversed", password: "9ewq#K", want: true},
		{name: "two repeats only", password: "aab2b$XY", want: false},
		{name: "gapped sequence", password: "a1c3e5G&", want: false},
		{name: "interrupted keyboard row", password: "q2w3e$Tz", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, passgen.HasPredictablePattern(tt.password))
		})
	}
}
