package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptYesNo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{name: "yes", input: "y\n", def: false, want: true},
		{name: "yes word", input: "yes\n", def: false, want: true},
		{name: "no", input: "n\n", def: true, want: false},
		{name: "uppercase no", input: "N\n", def: true, want: false},
		{name: "empty uses default true", input: "\n", def: true, want: true},
		{name: "empty uses default false", input: "\n", def: false, want: false},
		{name: "garbage uses default", input: "maybe\n", def: true, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, err := promptYesNo(bufio.NewReader(strings.NewReader(tt.input)), &out, "Include?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPromptYesNoEOF(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, err := promptYesNo(bufio.NewReader(strings.NewReader("")), &out, "Include?", true)
	assert.Error(t, err)
}

func TestPromptInt(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("abc\n2\n8\n"))

	n, err := promptInt(in, &out, "Length: ", 4)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Contains(t, out.String(), "Please enter a valid number.")
	assert.Contains(t, out.String(), "Value must be at least 4.")
}

func TestInteractiveRound(t *testing.T) {
	t.Parallel()

	// length 10, all classes accepted by default, one password, no save.
	input := "10\n\n\n\n\n1\nn\n"
	var out bytes.Buffer

	err := interactiveRound(bufio.NewReader(strings.NewReader(input)), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "GENERATED PASSWORDS")
	assert.Contains(t, out.String(), "Password 1: ")
}

func TestInteractiveRoundNoClassesFallsBack(t *testing.T) {
	t.Parallel()

	// Decline every class; the round must fall back to all types
	// instead of failing.
	input := "12\nn\nn\nn\nn\n1\nn\n"
	var out bytes.Buffer

	err := interactiveRound(bufio.NewReader(strings.NewReader(input)), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Using all types.")
	assert.Contains(t, out.String(), "Password 1: ")
}
