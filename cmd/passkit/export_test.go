package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePasswordsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "passwords.txt")
	require.NoError(t, writePasswordsFile(path, []string{"K9$mP2vX", "w7#Qr4Lz"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Generated Secure Passwords\n")
	assert.Contains(t, content, "==============================\n")
	assert.Contains(t, content, "Password 1: K9$mP2vX\n")
	assert.Contains(t, content, "Password 2: w7#Qr4Lz\n")
}

func TestRenderList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderList(&buf, []string{"one1$One", "two2$Two"})
	assert.Equal(t, "one1$One\ntwo2$Two\n", buf.String())
}

func TestDisplayPasswords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	displayPasswords(&buf, []string{"K9$mP2vX"})
	out := buf.String()
	assert.Contains(t, out, "GENERATED PASSWORDS")
	assert.Contains(t, out, "Password 1: K9$mP2vX")
}
