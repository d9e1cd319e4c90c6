package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const defaultExportFile = "generated_passwords.txt"

// writePasswordsFile saves passwords in the documented export format:
// a header, a separator rule, then one "Password N: ..." line each.
// The file is created with 0600 permissions since it holds secrets.
func writePasswordsFile(path string, passwords []string) error {
	var b strings.Builder
	b.WriteString("Generated Secure Passwords\n")
	b.WriteString(strings.Repeat("=", 30))
	b.WriteString("\n\n")
	for i, pwd := range passwords {
		fmt.Fprintf(&b, "Password %d: %s\n", i+1, pwd)
	}
	return os.WriteFile(path, []byte(b.String()), 0o600)
}

// renderList prints one password per line, keeping stdout pipe-friendly.
func renderList(w io.Writer, passwords []string) {
	for _, pwd := range passwords {
		fmt.Fprintln(w, pwd)
	}
}

// displayPasswords prints the banner-framed numbered list used by the
// interactive mode.
func displayPasswords(w io.Writer, passwords []string) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "    GENERATED PASSWORDS")
	fmt.Fprintln(w, rule)
	for i, pwd := range passwords {
		fmt.Fprintf(w, "Password %d: %s\n", i+1, pwd)
	}
	fmt.Fprintln(w, rule)
}
