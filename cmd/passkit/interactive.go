package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/passkit/pkg/logger"
	"github.com/dmitrymomot/passkit/pkg/passgen"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Prompt for generation settings interactively",
	RunE:    runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		err := interactiveRound(in, out)
		if errors.Is(err, io.EOF) {
			// Input closed mid-session; treat it as a normal exit.
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		more, err := promptYesNo(in, out, "Generate more passwords?", false)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// interactiveRound runs one question-and-generate cycle.
func interactiveRound(in *bufio.Reader, out io.Writer) error {
	length, err := promptInt(in, out,
		fmt.Sprintf("Enter password length (minimum %d): ", passgen.MinLength), passgen.MinLength)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nSelect character types to include:")
	constraints := passgen.Constraints{Length: length}
	if constraints.Uppercase, err = promptYesNo(in, out, "Include uppercase letters?", true); err != nil {
		return err
	}
	if constraints.Lowercase, err = promptYesNo(in, out, "Include lowercase letters?", true); err != nil {
		return err
	}
	if constraints.Digits, err = promptYesNo(in, out, "Include digits?", true); err != nil {
		return err
	}
	if constraints.Special, err = promptYesNo(in, out, "Include special characters?", true); err != nil {
		return err
	}

	if !constraints.Uppercase && !constraints.Lowercase && !constraints.Digits && !constraints.Special {
		fmt.Fprintln(out, "At least one character type must be selected. Using all types.")
		constraints.Uppercase = true
		constraints.Lowercase = true
		constraints.Digits = true
		constraints.Special = true
	}

	count, err := promptInt(in, out, "How many passwords to generate? ", 1)
	if err != nil {
		return err
	}

	passwords, err := passgen.GenerateMany(constraints, count)
	if err != nil {
		return err
	}
	displayPasswords(out, passwords)

	save, err := promptYesNo(in, out, "Save passwords to file?", false)
	if err != nil {
		return err
	}
	if save {
		name, err := promptLine(in, out,
			fmt.Sprintf("Enter filename (press Enter for %q): ", defaultExportFile))
		if err != nil {
			return err
		}
		if name == "" {
			name = defaultExportFile
		}
		if err := writePasswordsFile(name, passwords); err != nil {
			log.Error("cannot save passwords", logger.Error(err), logger.File(name))
		} else {
			fmt.Fprintf(out, "Passwords saved to %q\n", name)
		}
	}
	return nil
}

// promptLine writes the label and reads one trimmed line of input.
func promptLine(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt re-asks until it reads an integer of at least min.
func promptInt(in *bufio.Reader, out io.Writer, label string, min int) (int, error) {
	for {
		line, err := promptLine(in, out, label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid number.")
			continue
		}
		if n < min {
			fmt.Fprintf(out, "Value must be at least %d.\n", min)
			continue
		}
		return n, nil
	}
}

// promptYesNo asks a yes/no question; the default answer is used for an
// empty or unrecognized reply.
func promptYesNo(in *bufio.Reader, out io.Writer, label string, def bool) (bool, error) {
	suffix := " (y/N): "
	if def {
		suffix = " (Y/n): "
	}
	line, err := promptLine(in, out, label+suffix)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}
