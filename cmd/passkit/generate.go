package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/passkit/pkg/logger"
	"github.com/dmitrymomot/passkit/pkg/passgen"
	"github.com/dmitrymomot/passkit/pkg/profiles"
)

var (
	genLength  int
	genUpper   bool
	genLower   bool
	genDigits  bool
	genSpecial bool
	genCount   int
	genProfile string
	genOutput  string
	genQuiet   bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate one or more passwords",
	Example: `  passkit generate --length 20
  passkit generate -n 5 --special=false
  passkit generate --profile pin
  passkit generate -n 10 -o passwords.txt --quiet`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&genLength, "length", "l", 12, "password length")
	generateCmd.Flags().BoolVar(&genUpper, "upper", true, "include uppercase letters")
	generateCmd.Flags().BoolVar(&genLower, "lower", true, "include lowercase letters")
	generateCmd.Flags().BoolVar(&genDigits, "digits", true, "include digits")
	generateCmd.Flags().BoolVar(&genSpecial, "special", true, "include special characters")
	generateCmd.Flags().IntVarP(&genCount, "count", "n", 1, "number of passwords to generate")
	generateCmd.Flags().StringVarP(&genProfile, "profile", "p", "", "use a named profile instead of class flags")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "save passwords to a file")
	generateCmd.Flags().BoolVarP(&genQuiet, "quiet", "q", false, "suppress stdout output")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	constraints, err := resolveConstraints(cmd)
	if err != nil {
		log.Error("cannot resolve generation settings", logger.Error(err))
		return err
	}

	count := genCount
	if !cmd.Flags().Changed("count") {
		count = cfg.Count
	}

	passwords, err := passgen.GenerateMany(constraints, count)
	if err != nil {
		log.Error("password generation failed", logger.Error(err))
		return err
	}

	if genOutput != "" {
		if err := writePasswordsFile(genOutput, passwords); err != nil {
			log.Error("cannot save passwords", logger.Error(err), logger.File(genOutput))
			return err
		}
		log.Info("passwords saved", logger.File(genOutput), logger.Count(len(passwords)))
	}

	if !genQuiet {
		renderList(cmd.OutOrStdout(), passwords)
	}
	return nil
}

// resolveConstraints builds generation constraints from the profile flag
// if given, otherwise from class flags with env-config defaults filling
// in for flags left untouched.
func resolveConstraints(cmd *cobra.Command) (passgen.Constraints, error) {
	if genProfile != "" {
		set, err := loadProfiles()
		if err != nil {
			return passgen.Constraints{}, err
		}
		return set.Get(genProfile)
	}

	c := passgen.Constraints{
		Length:    genLength,
		Uppercase: genUpper,
		Lowercase: genLower,
		Digits:    genDigits,
		Special:   genSpecial,
	}
	if !cmd.Flags().Changed("length") {
		c.Length = cfg.Length
	}
	return c, nil
}

// loadProfiles reads the profiles file named by PASSKIT_PROFILES_FILE,
// falling back to ~/.passkit.yaml. An explicitly configured file must
// exist; a missing fallback file just yields the built-in set.
func loadProfiles() (profiles.Set, error) {
	path := cfg.ProfilesFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return profiles.Builtin(), nil
		}
		path = filepath.Join(home, ".passkit.yaml")
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return profiles.Builtin(), nil
		}
	}
	return profiles.Load(path)
}
