package profiles

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/passkit/pkg/passgen"
)

// DefaultName is the built-in profile available in every Set.
const DefaultName = "default"

// Set maps profile names to generation constraints.
type Set map[string]passgen.Constraints

type profilesFile struct {
	Profiles map[string]profileEntry `yaml:"profiles"`
}

type profileEntry struct {
	Length    int  `yaml:"length"`
	Uppercase bool `yaml:"uppercase"`
	Lowercase bool `yaml:"lowercase"`
	Digits    bool `yaml:"digits"`
	Special   bool `yaml:"special"`
}

// Builtin returns a Set containing only the default profile.
func Builtin() Set {
	return Set{DefaultName: passgen.DefaultConstraints()}
}

// Load reads a YAML profiles file and returns its presets merged over
// the built-in default. A file entry named "default" replaces the
// built-in one. Every preset is validated eagerly so a broken file fails
// at load time rather than at first use.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidProfilesFile, err)
	}

	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrInvalidProfilesFile, err)
	}

	set := Builtin()
	for name, entry := range file.Profiles {
		c := passgen.Constraints{
			Length:    entry.Length,
			Uppercase: entry.Uppercase,
			Lowercase: entry.Lowercase,
			Digits:    entry.Digits,
			Special:   entry.Special,
		}
		if err := c.Validate(); err != nil {
			return nil, errors.Join(ErrInvalidProfilesFile, fmt.Errorf("profile %q: %w", name, err))
		}
		set[name] = c
	}
	return set, nil
}

// Get resolves a named profile.
func (s Set) Get(name string) (passgen.Constraints, error) {
	c, ok := s[name]
	if !ok {
		return passgen.Constraints{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return c, nil
}

// Names returns the profile names in the set, unordered.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}
