package translit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/gitpan/Text-GuessEncoding/internal/logger"
)

// overridesFile holds the TOML shape of a user replacement file:
//
//	[replacements]
//	"SNOWMAN" = "(snowman)"
type overridesFile struct {
	Replacements map[string]string `toml:"replacements"`
}

// DefaultOverridesPath returns the conventional location of the user
// replacement file, ~/.guessencoding/replacements.toml.
func DefaultOverridesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".guessencoding", "replacements.toml"), nil
}

// LoadOverrides reads name-keyed replacement entries from a TOML file.
// A missing file is not an error: the built-in table simply stands alone.
func LoadOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var f overridesFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	logger.Debug("loaded %d replacement overrides from %s", len(f.Replacements), path)
	return f.Replacements, nil
}
