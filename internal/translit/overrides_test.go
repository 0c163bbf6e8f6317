package translit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replacements.toml")
	content := `
[replacements]
"SNOWMAN" = "(snowman)"
"LATIN SMALL LETTER U WITH DIAERESIS" = "u"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	overrides, err := LoadOverrides(path)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"SNOWMAN":                             "(snowman)",
		"LATIN SMALL LETTER U WITH DIAERESIS": "u",
	}, overrides)
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	overrides, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.toml"))

	require.NoError(t, err)
	assert.Nil(t, overrides)
}

func TestLoadOverrides_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replacements.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0600))

	_, err := LoadOverrides(path)

	assert.Error(t, err)
}

func TestLoadOverrides_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replacements.toml")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	overrides, err := LoadOverrides(path)

	require.NoError(t, err)
	assert.Empty(t, overrides)
}
