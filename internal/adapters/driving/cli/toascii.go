package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitpan/Text-GuessEncoding/internal/logger"
	"github.com/gitpan/Text-GuessEncoding/internal/translit"
)

var (
	toasciiDiag         bool
	toasciiReplacements string
)

var toasciiCmd = &cobra.Command{
	Use:   "toascii [file]",
	Short: "Transliterate UTF-8 text to a readable ASCII approximation",
	Long: `Decodes UTF-8 text and rewrites it with ASCII replacements: "ü"
becomes "ue", curly quotes become straight ones, "§" becomes "S".
Code points with no known replacement are emitted as a visible
[[hex='NAME']] placeholder. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runToASCII,
}

func init() {
	toasciiCmd.Flags().BoolVar(&toasciiDiag, "diag", false, "print unmapped code points to stderr")
	toasciiCmd.Flags().StringVar(&toasciiReplacements, "replacements", "", "TOML file with extra replacements (default ~/.guessencoding/replacements.toml)")
	rootCmd.AddCommand(toasciiCmd)
}

func runToASCII(cmd *cobra.Command, args []string) error {
	logger.Section("Transliterate")

	in, closeIn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	tr, err := newTransliterator()
	if err != nil {
		return err
	}

	res, err := tr.ToASCII(in, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("transliterate: %w", err)
	}

	if toasciiDiag && len(res.Unknown) > 0 {
		fmt.Fprint(cmd.ErrOrStderr(), res.Log())
	}
	return nil
}

// newTransliterator builds a transliterator with user overrides merged in,
// if a replacement file exists.
func newTransliterator() (*translit.Transliterator, error) {
	path := toasciiReplacements
	if path == "" {
		var err error
		path, err = translit.DefaultOverridesPath()
		if err != nil {
			// No home directory; the built-in table still works.
			logger.Warn("no home directory, skipping replacement overrides: %v", err)
			return translit.New(), nil
		}
	}

	overrides, err := translit.LoadOverrides(path)
	if err != nil {
		return nil, fmt.Errorf("load replacements: %w", err)
	}
	return translit.NewWithOverrides(overrides), nil
}

// openInput opens the optional file argument, falling back to stdin.
func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", args[0], err)
	}
	return f, func() { f.Close() }, nil
}
