package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gitpan/Text-GuessEncoding/internal/core/domain"
	"github.com/gitpan/Text-GuessEncoding/internal/logger"
	"github.com/gitpan/Text-GuessEncoding/internal/probe"
	"github.com/gitpan/Text-GuessEncoding/internal/translit"
)

var toutf8Cmd = &cobra.Command{
	Use:   "toutf8 [file]",
	Short: "Re-encode text as canonical UTF-8",
	Long: `Probes the input first, then emits canonical UTF-8: streams
classified as Latin-1 are re-encoded, ASCII and valid UTF-8 pass
through unchanged. Reads stdin when no file is given.

Mixed streams pass through untouched: rewriting only their Latin-1
bytes would require guessing each byte's provenance.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runToUTF8,
}

func init() {
	rootCmd.AddCommand(toutf8Cmd)
}

func runToUTF8(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	// The probe pass consumes the stream, and stdin cannot rewind.
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	logger.Section("Probe")
	report, err := probe.Probe(bytes.NewReader(data), inputName(args))
	if err != nil {
		return err
	}
	logger.Info("%s", report.String())

	out := cmd.OutOrStdout()
	switch report.Verdict {
	case domain.VerdictLatin1:
		logger.Section("Re-encode Latin-1")
		if err := translit.Latin1ToUTF8(bytes.NewReader(data), out); err != nil {
			return fmt.Errorf("re-encode: %w", err)
		}
	case domain.VerdictMixed:
		logger.Warn("mixed stream, passing through unchanged")
		fallthrough
	default:
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

func inputName(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
