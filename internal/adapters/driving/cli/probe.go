package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gitpan/Text-GuessEncoding/internal/core/domain"
	"github.com/gitpan/Text-GuessEncoding/internal/logger"
	"github.com/gitpan/Text-GuessEncoding/internal/probe"
)

var probeJSON bool

var probeCmd = &cobra.Command{
	Use:   "probe [file...]",
	Short: "Classify byte streams as ASCII, UTF-8, Latin-1 or mixed",
	Long: `Scans each file byte by byte and counts ASCII bytes, valid UTF-8
sequences, typical Latin-1 bytes and invalid bytes, then derives an
encoding verdict from the counts. Reads stdin when no file is given.

A mixed verdict is an expected outcome for real-world input, not an error.`,
	Args: cobra.ArbitraryArgs,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().BoolVar(&probeJSON, "json", false, "output reports as JSON")
	rootCmd.AddCommand(probeCmd)
}

var verdictStyles = map[domain.Verdict]lipgloss.Style{
	domain.VerdictASCII:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	domain.VerdictUTF8:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	domain.VerdictLatin1: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	domain.VerdictMixed:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

func runProbe(cmd *cobra.Command, args []string) error {
	logger.Section("Probe")

	reports, err := probeAll(args)
	if err != nil {
		return err
	}

	if probeJSON {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal reports: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, r := range reports {
		cmd.Printf("%s %s\n", r.String(), verdictStyles[r.Verdict].Render("["+string(r.Verdict)+"]"))
	}
	return nil
}

func probeAll(args []string) ([]domain.ProbeReport, error) {
	if len(args) == 0 {
		r, err := probe.Probe(os.Stdin, "-")
		if err != nil {
			return nil, err
		}
		return []domain.ProbeReport{r}, nil
	}

	reports := make([]domain.ProbeReport, 0, len(args))
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		r, perr := probe.Probe(f, path)
		f.Close()
		if perr != nil {
			return nil, fmt.Errorf("probe %s: %w", path, perr)
		}
		logger.Debug("probed %s: verdict %s", path, r.Verdict)
		reports = append(reports, r)
	}
	return reports, nil
}
