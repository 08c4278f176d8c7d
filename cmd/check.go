package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/umn-libraries/drumcurate/rules"
)

var rulesFile string

var severityStyles = map[rules.Severity]lipgloss.Style{
	rules.SeverityError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
	rules.SeverityWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	rules.SeverityInfo:    lipgloss.NewStyle().Foreground(colorMuted),
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report curation issues in an item's metadata",
	Long: `Run completeness rules against an item before generating documents.

Findings are graded info, warning or error; the command fails when any
error is found. --rules replaces the built-in rules with a YAML rule set.

Examples:
  drumcurate check --handle https://hdl.handle.net/11299/220269
  drumcurate check --metadata md.json --bitstreams bs.json --rules local.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rs := rules.Default()
		if rulesFile != "" {
			var err error
			if rs, err = rules.LoadRuleSet(rulesFile); err != nil {
				return err
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, err := loadSource(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		findings, err := rs.Check(src.doc)
		if err != nil {
			return err
		}
		if errs := printFindings(os.Stdout, findings); errs > 0 {
			return fmt.Errorf("%d curation error(s) found", errs)
		}
		return nil
	},
}

func init() {
	addSourceFlags(checkCmd)
	checkCmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rule set (default: built-in DRUM rules)")
}

// printFindings writes one line per finding and returns the error count.
func printFindings(w io.Writer, findings []rules.Finding) int {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No issues found")
		return 0
	}

	errs := 0
	for _, f := range findings {
		if f.Severity == rules.SeverityError {
			errs++
		}
		label := fmt.Sprintf("%-8s", f.Severity)
		if style, ok := severityStyles[f.Severity]; ok {
			label = style.Render(label)
		}
		fmt.Fprintf(w, "%s %-28s %s\n", label, f.Rule, f.Message)
	}
	return errs
}
