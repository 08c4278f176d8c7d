package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/umn-libraries/drumcurate/format"
	"github.com/umn-libraries/drumcurate/helpers"
)

var (
	colorLabel = lipgloss.Color("#06B6D4")
	colorMuted = lipgloss.Color("#6B7280")

	styleHeading = lipgloss.NewStyle().Bold(true).Underline(true)
	styleLabel   = lipgloss.NewStyle().Foreground(colorLabel).Bold(true).Width(18)
	styleMissing = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how an item's metadata is interpreted",
	Long: `Print the normalized view of an item: the values each document will use,
the authors in display order and the files that count as originals.

Examples:
  drumcurate inspect --handle https://hdl.handle.net/11299/220269
  drumcurate inspect --metadata md.json --bitstreams bs.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, err := loadSource(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		return printInspection(os.Stdout, src.doc)
	},
}

func init() {
	addSourceFlags(inspectCmd)
}

func printInspection(w io.Writer, doc *format.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	idx, cat := doc.Index, doc.Catalog

	field := func(label, value string) {
		if value == "" {
			value = styleMissing.Render("(none)")
		}
		fmt.Fprintln(w, styleLabel.Render(label)+value)
	}
	list := func(label string, values []string) {
		if len(values) == 0 {
			field(label, "")
			return
		}
		for i, v := range values {
			if i > 0 {
				label = ""
			}
			field(label, v)
		}
	}

	fmt.Fprintln(w, styleHeading.Render("Item"))
	field("Title", idx.Title())
	field("Handle", idx.URI())
	field("Published", idx.DatePublished())
	field("Collected", idx.DateCollectedString())
	field("Location", idx.Spatial())
	field("License", idx.LicenseString())
	list("Funding", idx.Funders())
	list("Publications", idx.Publications())

	var authors []string
	for _, a := range idx.Authors() {
		name := a.DisplayName()
		if a.IsContact {
			name += " (contact"
			if a.ContactEmail != "" {
				name += ", " + a.ContactEmail
			}
			name += ")"
		}
		authors = append(authors, name)
	}
	list("Authors", authors)

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleHeading.Render("Files"))
	var files []string
	for _, e := range cat.Originals() {
		size, err := e.HumanSize()
		if err != nil {
			return err
		}
		files = append(files, e.Name+" ("+size+")")
	}
	list("Originals", files)
	field("Total size", helpers.MustFormatSize(cat.TotalSize()))
	field("Spreadsheets", strings.Join(cat.SpreadsheetNames(), ", "))
	return nil
}
