package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/umn-libraries/drumcurate/format"
)

// curationFormats are the documents written by "generate all".
var curationFormats = []string{"readme", "curationlog", "datacite"}

var (
	outputFile    string
	outputDir     string
	generatedDate string
	publishYear   string
)

var generateCmd = &cobra.Command{
	Use:   "generate <format|all>",
	Short: "Render curation documents for an item",
	Long: `Render one curation document, or all of them, for a DRUM item.

Formats:
  readme        README template for the depositor (Readme_<id>.txt)
  curationlog   curator's log (metadata_<id>_<YYYYMMDD>.txt)
  datacite      DataCite XML for DOI registration (doi_metadata_<id>.xml)
  summary       normalized metadata as JSON
  all           readme, curationlog and datacite

A single format is written to stdout unless --output or --dir is given.
"all" always writes files, into --dir or the configured output directory.

Examples:
  drumcurate generate all --handle https://hdl.handle.net/11299/220269 --dir out
  drumcurate generate datacite --handle 11299/220269 -o doi.xml
  drumcurate generate readme --metadata md.json --bitstreams bs.json --date 2022-03-07`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	addSourceFlags(generateCmd)
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().StringVar(&outputDir, "dir", "", "Write documents into this directory using their standard names")
	generateCmd.Flags().StringVar(&generatedDate, "date", "", "Generated date stamped on text documents (default: today)")
	generateCmd.Flags().StringVar(&publishYear, "year", "", "DataCite publication year (default: this year)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	names := []string{args[0]}
	if strings.EqualFold(args[0], "all") {
		names = curationFormats
		if outputFile != "" {
			return fmt.Errorf("--output cannot be used with all; use --dir")
		}
	}

	renderers := make([]format.Renderer, 0, len(names))
	for _, name := range names {
		r, err := format.GetRenderer(name)
		if err != nil {
			return err
		}
		renderers = append(renderers, r)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src, err := loadSource(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	opts := renderOptions(time.Now(), cfg.Publisher)

	dir := outputDir
	if dir == "" && len(renderers) > 1 {
		dir = cfg.OutputDir
	}

	if dir == "" {
		return renderTo(renderers[0], src, opts, outputFile)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, r := range renderers {
		path := filepath.Join(dir, outputName(r, src.suffix, opts))
		if err := renderTo(r, src, opts, path); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}
	return nil
}

func renderOptions(now time.Time, publisher string) *format.RenderOptions {
	opts := format.NewRenderOptions(now)
	if generatedDate != "" {
		opts.GeneratedDate = generatedDate
	}
	if publishYear != "" {
		opts.Year = publishYear
	}
	if publisher != "" {
		opts.Publisher = publisher
	}
	return opts
}

// renderTo writes one document to path, or stdout when path is empty.
// Nothing is created on disk unless rendering succeeds.
func renderTo(r format.Renderer, src *source, opts *format.RenderOptions, path string) (err error) {
	var buf bytes.Buffer
	if err = r.Render(&buf, src.doc, opts); err != nil {
		return fmt.Errorf("rendering %s: %w", r.Name(), err)
	}

	if path == "" {
		_, err = buf.WriteTo(os.Stdout)
		return err
	}

	var f *os.File
	f, err = os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	if _, err = buf.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// outputName returns the conventional file name of a document.
func outputName(r format.Renderer, suffix string, opts *format.RenderOptions) string {
	switch r.Name() {
	case "readme":
		return "Readme_" + suffix + ".txt"
	case "curationlog":
		return "metadata_" + suffix + "_" + strings.ReplaceAll(opts.GeneratedDate, "-", "") + ".txt"
	case "datacite":
		return "doi_metadata_" + suffix + ".xml"
	default:
		return r.Name() + "_" + suffix + "." + r.Extension()
	}
}
