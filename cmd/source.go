package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/umn-libraries/drumcurate/bitstream"
	"github.com/umn-libraries/drumcurate/config"
	"github.com/umn-libraries/drumcurate/dspace"
	"github.com/umn-libraries/drumcurate/format"
	"github.com/umn-libraries/drumcurate/metadata"
)

var (
	handleURL      string
	metadataFile   string
	bitstreamsFile string
	baseURL        string
)

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&handleURL, "handle", "", "Item handle URL, e.g. https://hdl.handle.net/11299/220269")
	cmd.Flags().StringVar(&metadataFile, "metadata", "", "Saved /rest/items/{id}/metadata JSON")
	cmd.Flags().StringVar(&bitstreamsFile, "bitstreams", "", "Saved /rest/items/{id}/bitstreams JSON")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Repository base URL (overrides config)")
}

// source is a loaded item ready to render.
type source struct {
	doc *format.Document

	// suffix is the handle suffix used in output file names
	suffix string
}

func loadSource(ctx context.Context, cfg *config.Config) (*source, error) {
	switch {
	case handleURL != "" && (metadataFile != "" || bitstreamsFile != ""):
		return nil, errors.New("use either --handle or --metadata/--bitstreams, not both")
	case handleURL != "":
		return fetchSource(ctx, cfg)
	case metadataFile != "":
		return readSource(metadataFile, bitstreamsFile)
	default:
		return nil, errors.New("one of --handle or --metadata is required")
	}
}

func fetchSource(ctx context.Context, cfg *config.Config) (*source, error) {
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	root := cfg.BaseURL
	if baseURL != "" {
		root = baseURL
	}

	client := dspace.NewClient(root, timeout, cfg.GetPageSize())
	item, err := client.FetchItem(ctx, handleURL)
	if err != nil {
		return nil, err
	}
	slog.Debug("fetched item", "handle", item.Handle.String(), "records", len(item.Records), "bitstreams", len(item.Bitstreams))

	doc, err := format.NewDocument(item.Records, item.Bitstreams)
	if err != nil {
		return nil, err
	}
	return &source{doc: doc, suffix: item.Handle.Suffix}, nil
}

// readSource loads saved REST responses. The bitstream listing is optional;
// without it the documents carry no file list.
func readSource(metadataPath, bitstreamsPath string) (*source, error) {
	records, err := readMetadataFile(metadataPath)
	if err != nil {
		return nil, err
	}

	var entries []bitstream.Entry
	if bitstreamsPath != "" {
		if entries, err = readBitstreamsFile(bitstreamsPath); err != nil {
			return nil, err
		}
	}

	doc, err := format.NewDocument(records, entries)
	if err != nil {
		return nil, err
	}
	return &source{doc: doc, suffix: suffixFor(doc.Index)}, nil
}

func readMetadataFile(path string) ([]metadata.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening metadata file: %w", err)
	}
	defer f.Close()
	return dspace.DecodeMetadata(f)
}

func readBitstreamsFile(path string) ([]bitstream.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bitstreams file: %w", err)
	}
	defer f.Close()
	return dspace.DecodeBitstreams(f)
}

// suffixFor takes the handle suffix from dc.identifier.uri, falling back
// to "item" when the record has no usable handle.
func suffixFor(idx *metadata.Index) string {
	if h, err := dspace.ParseHandle(idx.URI()); err == nil {
		return h.Suffix
	}
	return "item"
}
