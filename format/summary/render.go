package summary

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/umn-libraries/drumcurate/bitstream"
	"github.com/umn-libraries/drumcurate/format"
	"github.com/umn-libraries/drumcurate/metadata"
)

var marshalOptions = protojson.MarshalOptions{
	Multiline: true,
	Indent:    "  ",
}

// Render returns the JSON summary of an item.
func Render(idx *metadata.Index, cat *bitstream.Catalog, generatedDate string) ([]byte, error) {
	s, err := Build(idx, cat, generatedDate)
	if err != nil {
		return nil, err
	}
	out, err := marshalOptions.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling summary: %w", err)
	}
	return append(out, '\n'), nil
}

// Build assembles the summary as a protobuf Struct.
func Build(idx *metadata.Index, cat *bitstream.Catalog, generatedDate string) (*structpb.Struct, error) {
	if idx == nil || cat == nil {
		return nil, format.ErrNilInput
	}

	authors := make([]any, 0, len(idx.Authors()))
	for _, a := range idx.Authors() {
		author := map[string]any{
			"raw":        a.Raw,
			"name":       a.DisplayName(),
			"familyName": a.LastName,
			"givenName":  a.FirstName,
			"contact":    a.IsContact,
		}
		if a.IsContact && a.ContactEmail != "" {
			author["email"] = a.ContactEmail
		}
		authors = append(authors, author)
	}

	files := make([]any, 0, len(cat.All()))
	for _, e := range cat.All() {
		size, err := e.HumanSize()
		if err != nil {
			return nil, fmt.Errorf("bitstream %q: %w", e.Name, err)
		}
		files = append(files, map[string]any{
			"name":       e.Name,
			"sizeBytes":  e.SizeBytes,
			"size":       size,
			"bundleName": e.BundleName,
			"sequenceId": e.SequenceID,
			"original":   e.IsOriginal(),
		})
	}

	fields := map[string]any{
		"generated":     generatedDate,
		"title":         idx.Title(),
		"uri":           idx.URI(),
		"datePublished": idx.DatePublished(),
		"spatial":       idx.Spatial(),
		"abstract":      idx.Abstract(),
		"authors":       authors,
		"funders":       anyList(idx.Funders()),
		"publications":  anyList(idx.Publications()),
		"license":       idx.LicenseString(),
		"files":         files,
		"spreadsheets":  anyList(spreadsheets(cat)),
		"totalBytes":    cat.TotalSize(),
	}
	if dr, ok := idx.DateRange(); ok {
		fields["dateCollected"] = map[string]any{
			"begin": dr.Begin,
			"end":   dr.End,
		}
	}
	if r := idx.Rights(); !r.IsEmpty() {
		fields["rights"] = map[string]any{
			"text": r.Text,
			"uri":  r.URI,
		}
	}

	return structpb.NewStruct(fields)
}

// spreadsheets drops the README placeholder when no spreadsheets exist.
func spreadsheets(cat *bitstream.Catalog) []string {
	names := cat.SpreadsheetNames()
	if len(names) == 1 && names[0] == bitstream.PlaceholderFilename {
		return nil
	}
	return names
}

// anyList converts to the []any form structpb accepts for list values.
func anyList(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
