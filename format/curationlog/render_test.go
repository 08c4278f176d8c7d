package curationlog

import (
	"errors"
	"strings"
	"testing"

	"github.com/umn-libraries/drumcurate/bitstream"
	"github.com/umn-libraries/drumcurate/format"
	"github.com/umn-libraries/drumcurate/metadata"
)

func TestRender(t *testing.T) {
	records := []metadata.Record{
		{Key: "dc.contributor.author", Value: "Smith, Jane"},
		{Key: "dc.title", Value: "Lake ice phenology"},
		{Key: "dc.identifier.uri", Value: "https://hdl.handle.net/11299/200000"},
		{Key: "dc.type", Value: "Dataset"},
		{Key: "dc.contributor.author", Value: "Doe, John"},
	}
	cat, err := bitstream.NewCatalog([]bitstream.Entry{
		{Name: "ice.csv", SizeBytes: 1536, BundleName: bitstream.BundleOriginal},
		{Name: "empty.txt", SizeBytes: 0, BundleName: bitstream.BundleOriginal},
		{Name: "ice.csv.txt", SizeBytes: 99, BundleName: "TEXT"},
	})
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	out, err := Render(metadata.NewIndex(records), cat, "2022-06-03")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	wantHeader := "Curation log for: Lake ice phenology\n" +
		"Handle: https://hdl.handle.net/11299/200000\n" +
		"Corresponding researcher:\n" +
		"Curator:\n" +
		"Metadata log created: 2022-06-03\n\n"
	if !strings.HasPrefix(out, wantHeader) {
		t.Errorf("header mismatch:\n%s", out)
	}

	if !strings.Contains(out, "Files received:\n"+strings.Repeat("*", 49)+"\nice.csv (1.5 KB)\nempty.txt (0B)\n\n") {
		t.Errorf("files received block mismatch:\n%s", out)
	}
	if strings.Contains(out, "ice.csv.txt") {
		t.Error("non-ORIGINAL bitstream listed")
	}

	// sections must appear in this order
	last := -1
	for _, section := range []string{
		"Files received:",
		"Changes made to files:",
		"Metadata Changes",
		"Correspondence Notes",
		"Other issues",
		"Original Metadata from Author:",
	} {
		i := strings.Index(out, section)
		if i < 0 {
			t.Fatalf("missing section %q", section)
		}
		if i < last {
			t.Errorf("section %q out of order", section)
		}
		last = i
	}

	wantDump := "Original Metadata from Author:\n" + strings.Repeat("*", 49) + "\n" +
		"dc.contributor.author : Smith, Jane\n" +
		"dc.title : Lake ice phenology\n" +
		"dc.identifier.uri : https://hdl.handle.net/11299/200000\n" +
		"dc.type : Dataset\n" +
		"dc.contributor.author : Doe, John\n"
	if !strings.HasSuffix(out, wantDump) {
		t.Errorf("metadata dump mismatch:\n%s", out)
	}
}

func TestRenderEmpty(t *testing.T) {
	cat, _ := bitstream.NewCatalog(nil)
	out, err := Render(metadata.NewIndex(nil), cat, "2022-06-03")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(out, "Curation log for: \nHandle: \n") {
		t.Errorf("empty title/handle not rendered as empty text: %q", out[:40])
	}
	if !strings.Contains(out, "Files received:\n"+strings.Repeat("*", 49)+"\n\n"+strings.Repeat("*", 49)+"\nChanges made to files:") {
		t.Errorf("empty files block mismatch:\n%s", out)
	}
	if !strings.HasSuffix(out, "Original Metadata from Author:\n"+strings.Repeat("*", 49)+"\n") {
		t.Errorf("empty dump mismatch:\n%s", out)
	}
}

func TestRenderNilInput(t *testing.T) {
	if _, err := Render(metadata.NewIndex(nil), nil, ""); !errors.Is(err, format.ErrNilInput) {
		t.Fatalf("Render error = %v, want ErrNilInput", err)
	}

	f := &Format{}
	if err := f.Render(nil, nil, nil); !errors.Is(err, format.ErrNilInput) {
		t.Fatalf("Format.Render error = %v, want ErrNilInput", err)
	}
}

func TestBannerWidths(t *testing.T) {
	for _, tt := range []struct {
		title string
		width int
	}{
		{"Files received:", 49},
		{"Changes made to files:", 49},
		{"Metadata Changes", 50},
		{"Correspondence Notes", 50},
		{"Other issues", 49},
		{"Original Metadata from Author:", 49},
	} {
		t.Run(tt.title, func(t *testing.T) {
			stars := strings.Repeat("*", tt.width)
			if !strings.Contains(logText, "\n"+stars+"\n"+tt.title+"\n"+stars+"\n") {
				t.Errorf("banner for %q is not %d stars wide", tt.title, tt.width)
			}
		})
	}
}

func TestTemplateExecutesWithZeroData(t *testing.T) {
	var b strings.Builder
	if err := logTemplate.Execute(&b, fields{}); err != nil {
		t.Fatalf("template failed on zero data: %v", err)
	}
}
