package helpers

import (
	"errors"
	"testing"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"zero", 0, "0B"},
		{"bytes", 512, "512 B"},
		{"one byte", 1, "1 B"},
		{"exact kilobyte", 1024, "1 KB"},
		{"kilobyte and a half", 1536, "1.5 KB"},
		{"exact megabyte", 1048576, "1 MB"},
		{"rounded", 1000000, "976.56 KB"},
		{"gigabytes", 5 * 1024 * 1024 * 1024, "5 GB"},
		{"exabyte", 1 << 60, "1 EB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatSize(tt.in)
			if err != nil {
				t.Fatalf("FormatSize(%d) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatSizeNegative(t *testing.T) {
	_, err := FormatSize(-1)
	if !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("FormatSize(-1) error = %v, want ErrInvalidSize", err)
	}
}

func TestMustFormatSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustFormatSize(-5) did not panic")
		}
	}()
	MustFormatSize(-5)
}
