package helpers

import "testing"

func TestSplitInvertedName(t *testing.T) {
	tests := []struct {
		in         string
		wantFamily string
		wantGiven  string
		wantDirect string
	}{
		{"Smith, Jane", "Smith", "Jane", "Jane Smith"},
		{"Smith,Jane", "Smith", "Jane", "Jane Smith"},
		{"Smith, Jane, Jr.", "Smith", "Jane, Jr.", "Jane, Jr. Smith"},
		{"Prince", "Prince", "", "Prince"},
		{"", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := SplitInvertedName(tt.in)
			if p.Raw != tt.in {
				t.Errorf("Raw = %q, want %q", p.Raw, tt.in)
			}
			if p.Family != tt.wantFamily {
				t.Errorf("Family = %q, want %q", p.Family, tt.wantFamily)
			}
			if p.Given != tt.wantGiven {
				t.Errorf("Given = %q, want %q", p.Given, tt.wantGiven)
			}
			if got := p.Direct(); got != tt.wantDirect {
				t.Errorf("Direct() = %q, want %q", got, tt.wantDirect)
			}
		})
	}
}

func TestSplitDataCiteName(t *testing.T) {
	tests := []struct {
		in         string
		wantFamily string
		wantGiven  string
	}{
		{"Smith, Jane", "Smith", "Jane"},
		{"Smith,Jane", "Smith,Jane", ""},
		{"Smith, Jane, Jr.", "Smith", "Jane"},
		{" Smith, Jane", "Smith", "Jane"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := SplitDataCiteName(tt.in)
			if p.Family != tt.wantFamily {
				t.Errorf("Family = %q, want %q", p.Family, tt.wantFamily)
			}
			if p.Given != tt.wantGiven {
				t.Errorf("Given = %q, want %q", p.Given, tt.wantGiven)
			}
		})
	}
}

func TestIsInvertedName(t *testing.T) {
	if !IsInvertedName("Doe, John") {
		t.Error("IsInvertedName(\"Doe, John\") = false")
	}
	if IsInvertedName("John Doe") {
		t.Error("IsInvertedName(\"John Doe\") = true")
	}
}
