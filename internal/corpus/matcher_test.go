package corpus

import "testing"

func TestNewMatcher_InvalidPatterns(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		document string
	}{
		{name: "Invalid date", date: `[0-9`, document: DefaultDocumentPattern},
		{name: "Invalid document", date: DefaultDatePattern, document: `(BWB`},
		{name: "Document without group", date: DefaultDatePattern, document: `BWB[0-9]+`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMatcher(tt.date, tt.document); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestNewMatcher_EmptyPatternsUseDefaults(t *testing.T) {
	m, err := NewMatcher("", " ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsDated("2014-09-26") {
		t.Error("default date pattern should match 2014-09-26")
	}
	if id, ok := m.DocumentID("docs/BWB123456/text.md"); !ok || id != "BWB123456" {
		t.Errorf("DocumentID = %q, %v", id, ok)
	}
}

func TestDateTag(t *testing.T) {
	m := Default()

	tests := []struct {
		name    string
		message string
		want    string
		ok      bool
	}{
		{"plain date", "2014-09-26", "2014-09-26", true},
		{"trailing newline", "2014-09-26\n", "2014-09-26", true},
		{"surrounding whitespace", "  1815-02-13 \n", "1815-02-13", true},
		{"not a date", "not-a-date", "", false},
		{"date with suffix", "2014-09-26 update", "", false},
		{"date with prefix", "v2014-09-26", "", false},
		{"short year", "14-09-26", "", false},
		{"slashes", "2014/09/26", "", false},
		{"multi-line", "2014-09-26\n\nbody", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.DateTag(tt.message)
			if got != tt.want || ok != tt.ok {
				t.Errorf("DateTag(%q) = (%q, %v), want (%q, %v)", tt.message, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDocumentID(t *testing.T) {
	m := Default()

	tests := []struct {
		name string
		path string
		want string
		ok   bool
	}{
		{"nested", "docs/BWB123456/text.md", "BWB123456", true},
		{"top level", "BWB001/text.md", "BWB001", true},
		{"deep prefix", "a/b/c/BWBR0001827/2014-01-01/text.md", "BWBR0001827", true},
		{"windows separators", "docs\\BWB42\\text.md", "BWB42", true},
		{"last BWB directory wins", "BWB1/BWB2/text.md", "BWB2", true},
		{"index file", "docs/index.json", "", false},
		{"no trailing component", "docs/BWB123456", "", false},
		{"bare file name", "README.md", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.DocumentID(tt.path)
			if got != tt.want || ok != tt.ok {
				t.Errorf("DocumentID(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDocumentID_UnnamedGroup(t *testing.T) {
	m, err := NewMatcher("", `^laws/([^/]+)/`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id, ok := m.DocumentID("laws/BWB9/text.md"); !ok || id != "BWB9" {
		t.Errorf("DocumentID = %q, %v", id, ok)
	}
}
