package git

import "testing"

func TestCommitInfo_Subject(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{name: "Plain date", message: "2014-09-26", expected: "2014-09-26"},
		{name: "Trailing newline", message: "2014-09-26\n", expected: "2014-09-26"},
		{name: "Surrounding space", message: "  2014-09-26 \r\n", expected: "2014-09-26"},
		{name: "Empty", message: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CommitInfo{Message: tt.message}
			if got := c.Subject(); got != tt.expected {
				t.Errorf("Subject() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestPathEntry_Path(t *testing.T) {
	tests := []struct {
		name     string
		entry    PathEntry
		expected string
	}{
		{name: "Modified", entry: PathEntry{OldPath: "a/BWB1/t.md", NewPath: "a/BWB1/t.md"}, expected: "a/BWB1/t.md"},
		{name: "Added", entry: PathEntry{OldPath: NoFile, NewPath: "BWB2/t.md"}, expected: "BWB2/t.md"},
		{name: "Deleted", entry: PathEntry{OldPath: "BWB3/t.md", NewPath: NoFile}, expected: "BWB3/t.md"},
		{name: "Deleted empty new path", entry: PathEntry{OldPath: "BWB4/t.md"}, expected: "BWB4/t.md"},
		{name: "Renamed", entry: PathEntry{OldPath: "BWB5/a.md", NewPath: "BWB5/b.md"}, expected: "BWB5/b.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Path(); got != tt.expected {
				t.Errorf("Path() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestChangeKind_String(t *testing.T) {
	tests := []struct {
		name     string
		kind     ChangeKind
		expected string
	}{
		{name: "Added", kind: ChangeKindAdded, expected: "added"},
		{name: "Modified", kind: ChangeKindModified, expected: "modified"},
		{name: "Deleted", kind: ChangeKindDeleted, expected: "deleted"},
		{name: "Renamed", kind: ChangeKindRenamed, expected: "renamed"},
		{name: "Copied", kind: ChangeKindCopied, expected: "copied"},
		{name: "Unknown", kind: ChangeKind(99), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("String() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
