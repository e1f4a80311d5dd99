package textdiff

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func diffStrings(t *testing.T, d *Differ, a, b string) []Edit {
	t.Helper()
	ra, rb, err := d.Prepare([]byte(a), []byte(b))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	return d.Diff(ra, rb)
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    Algorithm
		wantErr bool
	}{
		{input: "", want: Histogram},
		{input: "histogram", want: Histogram},
		{input: "Patience", want: Histogram},
		{input: "myers", want: Myers},
		{input: "minimal", want: Myers},
		{input: "default", want: Myers},
		{input: "levenshtein", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseComparator(t *testing.T) {
	if c, err := ParseComparator(""); err != nil || c != CompareIgnoreAllSpace {
		t.Errorf("ParseComparator(\"\") = %v, %v", c, err)
	}
	if c, err := ParseComparator("exact"); err != nil || c != CompareExact {
		t.Errorf("ParseComparator(exact) = %v, %v", c, err)
	}
	if _, err := ParseComparator("sometimes"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestDiffer_Diff(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []Edit
	}{
		{
			name: "Identical",
			a:    "one\ntwo\n",
			b:    "one\ntwo\n",
			want: nil,
		},
		{
			name: "Punctuation change",
			a:    "# Title\n\nBody.",
			b:    "# Title\n\nBody!",
			want: []Edit{{BeginA: 2, EndA: 3, BeginB: 2, EndB: 3}},
		},
		{
			name: "Whitespace only change is ignored",
			a:    "# Title\n\nBody.",
			b:    "#  Title\n\nBody.",
			want: nil,
		},
		{
			name: "Insert in middle",
			a:    "a\nb\nc\n",
			b:    "a\nb\nx\nc\n",
			want: []Edit{{BeginA: 2, EndA: 2, BeginB: 2, EndB: 3}},
		},
		{
			name: "Delete at end",
			a:    "a\nb\nc\n",
			b:    "a\nb\n",
			want: []Edit{{BeginA: 2, EndA: 3, BeginB: 2, EndB: 2}},
		},
		{
			name: "Two separate replacements",
			a:    "a\nb\nc\nd\ne\n",
			b:    "a\nB\nc\nD\ne\n",
			want: []Edit{
				{BeginA: 1, EndA: 2, BeginB: 1, EndB: 2},
				{BeginA: 3, EndA: 4, BeginB: 3, EndB: 4},
			},
		},
		{
			name: "Everything replaced",
			a:    "a\nb\n",
			b:    "c\nd\ne\n",
			want: []Edit{{BeginA: 0, EndA: 2, BeginB: 0, EndB: 3}},
		},
		{
			name: "From empty",
			a:    "",
			b:    "a\n",
			want: []Edit{{BeginA: 0, EndA: 0, BeginB: 0, EndB: 1}},
		},
	}

	for _, alg := range []Algorithm{Histogram, Myers} {
		d := NewDiffer(Options{Algorithm: alg})
		for _, tt := range tests {
			t.Run(string(alg)+"/"+tt.name, func(t *testing.T) {
				got := diffStrings(t, d, tt.a, tt.b)
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("Diff = %v, want %v", got, tt.want)
				}
			})
		}
	}
}

func TestDiffer_ExactComparatorSeesWhitespace(t *testing.T) {
	d := NewDiffer(Options{Comparator: CompareExact})
	got := diffStrings(t, d, "# Title\n", "#  Title\n")
	want := []Edit{{BeginA: 0, EndA: 1, BeginB: 0, EndB: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff = %v, want %v", got, want)
	}
}

func TestDiffer_HistogramPrefersUniqueAnchor(t *testing.T) {
	// "}" lines are common and must not pull the alignment away from the
	// unique "func b" line.
	a := "func a\n}\nfunc b\n}\n"
	b := "func b\n}\n"
	d := NewDiffer(Options{Algorithm: Histogram})
	got := diffStrings(t, d, a, b)
	want := []Edit{{BeginA: 0, EndA: 2, BeginB: 0, EndB: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff = %v, want %v", got, want)
	}
}

func TestDiffer_PrepareRejectsBinary(t *testing.T) {
	d := NewDiffer(Options{})
	_, _, err := d.Prepare([]byte("text\n"), []byte("bin\x00ary"))
	if !errors.Is(err, ErrBinary) {
		t.Fatalf("err = %v, want ErrBinary", err)
	}
	if !IsUndiffable(err) {
		t.Error("IsUndiffable should hold for ErrBinary")
	}
}

func TestDiffer_PrepareRejectsLargeContent(t *testing.T) {
	d := NewDiffer(Options{MaxSize: 16})
	_, _, err := d.Prepare(bytes.Repeat([]byte("a"), 17), []byte("b"))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
	if !IsUndiffable(err) {
		t.Error("IsUndiffable should hold for ErrTooLarge")
	}
	if IsUndiffable(errors.New("other")) {
		t.Error("IsUndiffable should not hold for unrelated errors")
	}
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{name: "Empty", content: nil, want: false},
		{name: "Text", content: []byte("# Wet\n\nArtikel 1.\n"), want: false},
		{name: "NUL at start", content: []byte{0, 'a'}, want: true},
		{name: "NUL inside probe", content: append(bytes.Repeat([]byte("a"), binaryProbeSize-1), 0), want: true},
		{name: "NUL beyond probe", content: append(bytes.Repeat([]byte("a"), binaryProbeSize), 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.content); got != tt.want {
				t.Errorf("IsBinary = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEdit_Type(t *testing.T) {
	tests := []struct {
		edit Edit
		want EditType
	}{
		{Edit{BeginA: 1, EndA: 1, BeginB: 1, EndB: 2}, EditInsert},
		{Edit{BeginA: 1, EndA: 2, BeginB: 1, EndB: 1}, EditDelete},
		{Edit{BeginA: 1, EndA: 2, BeginB: 1, EndB: 3}, EditReplace},
		{Edit{BeginA: 1, EndA: 1, BeginB: 1, EndB: 1}, EditEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.edit.String(), func(t *testing.T) {
			if got := tt.edit.Type(); got != tt.want {
				t.Errorf("Type() = %v, want %v", got, tt.want)
			}
		})
	}
}
