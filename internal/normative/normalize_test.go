package normative

import "testing"

func TestNormalize(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty", input: "", expected: ""},
		{name: "Heading and paragraph", input: "# Title\n\nBody.", expected: "TitleBody."},
		{name: "Heading level is formatting", input: "### Title", expected: "Title"},
		{name: "Strong emphasis", input: "**Bold** text", expected: "Boldtext"},
		{name: "Literal asterisk", input: "a * b", expected: "ab"},
		{name: "Escaped asterisks", input: "\\*escaped\\*", expected: "escaped"},
		{name: "Entity decoded", input: "a &amp; b", expected: "a&b"},
		{name: "Less than", input: "1 < 2", expected: "1<2"},
		{name: "List items", input: "- item one\n- item two", expected: "itemoneitemtwo"},
		{name: "Link keeps label only", input: "[Artikel 1](http://example.com)", expected: "Artikel1"},
		{name: "Code span", input: "`code *x*`", expected: "codex"},
		{name: "Raw inline HTML", input: "<b>raw</b> html", expected: "rawhtml"},
		{name: "Script is not text", input: "<script>alert(1)</script>", expected: ""},
		{name: "Non-breaking space", input: "Artikel&nbsp;1", expected: "Artikel1"},
		{name: "Only whitespace", input: " \n\t\n", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	got, err := PlainText("<h1>Wet</h1>\n<p>Artikel <em>1</em></p><style>p{}</style>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Wet\nArtikel 1" {
		t.Errorf("PlainText = %q", got)
	}
}
