package normative

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrMalformedMarkdown is returned when a fragment cannot be rendered.
var ErrMalformedMarkdown = errors.New("malformed markdown")

// Normalizer reduces a markdown fragment to the text a reader would see,
// stripped of whitespace and asterisks, so that formatting-only edits
// compare equal.
type Normalizer struct {
	md goldmark.Markdown
}

// NewNormalizer creates a Normalizer. Raw HTML in the markdown is passed
// through so that its text content takes part in the comparison.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		md: goldmark.New(goldmark.WithRendererOptions(gmhtml.WithUnsafe())),
	}
}

// Normalize renders fragment to HTML, extracts the plain text and removes
// every whitespace character and every '*'.
func (n *Normalizer) Normalize(fragment string) (string, error) {
	if fragment == "" {
		return "", nil
	}

	var rendered bytes.Buffer
	if err := n.md.Convert([]byte(fragment), &rendered); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedMarkdown, err)
	}

	text, err := PlainText(rendered.String())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedMarkdown, err)
	}
	return strip(text), nil
}

// PlainText returns the text content of an HTML document with tags removed.
// Script and style bodies are not text.
func PlainText(doc string) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			sb.WriteString(node.Data)
			return
		case html.ElementNode:
			if node.DataAtom == atom.Script || node.DataAtom == atom.Style {
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return sb.String(), nil
}

func strip(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '*' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
