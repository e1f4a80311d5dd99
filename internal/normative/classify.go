package normative

import "github.com/masmgr/lawdiff/internal/textdiff"

// Classifier decides whether an edit changes the normative content of a
// document.
type Classifier struct {
	normalizer *Normalizer
}

// NewClassifier creates a Classifier backed by n.
func NewClassifier(n *Normalizer) *Classifier {
	if n == nil {
		n = NewNormalizer()
	}
	return &Classifier{normalizer: n}
}

// Texts returns the raw old and new text spanned by e.
func Texts(a, b *textdiff.RawText, e textdiff.Edit) (before, after string) {
	return a.Slice(e.BeginA, e.EndA), b.Slice(e.BeginB, e.EndB)
}

// IsNormativeChange reports whether the text covered by e differs once both
// sides are normalized. It fails with ErrMalformedMarkdown when either side
// cannot be rendered.
func (c *Classifier) IsNormativeChange(a, b *textdiff.RawText, e textdiff.Edit) (bool, error) {
	before, after := Texts(a, b, e)

	normBefore, err := c.normalizer.Normalize(before)
	if err != nil {
		return false, err
	}
	normAfter, err := c.normalizer.Normalize(after)
	if err != nil {
		return false, err
	}
	return normBefore != normAfter, nil
}
