package aggregation

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/masmgr/lawdiff/internal/corpus"
	"github.com/masmgr/lawdiff/internal/git"
	"github.com/masmgr/lawdiff/internal/normative"
	"github.com/masmgr/lawdiff/internal/textdiff"
)

// Stats counts what the collector did with the entries it observed.
type Stats struct {
	Entries    int // path entries observed
	Records    int // change records appended
	Unmatched  int // entries whose path has no document id
	Anomalies  int // renames and copies
	Undiffable int // binary or oversized content
	Failures   int // blob loads or edit classifications that failed
}

// EditClassifier decides whether a single edit changes the rendered text.
type EditClassifier interface {
	IsNormativeChange(a, b *textdiff.RawText, e textdiff.Edit) (bool, error)
}

// CollectorOptions configures a Collector. Nil fields get defaults.
type CollectorOptions struct {
	Matcher     *corpus.Matcher
	Differ      *textdiff.Differ
	Classifier  EditClassifier
	Logger      logrus.FieldLogger
	CaptureText bool // attach the first normative edit's text to modify records
}

// Collector turns tree diff entries into change records.
type Collector struct {
	blobs       git.BlobLoader
	matcher     *corpus.Matcher
	differ      *textdiff.Differ
	classifier  EditClassifier
	log         logrus.FieldLogger
	captureText bool

	changes *ChangeLog
	stats   Stats
}

// NewCollector creates a Collector reading blob contents from blobs.
func NewCollector(blobs git.BlobLoader, opts CollectorOptions) *Collector {
	if opts.Matcher == nil {
		opts.Matcher = corpus.Default()
	}
	if opts.Differ == nil {
		opts.Differ = textdiff.NewDiffer(textdiff.Options{
			Comparator: textdiff.CompareIgnoreAllSpace,
			MaxSize:    textdiff.DefaultMaxSize,
		})
	}
	if opts.Classifier == nil {
		opts.Classifier = normative.NewClassifier(nil)
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &Collector{
		blobs:       blobs,
		matcher:     opts.Matcher,
		differ:      opts.Differ,
		classifier:  opts.Classifier,
		log:         opts.Logger,
		captureText: opts.CaptureText,
		changes:     NewChangeLog(),
	}
}

// Changes returns the accumulated change log.
func (c *Collector) Changes() *ChangeLog {
	return c.changes
}

// Stats returns the counters collected so far.
func (c *Collector) Stats() Stats {
	return c.stats
}

// Observe records the changes of one commit pair under date. Problems with a
// single entry are logged and never stop the remaining entries.
func (c *Collector) Observe(date string, entries []git.PathEntry) {
	for _, entry := range entries {
		c.observeEntry(date, entry)
	}
}

func (c *Collector) observeEntry(date string, entry git.PathEntry) {
	c.stats.Entries++

	path := entry.Path()
	log := c.log.WithFields(logrus.Fields{"date": date, "path": path})

	id, ok := c.matcher.DocumentID(path)
	if !ok {
		c.stats.Unmatched++
		log.Warn("no BWB id in path, skipping")
		return
	}
	log = log.WithField("bwb_id", id)

	switch entry.Kind {
	case git.ChangeKindAdded:
		c.record(date, id, ChangeAdd, nil, nil)
	case git.ChangeKindDeleted:
		c.record(date, id, ChangeDelete, nil, nil)
	case git.ChangeKindModified:
		c.observeModification(log, date, id, entry)
	case git.ChangeKindRenamed, git.ChangeKindCopied:
		c.stats.Anomalies++
		log.WithFields(logrus.Fields{"old_path": entry.OldPath, "kind": entry.Kind.String()}).
			Warn("unexpected change kind, ignoring")
	default:
		c.stats.Anomalies++
		log.WithField("kind", entry.Kind.String()).Warn("unknown change kind, ignoring")
	}
}

// observeModification appends one modify record when any edit of the entry
// is normative. Scanning stops at the first normative edit.
func (c *Collector) observeModification(log logrus.FieldLogger, date, id string, entry git.PathEntry) {
	a, b, err := c.prepare(entry)
	if err != nil {
		log = log.WithError(err)
		if textdiff.IsUndiffable(err) {
			c.stats.Undiffable++
			log.Warn("content cannot be diffed line by line, skipping")
		} else {
			c.stats.Failures++
			log.Warn("could not load content, skipping")
		}
		return
	}

	for _, edit := range c.differ.Diff(a, b) {
		normativeEdit, err := c.classifier.IsNormativeChange(a, b, edit)
		if err != nil {
			c.stats.Failures++
			log.WithError(err).WithField("edit", edit.String()).Warn("could not classify edit, skipping it")
			continue
		}
		if !normativeEdit {
			continue
		}

		var before, after *string
		if c.captureText {
			beforeText, afterText := normative.Texts(a, b, edit)
			before, after = &beforeText, &afterText
		}
		c.record(date, id, ChangeModify, before, after)
		return
	}
}

// prepare loads both sides of a modification and splits them into lines.
func (c *Collector) prepare(entry git.PathEntry) (*textdiff.RawText, *textdiff.RawText, error) {
	oldContent, err := c.load(entry.OldHash)
	if err != nil {
		return nil, nil, fmt.Errorf("old side: %w", err)
	}
	newContent, err := c.load(entry.NewHash)
	if err != nil {
		return nil, nil, fmt.Errorf("new side: %w", err)
	}
	return c.differ.Prepare(oldContent, newContent)
}

func (c *Collector) load(hash string) ([]byte, error) {
	if hash == "" {
		return nil, nil
	}
	data, err := c.blobs.LoadBlob(hash, c.differ.MaxSize())
	if errors.Is(err, git.ErrObjectTooLarge) {
		return nil, fmt.Errorf("%w: %v", textdiff.ErrTooLarge, err)
	}
	return data, err
}

func (c *Collector) record(date, id string, changeType ChangeType, before, after *string) {
	change, err := NewChange(date, id, changeType, before, after)
	if err != nil {
		// changeType is always one of the constants above.
		panic(err)
	}
	c.changes.Append(change)
	c.stats.Records++
}
