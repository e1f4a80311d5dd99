package aggregation

// ChangeLog holds change records grouped by date. Dates keep the order in
// which their first record was appended, and records keep append order
// within a date.
type ChangeLog struct {
	dates  []string
	byDate map[string][]Change
}

// NewChangeLog creates an empty ChangeLog.
func NewChangeLog() *ChangeLog {
	return &ChangeLog{byDate: make(map[string][]Change)}
}

// Append adds a record to the list for its date, creating the list on first
// use.
func (l *ChangeLog) Append(c Change) {
	if _, ok := l.byDate[c.Date()]; !ok {
		l.dates = append(l.dates, c.Date())
	}
	l.byDate[c.Date()] = append(l.byDate[c.Date()], c)
}

// Dates returns the dates with at least one record, in insertion order.
func (l *ChangeLog) Dates() []string {
	return append([]string(nil), l.dates...)
}

// For returns the records for date.
func (l *ChangeLog) For(date string) []Change {
	return append([]Change(nil), l.byDate[date]...)
}

// All returns every record, date by date.
func (l *ChangeLog) All() []Change {
	all := make([]Change, 0, l.Len())
	for _, date := range l.dates {
		all = append(all, l.byDate[date]...)
	}
	return all
}

// Len returns the total number of records.
func (l *ChangeLog) Len() int {
	n := 0
	for _, changes := range l.byDate {
		n += len(changes)
	}
	return n
}

// DateCount is the number of documents added, modified and deleted on a date.
type DateCount struct {
	Date     string
	Added    int
	Modified int
	Deleted  int
}

// Counts derives per-date totals from the recorded changes.
func (l *ChangeLog) Counts() []DateCount {
	counts := make([]DateCount, 0, len(l.dates))
	for _, date := range l.dates {
		dc := DateCount{Date: date}
		for _, c := range l.byDate[date] {
			dc.Added += c.IsAdd()
			dc.Modified += c.IsModify()
			dc.Deleted += c.IsDelete()
		}
		counts = append(counts, dc)
	}
	return counts
}
