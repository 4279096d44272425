package logfeed

// Severity classifies a feed entry for display.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

// String returns the badge text for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Entry is a single activity line in the feed.
type Entry struct {
	Label    string
	Severity Severity
}

// Feed holds a strictly ordered sequence of entries that rotates on each
// tick. Rotation is a pure reordering: no entries are created or destroyed.
type Feed struct {
	entries []Entry
}

// New creates a feed over the given entries. The feed takes ownership of the
// slice.
func New(entries []Entry) *Feed {
	return &Feed{entries: entries}
}

// Advance moves the front entry to the back. No-op on an empty feed.
func (f *Feed) Advance() {
	if len(f.entries) == 0 {
		return
	}
	front := f.entries[0]
	f.entries = append(f.entries[1:], front)
}

// Entries returns a copy of the current ordering, front first.
func (f *Feed) Entries() []Entry {
	if len(f.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Len returns the number of entries in the feed.
func (f *Feed) Len() int {
	return len(f.entries)
}
