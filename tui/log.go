package tui

// activityLog is a bounded feedback log shown under the slot list.
// The oldest entry is evicted past the cap; consecutive duplicates
// collapse.
type activityLog struct {
	entries []string
	max     int
}

func newActivityLog(max int) *activityLog {
	return &activityLog{entries: make([]string, 0, max), max: max}
}

// Push appends a feedback line.
func (l *activityLog) Push(line string) {
	if len(l.entries) > 0 && l.entries[len(l.entries)-1] == line {
		return
	}
	l.entries = append(l.entries, line)
	if len(l.entries) > l.max {
		l.entries = l.entries[1:]
	}
}

// Tail returns up to n most recent lines, oldest first.
func (l *activityLog) Tail(n int) []string {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return l.entries[len(l.entries)-n:]
}
