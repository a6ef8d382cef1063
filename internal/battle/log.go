package battle

import "strings"

// Log is the append-only battle transcript shown to the player.
type Log struct {
	lines []string
}

func (l *Log) append(line string) {
	l.lines = append(l.lines, line)
}

// Lines returns a copy of every line written so far.
func (l *Log) Lines() []string {
	return append([]string(nil), l.lines...)
}

// Len returns the number of lines.
func (l *Log) Len() int {
	return len(l.lines)
}

// String joins the transcript, one event per line.
func (l *Log) String() string {
	if len(l.lines) == 0 {
		return ""
	}
	return strings.Join(l.lines, "\n") + "\n"
}
