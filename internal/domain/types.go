package domain

import "time"

// LogEntry is one persisted note, tied to the directory it was written from.
type LogEntry struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"` // RFC3339
	Directory string `json:"directory"`
	Content   string `json:"content"`
	Tags      string `json:"tags,omitempty"` // comma-separated, may be empty
}

// Time parses the stored timestamp. Entries are only ever written with
// RFC3339 timestamps; the zero time is returned for anything unparseable.
func (e LogEntry) Time() time.Time {
	t, err := time.Parse(time.RFC3339, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}
