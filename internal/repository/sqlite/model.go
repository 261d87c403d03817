package sqlite

import "time"

// Snapshot is one stored value in the key/value snapshot table.
type Snapshot struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
