package sqlite

import "fmt"

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanSnapshot scans key, value and updated_at from a database row
func ScanSnapshot(scanner Scanner) (*Snapshot, error) {
	snapshot := &Snapshot{}
	var updatedAt string

	if err := scanner.Scan(&snapshot.Key, &snapshot.Value, &updatedAt); err != nil {
		return nil, err
	}

	parsed, err := ParseTimeFromDB(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at for %s: %w", snapshot.Key, err)
	}
	snapshot.UpdatedAt = parsed

	return snapshot, nil
}

// ScanSnapshots scans multiple snapshots from database rows
func ScanSnapshots(rows Rows) ([]*Snapshot, error) {
	var snapshots []*Snapshot
	for rows.Next() {
		snapshot, err := ScanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
