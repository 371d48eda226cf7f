package domain

import "time"

// Manifest describes one stored snapshot.
type Manifest struct {
	Key       string     `json:"key,omitzero"`
	CreatedAt time.Time  `json:"created_at,omitzero"`
	Files     []FileStat `json:"files,omitzero"`
}

// FileStat records a single file of a snapshot.
type FileStat struct {
	// Path is relative to the snapshot root.
	Path string `json:"path,omitzero"`
	Size int64  `json:"size,omitzero"`
	// Hash is the XXHash of the file content, formatted %016x.
	Hash string `json:"hash,omitzero"`
}
