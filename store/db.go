package store

import "github.com/chime-cli/chime/internal/models"

// DB is the datastore interface.
type DB interface {
	// GetHistory returns every persisted history entry in id order. A
	// freshly created datastore yields an empty list.
	GetHistory() ([]*models.HistoryEntry, error)
	// SaveHistory rewrites the full history list; entries absent from the
	// argument are dropped.
	SaveHistory(entries []*models.HistoryEntry) error
	// DeleteHistory permanently removes the entries with the given ids.
	DeleteHistory(ids []int) error
	// GetColor returns the persisted display color, or "" if none is set.
	GetColor() (string, error)
	// SaveColor persists the display color.
	SaveColor(hex string) error
	// Close ends the datastore connection.
	Close() error
}
