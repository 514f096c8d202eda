// Package models defines the records chime persists to its datastore.
package models

import (
	"time"

	"github.com/chime-cli/chime/countdown"
	"github.com/chime-cli/chime/internal/timeutil"
)

// HistoryEntry is a completed countdown as persisted to the datastore.
// Transient state (pause markers, finished timestamp) is never stored.
type HistoryEntry struct {
	Label string `json:"label"`
	Input string `json:"input"`
	// CreatedAt is a local-time string in timeutil.TimestampLayout.
	CreatedAt       string `json:"created_at"`
	DurationSeconds int64  `json:"duration_seconds"`
	ID              int    `json:"id"`
}

// FromTask converts a finalized task to its persisted form.
func FromTask(t *countdown.Task) *HistoryEntry {
	return &HistoryEntry{
		ID:              t.ID,
		Label:           t.Label,
		Input:           t.Input,
		DurationSeconds: int64(t.Target / time.Second),
		CreatedAt:       timeutil.FormatTimestamp(t.CreatedAt),
	}
}

// ToTask rebuilds the completed task this entry was saved from.
func (e *HistoryEntry) ToTask() (*countdown.Task, error) {
	createdAt, err := timeutil.ParseTimestamp(e.CreatedAt)
	if err != nil {
		return nil, err
	}

	return countdown.Restore(
		e.ID,
		e.Label,
		e.Input,
		time.Duration(e.DurationSeconds)*time.Second,
		createdAt,
	), nil
}
