package store_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/chime-cli/chime/internal/models"
	"github.com/chime-cli/chime/store"
)

func newTestClient(t *testing.T) *store.Client {
	t.Helper()

	db, err := store.NewClient(filepath.Join(t.TempDir(), "chime_test.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func sampleEntries() []*models.HistoryEntry {
	return []*models.HistoryEntry{
		{
			ID:              1,
			Label:           "tea",
			Input:           "3:00",
			DurationSeconds: 180,
			CreatedAt:       "2025-03-14T09:00:00",
		},
		{
			ID:              2,
			Label:           "laundry",
			Input:           "1:30:00",
			DurationSeconds: 5400,
			CreatedAt:       "2025-03-14T10:15:30",
		},
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	db := newTestClient(t)

	want := sampleEntries()

	err := db.SaveHistory(want)
	if err != nil {
		t.Fatal(err)
	}

	got, err := db.GetHistory()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("history round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyStoreYieldsEmptyHistory(t *testing.T) {
	db := newTestClient(t)

	got, err := db.GetHistory()

	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveHistoryRewritesFully(t *testing.T) {
	db := newTestClient(t)

	entries := sampleEntries()

	err := db.SaveHistory(entries)
	if err != nil {
		t.Fatal(err)
	}

	// a save with fewer entries must drop the rest
	err = db.SaveHistory(entries[:1])
	if err != nil {
		t.Fatal(err)
	}

	got, err := db.GetHistory()
	if err != nil {
		t.Fatal(err)
	}

	assert.Len(t, got, 1)
	assert.Equal(t, entries[0].ID, got[0].ID)
}

func TestDeleteHistory(t *testing.T) {
	db := newTestClient(t)

	err := db.SaveHistory(sampleEntries())
	if err != nil {
		t.Fatal(err)
	}

	err = db.DeleteHistory([]int{1, 99})
	if err != nil {
		t.Fatal(err)
	}

	got, err := db.GetHistory()
	if err != nil {
		t.Fatal(err)
	}

	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestColorRoundTrip(t *testing.T) {
	db := newTestClient(t)

	color, err := db.GetColor()

	assert.NoError(t, err)
	assert.Empty(t, color, "fresh store has no saved color")

	err = db.SaveColor("#43B0DB")
	if err != nil {
		t.Fatal(err)
	}

	color, err = db.GetColor()

	assert.NoError(t, err)
	assert.Equal(t, "#43B0DB", color)
}
