// Package store connects to the data store and manages countdown history and
// display preferences.
package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/chime-cli/chime/internal/models"
)

const (
	historyBucket  = "history"
	settingsBucket = "settings"

	colorKey = "color"
)

var errChimeRunning = errors.New(
	"is chime already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// NewClient returns a wrapper to a BoltDB connection. A missing database
// file is created, yielding an empty history.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(historyBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(settingsBucket))

		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{db}, nil
}

func (c *Client) GetHistory() ([]*models.HistoryEntry, error) {
	var entries []*models.HistoryEntry

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(historyBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var entry models.HistoryEntry

			err := json.Unmarshal(v, &entry)
			if err != nil {
				return err
			}

			entries = append(entries, &entry)
		}

		return nil
	})

	return entries, err
}

func (c *Client) SaveHistory(entries []*models.HistoryEntry) error {
	return c.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(historyBucket))
		if err != nil {
			return err
		}

		b, err := tx.CreateBucket([]byte(historyBucket))
		if err != nil {
			return err
		}

		for _, entry := range entries {
			value, err := json.Marshal(entry)
			if err != nil {
				return err
			}

			err = b.Put(idToKey(entry.ID), value)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) DeleteHistory(ids []int) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(historyBucket))

		for _, id := range ids {
			err := b.Delete(idToKey(id))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) GetColor() (string, error) {
	var color string

	err := c.View(func(tx *bolt.Tx) error {
		color = string(tx.Bucket([]byte(settingsBucket)).Get([]byte(colorKey)))
		return nil
	})

	return color, err
}

func (c *Client) SaveColor(hex string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put([]byte(colorKey), []byte(hex))
	})
}

// idToKey converts a task id to a database key that preserves id order.
func idToKey(id int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))

	return key
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errChimeRunning
		}

		return nil, err
	}

	return db, nil
}
