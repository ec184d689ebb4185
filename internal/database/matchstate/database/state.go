package database

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bloops-games/undercover/internal/byteutil"
	"github.com/bloops-games/undercover/internal/database"
	"github.com/bloops-games/undercover/internal/database/matchstate/model"
	bolt "go.etcd.io/bbolt"
)

const prefix = "states"

var (
	ErrEntryNotFound  = fmt.Errorf("not found")
	ErrBucketNotFound = fmt.Errorf("bucket not found")
)

func New(db *database.DB) *DB {
	return &DB{sDB: db}
}

type DB struct {
	sDB *database.DB
}

func (db *DB) FetchAll() ([]model.State, error) {
	var list []model.State

	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(prefix))
		if b == nil {
			return ErrEntryNotFound
		}

		if err := b.ForEach(func(k, v []byte) error {
			var state model.State
			if err := json.Unmarshal(v, &state); err != nil {
				return fmt.Errorf("json unmarshal error, %w", err)
			}
			list = append(list, state)
			return nil
		}); err != nil {
			return fmt.Errorf("bucket for each: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %w", err)
	}

	return list, nil
}

// Latest returns the most recently saved state.
func (db *DB) Latest() (model.State, error) {
	list, err := db.FetchAll()
	if err != nil {
		return model.State{}, err
	}

	if len(list) == 0 {
		return model.State{}, ErrEntryNotFound
	}

	latest := list[0]
	for _, s := range list[1:] {
		if s.SavedAt.After(latest.SavedAt) {
			latest = s
		}
	}

	return latest, nil
}

func (db *DB) Clean() error {
	tx, err := db.sDB.DB.Begin(true)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	defer tx.Rollback() // nolint

	if err := tx.DeleteBucket([]byte(prefix)); err != nil {
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return ErrBucketNotFound
		}
		return fmt.Errorf("delete bucket: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (db *DB) Add(m model.State) error {
	tx, err := db.sDB.DB.Begin(true)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	defer tx.Rollback() // nolint

	b, err := tx.CreateBucketIfNotExists([]byte(prefix))
	if err != nil {
		return fmt.Errorf("can not create bucket: %w", err)
	}

	bytes, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := b.Put(byteutil.EncodeInt64ToBytes(m.Code), bytes); err != nil {
		return fmt.Errorf("put to bucket error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
