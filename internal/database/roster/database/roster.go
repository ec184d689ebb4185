package database

import (
	"encoding/json"
	"fmt"

	"github.com/bloops-games/undercover/internal/cache"
	"github.com/bloops-games/undercover/internal/database"
	"github.com/bloops-games/undercover/internal/database/roster/model"
	bolt "go.etcd.io/bbolt"
)

var ErrNotFound = fmt.Errorf("not found")

const bucket = "rosters"

func New(db *database.DB, cache cache.Cache) *DB {
	return &DB{sDB: db, cache: cache}
}

type DB struct {
	sDB *database.DB

	cache cache.Cache
}

type fetchFn func(key string) ([]byte, error)

func (db *DB) cachedValue(key string, fn fetchFn) (model.Roster, error) {
	if db.cache != nil {
		if v, ok := db.cache.Get(key); ok {
			return v.(model.Roster), nil
		}
	}

	var r model.Roster
	bytes, err := fn(key)
	if err != nil {
		return r, fmt.Errorf("fetch: %w", err)
	}

	if len(bytes) == 0 {
		return r, ErrNotFound
	}

	if err := json.Unmarshal(bytes, &r); err != nil {
		return r, fmt.Errorf("unmarshal: %w", err)
	}

	if db.cache != nil {
		db.cache.Add(key, r)
	}

	return r, nil
}

func (db *DB) Fetch(name string) (model.Roster, error) {
	r, err := db.cachedValue(model.Key(name), func(key string) ([]byte, error) {
		var bytes []byte
		if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
			b := tx.Bucket([]byte(bucket))
			if b == nil {
				return nil
			}
			// bbolt values are only valid inside the transaction
			if v := b.Get([]byte(key)); v != nil {
				bytes = append([]byte(nil), v...)
			}
			return nil
		}); err != nil {
			return nil, fmt.Errorf("view transaction error: %w", err)
		}

		return bytes, nil
	})
	if err != nil {
		return r, fmt.Errorf("cached value: %w", err)
	}

	return r, nil
}

func (db *DB) Store(r model.Roster) error {
	key := model.Key(r.Name)
	if key == "" {
		return fmt.Errorf("store roster: empty name")
	}

	bytes, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}

		if err := b.Put([]byte(key), bytes); err != nil {
			return fmt.Errorf("put to bucket error: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	if db.cache != nil {
		db.cache.Add(key, r)
	}

	return nil
}

// List returns the saved rosters ordered by key.
func (db *DB) List() ([]model.Roster, error) {
	var list []model.Roster
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}

		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var r model.Roster
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("json unmarshal error, %w", err)
			}
			list = append(list, r)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %w", err)
	}

	return list, nil
}

func (db *DB) Delete(name string) error {
	key := model.Key(name)
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil || b.Get([]byte(key)) == nil {
			return ErrNotFound
		}
		return b.Delete([]byte(key))
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	if db.cache != nil {
		db.cache.Delete(key)
	}

	return nil
}
