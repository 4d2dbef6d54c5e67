package keeper

import (
	"time"

	"github.com/boltdb/bolt"
)

const defaultBoltBucket = "keeper"

// Bolt is a Store kept in a single local file using Bolt.
// All keys live in one bucket.
// See: https://github.com/boltdb/bolt
type Bolt struct {
	db     *bolt.DB
	bucket []byte
	logger Logger
}

// NewBolt opens or creates the database file at path, for example /tmp/keeper.bolt.
// An empty bucket name uses "keeper".
func NewBolt(config *Config, path string, bucket string) (*Bolt, error) {
	config = configOrDefault(config)
	if bucket == "" {
		bucket = defaultBoltBucket
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	config.Logger.Infof("Opened Bolt database %s, bucket %s", path, bucket)
	return &Bolt{
		db,
		[]byte(bucket),
		config.Logger,
	}, nil
}

// Get gets value by key from the bucket
func (s *Bolt) Get(key string) ([]byte, error) {
	s.logger.Debug("Bolt Get: ", key)
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		bytes := tx.Bucket(s.bucket).Get([]byte(key))
		if bytes == nil {
			return nil
		}
		// bytes are only valid for the life of the transaction
		value = make([]byte, len(bytes))
		copy(value, bytes)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put updates key in the bucket with serialized value
func (s *Bolt) Put(key string, value []byte) error {
	s.logger.Debugf("Bolt Put: %s %d bytes", key, len(value))
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	})
}

// Delete removes key from the bucket
func (s *Bolt) Delete(key string) error {
	s.logger.Debugf("Bolt Delete: %s", key)
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
}

// Flush syncs the database file to disk
func (s *Bolt) Flush() error {
	return s.db.Sync()
}

// Close releases the database file
func (s *Bolt) Close() error {
	return s.db.Close()
}
