package keeper

import (
	"fmt"

	couch "gopkg.in/couchbase/gocb.v1"
)

// CouchbaseConfig describes a config for Couchbase store
type CouchbaseConfig struct {
	Host          string
	Bucket        string
	Username      string
	Password      string
	DurableWrites bool
	PersistTo     uint
	ReplicateTo   uint
}

// Couchbase is a Store that keeps values as binary documents in a Couchbase bucket.
// See: http://docs.couchbase.com/admin/admin/Concepts/concept-dataStorage.html
type Couchbase struct {
	cluster *couch.Cluster
	bucket  *couch.Bucket
	config  *CouchbaseConfig
	logger  Logger
}

// NewCouchbase connects to the cluster and opens the configured bucket.
func NewCouchbase(config *Config, couchbaseConfig *CouchbaseConfig) (*Couchbase, error) {
	config = configOrDefault(config)
	cluster, err := couch.Connect(fmt.Sprintf("couchbase://%s", couchbaseConfig.Host))
	if err != nil {
		return nil, err
	}
	if couchbaseConfig.Username != "" {
		err = cluster.Authenticate(couch.PasswordAuthenticator{
			Username: couchbaseConfig.Username,
			Password: couchbaseConfig.Password,
		})
		if err != nil {
			return nil, err
		}
	}
	bucket, err := cluster.OpenBucket(couchbaseConfig.Bucket, "")
	if err != nil {
		return nil, err
	}
	config.Logger.Infof("Opened Couchbase bucket %s at %s", couchbaseConfig.Bucket, couchbaseConfig.Host)
	return &Couchbase{
		cluster,
		bucket,
		couchbaseConfig,
		config.Logger,
	}, nil
}

// Get gets value by key from the bucket
func (s *Couchbase) Get(key string) ([]byte, error) {
	s.logger.Debug("Couchbase Get: ", key)
	var value []byte
	_, err := s.bucket.Get(key, &value)
	if err == couch.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put upserts value under key
func (s *Couchbase) Put(key string, value []byte) error {
	s.logger.Debugf("Couchbase Put: %s %d bytes", key, len(value))
	if s.config.DurableWrites {
		_, err := s.bucket.UpsertDura(key, value, 0, s.config.ReplicateTo, s.config.PersistTo)
		return err
	}
	_, err := s.bucket.Upsert(key, value, 0)
	return err
}

// Delete removes key from the bucket
func (s *Couchbase) Delete(key string) error {
	s.logger.Debugf("Couchbase Delete: %s", key)
	var err error
	if s.config.DurableWrites {
		_, err = s.bucket.RemoveDura(key, 0, s.config.ReplicateTo, s.config.PersistTo)
	} else {
		_, err = s.bucket.Remove(key, 0)
	}
	if err == couch.ErrKeyNotFound {
		return nil
	}
	return err
}

// Flush does nothing, use DurableWrites to wait for persistence
func (s *Couchbase) Flush() error {
	return nil
}

// Close closes the bucket
func (s *Couchbase) Close() error {
	return s.bucket.Close()
}
