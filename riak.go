package keeper

import (
	riak "github.com/basho/riak-go-client"
)

// Riak is a Store that keeps values in a Riak bucket.
// See: http://basho.com/products/riak-kv/
type Riak struct {
	cluster *riak.Cluster
	bucket  string
	logger  Logger
}

// NewRiak connects to a Riak node and starts the cluster.
// Host must of the format hostname:port.
func NewRiak(config *Config, host string, bucket string) (*Riak, error) {
	config = configOrDefault(config)
	node, err := riak.NewNode(&riak.NodeOptions{
		RemoteAddress: host,
	})
	if err != nil {
		return nil, err
	}
	cluster, err := riak.NewCluster(&riak.ClusterOptions{
		Nodes: []*riak.Node{node},
	})
	if err != nil {
		return nil, err
	}
	if err := cluster.Start(); err != nil {
		return nil, err
	}
	return &Riak{
		cluster,
		bucket,
		config.Logger,
	}, nil
}

// Get fetches value by key
func (s *Riak) Get(key string) ([]byte, error) {
	s.logger.Debug("Riak Get: ", key)
	cmd, err := riak.NewFetchValueCommandBuilder().
		WithBucket(s.bucket).
		WithKey(key).
		Build()
	if err != nil {
		return nil, err
	}
	if err := s.cluster.Execute(cmd); err != nil {
		return nil, err
	}
	rsp := cmd.(*riak.FetchValueCommand).Response
	if rsp == nil || rsp.IsNotFound || len(rsp.Values) == 0 {
		return nil, nil
	}
	return rsp.Values[0].Value, nil
}

// Put stores value under key
func (s *Riak) Put(key string, value []byte) error {
	s.logger.Debugf("Riak Put: %s %d bytes", key, len(value))
	obj := &riak.Object{
		Key:             key,
		ContentType:     "application/json",
		Charset:         "utf-8",
		ContentEncoding: "utf-8",
		Value:           value,
	}
	cmd, err := riak.NewStoreValueCommandBuilder().
		WithBucket(s.bucket).
		WithContent(obj).
		Build()
	if err != nil {
		return err
	}
	return s.cluster.Execute(cmd)
}

// Delete removes key
func (s *Riak) Delete(key string) error {
	s.logger.Debugf("Riak Delete: %s", key)
	cmd, err := riak.NewDeleteValueCommandBuilder().
		WithBucket(s.bucket).
		WithKey(key).
		Build()
	if err != nil {
		return err
	}
	return s.cluster.Execute(cmd)
}

// Flush does nothing for Riak
func (s *Riak) Flush() error {
	return nil
}

// Close stops the cluster
func (s *Riak) Close() error {
	return s.cluster.Stop()
}
