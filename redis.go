package keeper

import (
	"fmt"

	"github.com/garyburd/redigo/redis"
)

// Redis is an implementation of Store that uses Redis.
// Each instance provides key-value access to keys with a specific prefix,
// so several keepers can share one Redis database.
// This implementation uses Gary Burd's Go Redis client.
// See https://github.com/garyburd/redigo
type Redis struct {
	conn      redis.Conn
	keyPrefix string
	logger    Logger
}

// NewRedis creates Redis instances. All keys read and written in Redis are of the form:
//	{keyPrefix}/{key}
func NewRedis(config *Config, conn redis.Conn, keyPrefix string) *Redis {
	config = configOrDefault(config)
	return &Redis{
		conn,
		keyPrefix,
		config.Logger,
	}
}

func (s *Redis) getPrefixedKey(key string) string {
	return fmt.Sprintf("%s/%s", s.keyPrefix, key)
}

// Get gets a value by key.
// Returns nil, nil if the key is missing.
// It is implemented using the Redis GET command.
// See https://redis.io/commands/get
func (s *Redis) Get(key string) ([]byte, error) {
	s.logger.Debug("Redis Get: ", s.getPrefixedKey(key))
	value, err := s.conn.Do("GET", s.getPrefixedKey(key))
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return redis.Bytes(value, err)
}

// Put inserts or updates a value by key.
// It is implemented using the Redis SET command.
// See https://redis.io/commands/set
func (s *Redis) Put(key string, value []byte) error {
	s.logger.Debugf("Redis Put: %s %d bytes", s.getPrefixedKey(key), len(value))
	_, err := s.conn.Do("SET", s.getPrefixedKey(key), value)
	return err
}

// Delete deletes a value by key.
// It is implemented using the Redis DEL command.
// See https://redis.io/commands/del
func (s *Redis) Delete(key string) error {
	s.logger.Debugf("Redis Delete: %s", s.getPrefixedKey(key))
	_, err := s.conn.Do("DEL", s.getPrefixedKey(key))
	return err
}

// Flush executes the SAVE command.
// See https://redis.io/commands/save
func (s *Redis) Flush() error {
	s.logger.Info("Redis Flush...")
	_, err := s.conn.Do("SAVE")
	s.logger.Info("Redis Flush complete")
	return err
}
