package keeper

import (
	cassandra "github.com/gocql/gocql"
)

// CassandraQuery is a CQL statement with its bindings
type CassandraQuery struct {
	Statement string
	Bindings  []interface{}
}

// CassandraQueries builds the statements used by Cassandra, so callers
// control keyspace, table and column names.
// Select must return exactly one blob column.
type CassandraQueries interface {
	Select(key string) CassandraQuery
	Insert(key string, value []byte) CassandraQuery
	Delete(key string) CassandraQuery
}

// Cassandra is an implementation of Store that uses Cassandra.
// See https://github.com/gocql/gocql
type Cassandra struct {
	session *cassandra.Session
	queries CassandraQueries
	logger  Logger
}

// NewCassandra creates Cassandra instances on top of an open session.
func NewCassandra(config *Config, session *cassandra.Session, queries CassandraQueries) *Cassandra {
	config = configOrDefault(config)
	return &Cassandra{
		session,
		queries,
		config.Logger,
	}
}

// Get runs the Select query. Returns nil, nil when no row matches.
func (c *Cassandra) Get(key string) ([]byte, error) {
	c.logger.Debug("Cassandra Get: ", key)
	query := c.queries.Select(key)
	var value []byte
	err := c.session.Query(query.Statement, query.Bindings...).Scan(&value)
	if err == cassandra.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put runs the Insert query
func (c *Cassandra) Put(key string, value []byte) error {
	c.logger.Debugf("Cassandra Put: %s %d bytes", key, len(value))
	query := c.queries.Insert(key, value)
	return c.session.Query(query.Statement, query.Bindings...).Exec()
}

// Delete runs the Delete query
func (c *Cassandra) Delete(key string) error {
	c.logger.Debugf("Cassandra Delete: %s", key)
	query := c.queries.Delete(key)
	return c.session.Query(query.Statement, query.Bindings...).Exec()
}

// Flush does nothing, Cassandra writes are durable once acknowledged
func (c *Cassandra) Flush() error {
	return nil
}
