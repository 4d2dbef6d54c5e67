package keeper

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/net/context"
	elastic "gopkg.in/olivere/elastic.v5"
)

const defaultIndexSettings = `{
	"settings": {
		"index.translog.durability": "request"
	},
	"mappings": {
		"%s": {
			"properties": {
				"value": {"type": "text", "index": false}
			}
		}
	}
}`

// elasticsearchDocument wraps stored bytes, Elasticsearch only accepts
// objects as documents while stored values may be any JSON text.
type elasticsearchDocument struct {
	Value string `json:"value"`
}

// Elasticsearch is a Store that keeps one document per key in an index.
// The stored value is kept as an unindexed string field.
type Elasticsearch struct {
	client    *elastic.Client
	context   context.Context
	indexName string
	typeName  string
	logger    Logger
}

// NewElasticsearch connects to url and creates the index when it does not exist yet.
func NewElasticsearch(config *Config, url, indexName, typeName string) (*Elasticsearch, error) {
	config = configOrDefault(config)
	client, err := elastic.NewClient(
		elastic.SetURL(url),
		elastic.SetSniff(false),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create Elasticsearch client to %q", url)
	}
	config.Logger.Info("Connected to Elasticsearch at ", url)
	return NewElasticsearchFromClient(config, client, indexName, typeName)
}

// NewElasticsearchFromClient uses an existing client and creates the index when needed.
func NewElasticsearchFromClient(config *Config, client *elastic.Client, indexName, typeName string) (*Elasticsearch, error) {
	config = configOrDefault(config)
	s := &Elasticsearch{
		client:    client,
		context:   context.Background(),
		indexName: indexName,
		typeName:  typeName,
		logger:    config.Logger,
	}
	if err := s.checkOrCreateIndex(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Elasticsearch) checkOrCreateIndex() error {
	exists, err := s.client.IndexExists(s.indexName).Do(s.context)
	if err != nil {
		return errors.Wrapf(err, "failed to check if index %s exists", s.indexName)
	}
	if exists {
		return nil
	}
	s.logger.Infof("Creating index %s", s.indexName)
	_, err = s.client.
		CreateIndex(s.indexName).
		BodyString(fmt.Sprintf(defaultIndexSettings, s.typeName)).
		Do(s.context)
	if err != nil {
		return errors.Wrapf(err, "failed to create index %s", s.indexName)
	}
	return nil
}

// Get gets value by key from store
func (s *Elasticsearch) Get(key string) ([]byte, error) {
	s.logger.Debug("Elasticsearch Get: ", key)
	result, err := s.client.Get().
		Index(s.indexName).
		Type(s.typeName).
		Id(key).
		Do(s.context)
	if elastic.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !result.Found || result.Source == nil {
		return nil, nil
	}
	var doc elasticsearchDocument
	if err := json.Unmarshal(*result.Source, &doc); err != nil {
		return nil, errors.Wrapf(err, "malformed document %s/%s/%s", s.indexName, s.typeName, key)
	}
	return []byte(doc.Value), nil
}

// Put indexes the value under key, replacing any previous document
func (s *Elasticsearch) Put(key string, value []byte) error {
	s.logger.Debugf("Elasticsearch Put: %s/%s/%s %d bytes", s.indexName, s.typeName, key, len(value))
	_, err := s.client.Index().
		Index(s.indexName).
		Type(s.typeName).
		Id(key).
		BodyJson(elasticsearchDocument{string(value)}).
		Do(s.context)
	return err
}

// Delete removes key from store
func (s *Elasticsearch) Delete(key string) error {
	s.logger.Debug("Elasticsearch Delete: ", key)
	_, err := s.client.Delete().
		Index(s.indexName).
		Type(s.typeName).
		Id(key).
		Do(s.context)
	if elastic.IsNotFound(err) {
		return nil
	}
	return err
}

// Flush the Elasticsearch translog of the index to disk
func (s *Elasticsearch) Flush() error {
	s.logger.Info("Elasticsearch Flush...")
	_, err := s.client.Flush(s.indexName).
		WaitIfOngoing(true).
		Do(s.context)
	s.logger.Info("Elasticsearch Flush complete")
	return err
}

// GetClient return underlying elastic.Client
func (s *Elasticsearch) GetClient() *elastic.Client {
	return s.client
}
