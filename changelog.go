package keeper

import (
	"github.com/Shopify/sarama"
)

// Changelog is a Store decorator that mirrors every change to a Kafka topic.
// Put produces the value under its key and Delete produces a tombstone
// (nil value), so a compacted topic holds the latest state of every key.
// Changes are produced after the wrapped store accepted them.
type Changelog struct {
	store    Store
	producer sarama.SyncProducer
	topic    string
	logger   Logger
}

// NewChangelog wraps store, producing changes to topic with producer.
func NewChangelog(config *Config, store Store, producer sarama.SyncProducer, topic string) *Changelog {
	config = configOrDefault(config)
	return &Changelog{
		store,
		producer,
		topic,
		config.Logger,
	}
}

// Get reads from the wrapped store only
func (c *Changelog) Get(key string) ([]byte, error) {
	return c.store.Get(key)
}

// Put writes to the wrapped store and produces the value
func (c *Changelog) Put(key string, value []byte) error {
	if err := c.store.Put(key, value); err != nil {
		return err
	}
	return c.send(&sarama.ProducerMessage{
		Topic: c.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
}

// Delete deletes from the wrapped store and produces a tombstone
func (c *Changelog) Delete(key string) error {
	if err := c.store.Delete(key); err != nil {
		return err
	}
	return c.send(&sarama.ProducerMessage{
		Topic: c.topic,
		Key:   sarama.StringEncoder(key),
	})
}

// Flush flushes the wrapped store, produced messages are already acknowledged
func (c *Changelog) Flush() error {
	return c.store.Flush()
}

func (c *Changelog) send(msg *sarama.ProducerMessage) error {
	partition, offset, err := c.producer.SendMessage(msg)
	if err != nil {
		c.logger.Errorf("Changelog send to %s failed: %s", c.topic, err)
		return err
	}
	c.logger.Debugf("Changelog sent %s to %s/%d@%d", msg.Key, c.topic, partition, offset)
	return nil
}
