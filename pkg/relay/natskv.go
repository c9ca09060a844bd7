package relay

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/relaywire/relay-go/internal/constants"
)

// NATSKVConfig configures a NATS JetStream key-value cache backend.
type NATSKVConfig struct {
	// URL is the NATS server URL.
	URL string

	// Bucket is the KV bucket name. Created if it does not exist.
	Bucket string

	// TTL is the bucket-level entry lifetime. Zero uses the default cache TTL.
	TTL time.Duration
}

// NATSKVCache stores cache entries in a NATS JetStream KV bucket, letting
// multiple processes share one response cache.
type NATSKVCache struct {
	conn *nats.Conn
	kv   jetstream.KeyValue
}

// NewNATSKVCache connects to NATS and binds the configured bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	conn, err := nats.Connect(config.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	ttl := config.TTL
	if ttl == 0 {
		ttl = constants.DefaultCacheTTL
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShortHTTPTimeout)
	defer cancel()

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:       config.Bucket,
		TTL:          ttl,
		MaxValueSize: constants.MaxCacheValueSize,
	})
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("binding KV bucket %q: %w", config.Bucket, err)
	}

	return &NATSKVCache{
		conn: conn,
		kv:   kv,
	}, nil
}

// kvKey maps arbitrary cache keys onto the KV bucket's restricted key
// alphabet.
func kvKey(key string) string {
	sum := sha256.Sum256([]byte(key))

	return hex.EncodeToString(sum[:])
}

// Get retrieves an entry from the bucket.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kvEntry, err := c.kv.Get(ctx, kvKey(key))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, ErrCacheKeyNotFound
		}

		return nil, fmt.Errorf("getting cache entry: %w", err)
	}

	var entry CacheEntry

	err = json.Unmarshal(kvEntry.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	if entry.Expired() {
		_ = c.kv.Delete(ctx, kvKey(key))

		return nil, ErrCacheKeyNotFound
	}

	return &entry, nil
}

// Set stores an entry in the bucket.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	_, err = c.kv.Put(ctx, kvKey(key), data)
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}

	return nil
}

// Delete removes an entry from the bucket.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(ctx, kvKey(key))
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("deleting cache entry: %w", err)
	}

	return nil
}

// Clear removes all entries from the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing cache keys: %w", err)
	}

	for _, key := range keys {
		err := c.kv.Delete(ctx, key)
		if err != nil {
			return fmt.Errorf("deleting cache entry: %w", err)
		}
	}

	return nil
}

// Has checks if a live entry exists for the key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Close drains the NATS connection.
func (c *NATSKVCache) Close() error {
	return c.conn.Drain()
}
