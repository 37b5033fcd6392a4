package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"interviewlens/internal/insight"
)

// CorpusCache keeps per-user corpus snapshots in Redis so the insight
// endpoint does not rebuild the whole history from Mongo every time a
// review panel expands. Writes to interviews or reports invalidate it.
type CorpusCache interface {
	Get(ctx context.Context, userID string) (*insight.Corpus, error)
	Set(ctx context.Context, userID string, corpus *insight.Corpus) error
	Invalidate(ctx context.Context, userID string) error
}

type corpusCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCorpusCache creates a new corpus cache
func NewCorpusCache(client *redis.Client) CorpusCache {
	return &corpusCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *corpusCache) corpusKey(userID string) string {
	return fmt.Sprintf("user:%s:corpus", userID)
}

func (c *corpusCache) Get(ctx context.Context, userID string) (*insight.Corpus, error) {
	data, err := c.client.Get(ctx, c.corpusKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var corpus insight.Corpus
	if err := json.Unmarshal([]byte(data), &corpus); err != nil {
		return nil, err
	}
	return &corpus, nil
}

func (c *corpusCache) Set(ctx context.Context, userID string, corpus *insight.Corpus) error {
	data, err := json.Marshal(corpus)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.corpusKey(userID), data, c.ttl).Err()
}

func (c *corpusCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.corpusKey(userID)).Err()
}
