package infra_redis_catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis"
)

// Driver keeps the model tag list under a single key with a TTL.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	key string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Driver) Get(ctx context.Context) ([]string, bool, error) {
	raw, err := d.client.WithContext(ctx).Get(d.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, false, err
	}
	return tags, true, nil
}

func (d *Driver) Set(ctx context.Context, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return err
	}
	return d.client.WithContext(ctx).Set(d.key, raw, d.ttl).Err()
}

func (d *Driver) Invalidate(ctx context.Context) error {
	return d.client.WithContext(ctx).Del(d.key).Err()
}
