package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Unlock state. A profile is unlocked while its key exists; the TTL is the
// idle window and is refreshed on every request to a protected route.

func (c *Client) SetUnlocked(profileID string, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "unlock:"+profileID, "1", ttl).Err()
}

func (c *Client) IsUnlocked(profileID string) (bool, error) {
	ctx := context.Background()
	n, err := c.rdb.Exists(ctx, "unlock:"+profileID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check unlock state: %w", err)
	}
	return n > 0, nil
}

func (c *Client) RefreshUnlock(profileID string, ttl time.Duration) (bool, error) {
	ctx := context.Background()
	ok, err := c.rdb.Expire(ctx, "unlock:"+profileID, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to refresh unlock state: %w", err)
	}
	return ok, nil
}

func (c *Client) ClearUnlock(profileID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "unlock:"+profileID).Err()
}

// Wizard drafts. One in-flight order intake per profile, serialized as JSON.

func (c *Client) SetWizardDraft(profileID string, draft interface{}, ttl time.Duration) error {
	ctx := context.Background()
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard draft: %w", err)
	}
	return c.rdb.Set(ctx, "wizard:"+profileID, data, ttl).Err()
}

func (c *Client) GetWizardDraft(profileID string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "wizard:"+profileID).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get wizard draft: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) DeleteWizardDraft(profileID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "wizard:"+profileID).Err()
}

// Password reset tokens.

func (c *Client) SetResetToken(token, profileID string, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "reset:"+token, profileID, ttl).Err()
}

func (c *Client) ConsumeResetToken(token string) (string, error) {
	ctx := context.Background()
	val, err := c.rdb.GetDel(ctx, "reset:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to consume reset token: %w", err)
	}
	return val, nil
}

// Notification queue. A per-profile FIFO of transient messages; the whole
// list expires after the display window so stale entries never pile up.

func (c *Client) PushNotification(profileID string, payload interface{}, ttl time.Duration) error {
	ctx := context.Background()
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	key := "notify:" + profileID
	if err := c.rdb.RPush(ctx, key, data).Err(); err != nil {
		return err
	}
	return c.rdb.Expire(ctx, key, ttl).Err()
}

func (c *Client) DrainNotifications(profileID string) ([]string, error) {
	ctx := context.Background()
	key := "notify:" + profileID
	pipe := c.rdb.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to drain notifications: %w", err)
	}
	return items.Val(), nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
