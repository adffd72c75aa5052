package store

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rushteam/cinekit/core"
)

// RedisCatalog 是 Redis 实现的 Catalog：物品 JSON 存在一个 Hash 里
// （field 为物品 ID）。AllItems 按 ID 升序返回，保证决胜次序稳定。
type RedisCatalog struct {
	client *redis.Client
	key    string
}

// NewRedisCatalog 创建 Redis 物品库。key 为空时取 "cinekit:catalog"。
func NewRedisCatalog(addr string, db int, key string) (*RedisCatalog, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	if key == "" {
		key = "cinekit:catalog"
	}
	return &RedisCatalog{client: client, key: key}, nil
}

func (c *RedisCatalog) AllItems(ctx context.Context) ([]*core.Item, error) {
	vals, err := c.client.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, err
	}

	out := make([]*core.Item, 0, len(vals))
	for _, raw := range vals {
		var item core.Item
		if json.Unmarshal([]byte(raw), &item) != nil {
			continue // 脏数据可跳过
		}
		out = append(out, &item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (c *RedisCatalog) ByID(ctx context.Context, id int64) (*core.Item, error) {
	raw, err := c.client.HGet(ctx, c.key, strconv.FormatInt(id, 10)).Bytes()
	if err == redis.Nil {
		return nil, core.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	var item core.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// PutItem 入库（覆盖）一个物品。
func (c *RedisCatalog) PutItem(ctx context.Context, item *core.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return c.client.HSet(ctx, c.key, strconv.FormatInt(item.ID, 10), data).Err()
}

func (c *RedisCatalog) Close() error { return c.client.Close() }

var _ core.Catalog = (*RedisCatalog)(nil)

// RedisProfileStore 是 Redis 实现的画像存储：
//   - 画像 JSON 存于 {prefix}:{userID}
//   - {prefix} 本身是成员索引 Set，供 All 枚举
type RedisProfileStore struct {
	client *redis.Client
	prefix string
}

// NewRedisProfileStore 创建 Redis 画像存储。prefix 为空时取 "cinekit:profiles"。
func NewRedisProfileStore(addr string, db int, prefix string) (*RedisProfileStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = "cinekit:profiles"
	}
	return &RedisProfileStore{client: client, prefix: prefix}, nil
}

func (s *RedisProfileStore) profileKey(userID int64) string {
	return s.prefix + ":" + strconv.FormatInt(userID, 10)
}

func (s *RedisProfileStore) Get(ctx context.Context, userID int64) (*core.UserProfile, error) {
	raw, err := s.client.Get(ctx, s.profileKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, core.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	var profile core.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *RedisProfileStore) Put(ctx context.Context, profile *core.UserProfile) error {
	if profile == nil {
		return core.NewDomainError(core.ModuleProfile, core.ErrorCodeInvalidInput, "profile: nil profile")
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.profileKey(profile.UserID), data, 0)
	pipe.SAdd(ctx, s.prefix, strconv.FormatInt(profile.UserID, 10))
	_, err = pipe.Exec(ctx)
	return err
}

// All 返回全部画像，UserID 升序。
func (s *RedisProfileStore) All(ctx context.Context) ([]*core.UserProfile, error) {
	members, err := s.client.SMembers(ctx, s.prefix).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		if id, err := strconv.ParseInt(m, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*core.UserProfile, 0, len(ids))
	for _, id := range ids {
		profile, err := s.Get(ctx, id)
		if err != nil {
			continue // 索引里的悬挂成员可跳过
		}
		out = append(out, profile)
	}
	return out, nil
}

func (s *RedisProfileStore) Close() error { return s.client.Close() }

var _ core.ProfileBrowser = (*RedisProfileStore)(nil)
