package store

import (
	"context"
	"sort"
	"sync"

	"github.com/rushteam/cinekit/core"
)

// MemoryCatalog 是内存实现的 Catalog，用于测试/开发/原型。
// AllItems 按入库顺序返回，作为召回同分时的决胜次序。
type MemoryCatalog struct {
	mu    sync.RWMutex
	items []*core.Item
	index map[int64]*core.Item
}

func NewMemoryCatalog(items ...*core.Item) *MemoryCatalog {
	c := &MemoryCatalog{
		items: make([]*core.Item, 0, len(items)),
		index: make(map[int64]*core.Item, len(items)),
	}
	for _, item := range items {
		c.Add(item)
	}
	return c
}

// Add 入库一个物品；ID 已存在时覆盖（保持原入库位置）。
func (c *MemoryCatalog) Add(item *core.Item) {
	if item == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.index[item.ID]; ok {
		for i, it := range c.items {
			if it == old {
				c.items[i] = item
				break
			}
		}
	} else {
		c.items = append(c.items, item)
	}
	c.index[item.ID] = item
}

func (c *MemoryCatalog) AllItems(ctx context.Context) ([]*core.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*core.Item(nil), c.items...), nil
}

func (c *MemoryCatalog) ByID(ctx context.Context, id int64) (*core.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.index[id]
	if !ok {
		return nil, core.ErrItemNotFound
	}
	return item, nil
}

var _ core.Catalog = (*MemoryCatalog)(nil)

// MemoryProfileStore 是内存实现的画像存储。
// Get/All 返回深拷贝快照：核心读取的是调用时刻的画像状态，
// 反馈协作方的后续写入不会影响进行中的请求。
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[int64]*core.UserProfile
}

func NewMemoryProfileStore(profiles ...*core.UserProfile) *MemoryProfileStore {
	s := &MemoryProfileStore{
		profiles: make(map[int64]*core.UserProfile, len(profiles)),
	}
	for _, p := range profiles {
		if p != nil {
			s.profiles[p.UserID] = p.Clone()
		}
	}
	return s
}

func (s *MemoryProfileStore) Get(ctx context.Context, userID int64) (*core.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, core.ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (s *MemoryProfileStore) Put(ctx context.Context, profile *core.UserProfile) error {
	if profile == nil {
		return core.NewDomainError(core.ModuleProfile, core.ErrorCodeInvalidInput, "profile: nil profile")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[profile.UserID] = profile.Clone()
	return nil
}

// All 返回全部画像快照，UserID 升序（协同召回的确定性依赖此顺序）。
func (s *MemoryProfileStore) All(ctx context.Context) ([]*core.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*core.UserProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

var _ core.ProfileBrowser = (*MemoryProfileStore)(nil)
