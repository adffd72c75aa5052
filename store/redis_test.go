package store

import (
	"context"
	"testing"

	"github.com/rushteam/cinekit/core"
)

// TestRedisCatalog 测试 Redis 物品库
// 注意：这是一个示例测试，实际使用时需要连接真实的 Redis 服务器
func TestRedisCatalog(t *testing.T) {
	t.Skip("需要连接真实的 Redis 服务器才能运行")

	ctx := context.Background()

	catalog, err := NewRedisCatalog("localhost:6379", 0, "")
	if err != nil {
		t.Fatalf("创建 Redis 物品库失败: %v", err)
	}

	if err := catalog.PutItem(ctx, &core.Item{ID: 1, Title: "Inception", Rating: 8.8}); err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	item, err := catalog.ByID(ctx, 1)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if item.Title != "Inception" {
		t.Errorf("期望 Inception，实际 %s", item.Title)
	}

	if _, err := catalog.ByID(ctx, 999); !core.IsItemNotFound(err) {
		t.Errorf("期望 not-found 错误，实际 %v", err)
	}
}

// TestRedisProfileStore 测试 Redis 画像存储
// 注意：这是一个示例测试，实际使用时需要连接真实的 Redis 服务器
func TestRedisProfileStore(t *testing.T) {
	t.Skip("需要连接真实的 Redis 服务器才能运行")

	ctx := context.Background()

	s, err := NewRedisProfileStore("localhost:6379", 0, "")
	if err != nil {
		t.Fatalf("创建 Redis 画像存储失败: %v", err)
	}

	p := core.NewUserProfile(1)
	p.AddWatch(10)
	if err := s.Put(ctx, p); err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	got, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if len(got.WatchHistory) != 1 {
		t.Errorf("历史错误: %v", got.WatchHistory)
	}

	all, err := s.All(ctx)
	if err != nil {
		t.Fatalf("枚举失败: %v", err)
	}
	if len(all) == 0 {
		t.Error("期望非空画像列表")
	}
}
