package recall

import (
	"context"
	"testing"

	"github.com/rushteam/cinekit/core"
	"github.com/rushteam/cinekit/store"
)

func collabFixture(t *testing.T) (*Collaborative, *store.MemoryCatalog, *store.MemoryProfileStore) {
	t.Helper()

	catalog := store.NewMemoryCatalog(
		&core.Item{ID: 1, Title: "Seen", Genres: []string{"Sci-Fi"}, Rating: 8.0, Year: 2020, Popularity: 70},
		&core.Item{ID: 2, Title: "PeerPick", Genres: []string{"Thriller"}, Rating: 8.5, Year: 2021, Popularity: 75},
		&core.Item{ID: 3, Title: "LowRated", Genres: []string{"Drama"}, Rating: 7.0, Year: 2019, Popularity: 60},
		&core.Item{ID: 4, Title: "Unrated", Genres: []string{"Action"}, Rating: 9.0, Year: 2022, Popularity: 88},
		&core.Item{ID: 5, Title: "Filler", Genres: []string{"Sci-Fi"}, Rating: 7.8, Year: 2018, Popularity: 50},
	)

	target := core.NewUserProfile(1)
	target.PreferredGenres = []string{"Sci-Fi"}
	target.AddWatch(1)

	// peer 2：与目标用户有交集（都看过 1），
	// 对 2 评分 8.0（通过门槛），对 3 评分 7.0（低于门槛），4 未评分（按默认 7.5 计）
	peer2 := core.NewUserProfile(2)
	peer2.AddWatch(1)
	peer2.AddWatch(2)
	peer2.AddWatch(3)
	peer2.AddWatch(4)
	peer2.SetRating(2, 8.0)
	peer2.SetRating(3, 7.0)

	// peer 3：与目标用户无交集，不是相似用户
	peer3 := core.NewUserProfile(3)
	peer3.AddWatch(5)
	peer3.SetRating(5, 9.5)

	profiles := store.NewMemoryProfileStore(target, peer2, peer3)

	content := &ContentBased{Catalog: catalog}
	popularity := &Popularity{Catalog: catalog, Year: func() int { return 2023 }}
	r := &Collaborative{
		Profiles:   profiles,
		Catalog:    catalog,
		Content:    content,
		Popularity: popularity,
	}
	return r, catalog, profiles
}

// TestCollaborative_PeerScore 测试相似用户打分与评分门槛
func TestCollaborative_PeerScore(t *testing.T) {
	r, _, _ := collabFixture(t)

	out, err := r.Recall(context.Background(), Query{UserID: 1, Limit: 2})
	if err != nil {
		t.Fatalf("召回失败: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("期望 2 个候选，实际 %d 个", len(out))
	}

	byID := make(map[int64]*core.Candidate)
	for _, c := range out {
		byID[c.Item.ID] = c
	}

	// 物品 2: 0.7*8.0/10 + 0.3*8.5/10 = 0.815
	if c, ok := byID[2]; !ok {
		t.Error("物品 2 应被召回")
	} else {
		if !almostEqual(c.Score, 0.815) {
			t.Errorf("物品 2 期望分数 0.815，实际 %v", c.Score)
		}
		if c.Strategy != core.StrategyCollaborative {
			t.Errorf("期望策略 collaborative，实际 %s", c.Strategy)
		}
	}

	// 物品 4 未评分按默认 7.5 计: 0.7*7.5/10 + 0.3*9.0/10 = 0.795
	if c, ok := byID[4]; !ok {
		t.Error("未评分物品应按默认分通过门槛")
	} else if !almostEqual(c.Score, 0.795) {
		t.Errorf("物品 4 期望分数 0.795，实际 %v", c.Score)
	}

	// 物品 3 评分 7.0 低于门槛 7.5，物品 1 已看过，物品 5 来自非相似用户
	for _, id := range []int64{1, 3, 5} {
		if _, ok := byID[id]; ok {
			t.Errorf("物品 %d 不应被协同召回", id)
		}
	}
}

// TestCollaborative_ContentPadding 不足 Limit 时用内容召回补足
func TestCollaborative_ContentPadding(t *testing.T) {
	r, _, _ := collabFixture(t)

	out, err := r.Recall(context.Background(), Query{UserID: 1, Limit: 4})
	if err != nil {
		t.Fatalf("召回失败: %v", err)
	}

	strategies := make(map[core.Strategy]int)
	seen := make(map[int64]struct{})
	for _, c := range out {
		strategies[c.Strategy]++
		if _, dup := seen[c.Item.ID]; dup {
			t.Errorf("物品 %d 重复出现", c.Item.ID)
		}
		seen[c.Item.ID] = struct{}{}
		if c.Item.ID == 1 {
			t.Error("已看过的物品出现在补足结果里")
		}
	}

	if strategies[core.StrategyCollaborative] != 2 {
		t.Errorf("期望 2 个协同候选，实际 %d 个", strategies[core.StrategyCollaborative])
	}
	// 补足候选保留 content_based 标记
	if strategies[core.StrategyContentBased] == 0 {
		t.Error("期望内容补足候选")
	}
}

// TestCollaborative_ColdStart 无画像 / 无观影历史 → 热门兜底，产出逐条一致
func TestCollaborative_ColdStart(t *testing.T) {
	r, _, profiles := collabFixture(t)

	empty := core.NewUserProfile(9)
	empty.PreferredGenres = []string{"Drama"}
	if err := profiles.Put(context.Background(), empty); err != nil {
		t.Fatalf("写入画像失败: %v", err)
	}

	tests := []struct {
		name   string
		userID int64
	}{
		{"unknown user", 99},
		{"anonymous", 0},
		{"empty watch history", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Recall(context.Background(), Query{UserID: tt.userID, Limit: 3})
			if err != nil {
				t.Fatalf("召回失败: %v", err)
			}
			want, err := r.Popularity.Recall(context.Background(), Query{UserID: tt.userID, Limit: 3})
			if err != nil {
				t.Fatalf("召回失败: %v", err)
			}

			if len(got) != len(want) {
				t.Fatalf("长度不一致: %d vs %d", len(got), len(want))
			}
			for i := range got {
				if got[i].Item.ID != want[i].Item.ID || got[i].Score != want[i].Score ||
					got[i].Strategy != want[i].Strategy {
					t.Errorf("位置 %d 与热门召回不一致", i)
				}
			}
		})
	}
}

// TestCollaborative_UnknownItem 相似用户历史里的未知物品直接跳过
func TestCollaborative_UnknownItem(t *testing.T) {
	r, _, profiles := collabFixture(t)

	peer, err := profiles.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("读取画像失败: %v", err)
	}
	peer.AddWatch(777) // 不在物品库里
	peer.SetRating(777, 9.9)
	if err := profiles.Put(context.Background(), peer); err != nil {
		t.Fatalf("写入画像失败: %v", err)
	}

	out, err := r.Recall(context.Background(), Query{UserID: 1, Limit: 10})
	if err != nil {
		t.Fatalf("未知物品不应导致失败: %v", err)
	}
	for _, c := range out {
		if c.Item.ID == 777 {
			t.Error("未知物品出现在结果里")
		}
	}
}

// TestCollaborative_Exclude 排除集同时作用于协同与补足
func TestCollaborative_Exclude(t *testing.T) {
	r, _, _ := collabFixture(t)

	out, err := r.Recall(context.Background(), Query{
		UserID:  1,
		Exclude: map[int64]struct{}{2: {}, 5: {}},
		Limit:   10,
	})
	if err != nil {
		t.Fatalf("召回失败: %v", err)
	}
	for _, c := range out {
		if c.Item.ID == 2 || c.Item.ID == 5 {
			t.Errorf("被排除的物品 %d 出现在结果里", c.Item.ID)
		}
	}
}
