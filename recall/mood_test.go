package recall

import (
	"context"
	"reflect"
	"testing"

	"github.com/rushteam/cinekit/core"
	"github.com/rushteam/cinekit/store"
)

// TestMood_Resolve 测试心情 → 类型集映射
func TestMood_Resolve(t *testing.T) {
	r := &Mood{}

	tests := []struct {
		mood string
		want []string
	}{
		{"happy", []string{"Comedy", "Animation", "Adventure"}},
		{"chill", []string{"Drama", "Romance", "Documentary"}},
		{"adventurous", []string{"Action", "Adventure", "Sci-Fi"}},
		{"romantic", []string{"Romance", "Drama", "Comedy"}},
		{"thrilling", []string{"Thriller", "Horror", "Action"}},
		{"melancholy", []string{"Drama", "Comedy"}}, // 未识别 → 降级
		{"", []string{"Drama", "Comedy"}},
	}

	for _, tt := range tests {
		t.Run(tt.mood, func(t *testing.T) {
			got := r.Resolve(tt.mood)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve(%q) = %v，期望 %v", tt.mood, got, tt.want)
			}
		})
	}
}

// TestMood_Recall 心情召回与同类型集的内容召回逐条一致
func TestMood_Recall(t *testing.T) {
	catalog := store.NewMemoryCatalog(
		&core.Item{ID: 1, Genres: []string{"Comedy"}, Rating: 7.0},
		&core.Item{ID: 2, Genres: []string{"Horror"}, Rating: 9.0},
		&core.Item{ID: 3, Genres: []string{"Animation", "Adventure"}, Rating: 8.0},
	)
	content := &ContentBased{Catalog: catalog}
	r := &Mood{Content: content}

	got, err := r.Recall(context.Background(), Query{Mood: "happy", Limit: 10})
	if err != nil {
		t.Fatalf("召回失败: %v", err)
	}
	want, err := content.Recall(context.Background(), Query{
		Genres: []string{"Comedy", "Animation", "Adventure"},
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("召回失败: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("长度不一致: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if got[i].Item.ID != want[i].Item.ID || got[i].Score != want[i].Score {
			t.Errorf("位置 %d 与内容召回不一致", i)
		}
		// 产出保留 content_based 标记，由融合层改写
		if got[i].Strategy != core.StrategyContentBased {
			t.Errorf("期望策略 content_based，实际 %s", got[i].Strategy)
		}
	}
}

// TestMood_CustomTable 自定义映射表覆盖内置表
func TestMood_CustomTable(t *testing.T) {
	r := &Mood{
		Table:    map[string][]string{"cozy": {"Romance"}},
		Fallback: []string{"Action"},
	}

	if got := r.Resolve("cozy"); !reflect.DeepEqual(got, []string{"Romance"}) {
		t.Errorf("自定义映射未生效: %v", got)
	}
	// 自定义表不含内置 key 时同样走降级
	if got := r.Resolve("happy"); !reflect.DeepEqual(got, []string{"Action"}) {
		t.Errorf("自定义降级未生效: %v", got)
	}
}
