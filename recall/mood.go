package recall

import (
	"context"

	"github.com/rushteam/cinekit/core"
)

// DefaultMoodTable 返回内置的心情 → 类型集映射（5 个心情，各 3 个类型）。
func DefaultMoodTable() map[string][]string {
	return map[string][]string{
		"happy":       {"Comedy", "Animation", "Adventure"},
		"chill":       {"Drama", "Romance", "Documentary"},
		"adventurous": {"Action", "Adventure", "Sci-Fi"},
		"romantic":    {"Romance", "Drama", "Comedy"},
		"thrilling":   {"Thriller", "Horror", "Action"},
	}
}

// DefaultMoodGenres 是未识别心情 key 的降级类型集。
func DefaultMoodGenres() []string {
	return []string{"Drama", "Comedy"}
}

// Mood 是心情召回源：静态表把心情映射到有序类型集，
// 再整体委托给内容召回。未识别的心情 key 走默认类型集（降级而非报错）。
//
// 产出保留 content_based 标记，由融合层改写为 mood。
type Mood struct {
	Content *ContentBased

	// Table 为 nil 时取 DefaultMoodTable。
	Table map[string][]string

	// Fallback 为 nil 时取 DefaultMoodGenres。
	Fallback []string
}

func (r *Mood) Name() string {
	return "recall.mood"
}

// Resolve 返回心情对应的类型集。
func (r *Mood) Resolve(mood string) []string {
	table := r.Table
	if table == nil {
		table = DefaultMoodTable()
	}
	if genres, ok := table[mood]; ok {
		return genres
	}
	if r.Fallback != nil {
		return r.Fallback
	}
	return DefaultMoodGenres()
}

func (r *Mood) Recall(
	ctx context.Context,
	q Query,
) ([]*core.Candidate, error) {
	if r.Content == nil {
		return nil, nil
	}
	return r.Content.Recall(ctx, Query{
		Genres:  r.Resolve(q.Mood),
		Exclude: q.Exclude,
		Limit:   q.Limit,
	})
}
