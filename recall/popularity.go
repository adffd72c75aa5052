package recall

import (
	"context"
	"sort"
	"time"

	"github.com/rushteam/cinekit/core"
)

// RecencyBoost 是热门召回的新近度加权配置。
// 三档结构固定；年份阈值按"距当前年的偏移"表达，避免绝对年份
// 随真实时间推移悄悄过期。
type RecencyBoost struct {
	// RecentYears 内（含当年）上映 → Recent 加权。默认 1（今年或去年）。
	RecentYears int
	// MidYears 内上映 → Mid 加权。默认 3。
	MidYears int

	Recent float64 // 默认 1.0
	Mid    float64 // 默认 0.9
	Old    float64 // 默认 0.8
}

func (b RecencyBoost) withDefaults() RecencyBoost {
	if b.RecentYears == 0 {
		b.RecentYears = 1
	}
	if b.MidYears == 0 {
		b.MidYears = 3
	}
	if b.Recent == 0 {
		b.Recent = 1.0
	}
	if b.Mid == 0 {
		b.Mid = 0.9
	}
	if b.Old == 0 {
		b.Old = 0.8
	}
	return b
}

// Popularity 是热门召回源：流行度 × 新近度加权。
//
// 打分：score = popularity/100 * boost
// boost 档位（参考行为：now=2023 时 ≥2022→1.0、≥2020→0.9、其余→0.8）。
type Popularity struct {
	Catalog core.Catalog

	// Boost 新近度加权；零值字段取默认档位。
	Boost RecencyBoost

	// Year 返回当前年份，测试可注入固定值。nil 取 time.Now().Year。
	Year func() int
}

func (r *Popularity) Name() string {
	return "recall.popularity"
}

func (r *Popularity) currentYear() int {
	if r.Year != nil {
		return r.Year()
	}
	return time.Now().Year()
}

func (r *Popularity) Recall(
	ctx context.Context,
	q Query,
) ([]*core.Candidate, error) {
	if r.Catalog == nil {
		return nil, nil
	}

	limit := capLimit(q.Limit)
	if limit == 0 {
		return nil, nil
	}

	items, err := r.Catalog.AllItems(ctx)
	if err != nil {
		return nil, err
	}

	boost := r.Boost.withDefaults()
	now := r.currentYear()

	out := make([]*core.Candidate, 0, len(items))
	for _, item := range items {
		if item == nil || q.Excluded(item.ID) {
			continue
		}

		factor := boost.Old
		switch {
		case item.Year >= now-boost.RecentYears:
			factor = boost.Recent
		case item.Year >= now-boost.MidYears:
			factor = boost.Mid
		}

		score := item.Popularity / 100.0 * factor
		out = append(out, core.NewCandidate(item, score, core.StrategyPopularity))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
