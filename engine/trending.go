package engine

import (
	"context"
	"time"

	"github.com/rushteam/cinekit/core"
	"github.com/rushteam/cinekit/recall"
)

// Trending 返回当前热门榜：纯热门召回的产出，不走融合与多样性修正。
// 新近上映标注 "trending now" / trending，其余标注经典款。
func (e *Engine) Trending(ctx context.Context, limit int) ([]*core.Recommendation, error) {
	if limit <= 0 {
		limit = 10
	}

	cands, err := e.Combiner.Popularity.Recall(ctx, recall.Query{Limit: limit})
	if err != nil {
		return nil, err
	}

	now := time.Now().Year()
	if e.Annotator != nil && e.Annotator.Year != nil {
		now = e.Annotator.Year()
	}

	out := make([]*core.Recommendation, 0, len(cands))
	for _, c := range cands {
		rec := &core.Recommendation{
			Item:         c.Item,
			Score:        c.Score,
			Strategy:     core.StrategyPopularity,
			Explanation:  "all-time favorite",
			DiversityTag: core.TagSimilar,
		}
		if c.Item.Year >= now-1 {
			rec.Explanation = "trending now"
			rec.DiversityTag = core.TagTrending
		}
		out = append(out, rec)
	}
	return out, nil
}
