package recall

import (
	"context"
	"sort"

	"github.com/rushteam/cinekit/core"
)

// ContentBased 是基于内容的召回源（Content-Based Recommendation）。
//
// 核心思想："用户喜欢某些类型，推荐类型重合且质量高的物品"
//
// 打分：score = GenreWeight * |genres∩target| / max(|target|,1)
//             + QualityWeight * rating / 10
//
// 目标类型集为空时类型分恒为 0，排序退化为纯质量排序——这是确定性
// 降级行为，不是错误。同分时按物品入库顺序决胜（稳定排序）。
type ContentBased struct {
	Catalog core.Catalog

	// GenreWeight / QualityWeight 为 0 时取默认 0.6 / 0.4。
	GenreWeight   float64
	QualityWeight float64
}

func (r *ContentBased) Name() string {
	return "recall.content"
}

func (r *ContentBased) Recall(
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

	genreWeight := r.GenreWeight
	if genreWeight == 0 {
		genreWeight = 0.6
	}
	qualityWeight := r.QualityWeight
	if qualityWeight == 0 {
		qualityWeight = 0.4
	}

	items, err := r.Catalog.AllItems(ctx)
	if err != nil {
		return nil, err
	}

	target := make(map[string]struct{}, len(q.Genres))
	for _, g := range q.Genres {
		target[g] = struct{}{}
	}
	targetSize := len(q.Genres)
	if targetSize < 1 {
		targetSize = 1
	}

	out := make([]*core.Candidate, 0, len(items))
	for _, item := range items {
		if item == nil || q.Excluded(item.ID) {
			continue
		}

		overlap := 0
		for _, g := range item.Genres {
			if _, ok := target[g]; ok {
				overlap++
			}
		}
		genreScore := float64(overlap) / float64(targetSize)
		qualityScore := item.Rating / 10.0

		score := genreWeight*genreScore + qualityWeight*qualityScore
		out = append(out, core.NewCandidate(item, score, core.StrategyContentBased))
	}

	// 稳定排序：同分保持 Catalog 顺序，保证幂等产出
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
