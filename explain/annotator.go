// Package explain 为最终推荐生成可读的推荐理由与多样性标签。
package explain

import (
	"strings"
	"time"

	"github.com/rushteam/cinekit/core"
)

// Annotator 是解释标注器：(物品, 策略, 可选画像) 的纯函数，
// 产出推荐理由文本与多样性标签。
//
// 理由规则（按优先级）：
//   - collaborative → 固定文案 "peer-similarity match"
//   - content_based → 画像偏好与物品类型有交集时点名交集类型，
//     否则点名物品的第一个类型
//   - popularity → 今年上映 "trending now"；流行度 ≥90 "top rated by
//     viewers"；其余 "popular choice"
//   - mood → 固定文案 "matches your mood"
//   - 其余 → "recommended for you"
//
// 多样性标签与理由相互独立：今年上映 → new；热门策略 → trending；
// 流行度 ≥85 → similar；其余 → diverse。
type Annotator struct {
	// Year 返回当前年份，测试可注入固定值。nil 取 time.Now().Year。
	Year func() int

	// TopPopularity / SimilarPopularity 为 0 时取默认 90 / 85。
	TopPopularity     float64
	SimilarPopularity float64
}

func (a *Annotator) currentYear() int {
	if a.Year != nil {
		return a.Year()
	}
	return time.Now().Year()
}

// Explain 生成推荐理由文本。
func (a *Annotator) Explain(item *core.Item, strategy core.Strategy, profile *core.UserProfile) string {
	switch strategy {
	case core.StrategyCollaborative:
		return "peer-similarity match"

	case core.StrategyContentBased:
		if profile != nil {
			if matching := intersectGenres(item.Genres, profile.PreferredGenres); len(matching) > 0 {
				return "because you like " + strings.Join(matching, ", ")
			}
		}
		if len(item.Genres) > 0 {
			return "matches your taste in " + item.Genres[0]
		}
		return "recommended for you"

	case core.StrategyPopularity:
		top := a.TopPopularity
		if top == 0 {
			top = 90
		}
		switch {
		case item.Year >= a.currentYear():
			return "trending now"
		case item.Popularity >= top:
			return "top rated by viewers"
		default:
			return "popular choice"
		}

	case core.StrategyMood:
		return "matches your mood"
	}
	return "recommended for you"
}

// Tag 生成多样性标签。
func (a *Annotator) Tag(item *core.Item, strategy core.Strategy) core.DiversityTag {
	similar := a.SimilarPopularity
	if similar == 0 {
		similar = 85
	}
	switch {
	case item.Year >= a.currentYear():
		return core.TagNew
	case strategy == core.StrategyPopularity:
		return core.TagTrending
	case item.Popularity >= similar:
		return core.TagSimilar
	default:
		return core.TagDiverse
	}
}

// Annotate 把一条候选转为最终推荐。
func (a *Annotator) Annotate(c *core.Candidate, profile *core.UserProfile) *core.Recommendation {
	return &core.Recommendation{
		Item:         c.Item,
		Score:        c.Score,
		Explanation:  a.Explain(c.Item, c.Strategy, profile),
		Strategy:     c.Strategy,
		DiversityTag: a.Tag(c.Item, c.Strategy),
	}
}

// AnnotateAll 批量标注，保持输入顺序。
func (a *Annotator) AnnotateAll(cands []*core.Candidate, profile *core.UserProfile) []*core.Recommendation {
	out := make([]*core.Recommendation, 0, len(cands))
	for _, c := range cands {
		if c == nil || c.Item == nil {
			continue
		}
		out = append(out, a.Annotate(c, profile))
	}
	return out
}

// intersectGenres 按画像偏好顺序返回交集类型。
func intersectGenres(itemGenres, preferred []string) []string {
	itemSet := make(map[string]struct{}, len(itemGenres))
	for _, g := range itemGenres {
		itemSet[g] = struct{}{}
	}
	out := make([]string, 0, 2)
	for _, g := range preferred {
		if _, ok := itemSet[g]; ok {
			out = append(out, g)
		}
	}
	return out
}
