package rerank

import (
	"context"

	"github.com/rushteam/cinekit/core"
	"github.com/rushteam/cinekit/pipeline"
)

// Diversity 是多样性重排 Node：头部类型过于同质时，把后段第一个能带来
// 新类型的候选换到头部末位。
//
// 规则：
//   - 结果不足 TopWindow（默认 5）条时不做任何修正
//   - 头部 TopWindow 条的类型并集 ≤ MaxDistinct（默认 3）个 → 视为同质
//   - 从后段找第一个含并集外类型的候选，移动到位置 TopWindow-1，
//     其余整体后移一位，找到即停
//
// 这是单次交换的贪心启发式，不是最优多样性求解——消费方可能依赖
// 它的具体产出，保持原样而不做完整重排。修正不改变结果长度。
type Diversity struct {
	TopWindow   int // 默认 5
	MaxDistinct int // 默认 3
}

func (n *Diversity) Name() string {
	return "rerank.diversity"
}

func (n *Diversity) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *Diversity) Process(
	_ context.Context,
	_ *core.RecommendContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	window := n.TopWindow
	if window <= 0 {
		window = 5
	}
	maxDistinct := n.MaxDistinct
	if maxDistinct <= 0 {
		maxDistinct = 3
	}

	if len(cands) < window {
		return cands, nil
	}

	seen := make(map[string]struct{}, 8)
	for _, c := range cands[:window] {
		for _, g := range c.Item.Genres {
			seen[g] = struct{}{}
		}
	}
	if len(seen) > maxDistinct {
		return cands, nil
	}

	for i := window; i < len(cands); i++ {
		if !bringsNewGenre(cands[i], seen) {
			continue
		}
		pick := cands[i]
		copy(cands[window:i+1], cands[window-1:i])
		cands[window-1] = pick
		break
	}
	return cands, nil
}

func bringsNewGenre(c *core.Candidate, seen map[string]struct{}) bool {
	for _, g := range c.Item.Genres {
		if _, ok := seen[g]; !ok {
			return true
		}
	}
	return false
}
