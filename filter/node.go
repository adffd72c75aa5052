package filter

import (
	"context"

	"github.com/rushteam/cinekit/core"
	"github.com/rushteam/cinekit/pipeline"
)

// Node 是过滤 Node：依次应用多个 Filter，任一判定过滤即移除候选。
type Node struct {
	Filters []Filter
}

func (n *Node) Name() string        { return "filter" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindFilter }

func (n *Node) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(n.Filters) == 0 {
		return cands, nil
	}

	out := make([]*core.Candidate, 0, len(cands))
	for _, c := range cands {
		filtered := false
		for _, f := range n.Filters {
			drop, err := f.ShouldFilter(ctx, rctx, c)
			if err != nil {
				continue // 单个过滤器失败不影响其他过滤器
			}
			if drop {
				filtered = true
				break
			}
		}
		if !filtered {
			out = append(out, c)
		}
	}
	return out, nil
}
