package rerank

import (
	"context"

	"github.com/rushteam/cinekit/core"
	"github.com/rushteam/cinekit/pipeline"
)

// TopN 是截断 Node：保留前 N 条候选。
// 融合层自身会按请求 Limit 截断，此 Node 用于配置驱动的 Pipeline
// 里显式控制结果规模，或配合多样性重排使用。
//
// N <= 0 时不截断。
type TopN struct {
	N int
}

func (n *TopN) Name() string {
	return "rerank.topn"
}

func (n *TopN) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopN) Process(
	_ context.Context,
	_ *core.RecommendContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.N <= 0 || len(cands) <= n.N {
		return cands, nil
	}
	return cands[:n.N], nil
}
