// Package engine 把召回、融合、过滤、重排、解释组装为一次完整的推荐调用。
package engine

import (
	"context"

	"github.com/rushteam/cinekit/core"
	"github.com/rushteam/cinekit/ensemble"
	"github.com/rushteam/cinekit/explain"
	"github.com/rushteam/cinekit/pipeline"
	"github.com/rushteam/cinekit/recall"
	"github.com/rushteam/cinekit/rerank"
)

// Request 是一次推荐请求。所有字段均可选：什么都不给时退化为纯热门推荐。
type Request struct {
	UserID     int64    // 0 表示匿名
	Mood       string   // 心情 key，优先级高于 Genres
	Genres     []string // 显式类型偏好
	ExcludeIDs []int64  // 排除的物品 ID
	Limit      int      // <=0 时取 DefaultLimit
}

// Engine 是推荐引擎：每次调用读取 Catalog / ProfileStore 的当前快照，
// 产出一份带解释的排序结果。引擎自身不持有任何跨请求的可变状态，
// 同一个实例可以被并发使用。
//
// 数据流：召回 fan-out → 加权融合 → 过滤 → 多样性修正 → 解释标注。
type Engine struct {
	Catalog  core.Catalog
	Profiles core.ProfileStore

	Combiner  *ensemble.Combiner
	Diversity *rerank.Diversity
	Annotator *explain.Annotator

	// Nodes 插在融合与多样性修正之间（自定义过滤/重排）。
	Nodes []pipeline.Node

	// DefaultLimit 在请求未指定 Limit 时生效；0 取 20。
	DefaultLimit int
}

// New 用默认参数组装引擎：0.6/0.4 内容权重、7.5 协同评分门槛、
// 1.2/1.1/0.9 策略加权、15/10 召回上限、5/3 多样性窗口。
func New(catalog core.Catalog, profiles core.ProfileStore) *Engine {
	content := &recall.ContentBased{Catalog: catalog}
	popularity := &recall.Popularity{Catalog: catalog}

	return &Engine{
		Catalog:  catalog,
		Profiles: profiles,
		Combiner: &ensemble.Combiner{
			Collaborative: &recall.Collaborative{
				Profiles:   profiles,
				Catalog:    catalog,
				Content:    content,
				Popularity: popularity,
			},
			Content:    content,
			Mood:       &recall.Mood{Content: content},
			Popularity: popularity,
		},
		Diversity: &rerank.Diversity{},
		Annotator: &explain.Annotator{},
	}
}

// Recommend 执行一次推荐。空结果（空物品库 / 全部被排除）是合法产出。
func (e *Engine) Recommend(ctx context.Context, req Request) ([]*core.Recommendation, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = e.DefaultLimit
		if limit <= 0 {
			limit = 20
		}
	}

	// 边界约定：画像在排序开始前解析完毕；未命中即冷启动，不是错误
	profile := e.resolveProfile(ctx, req.UserID)

	rctx := &core.RecommendContext{
		UserID:     req.UserID,
		Mood:       req.Mood,
		Genres:     req.Genres,
		ExcludeIDs: req.ExcludeIDs,
		Limit:      limit,
		User:       profile,
	}

	nodes := make([]pipeline.Node, 0, len(e.Nodes)+2)
	nodes = append(nodes, e.Combiner)
	nodes = append(nodes, e.Nodes...)
	if e.Diversity != nil {
		nodes = append(nodes, e.Diversity)
	}

	p := &pipeline.Pipeline{Nodes: nodes}
	cands, err := p.Run(ctx, rctx, nil)
	if err != nil {
		return nil, err
	}

	annotator := e.Annotator
	if annotator == nil {
		annotator = &explain.Annotator{}
	}
	return annotator.AnnotateAll(cands, profile), nil
}

func (e *Engine) resolveProfile(ctx context.Context, userID int64) *core.UserProfile {
	if e.Profiles == nil || userID == 0 {
		return nil
	}
	profile, err := e.Profiles.Get(ctx, userID)
	if err != nil {
		return nil
	}
	return profile
}
