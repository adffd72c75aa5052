package filter

import (
	"context"

	"github.com/rushteam/cinekit/core"
)

// ExcludeFilter 按物品 ID 过滤：请求的排除集 + 静态黑名单。
// 各召回源自身已经尊重排除集，此过滤器作为 Pipeline 级的兜底约束，
// 保证自定义召回源也不会漏出被排除的物品。
type ExcludeFilter struct {
	// ItemIDs 是静态黑名单。
	ItemIDs []int64

	// UseRequestExcludes 为 true 时同时应用 rctx.ExcludeIDs。
	UseRequestExcludes bool
}

func (f *ExcludeFilter) Name() string {
	return "filter.exclude"
}

func (f *ExcludeFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	c *core.Candidate,
) (bool, error) {
	if c == nil || c.Item == nil {
		return true, nil
	}

	for _, id := range f.ItemIDs {
		if c.Item.ID == id {
			return true, nil
		}
	}

	if f.UseRequestExcludes && rctx != nil {
		for _, id := range rctx.ExcludeIDs {
			if c.Item.ID == id {
				return true, nil
			}
		}
	}
	return false, nil
}
