package core

// RecommendContext 承载一次推荐请求的全部输入，贯穿整个 Pipeline 透传。
// 核心是无状态的：每次请求读取 Catalog / ProfileStore 的当前快照并返回值，
// 不持有任何跨请求的可变状态。
type RecommendContext struct {
	// UserID 为 0 表示匿名请求（无个性化路径）。
	UserID int64

	// Mood 心情 key（happy / chill / adventurous / romantic / thrilling），
	// 未识别的 key 走默认类型集，空表示不启用心情路径。
	Mood string

	// Genres 显式指定的类型偏好，优先级低于 Mood。
	Genres []string

	// ExcludeIDs 需要排除的物品 ID（任何召回源都不得返回）。
	ExcludeIDs []int64

	// Limit 最终返回的推荐条数上限。
	Limit int

	// User 是已解析的画像快照；nil 表示冷启动。
	// 按边界约定，画像在排序开始前解析完毕，核心不在计算中途拉取。
	User *UserProfile

	// Params 请求级扩展参数，供自定义 Node / 过滤规则使用。
	Params map[string]any
}

// ExcludeSet 返回排除集的集合形式。
func (rctx *RecommendContext) ExcludeSet() map[int64]struct{} {
	set := make(map[int64]struct{}, len(rctx.ExcludeIDs))
	for _, id := range rctx.ExcludeIDs {
		set[id] = struct{}{}
	}
	return set
}
