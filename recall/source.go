package recall

import (
	"context"

	"github.com/rushteam/cinekit/core"
)

// Query 是一次召回的输入：目标类型集 / 排除集 / 条数上限等。
// 各召回源只消费自己关心的字段。
type Query struct {
	// UserID 目标用户（协同召回使用），0 表示匿名。
	UserID int64

	// Genres 目标类型集（内容召回使用）。
	Genres []string

	// Mood 心情 key（心情召回使用）。
	Mood string

	// Exclude 排除集：任何召回源都不得返回其中的物品。
	Exclude map[int64]struct{}

	// Limit 返回条数上限。L ≥ 0，0 表示不返回任何候选。
	Limit int
}

// Excluded 判断物品是否在排除集中。
func (q Query) Excluded(itemID int64) bool {
	_, ok := q.Exclude[itemID]
	return ok
}

// Source 表示一个可复用的召回源（内容/协同/热门/心情）。
// 你可以把它理解为"可并发 fan-out 的策略单元"：各源相互独立、
// 无共享可变状态，融合层可以并发执行再做确定性合并。
type Source interface {
	Name() string
	Recall(ctx context.Context, q Query) ([]*core.Candidate, error)
}

// capLimit 统一 Limit 语义：负数按 0 处理。
func capLimit(limit int) int {
	if limit < 0 {
		return 0
	}
	return limit
}
