package filter

import (
	"context"

	"github.com/rushteam/cinekit/core"
	"github.com/rushteam/cinekit/pkg/dsl"
)

// RuleFilter 是规则过滤器：CEL 表达式判为 false 的候选被过滤。
// 表达式在构造时编译一次。
//
// 示例：
//   - `item.rating >= 6.0` → 只保留评分 6 分以上的物品
//   - `!("Horror" in item.genres)` → 剔除恐怖片
//   - `candidate.strategy != "popularity" || item.popularity >= 80.0`
type RuleFilter struct {
	program *dsl.Program
}

// NewRuleFilter 编译表达式并创建规则过滤器。
func NewRuleFilter(expr string) (*RuleFilter, error) {
	program, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &RuleFilter{program: program}, nil
}

func (f *RuleFilter) Name() string {
	return "filter.rule"
}

// Expr 返回规则表达式文本。
func (f *RuleFilter) Expr() string {
	return f.program.Expr()
}

func (f *RuleFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	c *core.Candidate,
) (bool, error) {
	if c == nil || c.Item == nil {
		return true, nil
	}
	keep, err := f.program.Evaluate(c, rctx)
	if err != nil {
		// 规则求值失败按保留处理：过滤是收紧约束，不应让请求失败
		return false, nil
	}
	return !keep, nil
}
