package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/cinekit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("item", cel.DynType),
		cel.Variable("candidate", cel.DynType),
		cel.Variable("rctx", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Program 是预编译的候选规则表达式，使用 CEL (Common Expression
// Language) 实现。表达式在构造时编译一次，之后可对任意候选求值。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：item.rating >= 7.0 / candidate.score > 0.5
//   - 字符串：candidate.strategy == "popularity"
//   - 包含："Action" in item.genres
//   - 逻辑：item.year >= 2000 && item.popularity >= 80.0
type Program struct {
	expr string
	prg  cel.Program
}

// Compile 编译一条规则表达式。
func Compile(expr string) (*Program, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}

	return &Program{expr: expr, prg: prg}, nil
}

// Expr 返回原始表达式文本。
func (p *Program) Expr() string { return p.expr }

// Evaluate 对一条候选求值，返回布尔结果。
func (p *Program) Evaluate(c *core.Candidate, rctx *core.RecommendContext) (bool, error) {
	out, _, err := p.prg.Eval(buildInput(c, rctx))
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func buildInput(c *core.Candidate, rctx *core.RecommendContext) map[string]any {
	genres := make([]any, 0, len(c.Item.Genres))
	for _, g := range c.Item.Genres {
		genres = append(genres, g)
	}

	item := map[string]any{
		"id":         c.Item.ID,
		"title":      c.Item.Title,
		"year":       c.Item.Year,
		"genres":     genres,
		"rating":     c.Item.Rating,
		"popularity": c.Item.Popularity,
	}

	candidate := map[string]any{
		"score":    c.Score,
		"strategy": string(c.Strategy),
	}

	rc := map[string]any{}
	if rctx != nil {
		rc["user_id"] = rctx.UserID
		rc["mood"] = rctx.Mood
		rc["params"] = rctx.Params
	}

	return map[string]any{
		"item":      item,
		"candidate": candidate,
		"rctx":      rc,
	}
}
