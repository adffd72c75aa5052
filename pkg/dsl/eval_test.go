package dsl

import (
	"testing"

	"github.com/rushteam/cinekit/core"
)

func testCandidate() *core.Candidate {
	return &core.Candidate{
		Item: &core.Item{
			ID:         1,
			Title:      "Inception",
			Year:       2010,
			Genres:     []string{"Sci-Fi", "Thriller"},
			Rating:     8.8,
			Popularity: 95,
		},
		Score:    0.9,
		Strategy: core.StrategyContentBased,
	}
}

// TestProgram_Evaluate 测试规则表达式求值
func TestProgram_Evaluate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"rating compare", "item.rating >= 8.0", true},
		{"rating compare false", "item.rating >= 9.0", false},
		{"genre membership", `"Sci-Fi" in item.genres`, true},
		{"genre membership false", `"Horror" in item.genres`, false},
		{"strategy equality", `candidate.strategy == "content_based"`, true},
		{"score threshold", "candidate.score > 0.5", true},
		{"logic combination", "item.year >= 2000 && item.popularity >= 80.0", true},
		{"rctx user id", "rctx.user_id == 42", true},
	}

	rctx := &core.RecommendContext{UserID: 42}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.expr)
			if err != nil {
				t.Fatalf("编译失败: %v", err)
			}
			got, err := p.Evaluate(testCandidate(), rctx)
			if err != nil {
				t.Fatalf("求值失败: %v", err)
			}
			if got != tt.want {
				t.Errorf("%q = %v，期望 %v", tt.expr, got, tt.want)
			}
		})
	}
}

// TestCompile_Error 非法表达式编译报错
func TestCompile_Error(t *testing.T) {
	if _, err := Compile("item.rating >="); err == nil {
		t.Error("非法表达式应报错")
	}
}

// TestProgram_NonBoolean 非布尔结果求值报错
func TestProgram_NonBoolean(t *testing.T) {
	p, err := Compile("item.rating")
	if err != nil {
		t.Fatalf("编译失败: %v", err)
	}
	if _, err := p.Evaluate(testCandidate(), nil); err == nil {
		t.Error("非布尔表达式求值应报错")
	}
}

// TestProgram_Expr 保留原始表达式文本
func TestProgram_Expr(t *testing.T) {
	const expr = "item.rating >= 6.0"
	p, err := Compile(expr)
	if err != nil {
		t.Fatalf("编译失败: %v", err)
	}
	if p.Expr() != expr {
		t.Errorf("Expr() = %q，期望 %q", p.Expr(), expr)
	}
}
