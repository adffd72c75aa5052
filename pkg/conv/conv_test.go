package conv

import (
	"reflect"
	"testing"
)

// TestConfigGet 测试泛型配置取值
func TestConfigGet(t *testing.T) {
	cfg := map[string]any{
		"name":    "demo",
		"enabled": true,
		"count":   3,
	}

	if got := ConfigGet(cfg, "name", "def"); got != "demo" {
		t.Errorf("ConfigGet(name) = %q", got)
	}
	if got := ConfigGet(cfg, "enabled", false); !got {
		t.Error("ConfigGet(enabled) = false")
	}
	if got := ConfigGet(cfg, "absent", "def"); got != "def" {
		t.Errorf("缺失 key 应返回默认值: %q", got)
	}
	// 类型不匹配回落默认值
	if got := ConfigGet(cfg, "count", "def"); got != "def" {
		t.Errorf("类型不匹配应返回默认值: %q", got)
	}
	if got := ConfigGet[string](nil, "name", "def"); got != "def" {
		t.Errorf("nil 配置应返回默认值: %q", got)
	}
}

// TestConfigGetNumeric 数值取值兼容多种解析类型
func TestConfigGetNumeric(t *testing.T) {
	cfg := map[string]any{
		"int":     5,
		"int64":   int64(6),
		"float64": 7.0,
		"string":  "8",
	}

	tests := []struct {
		key  string
		want int64
	}{
		{"int", 5},
		{"int64", 6},
		{"float64", 7},
		{"string", -1}, // 不兼容 → 默认值
		{"absent", -1},
	}
	for _, tt := range tests {
		if got := ConfigGetInt64(cfg, tt.key, -1); got != tt.want {
			t.Errorf("ConfigGetInt64(%s) = %d，期望 %d", tt.key, got, tt.want)
		}
	}

	if got := ConfigGetFloat64(cfg, "int", -1); got != 5.0 {
		t.Errorf("ConfigGetFloat64(int) = %v", got)
	}
	if got := ConfigGetFloat64(cfg, "absent", -1); got != -1 {
		t.Errorf("缺失 key 应返回默认值: %v", got)
	}
}

// TestSliceConversions 测试切片转换
func TestSliceConversions(t *testing.T) {
	strs := SliceAnyToString([]any{"a", 1, "b"})
	if !reflect.DeepEqual(strs, []string{"a", "b"}) {
		t.Errorf("SliceAnyToString = %v", strs)
	}
	if SliceAnyToString("not a slice") != nil {
		t.Error("非切片输入应返回 nil")
	}

	ints := SliceAnyToInt64([]any{1, int64(2), 3.0, "x"})
	if !reflect.DeepEqual(ints, []int64{1, 2, 3}) {
		t.Errorf("SliceAnyToInt64 = %v", ints)
	}
	if SliceAnyToInt64(nil) != nil {
		t.Error("nil 输入应返回 nil")
	}
}
