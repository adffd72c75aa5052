package config

import (
	"fmt"

	"github.com/rushteam/cinekit/filter"
	"github.com/rushteam/cinekit/pipeline"
	"github.com/rushteam/cinekit/pkg/conv"
	"github.com/rushteam/cinekit/rerank"
)

// DefaultFactory 返回一个包含内置后处理 Node 的工厂，
// 供 pipeline.Config 从 YAML 构建自定义 Node 链使用。
// 召回与融合依赖存储协作方，不走配置构建（见 EngineConfig.BuildEngine）。
func DefaultFactory() *pipeline.NodeFactory {
	factory := pipeline.NewNodeFactory()
	factory.Register("filter", buildFilterNode)
	factory.Register("rerank.diversity", buildDiversityNode)
	factory.Register("rerank.topn", buildTopNNode)
	return factory
}

func buildFilterNode(cfg map[string]any) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]any)
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]any)
		if !ok {
			continue
		}
		filterType := conv.ConfigGet(filterMap, "type", "")
		switch filterType {
		case "exclude":
			filters = append(filters, &filter.ExcludeFilter{
				ItemIDs:            conv.SliceAnyToInt64(filterMap["item_ids"]),
				UseRequestExcludes: conv.ConfigGet(filterMap, "use_request_excludes", true),
			})
		case "rule":
			expr := conv.ConfigGet(filterMap, "expr", "")
			if expr == "" {
				return nil, fmt.Errorf("rule filter: expr required")
			}
			rule, err := filter.NewRuleFilter(expr)
			if err != nil {
				return nil, err
			}
			filters = append(filters, rule)
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}

	return &filter.Node{Filters: filters}, nil
}

func buildDiversityNode(cfg map[string]any) (pipeline.Node, error) {
	return &rerank.Diversity{
		TopWindow:   int(conv.ConfigGetInt64(cfg, "top_window", 0)),
		MaxDistinct: int(conv.ConfigGetInt64(cfg, "max_distinct", 0)),
	}, nil
}

func buildTopNNode(cfg map[string]any) (pipeline.Node, error) {
	return &rerank.TopN{
		N: int(conv.ConfigGetInt64(cfg, "n", 0)),
	}, nil
}
