// Package config 提供 YAML 驱动的引擎装配：策略加权、召回上限、
// 新近度档位、心情映射表、规则过滤等都可以由配置给出。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/cinekit/core"
	"github.com/rushteam/cinekit/engine"
	"github.com/rushteam/cinekit/ensemble"
	"github.com/rushteam/cinekit/explain"
	"github.com/rushteam/cinekit/filter"
	"github.com/rushteam/cinekit/pipeline"
	"github.com/rushteam/cinekit/recall"
	"github.com/rushteam/cinekit/rerank"
)

// EngineConfig 是引擎配置。全部字段可选，零值落到内置默认
// （1.2/1.1/0.9 加权、15/10 上限、7.5 评分门槛、5/3 多样性窗口）。
type EngineConfig struct {
	Weights struct {
		Collaborative float64 `yaml:"collaborative"`
		Mood          float64 `yaml:"mood"`
		Popularity    float64 `yaml:"popularity"`
	} `yaml:"weights"`

	Limits struct {
		Personalized int `yaml:"personalized"`
		Popular      int `yaml:"popular"`
	} `yaml:"limits"`

	Recency struct {
		RecentYears int     `yaml:"recent_years"`
		MidYears    int     `yaml:"mid_years"`
		Recent      float64 `yaml:"recent"`
		Mid         float64 `yaml:"mid"`
		Old         float64 `yaml:"old"`
	} `yaml:"recency"`

	Content struct {
		GenreWeight   float64 `yaml:"genre_weight"`
		QualityWeight float64 `yaml:"quality_weight"`
	} `yaml:"content"`

	Collaborative struct {
		MinPeerRating float64 `yaml:"min_peer_rating"`
	} `yaml:"collaborative"`

	Diversity struct {
		TopWindow   int `yaml:"top_window"`
		MaxDistinct int `yaml:"max_distinct"`
	} `yaml:"diversity"`

	// Moods 覆盖内置心情映射表；MoodFallback 覆盖未识别心情的降级类型集。
	Moods        map[string][]string `yaml:"moods"`
	MoodFallback []string            `yaml:"mood_fallback"`

	// Rules 是 CEL 规则过滤表达式（全部满足才保留候选）。
	Rules []string `yaml:"rules"`

	DefaultLimit int `yaml:"default_limit"`
}

// Load 从 YAML 文件加载引擎配置。
func Load(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg EngineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}

// BuildEngine 按配置装配引擎。
func (c *EngineConfig) BuildEngine(catalog core.Catalog, profiles core.ProfileStore) (*engine.Engine, error) {
	content := &recall.ContentBased{
		Catalog:       catalog,
		GenreWeight:   c.Content.GenreWeight,
		QualityWeight: c.Content.QualityWeight,
	}
	popularity := &recall.Popularity{
		Catalog: catalog,
		Boost: recall.RecencyBoost{
			RecentYears: c.Recency.RecentYears,
			MidYears:    c.Recency.MidYears,
			Recent:      c.Recency.Recent,
			Mid:         c.Recency.Mid,
			Old:         c.Recency.Old,
		},
	}

	e := &engine.Engine{
		Catalog:  catalog,
		Profiles: profiles,
		Combiner: &ensemble.Combiner{
			Collaborative: &recall.Collaborative{
				Profiles:      profiles,
				Catalog:       catalog,
				Content:       content,
				Popularity:    popularity,
				MinPeerRating: c.Collaborative.MinPeerRating,
			},
			Content: content,
			Mood: &recall.Mood{
				Content:  content,
				Table:    c.Moods,
				Fallback: c.MoodFallback,
			},
			Popularity: popularity,
			Weights: ensemble.Weights{
				Collaborative: c.Weights.Collaborative,
				Mood:          c.Weights.Mood,
				Popularity:    c.Weights.Popularity,
			},
			Limits: ensemble.Limits{
				Personalized: c.Limits.Personalized,
				Popular:      c.Limits.Popular,
			},
		},
		Diversity: &rerank.Diversity{
			TopWindow:   c.Diversity.TopWindow,
			MaxDistinct: c.Diversity.MaxDistinct,
		},
		Annotator:    &explain.Annotator{},
		DefaultLimit: c.DefaultLimit,
	}

	if len(c.Rules) > 0 {
		filters := make([]filter.Filter, 0, len(c.Rules))
		for _, expr := range c.Rules {
			rule, err := filter.NewRuleFilter(expr)
			if err != nil {
				return nil, fmt.Errorf("compile rule %q: %w", expr, err)
			}
			filters = append(filters, rule)
		}
		e.Nodes = append(e.Nodes, &filter.Node{Filters: filters})
	}

	return e, nil
}

// 确保配置装配的节点类型与 pipeline 对齐
var _ pipeline.Node = (*filter.Node)(nil)
