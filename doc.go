// Package cinekit 是一个影视推荐核心（Cinema Recommender Kit）。
//
// 设计要点：
// - Ensemble-first: 四路召回策略（内容 / 协同 / 热门 / 心情）加权融合为一份排序
// - Pipeline 可组合: 融合 → 过滤 → 多样性重排 → 截断，均为可插拔 Node
// - Explain-first: 每条推荐自带可读的推荐理由与多样性标签
package cinekit

import "github.com/rushteam/cinekit/pipeline"

// 轻量 facade：便于用户直接 import "cinekit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
