package core

// Strategy 标记候选的来源策略，贯穿融合 / 解释全链路。
type Strategy string

const (
	StrategyContentBased  Strategy = "content_based" // 内容召回：类型匹配 + 质量
	StrategyCollaborative Strategy = "collaborative" // 协同召回：相似用户
	StrategyPopularity    Strategy = "popularity"    // 热门召回：流行度 + 新近度
	StrategyMood          Strategy = "mood"          // 心情召回：心情映射到类型
)

// Candidate 是单次请求内的临时结构：某个召回源给出的 (物品, 分数, 策略) 三元组。
// 不落盘，仅在 召回 → 融合 → 重排 之间流转。
//
// 显式建模为命名字段的结构体，避免融合阶段出现按下标取值的错误。
type Candidate struct {
	Item     *Item
	Score    float64
	Strategy Strategy
}

// NewCandidate 创建一个候选。
func NewCandidate(item *Item, score float64, strategy Strategy) *Candidate {
	return &Candidate{Item: item, Score: score, Strategy: strategy}
}
