package ensemble

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/cinekit/core"
	"github.com/rushteam/cinekit/pipeline"
	"github.com/rushteam/cinekit/recall"
)

// Weights 是各策略的信任加权。协同信号最强（相似用户的真实行为），
// 心情次之，热门只是基线填充；内容路径不加权。
type Weights struct {
	Collaborative float64 // 默认 1.2
	Mood          float64 // 默认 1.1
	Popularity    float64 // 默认 0.9
}

func (w Weights) withDefaults() Weights {
	if w.Collaborative == 0 {
		w.Collaborative = 1.2
	}
	if w.Mood == 0 {
		w.Mood = 1.1
	}
	if w.Popularity == 0 {
		w.Popularity = 0.9
	}
	return w
}

// Limits 是各路召回的取数上限。
type Limits struct {
	Personalized int // 协同/内容/心情路径，默认 15
	Popular      int // 热门路径，默认 10
}

func (l Limits) withDefaults() Limits {
	if l.Personalized == 0 {
		l.Personalized = 15
	}
	if l.Popular == 0 {
		l.Popular = 10
	}
	return l
}

// Combiner 是融合 Node：并发执行选中的召回路径，按策略加权后做
// max-merge 去重，产出一份全局排序的候选列表。
//
// 路径选择：
//  1. 有画像 → 协同召回（×1.2）
//  2. 心情 > 显式类型 > 画像偏好类型，三者只走优先级最高的一条
//  3. 热门召回恒开启（×0.9）
//
// 合并策略是 max-merge 而非 sum-merge：单一强信号不应被稀释，
// 物品也不应因同时出现在弱召回源里而受罚。同一物品以胜出那次
// 出现的策略标记为准。各路结果按固定槽位合并，产出与完成顺序无关。
type Combiner struct {
	Collaborative *recall.Collaborative
	Content       *recall.ContentBased
	Mood          *recall.Mood
	Popularity    *recall.Popularity

	Weights Weights
	Limits  Limits

	// Sequential 为 true 时串行执行各路召回（调试用）。
	Sequential bool
}

func (n *Combiner) Name() string        { return "ensemble.combiner" }
func (n *Combiner) Kind() pipeline.Kind { return pipeline.KindRecall }

// task 是一条待执行的召回路径：执行后按权重缩放、必要时改写策略标记。
type task struct {
	source recall.Source
	query  recall.Query
	weight float64
	retag  core.Strategy // 非空时覆盖产出的策略标记（心情路径）
}

func (n *Combiner) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	weights := n.Weights.withDefaults()
	limits := n.Limits.withDefaults()
	exclude := rctx.ExcludeSet()

	tasks := make([]task, 0, 3)

	// 1. 个性化：有画像才走协同
	if rctx.User != nil && n.Collaborative != nil {
		tasks = append(tasks, task{
			source: n.Collaborative,
			query:  recall.Query{UserID: rctx.UserID, Exclude: exclude, Limit: limits.Personalized},
			weight: weights.Collaborative,
		})
	}

	// 2. 内容类路径：心情 > 显式类型 > 画像偏好，只走一条
	switch {
	case rctx.Mood != "" && n.Mood != nil:
		tasks = append(tasks, task{
			source: n.Mood,
			query:  recall.Query{Mood: rctx.Mood, Exclude: exclude, Limit: limits.Personalized},
			weight: weights.Mood,
			retag:  core.StrategyMood,
		})
	case len(rctx.Genres) > 0 && n.Content != nil:
		tasks = append(tasks, task{
			source: n.Content,
			query:  recall.Query{Genres: rctx.Genres, Exclude: exclude, Limit: limits.Personalized},
			weight: 1.0,
		})
	case rctx.User != nil && n.Content != nil:
		tasks = append(tasks, task{
			source: n.Content,
			query:  recall.Query{Genres: rctx.User.PreferredGenres, Exclude: exclude, Limit: limits.Personalized},
			weight: 1.0,
		})
	}

	// 3. 基线：热门恒开启
	if n.Popularity != nil {
		tasks = append(tasks, task{
			source: n.Popularity,
			query:  recall.Query{Exclude: exclude, Limit: limits.Popular},
			weight: weights.Popularity,
		})
	}

	slots, err := n.run(ctx, tasks)
	if err != nil {
		return nil, err
	}

	merged := mergeMax(slots)

	// 稳定排序：同分保持槽位先后次序，结果与召回完成顺序无关
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	limit := rctx.Limit
	if limit < 0 {
		limit = 0
	}
	if len(merged) > limit {
		merged = merged[:limit]
	}

	// 加权可能把分数推过 1.0，对外暴露前收敛到 [0,1]
	for _, c := range merged {
		if c.Score > 1.0 {
			c.Score = 1.0
		}
	}
	return merged, nil
}

// run 执行全部召回路径，结果写入与 tasks 对齐的固定槽位。
// 单路失败按"贡献零候选"处理，不中断整个请求。
func (n *Combiner) run(ctx context.Context, tasks []task) ([][]*core.Candidate, error) {
	slots := make([][]*core.Candidate, len(tasks))

	runOne := func(i int) {
		t := tasks[i]
		cands, err := t.source.Recall(ctx, t.query)
		if err != nil {
			return
		}
		for _, c := range cands {
			c.Score *= t.weight
			if t.retag != "" {
				c.Strategy = t.retag
			}
		}
		slots[i] = cands
	}

	if n.Sequential {
		for i := range tasks {
			runOne(i)
		}
		return slots, nil
	}

	eg, _ := errgroup.WithContext(ctx)
	for i := range tasks {
		i := i
		eg.Go(func() error {
			runOne(i)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return slots, nil
}

// mergeMax 按物品 ID 去重：保留各源加权分的最大值，策略标记跟随
// 胜出的那次出现（严格更高才替换，同分保留先到者）。
// 输出保持首次出现的先后次序，供稳定排序做同分决胜。
func mergeMax(slots [][]*core.Candidate) []*core.Candidate {
	index := make(map[int64]int)
	out := make([]*core.Candidate, 0, 32)

	for _, cands := range slots {
		for _, c := range cands {
			if c == nil || c.Item == nil {
				continue
			}
			at, ok := index[c.Item.ID]
			if !ok {
				index[c.Item.ID] = len(out)
				out = append(out, c)
				continue
			}
			if c.Score > out[at].Score {
				out[at] = c
			}
		}
	}
	return out
}
