package recall

import (
	"context"
	"sort"

	"github.com/rushteam/cinekit/core"
)

// Collaborative 是基于用户的协同召回源（User-based CF 的工程化简版）。
//
// 核心思想："看过同样东西的人，喜欢的其他东西也值得推荐"
//
// 算法流程：
//  1. 无画像或无观影历史 → 整体委托给热门召回（冷启动兜底，产出逐条一致）
//  2. 遍历其他画像（UserID 升序），观影历史有 ≥1 个交集即视为相似用户
//     （二值判定，不按交集大小加权——刻意的工程简化，阈值可调）
//  3. 收集相似用户看过、目标用户没看过且未被排除的物品，
//     仅保留相似用户评分 ≥ MinPeerRating 的（未评分按默认分处理）
//  4. 按物品去重：首次出现者胜出，重复出现不重新打分
//  5. score = 0.7 * peerRating/10 + 0.3 * rating/10
//  6. 不足 Limit 时用内容召回（画像偏好类型）确定性补足
type Collaborative struct {
	Profiles core.ProfileStore
	Catalog  core.Catalog

	// Content 用于候选补足；Popularity 用于冷启动兜底。
	Content    *ContentBased
	Popularity *Popularity

	// MinPeerRating 相似用户评分门槛；0 取默认 7.5。
	// 未评分的物品按 DefaultPeerRating（0 取 7.5）计。
	MinPeerRating     float64
	DefaultPeerRating float64

	// PeerWeight / QualityWeight 为 0 时取默认 0.7 / 0.3。
	PeerWeight    float64
	QualityWeight float64
}

func (r *Collaborative) Name() string {
	return "recall.collaborative"
}

func (r *Collaborative) Recall(
	ctx context.Context,
	q Query,
) ([]*core.Candidate, error) {
	limit := capLimit(q.Limit)
	if limit == 0 {
		return nil, nil
	}

	profile := r.resolveProfile(ctx, q.UserID)

	// 冷启动：无画像或无观影历史 → 热门兜底，产出与热门召回逐条一致
	if profile == nil || len(profile.WatchHistory) == 0 {
		if r.Popularity == nil {
			return nil, nil
		}
		return r.Popularity.Recall(ctx, q)
	}

	minRating := r.MinPeerRating
	if minRating == 0 {
		minRating = 7.5
	}
	defaultRating := r.DefaultPeerRating
	if defaultRating == 0 {
		defaultRating = 7.5
	}
	peerWeight := r.PeerWeight
	if peerWeight == 0 {
		peerWeight = 0.7
	}
	qualityWeight := r.QualityWeight
	if qualityWeight == 0 {
		qualityWeight = 0.3
	}

	watched := make(map[int64]struct{}, len(profile.WatchHistory))
	for _, id := range profile.WatchHistory {
		watched[id] = struct{}{}
	}

	out := make([]*core.Candidate, 0, limit)
	seen := make(map[int64]struct{})

	// 枚举能力是可选的：Feature Store 一类后端只支持点查，
	// 此时没有相似用户，直接走内容补足
	if browser, ok := r.Profiles.(core.ProfileBrowser); ok {
		peers, err := browser.All(ctx)
		if err != nil {
			peers = nil
		}
		for _, peer := range peers {
			if peer == nil || peer.UserID == profile.UserID {
				continue
			}
			if !r.sharesWatched(watched, peer) {
				continue
			}

			for _, itemID := range peer.WatchHistory {
				if _, ok := watched[itemID]; ok {
					continue
				}
				if q.Excluded(itemID) {
					continue
				}
				if _, ok := seen[itemID]; ok {
					continue // 首次出现者胜出，不重新打分
				}

				rating, ok := peer.RatingOf(itemID)
				if !ok {
					rating = defaultRating
				}
				if rating < minRating {
					continue
				}

				item, err := r.Catalog.ByID(ctx, itemID)
				if err != nil {
					continue // 历史里的未知物品可跳过，不得失败
				}

				seen[itemID] = struct{}{}
				score := peerWeight*rating/10.0 + qualityWeight*item.Rating/10.0
				out = append(out, core.NewCandidate(item, score, core.StrategyCollaborative))
			}
		}
	}

	// 确定性补足：画像偏好类型的内容召回，排除原排除集、已选中
	// 以及已看过的物品。补足候选保留 content_based 标记。
	if len(out) < limit && r.Content != nil {
		exclude := make(map[int64]struct{}, len(q.Exclude)+len(seen)+len(watched))
		for id := range q.Exclude {
			exclude[id] = struct{}{}
		}
		for id := range seen {
			exclude[id] = struct{}{}
		}
		for id := range watched {
			exclude[id] = struct{}{}
		}

		pad, err := r.Content.Recall(ctx, Query{
			Genres:  profile.PreferredGenres,
			Exclude: exclude,
			Limit:   limit - len(out),
		})
		if err == nil {
			out = append(out, pad...)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Collaborative) resolveProfile(ctx context.Context, userID int64) *core.UserProfile {
	if r.Profiles == nil || userID == 0 {
		return nil
	}
	profile, err := r.Profiles.Get(ctx, userID)
	if err != nil {
		return nil // not-found 即冷启动信号
	}
	return profile
}

func (r *Collaborative) sharesWatched(watched map[int64]struct{}, peer *core.UserProfile) bool {
	for _, id := range peer.WatchHistory {
		if _, ok := watched[id]; ok {
			return true
		}
	}
	return false
}
