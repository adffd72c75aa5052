// Package feedback 是画像写入协作方：把用户反馈事件落到 ProfileStore。
// 推荐核心对画像只读；观影、评分等行为通过这里演进画像。
package feedback

import (
	"context"

	"github.com/rushteam/cinekit/core"
)

// EventType 反馈类型
type EventType string

const (
	EventWatch   EventType = "watch"   // 观看：追加历史 + 合并类型偏好
	EventLike    EventType = "like"    // 点赞（当前仅透传评分）
	EventDislike EventType = "dislike" // 不喜欢
	EventSkip    EventType = "skip"    // 跳过
)

// Event 反馈事件（轻量级，只包含必要信息）
type Event struct {
	UserID int64     `json:"user_id"`
	ItemID int64     `json:"item_id"`
	Type   EventType `json:"type"`

	// Rating > 0 时设置（覆盖）该物品的评分。
	Rating float64 `json:"rating,omitempty"`
}

// Recorder 把反馈事件写入画像：
//   - watch：观影历史追加（已存在跳过），物品类型合入偏好（已存在跳过）
//   - 带评分的任意事件：设置/覆盖评分
//   - 首次反馈的用户自动创建空画像
//
// 事件里的未知物品 ID 只影响类型合并（跳过），不会让写入失败。
type Recorder struct {
	Profiles core.ProfileStore
	Catalog  core.Catalog
}

// Record 处理一条反馈事件。
func (r *Recorder) Record(ctx context.Context, ev Event) error {
	if r.Profiles == nil {
		return core.NewDomainError(core.ModuleProfile, core.ErrorCodeInvalidInput, "feedback: profile store required")
	}

	profile, err := r.Profiles.Get(ctx, ev.UserID)
	if err != nil {
		if !core.IsProfileNotFound(err) {
			return err
		}
		profile = core.NewUserProfile(ev.UserID)
	}

	if ev.Type == EventWatch {
		profile.AddWatch(ev.ItemID)
		if r.Catalog != nil {
			if item, err := r.Catalog.ByID(ctx, ev.ItemID); err == nil {
				profile.MergeGenres(item.Genres)
			}
		}
	}

	if ev.Rating > 0 {
		profile.SetRating(ev.ItemID, ev.Rating)
	}

	return r.Profiles.Put(ctx, profile)
}
