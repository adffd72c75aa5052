package core

import "context"

// ProfileStore 是用户画像的领域接口。
//
// 画像可能不存在（冷启动）：Get 返回 ErrProfileNotFound 时不是错误，
// 而是驱动热门兜底的信号。推荐核心只调用 Get；Put 供 feedback 协作方使用。
type ProfileStore interface {
	// Get 返回画像快照；不存在时返回 ErrProfileNotFound。
	Get(ctx context.Context, userID int64) (*UserProfile, error)

	// Put 写入（覆盖）画像。
	Put(ctx context.Context, profile *UserProfile) error
}

// ProfileBrowser 是 ProfileStore 的扩展接口：支持枚举全部画像，
// 协同召回依赖它寻找相似用户。
//
// 返回顺序必须按 UserID 升序，保证协同召回的产出确定性。
// Feature Store 一类后端无法枚举，可以只实现 ProfileStore。
type ProfileBrowser interface {
	ProfileStore

	// All 返回全部画像快照（UserID 升序）。
	All(ctx context.Context) ([]*UserProfile, error)
}

var (
	// ErrProfileNotFound 表示用户画像不存在（冷启动信号）。
	ErrProfileNotFound = NewDomainError(ModuleProfile, ErrorCodeNotFound, "profile: user not found")
)

// IsProfileNotFound 检查错误是否为画像不存在。
func IsProfileNotFound(err error) bool {
	if err == nil {
		return false
	}
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Module == ModuleProfile && domainErr.Code == ErrorCodeNotFound
}
