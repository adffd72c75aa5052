package feast

import (
	"context"
	"strconv"
	"strings"

	"github.com/rushteam/cinekit/core"
)

// 默认特征名。偏好/历史既支持 Feast 原生 List 特征，
// 也兼容逗号分隔的字符串标量。
const (
	DefaultEntityKey      = "user_id"
	DefaultGenresFeature  = "user_profile:preferred_genres"
	DefaultHistoryFeature = "user_profile:watch_history"
	DefaultRatedFeature   = "user_profile:rated_items"
	DefaultRatingsFeature = "user_profile:ratings"
)

// ProfileStore 是 Feast 在线特征实现的只读画像存储：
// 在请求边界把特征向量还原为 core.UserProfile。
//
// Feature Store 不支持枚举，因此只实现 core.ProfileStore（点查），
// 不实现 ProfileBrowser——协同召回在这种后端上没有相似用户可找，
// 会自动退化为内容补足。Put 不支持（画像由特征工程链路物化）。
type ProfileStore struct {
	Client Client

	// EntityKey / 各特征名为空时取默认值。
	EntityKey      string
	GenresFeature  string
	HistoryFeature string
	RatedFeature   string // 已评分物品 ID 列表
	RatingsFeature string // 与 RatedFeature 对齐的评分列表
}

var errPutNotSupported = core.NewDomainError(core.ModuleProfile, core.ErrorCodeNotSupported, "profile: feast store is read-only")

func (s *ProfileStore) Get(ctx context.Context, userID int64) (*core.UserProfile, error) {
	if s.Client == nil {
		return nil, core.ErrProfileNotFound
	}

	entityKey := s.EntityKey
	if entityKey == "" {
		entityKey = DefaultEntityKey
	}
	genresFeature := orDefault(s.GenresFeature, DefaultGenresFeature)
	historyFeature := orDefault(s.HistoryFeature, DefaultHistoryFeature)
	ratedFeature := orDefault(s.RatedFeature, DefaultRatedFeature)
	ratingsFeature := orDefault(s.RatingsFeature, DefaultRatingsFeature)

	resp, err := s.Client.GetOnlineFeatures(ctx, &GetOnlineFeaturesRequest{
		Features:   []string{genresFeature, historyFeature, ratedFeature, ratingsFeature},
		EntityRows: []map[string]any{{entityKey: userID}},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.FeatureVectors) == 0 {
		return nil, core.ErrProfileNotFound
	}

	values := resp.FeatureVectors[0].Values
	profile := core.NewUserProfile(userID)
	profile.PreferredGenres = toStrings(values[genresFeature])
	profile.WatchHistory = toInt64s(values[historyFeature])

	rated := toInt64s(values[ratedFeature])
	ratings := toFloat64s(values[ratingsFeature])
	for i, itemID := range rated {
		if i < len(ratings) {
			profile.SetRating(itemID, ratings[i])
		}
	}

	// 全部特征缺失视为画像不存在（冷启动），而不是空画像
	if len(profile.PreferredGenres) == 0 && len(profile.WatchHistory) == 0 && len(profile.Ratings) == 0 {
		return nil, core.ErrProfileNotFound
	}
	return profile, nil
}

func (s *ProfileStore) Put(ctx context.Context, profile *core.UserProfile) error {
	return errPutNotSupported
}

var _ core.ProfileStore = (*ProfileStore)(nil)

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func toStrings(v any) []string {
	switch val := v.(type) {
	case []string:
		return val
	case string:
		return splitCSV(val)
	}
	return nil
}

func toInt64s(v any) []int64 {
	switch val := v.(type) {
	case []int64:
		return val
	case string:
		parts := splitCSV(val)
		out := make([]int64, 0, len(parts))
		for _, p := range parts {
			if id, err := strconv.ParseInt(p, 10, 64); err == nil {
				out = append(out, id)
			}
		}
		return out
	}
	return nil
}

func toFloat64s(v any) []float64 {
	switch val := v.(type) {
	case []float64:
		return val
	case string:
		parts := splitCSV(val)
		out := make([]float64, 0, len(parts))
		for _, p := range parts {
			if f, err := strconv.ParseFloat(p, 64); err == nil {
				out = append(out, f)
			}
		}
		return out
	}
	return nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
