package core

// UserProfile 是用户画像：偏好类型、观影历史与评分。
//
// 推荐核心对画像只读；写入由 feedback 包（外部反馈协作方）完成。
// WatchHistory 保持插入顺序（即时间顺序），PreferredGenres 保持首次出现顺序。
type UserProfile struct {
	UserID          int64
	PreferredGenres []string
	WatchHistory    []int64
	Ratings         map[int64]float64 // itemID -> 评分 [0,10]
}

// NewUserProfile 创建一个空画像。
func NewUserProfile(userID int64) *UserProfile {
	return &UserProfile{
		UserID:          userID,
		PreferredGenres: make([]string, 0),
		WatchHistory:    make([]int64, 0),
		Ratings:         make(map[int64]float64),
	}
}

// HasWatched 判断用户是否看过某物品。
func (p *UserProfile) HasWatched(itemID int64) bool {
	for _, id := range p.WatchHistory {
		if id == itemID {
			return true
		}
	}
	return false
}

// RatingOf 返回用户对某物品的评分；未评分时返回 ok=false。
func (p *UserProfile) RatingOf(itemID int64) (float64, bool) {
	if p.Ratings == nil {
		return 0, false
	}
	score, ok := p.Ratings[itemID]
	return score, ok
}

// AddWatch 追加观影记录（已存在时跳过，保持时间顺序）。
func (p *UserProfile) AddWatch(itemID int64) {
	if p.HasWatched(itemID) {
		return
	}
	p.WatchHistory = append(p.WatchHistory, itemID)
}

// MergeGenres 将类型合入偏好（已存在时跳过，保持首次出现顺序）。
func (p *UserProfile) MergeGenres(genres []string) {
	for _, g := range genres {
		exists := false
		for _, pg := range p.PreferredGenres {
			if pg == g {
				exists = true
				break
			}
		}
		if !exists {
			p.PreferredGenres = append(p.PreferredGenres, g)
		}
	}
}

// SetRating 设置或覆盖评分。
func (p *UserProfile) SetRating(itemID int64, rating float64) {
	if p.Ratings == nil {
		p.Ratings = make(map[int64]float64)
	}
	p.Ratings[itemID] = rating
}

// Clone 返回画像的深拷贝，供存储实现返回快照使用。
func (p *UserProfile) Clone() *UserProfile {
	cp := &UserProfile{
		UserID:          p.UserID,
		PreferredGenres: append([]string(nil), p.PreferredGenres...),
		WatchHistory:    append([]int64(nil), p.WatchHistory...),
		Ratings:         make(map[int64]float64, len(p.Ratings)),
	}
	for id, r := range p.Ratings {
		cp.Ratings[id] = r
	}
	return cp
}
