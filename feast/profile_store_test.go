package feast

import (
	"context"
	"testing"

	"github.com/rushteam/cinekit/core"
)

// stubClient 是测试用的 Client 打桩实现
type stubClient struct {
	resp *GetOnlineFeaturesResponse
	err  error

	lastReq *GetOnlineFeaturesRequest
}

func (c *stubClient) GetOnlineFeatures(_ context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error) {
	c.lastReq = req
	return c.resp, c.err
}

func (c *stubClient) Close() error { return nil }

// TestProfileStore_Get 特征向量还原为画像
func TestProfileStore_Get(t *testing.T) {
	client := &stubClient{
		resp: &GetOnlineFeaturesResponse{
			FeatureVectors: []FeatureVector{{
				Values: map[string]any{
					DefaultGenresFeature:  []string{"Sci-Fi", "Thriller"},
					DefaultHistoryFeature: []int64{1, 3},
					DefaultRatedFeature:   []int64{1},
					DefaultRatingsFeature: []float64{9.0},
				},
			}},
		},
	}
	s := &ProfileStore{Client: client}

	p, err := s.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}

	if p.UserID != 42 {
		t.Errorf("期望 UserID=42，实际 %d", p.UserID)
	}
	if len(p.PreferredGenres) != 2 || p.PreferredGenres[0] != "Sci-Fi" {
		t.Errorf("偏好类型错误: %v", p.PreferredGenres)
	}
	if len(p.WatchHistory) != 2 {
		t.Errorf("观影历史错误: %v", p.WatchHistory)
	}
	if rating, ok := p.RatingOf(1); !ok || rating != 9.0 {
		t.Errorf("评分错误: %v %v", rating, ok)
	}

	// 实体行以 user_id 点查
	if len(client.lastReq.EntityRows) != 1 || client.lastReq.EntityRows[0][DefaultEntityKey] != int64(42) {
		t.Errorf("实体行构造错误: %+v", client.lastReq.EntityRows)
	}
}

// TestProfileStore_GetCSV 标量 CSV 特征同样可还原
func TestProfileStore_GetCSV(t *testing.T) {
	client := &stubClient{
		resp: &GetOnlineFeaturesResponse{
			FeatureVectors: []FeatureVector{{
				Values: map[string]any{
					DefaultGenresFeature:  "Drama, Comedy",
					DefaultHistoryFeature: "5, 7",
					DefaultRatedFeature:   "5",
					DefaultRatingsFeature: "8.5",
				},
			}},
		},
	}
	s := &ProfileStore{Client: client}

	p, err := s.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if len(p.PreferredGenres) != 2 || p.PreferredGenres[1] != "Comedy" {
		t.Errorf("CSV 类型解析错误: %v", p.PreferredGenres)
	}
	if len(p.WatchHistory) != 2 || p.WatchHistory[1] != 7 {
		t.Errorf("CSV 历史解析错误: %v", p.WatchHistory)
	}
	if rating, _ := p.RatingOf(5); rating != 8.5 {
		t.Errorf("CSV 评分解析错误: %v", rating)
	}
}

// TestProfileStore_NotFound 全部特征缺失视为画像不存在
func TestProfileStore_NotFound(t *testing.T) {
	tests := []struct {
		name string
		resp *GetOnlineFeaturesResponse
	}{
		{"no vectors", &GetOnlineFeaturesResponse{}},
		{"empty features", &GetOnlineFeaturesResponse{
			FeatureVectors: []FeatureVector{{Values: map[string]any{}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &ProfileStore{Client: &stubClient{resp: tt.resp}}
			_, err := s.Get(context.Background(), 1)
			if !core.IsProfileNotFound(err) {
				t.Errorf("期望 not-found 错误，实际 %v", err)
			}
		})
	}
}

// TestProfileStore_PutNotSupported 画像由特征工程链路物化，Put 不支持
func TestProfileStore_PutNotSupported(t *testing.T) {
	s := &ProfileStore{Client: &stubClient{}}
	err := s.Put(context.Background(), core.NewUserProfile(1))
	if !core.IsNotSupported(err) {
		t.Errorf("期望 NOT_SUPPORTED 错误，实际 %v", err)
	}
}
