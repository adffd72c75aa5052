// Package feast 提供基于 Feast Feature Store 的画像解析：
// 把在线特征（偏好类型 / 观影历史 / 评分）还原为 core.UserProfile。
//
// Feast 是一个开源的 Feature Store，在线存储用于实时读取。
// 参考：https://github.com/feast-dev/feast
package feast

import "context"

// Client 是 Feast 在线特征读取的客户端接口。
// 领域层定义接口，基础设施层（GrpcClient）实现，便于替换与测试打桩。
type Client interface {
	// GetOnlineFeatures 获取在线特征（用于实时画像解析）
	//
	// 参数：
	//   - Features: 特征名称列表，例如 ["user_profile:preferred_genres"]
	//   - EntityRows: 实体行，例如 [{"user_id": 1}]
	GetOnlineFeatures(ctx context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error)

	// Close 关闭客户端连接
	Close() error
}

// GetOnlineFeaturesRequest 获取在线特征请求
type GetOnlineFeaturesRequest struct {
	// Features 特征名称列表
	Features []string

	// EntityRows 实体行，例如 [{"user_id": 1001}, {"user_id": 1002}]
	EntityRows []map[string]any

	// Project 项目名称（可选，缺省取客户端配置）
	Project string
}

// GetOnlineFeaturesResponse 获取在线特征响应
type GetOnlineFeaturesResponse struct {
	// FeatureVectors 特征向量列表，每个元素对应一个实体行
	FeatureVectors []FeatureVector
}

// FeatureVector 特征向量
type FeatureVector struct {
	// Values 特征值，key 为特征名称
	Values map[string]any

	// EntityRow 对应的实体行
	EntityRow map[string]any
}
