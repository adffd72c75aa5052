package core

import "context"

// Catalog 是物品库的领域接口（只读协作方）。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 推荐核心假定读取的是已就绪的内存快照，不在计算中途发起远程拉取
//
// 实现：
//   - store.MemoryCatalog 实现此接口
//   - store.RedisCatalog 实现此接口
type Catalog interface {
	// AllItems 返回全部物品。顺序必须稳定（入库顺序），
	// 召回排序用它作为同分时的决胜次序。
	AllItems(ctx context.Context) ([]*Item, error)

	// ByID 按 ID 查询物品；不存在时返回 ErrItemNotFound。
	ByID(ctx context.Context, id int64) (*Item, error)
}

var (
	// ErrItemNotFound 表示物品不存在。历史记录 / 评分里出现未知 ID
	// 时按可跳过处理，不得让整个请求失败。
	ErrItemNotFound = NewDomainError(ModuleCatalog, ErrorCodeNotFound, "catalog: item not found")
)

// IsItemNotFound 检查错误是否为物品不存在。
func IsItemNotFound(err error) bool {
	if err == nil {
		return false
	}
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Module == ModuleCatalog && domainErr.Code == ErrorCodeNotFound
}
