package core

// Item 是推荐链路中的统一物品结构：排序决策只依赖
// Genres / Rating / Popularity / Year 四个字段，其余为展示元信息。
//
// 约束：
//   - ID 在 Catalog 内唯一
//   - Genres 非空
//   - Rating ∈ [0,10]，Popularity ∈ [0,100]
type Item struct {
	ID         int64
	Title      string
	Year       int
	Genres     []string
	Rating     float64
	Popularity float64

	// 展示元信息，不参与排序
	Description string
	Director    string
	Cast        []string
	Runtime     int // 分钟
}

// GenreSet 返回 Genres 的集合形式，便于求交集。
func (it *Item) GenreSet() map[string]struct{} {
	set := make(map[string]struct{}, len(it.Genres))
	for _, g := range it.Genres {
		set[g] = struct{}{}
	}
	return set
}

// HasGenre 判断物品是否包含某个类型。
func (it *Item) HasGenre(genre string) bool {
	for _, g := range it.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
