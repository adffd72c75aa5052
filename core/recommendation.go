package core

// DiversityTag 是推荐结果的多样性标签，与推荐理由相互独立。
type DiversityTag string

const (
	TagNew      DiversityTag = "new"      // 今年上映
	TagTrending DiversityTag = "trending" // 热门召回产出
	TagSimilar  DiversityTag = "similar"  // 高流行度
	TagDiverse  DiversityTag = "diverse"  // 其余
)

// Recommendation 是最终输出结构：每次请求由 Annotator 创建一次，
// 返回给调用方后不再持有。Score 已归一化到 [0,1]。
type Recommendation struct {
	Item         *Item
	Score        float64
	Explanation  string
	Strategy     Strategy
	DiversityTag DiversityTag
}
