package collector

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// Story 一条满足筛选条件的 HN 故事
type Story struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Votes   int    `json:"votes"`
	AgeText string `json:"age_text"`
}

// RawRow 从列表页解析出的原始行，尚未做链接规范化与时间解析
type RawRow struct {
	Title     string
	Href      string
	VotesText string
	AgeText   string
}

// RowExtractor 抽象列表页的行解析，HN 改版时只需替换实现
type RowExtractor interface {
	ExtractRows(doc *goquery.Document) []RawRow
}

// Collector 抽象数据源：按参数翻页抓取并过滤，返回抓取顺序的结果
type Collector interface {
	Name() string
	Collect(ctx context.Context, params FilterParams) []Story
}
