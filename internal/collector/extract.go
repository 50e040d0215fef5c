package collector

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HNListingExtractor 基于当前 HN 列表页 DOM 结构的解析器：
// 每条故事是一行 tr.athing，紧随其后的 tr 是分数 / 时间等元信息
type HNListingExtractor struct{}

func (HNListingExtractor) ExtractRows(doc *goquery.Document) []RawRow {
	if doc == nil {
		return nil
	}

	rows := doc.Find("tr.athing")
	out := make([]RawRow, 0, rows.Length())

	rows.Each(func(_ int, row *goquery.Selection) {
		titleLink := row.Find("span.titleline a").First()
		if titleLink.Length() == 0 {
			return
		}
		meta := row.NextAllFiltered("tr").First()
		if meta.Length() == 0 {
			return
		}

		href, _ := titleLink.Attr("href")
		out = append(out, RawRow{
			Title:     strings.TrimSpace(titleLink.Text()),
			Href:      href,
			VotesText: strings.TrimSpace(meta.Find("span.score").First().Text()),
			AgeText:   strings.TrimSpace(meta.Find("span.age").First().Text()),
		})
	})

	return out
}
