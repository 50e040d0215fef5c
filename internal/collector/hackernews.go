package collector

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

// HackerNewsFetcher 翻页抓取 HN 列表页，按时间窗口与票数过滤
type HackerNewsFetcher struct {
	// ListingURL 默认为 https://news.ycombinator.com/news，测试时指向 httptest
	ListingURL string
	Extractor  RowExtractor
	Timeout    time.Duration
	Log        *logrus.Logger
}

func NewHackerNewsFetcher(listingURL string, log *logrus.Logger) *HackerNewsFetcher {
	return &HackerNewsFetcher{
		ListingURL: listingURL,
		Extractor:  HNListingExtractor{},
		Timeout:    hnRequestTimeout,
		Log:        log,
	}
}

func (h *HackerNewsFetcher) Name() string {
	return "hackernews_listing"
}

// Collect 按抓取顺序返回满足条件的故事（未排序）。
// 抓取 / 解析失败只会让翻页提前结束，不会作为错误返回；
// ctx 仅在页与页之间检查。
func (h *HackerNewsFetcher) Collect(ctx context.Context, params FilterParams) []Story {
	params = params.Clamp()
	log := h.logger().WithField("source", h.Name())
	extractor := h.Extractor
	if extractor == nil {
		extractor = HNListingExtractor{}
	}
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = hnRequestTimeout
	}
	listing := h.ListingURL
	if listing == "" {
		listing = hnListingURL
	}

	return h.collect(ctx, params, listing, extractor, newCollyGetter(timeout), log)
}

func (h *HackerNewsFetcher) collect(ctx context.Context, params FilterParams, listing string, extractor RowExtractor, getter pageGetter, log *logrus.Entry) []Story {
	cutoff := params.CutoffSeconds()
	results := make([]Story, 0, 64)
	retriedFirst := false

	for page := 1; page <= params.MaxPages; page++ {
		if err := ctx.Err(); err != nil {
			log.WithError(err).WithField("page", page).Warn("hackernews: context done, stop paging")
			break
		}

		pageURL := listing + "?p=" + strconv.Itoa(page)
		status, body := getter.Get(pageURL, browserHeaders(primaryUserAgent))

		if page == 1 && !retriedFirst && (status == http.StatusForbidden || status == http.StatusTooManyRequests) {
			retriedFirst = true
			log.WithField("status", status).Info("hackernews: first page blocked, retry with alternate headers")
			status, body = getter.Get(pageURL, browserHeaders(alternateUserAgent))
		}

		if status != http.StatusOK || len(body) == 0 {
			log.WithFields(logrus.Fields{"page": page, "status": status}).Warn("hackernews: fetch failed, stop paging")
			break
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			log.WithError(err).WithField("page", page).Warn("hackernews: parse html failed, stop paging")
			break
		}

		rows := extractor.ExtractRows(doc)
		if len(rows) == 0 {
			log.WithField("page", page).Info("hackernews: no rows on page, stop paging")
			break
		}

		anyWithinCutoff := false
		kept := 0

		// 列表并非严格按时间排序，遇到过旧的行继续扫描整页
		for _, row := range rows {
			age, ok := parseAgeSeconds(row.AgeText)
			if !ok {
				continue
			}
			if age > cutoff {
				continue
			}
			anyWithinCutoff = true

			votes := parseVotes(row.VotesText)
			if votes < params.MinVotes {
				continue
			}

			results = append(results, Story{
				Title:   row.Title,
				Link:    normalizeLink(row.Href),
				Votes:   votes,
				AgeText: row.AgeText,
			})
			kept++
		}

		log.WithFields(logrus.Fields{
			"page":   page,
			"status": status,
			"rows":   len(rows),
			"kept":   kept,
		}).Debug("hackernews: page done")

		if !anyWithinCutoff {
			log.WithField("page", page).Info("hackernews: no story within cutoff, stop paging")
			break
		}
	}

	return results
}

func (h *HackerNewsFetcher) logger() *logrus.Logger {
	if h.Log != nil {
		return h.Log
	}
	return logrus.StandardLogger()
}
