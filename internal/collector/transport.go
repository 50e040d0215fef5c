package collector

import (
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
)

const (
	hnRequestTimeout = 15 * time.Second

	primaryUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	alternateUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0"
)

// browserHeaders 构造一组接近浏览器的请求头
func browserHeaders(userAgent string) http.Header {
	h := http.Header{}
	h.Set("User-Agent", userAgent)
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("Cache-Control", "no-cache")
	h.Set("Pragma", "no-cache")
	return h
}

// pageGetter 发起单次列表页请求；失败时返回 (0 或非 200, nil)，从不返回 error
type pageGetter interface {
	Get(pageURL string, hdr http.Header) (status int, body []byte)
}

// collyGetter 每次抓取流程新建一个，不在调用之间共享状态
type collyGetter struct {
	c    *colly.Collector
	last *colly.Response
}

func newCollyGetter(timeout time.Duration) *collyGetter {
	// 重试会再次访问同一 URL，需要允许 revisit；
	// 403 / 429 也要走 OnResponse 拿到状态码
	c := colly.NewCollector(
		colly.AllowURLRevisit(),
		colly.ParseHTTPErrorResponse(),
	)
	c.SetRequestTimeout(timeout)

	g := &collyGetter{c: c}
	c.OnResponse(func(r *colly.Response) {
		g.last = r
	})
	return g
}

func (g *collyGetter) Get(pageURL string, hdr http.Header) (int, []byte) {
	g.last = nil
	if err := g.c.Request(http.MethodGet, pageURL, nil, nil, hdr.Clone()); err != nil {
		return 0, nil
	}
	if g.last == nil {
		return 0, nil
	}
	return g.last.StatusCode, g.last.Body
}
