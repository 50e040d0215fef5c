package collector

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

type fixtureRow struct {
	title string
	href  string
	score string
	age   string
}

// listingPage 按 HN 列表页结构拼出一页 HTML
func listingPage(rows ...fixtureRow) string {
	var b strings.Builder
	b.WriteString(`<html><body><table class="itemlist">`)
	for i, r := range rows {
		fmt.Fprintf(&b, `<tr class="athing submission" id="%d"><td class="title"><span class="titleline"><a href="%s">%s</a></span></td></tr>`,
			i+1, html.EscapeString(r.href), html.EscapeString(r.title))
		b.WriteString(`<tr><td colspan="2"></td><td class="subtext"><span class="subline">`)
		if r.score != "" {
			fmt.Fprintf(&b, `<span class="score">%s</span> `, r.score)
		}
		if r.age != "" {
			fmt.Fprintf(&b, `<span class="age"><a href="item?id=%d">%s</a></span>`, i+1, r.age)
		}
		b.WriteString(`</span></td></tr><tr class="spacer"></tr>`)
	}
	b.WriteString(`</table></body></html>`)
	return b.String()
}

type hit struct {
	page      string
	userAgent string
}

// listingServer 记录每次请求的页码与 User-Agent；handler 决定响应
type listingServer struct {
	*httptest.Server
	mu   sync.Mutex
	hits []hit
}

func newListingServer(t *testing.T, handler func(w http.ResponseWriter, page string, n int)) *listingServer {
	t.Helper()
	ls := &listingServer{}
	ls.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("p")
		ls.mu.Lock()
		ls.hits = append(ls.hits, hit{page: page, userAgent: r.Header.Get("User-Agent")})
		n := len(ls.hits)
		ls.mu.Unlock()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		handler(w, page, n)
	}))
	t.Cleanup(ls.Close)
	return ls
}

func (ls *listingServer) Hits() []hit {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	out := make([]hit, len(ls.hits))
	copy(out, ls.hits)
	return out
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
