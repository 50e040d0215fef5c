package processor

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LJTian/hntop/internal/collector"
)

const fixturePage1 = `<html><body><table>
<tr class="athing"><td><span class="titleline"><a href="item?id=1">Alpha</a></span></td></tr>
<tr><td class="subtext"><span class="score">150 points</span> <span class="age"><a>2 hours ago</a></span></td></tr>
<tr class="athing"><td><span class="titleline"><a href="https://beta.example.com/">Beta</a></span></td></tr>
<tr><td class="subtext"><span class="score">90 points</span> <span class="age"><a>3 hours ago</a></span></td></tr>
<tr class="athing"><td><span class="titleline"><a href="/show">Gamma</a></span></td></tr>
<tr><td class="subtext"><span class="score">400 points</span> <span class="age"><a>1 day ago</a></span></td></tr>
<tr class="athing"><td><span class="titleline"><a href="from?site=delta.dev">Delta</a></span></td></tr>
<tr><td class="subtext"><span class="score">500 points</span> <span class="age"><a>10 days ago</a></span></td></tr>
</table></body></html>`

const fixturePage2 = `<html><body><table>
<tr class="athing"><td><span class="titleline"><a href="https://z.example.com/">Zeta</a></span></td></tr>
<tr><td class="subtext"><span class="score">150 points</span> <span class="age"><a>6 days ago</a></span></td></tr>
<tr class="athing"><td><span class="titleline"><a href="https://w.example.com/">Omega</a></span></td></tr>
<tr><td class="subtext"><span class="score">400 points</span> <span class="age"><a>3 days ago</a></span></td></tr>
</table></body></html>`

func TestPipelineFetchTwoPageFixture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		switch r.URL.Query().Get("p") {
		case "1":
			_, _ = io.WriteString(w, fixturePage1)
		case "2":
			_, _ = io.WriteString(w, fixturePage2)
		default:
			_, _ = io.WriteString(w, "<html><body></body></html>")
		}
	}))
	defer srv.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)

	p := NewPipeline(collector.NewHackerNewsFetcher(srv.URL+"/news", log))
	p.Now = func() time.Time { return time.Date(2024, 2, 29, 23, 59, 1, 0, time.UTC) }

	res := p.Fetch(context.Background(), collector.FilterParams{Days: 7, MinVotes: 100, MaxPages: 5})

	assert.Equal(t, "2024-02-29 23:59:01", res.GeneratedAtUTC)
	assert.Equal(t, 7, res.Days)
	assert.Equal(t, 100, res.MinVotes)
	require.Equal(t, []collector.Story{
		{Title: "Gamma", Link: "https://news.ycombinator.com/show", Votes: 400, AgeText: "1 day ago"},
		{Title: "Omega", Link: "https://w.example.com/", Votes: 400, AgeText: "3 days ago"},
		{Title: "Alpha", Link: "https://news.ycombinator.com/item?id=1", Votes: 150, AgeText: "2 hours ago"},
		{Title: "Zeta", Link: "https://z.example.com/", Votes: 150, AgeText: "6 days ago"},
	}, res.Stories)
}
