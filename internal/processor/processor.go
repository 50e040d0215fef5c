package processor

import (
	"context"
	"sort"
	"time"

	"github.com/LJTian/hntop/internal/collector"
)

// TimestampLayout generated_at_utc 的格式
const TimestampLayout = "2006-01-02 15:04:05"

// Result 一次抓取的完整输出，字段名与下游 JSON 约定保持一致
type Result struct {
	GeneratedAtUTC string            `json:"generated_at_utc"`
	Days           int               `json:"days"`
	MinVotes       int               `json:"min_votes"`
	Stories        []collector.Story `json:"stories"`
}

// Runner 一次完整的抓取 + 排序，供 API / 定时任务 / 命令行调用
type Runner interface {
	Fetch(ctx context.Context, params collector.FilterParams) Result
}

// Pipeline 串联 collector 与排序、打时间戳
type Pipeline struct {
	Collector collector.Collector
	Now       func() time.Time
}

func NewPipeline(c collector.Collector) *Pipeline {
	return &Pipeline{Collector: c, Now: time.Now}
}

func (p *Pipeline) Fetch(ctx context.Context, params collector.FilterParams) Result {
	params = params.Clamp()
	stories := p.Collector.Collect(ctx, params)
	return Process(params, stories, p.now())
}

func (p *Pipeline) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// Process 按票数降序（稳定排序，同票保持抓取顺序）并组装结果
func Process(params collector.FilterParams, stories []collector.Story, now time.Time) Result {
	out := make([]collector.Story, len(stories))
	copy(out, stories)
	SortByVotes(out)

	return Result{
		GeneratedAtUTC: now.UTC().Format(TimestampLayout),
		Days:           params.Days,
		MinVotes:       params.MinVotes,
		Stories:        out,
	}
}

func SortByVotes(stories []collector.Story) {
	sort.SliceStable(stories, func(i, j int) bool {
		return stories[i].Votes > stories[j].Votes
	})
}
