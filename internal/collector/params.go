package collector

const (
	DefaultDays     = 7
	DefaultMinVotes = 250
	DefaultMaxPages = 5

	minDays, maxDays         = 1, 30
	minMinVotes, maxMinVotes = 0, 5000
	minMaxPages, maxMaxPages = 1, 20
)

// FilterParams 抓取参数；通过 Clamp 之后才允许进入抓取流程
type FilterParams struct {
	Days     int `json:"days"`
	MinVotes int `json:"min_votes"`
	MaxPages int `json:"max_pages"`
}

// DefaultParams 返回命令行 / HTTP / 定时任务共用的默认参数
func DefaultParams() FilterParams {
	return FilterParams{
		Days:     DefaultDays,
		MinVotes: DefaultMinVotes,
		MaxPages: DefaultMaxPages,
	}
}

// Clamp 把每个字段限制在合法区间内，越界取边界值
func (p FilterParams) Clamp() FilterParams {
	return FilterParams{
		Days:     clampInt(p.Days, minDays, maxDays),
		MinVotes: clampInt(p.MinVotes, minMinVotes, maxMinVotes),
		MaxPages: clampInt(p.MaxPages, minMaxPages, maxMaxPages),
	}
}

// CutoffSeconds 时间窗口（秒）
func (p FilterParams) CutoffSeconds() int {
	return p.Days * 86400
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
