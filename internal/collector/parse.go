package collector

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	hnSiteOrigin = "https://news.ycombinator.com"
	hnListingURL = hnSiteOrigin + "/news"
)

var (
	ageRe   = regexp.MustCompile(`(?i)^(\d+)\s+(minute|hour|day)s?\s+ago$`)
	votesRe = regexp.MustCompile(`^(\d+)`)
)

// normalizeLink 把 HN 站内相对链接补全为绝对地址
func normalizeLink(href string) string {
	if href == "" {
		return href
	}
	if strings.HasPrefix(href, "item?") || strings.HasPrefix(href, "from?") {
		return hnSiteOrigin + "/" + href
	}
	if strings.HasPrefix(href, "/") {
		return hnSiteOrigin + href
	}
	return href
}

// parseAgeSeconds 解析 "3 minutes ago" 一类的相对时间；无法识别时 ok=false
func parseAgeSeconds(ageText string) (seconds int, ok bool) {
	ageText = strings.ToLower(strings.TrimSpace(ageText))
	if ageText == "" {
		return 0, false
	}

	m := ageRe.FindStringSubmatch(ageText)
	if m == nil {
		return 0, false
	}

	var unit int
	switch m[2] {
	case "minute":
		unit = 60
	case "hour":
		unit = 3600
	case "day":
		unit = 86400
	default:
		return 0, false
	}

	// 数值超出 int 范围时按"无限久远"处理，必然落在时间窗口之外
	value, err := strconv.Atoi(m[1])
	if err != nil || value > math.MaxInt/unit {
		return math.MaxInt, true
	}
	return value * unit, true
}

// parseVotes 取 "123 points" 开头的数字部分，缺失时为 0
func parseVotes(text string) int {
	m := votesRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
