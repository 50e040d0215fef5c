package collector

import (
	"crypto/x509"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Capability 启动时缺失的运行依赖及修复方式
type Capability struct {
	Name        string
	Remediation string
}

// Capabilities 启动自检结果；由调用方决定退出还是降级运行
type Capabilities struct {
	Missing []Capability
}

func (c Capabilities) Available() bool {
	return len(c.Missing) == 0
}

// Message 汇总所有缺失项，直接写到 stderr 即可
func (c Capabilities) Message() string {
	if c.Available() {
		return ""
	}
	var b strings.Builder
	for _, m := range c.Missing {
		fmt.Fprintf(&b, "Backend dependency missing: %s\n%s\n", m.Name, m.Remediation)
	}
	return b.String()
}

const sampleListingHTML = `<table>
<tr class="athing" id="1"><td class="title"><span class="titleline"><a href="item?id=1">sample</a></span></td></tr>
<tr><td class="subtext"><span class="score">1 point</span> <span class="age"><a href="item?id=1">1 minute ago</a></span></td></tr>
</table>`

// CheckCapabilities 检查 HTML 解析与 HTTPS 根证书是否可用。
// rootsLoader 为 nil 时使用系统证书池。
func CheckCapabilities(extractor RowExtractor, rootsLoader func() (*x509.CertPool, error)) Capabilities {
	var caps Capabilities

	if extractor == nil {
		extractor = HNListingExtractor{}
	}
	if !checkExtractor(extractor) {
		caps.Missing = append(caps.Missing, Capability{
			Name:        "html parser",
			Remediation: "The listing extractor could not parse a sample document; rebuild the binary with github.com/PuerkitoBio/goquery available.",
		})
	}

	if rootsLoader == nil {
		rootsLoader = x509.SystemCertPool
	}
	if pool, err := rootsLoader(); err != nil || pool == nil || pool.Equal(x509.NewCertPool()) {
		caps.Missing = append(caps.Missing, Capability{
			Name:        "tls root certificates",
			Remediation: "HTTPS requests to " + hnSiteOrigin + " need CA certificates. Install them (e.g. `apt-get install ca-certificates` or `apk add ca-certificates`) or point SSL_CERT_FILE at a PEM bundle.",
		})
	}

	return caps
}

func checkExtractor(extractor RowExtractor) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sampleListingHTML))
	if err != nil {
		return false
	}
	rows := extractor.ExtractRows(doc)
	return len(rows) == 1 && rows[0].Title == "sample"
}
