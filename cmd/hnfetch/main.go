package main

import (
	"os"
	"time"

	"github.com/LJTian/hntop/internal/collector"
	"github.com/LJTian/hntop/internal/config"
	"github.com/LJTian/hntop/internal/processor"
)

const collectorShutdownTimeout = 30 * time.Second

// 命令行入口：stdout 只输出 JSON，日志与错误一律走 stderr
func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg.LogLevel, cfg.LogFormat)

	a := &app{
		cfg: cfg,
		log: log,
		newRunner: func(listingURL string) processor.Runner {
			return processor.NewPipeline(collector.NewHackerNewsFetcher(listingURL, log))
		},
		checkCaps: func() collector.Capabilities {
			return collector.CheckCapabilities(collector.HNListingExtractor{}, nil)
		},
	}

	os.Exit(execute(a, os.Args[1:], os.Stdout, os.Stderr))
}
