package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/LJTian/hntop/internal/api"
	"github.com/LJTian/hntop/internal/collector"
	"github.com/LJTian/hntop/internal/config"
	"github.com/LJTian/hntop/internal/processor"
)

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg.LogLevel, cfg.LogFormat)

	// 启动自检：缺少 HTML 解析或 HTTPS 根证书时直接退出，不对外提供半残服务
	if caps := collector.CheckCapabilities(collector.HNListingExtractor{}, nil); !caps.Available() {
		fmt.Fprint(os.Stderr, caps.Message())
		os.Exit(1)
	}

	fetcher := collector.NewHackerNewsFetcher(cfg.ListingURL, log)
	pipeline := processor.NewPipeline(fetcher)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestLogger(log))

	apiServer := api.NewServer(pipeline, cfg.Defaults, log)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Infof("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
