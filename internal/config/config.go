package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/LJTian/hntop/internal/collector"
)

type Config struct {
	AppPort string

	ListingURL string
	// Defaults 是 API / 命令行未显式指定时使用的筛选参数，已按区间裁剪
	Defaults collector.FilterParams

	CronSpec string

	LogLevel  string
	LogFormat string
}

// Load 先尝试加载 .env（不存在不算错误），再读取环境变量
func Load() *Config {
	return LoadFrom(".env")
}

func LoadFrom(envPath string) *Config {
	envErr := godotenv.Load(envPath)

	cfg := &Config{
		AppPort:    getEnv("APP_PORT", "9000"),
		ListingURL: getEnv("HN_LISTING_URL", "https://news.ycombinator.com/news"),
		Defaults: collector.FilterParams{
			Days:     getEnvAsInt("HN_DAYS", collector.DefaultDays),
			MinVotes: getEnvAsInt("HN_MIN_VOTES", collector.DefaultMinVotes),
			MaxPages: getEnvAsInt("HN_MAX_PAGES", collector.DefaultMaxPages),
		}.Clamp(),
		CronSpec:  getEnv("CRON_SPEC", "0 * * * *"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logrus.WithError(envErr).WithField("path", envPath).Warn("config: load env file failed")
	}
	logrus.WithFields(logrus.Fields{
		"port":      cfg.AppPort,
		"cron":      cfg.CronSpec,
		"days":      cfg.Defaults.Days,
		"min_votes": cfg.Defaults.MinVotes,
		"max_pages": cfg.Defaults.MaxPages,
	}).Debug("config loaded")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
