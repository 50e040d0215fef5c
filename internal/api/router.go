package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/LJTian/hntop/internal/collector"
	"github.com/LJTian/hntop/internal/processor"
)

type Server struct {
	runner   processor.Runner
	defaults collector.FilterParams
	log      *logrus.Logger
}

func NewServer(runner processor.Runner, defaults collector.FilterParams, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{runner: runner, defaults: defaults.Clamp(), log: log}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.POST("/run", s.run)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// runRequest 请求体中的覆盖项；未出现的字段沿用默认值。
// 与命令行参数同名的 min-votes / max-pages 写法同样接受，两者都给时以下划线写法为准
type runRequest struct {
	Days         *int `json:"days"`
	MinVotes     *int `json:"min_votes"`
	MaxPages     *int `json:"max_pages"`
	MinVotesFlag *int `json:"min-votes"`
	MaxPagesFlag *int `json:"max-pages"`
}

func firstSet(vals ...*int) *int {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func (s *Server) run(c *gin.Context) {
	params, err := s.paramsFromBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "bad_request",
			"message": "invalid json body: " + err.Error(),
		})
		return
	}

	res := s.runner.Fetch(c.Request.Context(), params)
	s.log.WithFields(logrus.Fields{
		"days":      res.Days,
		"min_votes": res.MinVotes,
		"stories":   len(res.Stories),
	}).Info("api: run done")

	// 结果原样返回，不做 HTML 转义
	c.PureJSON(http.StatusOK, gin.H{"result": res})
}

func (s *Server) paramsFromBody(c *gin.Context) (collector.FilterParams, error) {
	params := s.defaults

	raw, err := c.GetRawData()
	if err != nil {
		return params, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return params, nil
	}

	// 拼错的字段直接报错，不静默回落到默认值
	var req runRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return params, err
	}
	if req.Days != nil {
		params.Days = *req.Days
	}
	if v := firstSet(req.MinVotes, req.MinVotesFlag); v != nil {
		params.MinVotes = *v
	}
	if v := firstSet(req.MaxPages, req.MaxPagesFlag); v != nil {
		params.MaxPages = *v
	}
	return params.Clamp(), nil
}

// RequestLogger 用 logrus 记录每个请求，替代 gin 默认的 Logger
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("http request")
	}
}
