package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LJTian/hntop/internal/collector"
	"github.com/LJTian/hntop/internal/config"
	"github.com/LJTian/hntop/internal/processor"
	"github.com/LJTian/hntop/internal/scheduler"
)

var version = "dev"

// app 命令行依赖，测试时替换 newRunner / checkCaps
type app struct {
	cfg       *config.Config
	log       *logrus.Logger
	newRunner func(listingURL string) processor.Runner
	checkCaps func() collector.Capabilities
}

// capabilityError 启动自检失败；直接输出修复提示，不加 "Backend error" 前缀
type capabilityError struct {
	caps collector.Capabilities
}

func (e *capabilityError) Error() string {
	return e.caps.Message()
}

type cliFlags struct {
	days       int
	minVotes   int
	maxPages   int
	listingURL string
	cronSpec   string
}

func (f *cliFlags) params() collector.FilterParams {
	return collector.FilterParams{
		Days:     f.days,
		MinVotes: f.minVotes,
		MaxPages: f.maxPages,
	}.Clamp()
}

func newRootCmd(a *app) *cobra.Command {
	f := &cliFlags{}

	root := &cobra.Command{
		Use:           "hnfetch",
		Short:         "Fetch Hacker News stories filtered by age and votes",
		Long:          "hnfetch pages through the Hacker News front page, keeps stories newer than --days with at least --min-votes points, and prints them as one JSON object sorted by votes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureCapabilities(); err != nil {
				return err
			}
			res := a.newRunner(f.listingURL).Fetch(cmd.Context(), f.params())
			return writeResult(cmd.OutOrStdout(), res, false)
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&f.days, "days", a.cfg.Defaults.Days, "only keep stories posted within this many days (1-30)")
	pf.IntVar(&f.minVotes, "min-votes", a.cfg.Defaults.MinVotes, "minimum points a story needs (0-5000)")
	pf.IntVar(&f.maxPages, "max-pages", a.cfg.Defaults.MaxPages, "maximum listing pages to fetch (1-20)")
	pf.StringVar(&f.listingURL, "listing-url", a.cfg.ListingURL, "listing page to paginate")

	root.AddCommand(newWatchCmd(a, f))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hnfetch %s\n", version)
		},
	})

	return root
}

func newWatchCmd(a *app, f *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the fetch on a cron schedule, printing one JSON line per run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureCapabilities(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sink := func(res processor.Result) error {
				return writeResult(out, res, true)
			}
			s, err := scheduler.New(f.cronSpec, a.newRunner(f.listingURL), f.params(), sink, a.log)
			if err != nil {
				return fmt.Errorf("invalid cron spec %q: %w", f.cronSpec, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s.Start()
			a.log.WithField("cron", f.cronSpec).Info("watch: scheduler started")
			<-ctx.Done()

			a.log.Info("watch: shutting down")
			stopCtx, cancel := context.WithTimeout(context.Background(), collectorShutdownTimeout)
			defer cancel()
			s.Stop(stopCtx)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.cronSpec, "cron", a.cfg.CronSpec, "cron spec for scheduled runs")
	return cmd
}

func (a *app) ensureCapabilities() error {
	caps := a.checkCaps()
	if caps.Available() {
		return nil
	}
	return &capabilityError{caps: caps}
}

// writeResult 直接写 UTF-8 字节；watch 模式每轮一行
func writeResult(w io.Writer, res processor.Result, newline bool) error {
	data, err := processor.Encode(res)
	if err != nil {
		return err
	}
	if newline {
		data = append(data, '\n')
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// execute 是进程的最外层边界：所有错误和 panic 都在这里变成退出码 1
func execute(a *app, args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Backend error: %v\n", r)
			code = 1
		}
	}()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var capErr *capabilityError
		if errors.As(err, &capErr) {
			fmt.Fprint(stderr, capErr.Error())
		} else {
			fmt.Fprintf(stderr, "Backend error: %v\n", err)
		}
		return 1
	}
	return 0
}
