package demo

import (
	"context"
	"sync"
	"time"

	"github.com/vsnam19/vsnlogger/pkg/codes"
	"github.com/vsnam19/vsnlogger/pkg/vsnlog"
)

// Options configures a demo run.
type Options struct {
	AppName    string
	LogDir     string
	ConfigFile string
	Level      string
	Workers    int
	Iterations int
	// Interval between worker iterations; defaults to 100ms.
	Interval time.Duration
}

// Run drives the logging pipeline with a realistic workload and blocks
// until the workers finish or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.AppName == "" {
		opts.AppName = "vsnlog-demo"
	}
	if opts.Workers <= 0 {
		opts.Workers = 2
	}
	if opts.Iterations <= 0 {
		opts.Iterations = 3
	}
	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}

	reg := vsnlog.NewRegistry()
	defer reg.Shutdown()

	level := vsnlog.InfoLevel
	if opts.Level != "" {
		if l, err := vsnlog.ParseLevel(opts.Level); err == nil {
			level = l
		}
	}

	var logger *vsnlog.Logger
	var c codes.Code
	if opts.ConfigFile != "" {
		logger, c = reg.InitializeWithConfig(opts.AppName, opts.ConfigFile)
	} else {
		logger, c = reg.Initialize(opts.AppName, opts.LogDir, level)
	}
	if c != codes.OK {
		logger = reg.Default()
		logger.Warn("initialization failed (%s); continuing on the default logger", c)
	}

	logger.Info("demo application %s starting up", opts.AppName)

	analyzer := logger.Component("analyzer")
	processData(analyzer, 42)
	processData(analyzer, -7)

	report := logger.Component("report")
	report.Info("generating %s report", "monthly")
	report.Debug("report parameters resolved")

	logger.Info("starting %d worker(s)", opts.Workers)
	var wg sync.WaitGroup
	for id := 1; id <= opts.Workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			worker := logger.Component("worker")
			for i := 0; i < opts.Iterations; i++ {
				select {
				case <-ctx.Done():
					worker.Warn("worker %d cancelled at iteration %d", id, i)
					return
				case <-time.After(opts.Interval):
				}
				worker.Info("worker %d processing iteration %d", id, i)
			}
		}(id)
	}
	wg.Wait()

	logger.Info("demo application %s shutting down", opts.AppName)
	if c := reg.Flush(); c != codes.OK {
		return c.Err()
	}
	return nil
}

func processData(logger *vsnlog.Logger, value int) int {
	logger.Info("processing data with value %d", value)
	if value < 0 {
		logger.Warn("received negative value %d", value)
		value = -value
	}
	result := value * 2
	logger.Debug("calculated result %d", result)
	return result
}
