package download

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// progressTracker turns byte counts into samples. Callbacks run for every
// chunk; the log line is emitted at most once per second plus a final
// line on completion.
type progressTracker struct {
	fns       []ProgressFunc
	logger    *slog.Logger
	logging   bool
	sometimes rate.Sometimes
	total     int64
	startTime time.Time
}

func newProgressTracker(opts options, total int64, logger *slog.Logger) *progressTracker {
	return &progressTracker{
		fns:       opts.progressFns,
		logger:    logger,
		logging:   opts.progressLog,
		sometimes: rate.Sometimes{Interval: time.Second},
		total:     total,
		startTime: time.Now(),
	}
}

func (pt *progressTracker) update(received int64) {
	if pt.total <= 0 {
		return
	}

	p := pt.sample(received)
	for _, fn := range pt.fns {
		fn(p)
	}

	if !pt.logging {
		return
	}

	if p.Done() {
		pt.log("download complete", p)
		return
	}

	pt.sometimes.Do(func() { pt.log("downloading", p) })
}

func (pt *progressTracker) sample(received int64) Progress {
	elapsed := time.Since(pt.startTime)

	var bps float64
	if secs := elapsed.Seconds(); secs > 0 {
		bps = float64(received) / secs
	}

	return Progress{
		BytesReceived:  received,
		TotalBytes:     pt.total,
		Percent:        float64(received) / float64(pt.total) * 100,
		BytesPerSecond: bps,
		Elapsed:        elapsed,
	}
}

func (pt *progressTracker) log(msg string, p Progress) {
	pt.logger.Info(msg,
		"progress", fmt.Sprintf("%.1f%%", p.Percent),
		"elapsed", p.Elapsed.Round(time.Millisecond),
		"transferred", p.BytesReceived,
		"total", p.TotalBytes,
		"mbps", fmt.Sprintf("%.2f", p.BytesPerSecond/(1024*1024)),
	)
}
