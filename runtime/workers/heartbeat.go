package workers

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// SessionCounter exposes how many chat sessions exist.
type SessionCounter interface {
	Count() int
}

// HeartbeatWorker logs process self-stats (RSS, CPU, goroutines,
// session count) on an interval. There is no external monitoring
// endpoint; operators read the logs.
type HeartbeatWorker struct {
	log      *slog.Logger
	interval time.Duration
	sessions SessionCounter
}

func NewHeartbeatWorker(log *slog.Logger, interval time.Duration, sessions SessionCounter) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, interval: interval, sessions: sessions}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Warn("Failed to collect self stats", "error", err)
				continue
			}
			w.log.Info("Heartbeat",
				"rss_bytes", rss,
				"cpu_percent", cpu,
				"goroutines", runtime.NumGoroutine(),
				"sessions", w.sessions.Count())
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, error) {
	mem, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return mem.RSS, cpu, nil
}
