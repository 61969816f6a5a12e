package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/engine/logger"
)

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to its logger at a configurable interval.
type Profiler struct {
	log            logger.Logger
	now            func() time.Time
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	lastFPS        float64
}

// ProfilerOption configures a Profiler.
type ProfilerOption func(p *Profiler)

// WithInterval sets how often stats are logged. Non-positive values keep the 1 second default.
//
// Parameters:
//   - d: the reporting interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithLogger sets the logger stats are written to. A nil logger is ignored.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(l logger.Logger) ProfilerOption {
	return func(p *Profiler) {
		if l != nil {
			p.log = l
		}
	}
}

// WithClock replaces the wall clock.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second
// and output goes to a no-op logger unless WithLogger is given.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		log:            logger.NewNop(),
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs FPS, heap, allocation rate, GC count/pause times and OS memory when
// the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	p.lastFPS = float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses.
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.log.Info("frame stats",
		logger.F("fps", p.lastFPS),
		logger.F("heap_mb", allocMB),
		logger.F("alloc_rate_mb_s", allocRateMB),
		logger.F("gc_count", gcCount),
		logger.F("gc_last_pause_us", lastPauseUs),
		logger.F("gc_max_pause_us", maxPauseUs),
		logger.F("sys_mb", sysMB),
	)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// FPS returns the frame rate measured at the last report.
func (p *Profiler) FPS() float64 {
	return p.lastFPS
}
