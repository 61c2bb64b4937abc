package game

import (
	"sync/atomic"
	"time"
)

// FrameStats tracks frame timing across a session.
type FrameStats struct {
	frameCount atomic.Uint64
	totalTime  atomic.Uint64 // nanoseconds
	lastTime   atomic.Uint64
}

// NewFrameStats returns zeroed stats.
func NewFrameStats() *FrameStats { return &FrameStats{} }

// FrameTimer measures one frame.
type FrameTimer struct {
	stats *FrameStats
	start time.Time
}

// StartFrame begins timing one frame.
func (s *FrameStats) StartFrame() *FrameTimer {
	return &FrameTimer{stats: s, start: time.Now()}
}

// EndFrame records the frame's duration.
func (t *FrameTimer) EndFrame() {
	d := uint64(time.Since(t.start).Nanoseconds())
	t.stats.lastTime.Store(d)
	t.stats.totalTime.Add(d)
	t.stats.frameCount.Add(1)
}

// Frames returns the number of completed frames.
func (s *FrameStats) Frames() uint64 { return s.frameCount.Load() }

// LastFrameTime returns the duration of the most recent frame.
func (s *FrameStats) LastFrameTime() time.Duration {
	return time.Duration(s.lastTime.Load())
}

// AvgFrameTime returns the mean frame duration, zero before any frame.
func (s *FrameStats) AvgFrameTime() time.Duration {
	n := s.frameCount.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(s.totalTime.Load() / n)
}

// FPS returns the rate the average frame time sustains.
func (s *FrameStats) FPS() float64 {
	avg := s.AvgFrameTime()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}
