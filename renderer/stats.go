package renderer

import "time"

type FrameStats struct {
	// Number of presented frames.
	Frames uint64

	// Accumulated and extreme frame times.
	TotalTime    time.Duration
	MinFrameTime time.Duration
	MaxFrameTime time.Duration
}

// Record the duration of a presented frame.
func (s *FrameStats) Record(frameTime time.Duration) {
	if s.Frames == 0 || frameTime < s.MinFrameTime {
		s.MinFrameTime = frameTime
	}
	if frameTime > s.MaxFrameTime {
		s.MaxFrameTime = frameTime
	}
	s.Frames++
	s.TotalTime += frameTime
}

// Get the average frame time.
func (s FrameStats) AvgFrameTime() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.TotalTime / time.Duration(s.Frames)
}

// Get the average number of frames per second.
func (s FrameStats) FPS() float64 {
	if s.TotalTime <= 0 {
		return 0
	}
	return float64(s.Frames) / s.TotalTime.Seconds()
}
