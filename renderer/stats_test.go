package renderer

import (
	"testing"
	"time"
)

func TestFrameStats(t *testing.T) {
	var stats FrameStats
	if stats.AvgFrameTime() != 0 || stats.FPS() != 0 {
		t.Fatal("expected empty stats to report zero")
	}

	for _, ft := range []time.Duration{20 * time.Millisecond, 10 * time.Millisecond, 30 * time.Millisecond} {
		stats.Record(ft)
	}

	if stats.Frames != 3 {
		t.Fatalf("expected 3 frames; got %d", stats.Frames)
	}
	if stats.MinFrameTime != 10*time.Millisecond || stats.MaxFrameTime != 30*time.Millisecond {
		t.Fatalf("expected min/max 10ms/30ms; got %s/%s", stats.MinFrameTime, stats.MaxFrameTime)
	}
	if stats.AvgFrameTime() != 20*time.Millisecond {
		t.Fatalf("expected avg 20ms; got %s", stats.AvgFrameTime())
	}
	if fps := stats.FPS(); fps < 49.99 || fps > 50.01 {
		t.Fatalf("expected 50 fps; got %f", fps)
	}
}

func TestCameraOptions(t *testing.T) {
	opts := testOptions().Camera
	opts.Distance = 500
	opts.MaxDistance = 1000
	cam, err := opts.NewCamera(2)
	if err != nil {
		t.Fatal(err)
	}
	if cam.Distance() != 500 {
		t.Fatalf("expected distance limits to apply before the initial orbit; got %f", cam.Distance())
	}

	opts.MinDistance = 10
	opts.MaxDistance = 1
	if _, err = opts.NewCamera(2); err == nil {
		t.Fatal("expected inverted distance limits to be rejected")
	}
}

func TestFrameDeltaClampsOnlyTheStep(t *testing.T) {
	frameTime, step := frameDelta(1.0, 3.0)
	if frameTime != 2*time.Second {
		t.Fatalf("expected measured frame time of 2s; got %s", frameTime)
	}
	if step != maxFrameDelta {
		t.Fatalf("expected simulation step to be clamped to %f; got %f", maxFrameDelta, step)
	}

	var stats FrameStats
	stats.Record(frameTime)
	if stats.MaxFrameTime != 2*time.Second || stats.FPS() != 0.5 {
		t.Fatalf("expected stalled frame to be recorded unclamped; got max %s and %f fps", stats.MaxFrameTime, stats.FPS())
	}

	frameTime, step = frameDelta(1.0, 1.125)
	if frameTime != 125*time.Millisecond || step != 0.125 {
		t.Fatalf("expected short frames to pass through; got %s and %f", frameTime, step)
	}

	if frameTime, step = frameDelta(2.0, 1.0); frameTime != 0 || step != 0 {
		t.Fatalf("expected a backwards clock to give a zero delta; got %s and %f", frameTime, step)
	}
}
