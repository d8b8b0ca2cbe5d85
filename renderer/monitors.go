package renderer

import "github.com/go-gl/glfw/v3.3/glfw"

type MonitorInfo struct {
	Name        string
	Primary     bool
	Width       int
	Height      int
	RefreshRate int
	PosX, PosY  int

	// Physical size in millimetres; zero when the platform does not report it.
	PhysicalW, PhysicalH int
}

// List the connected monitors and their current video modes.
func ListMonitors() ([]MonitorInfo, error) {
	if err := glfw.Init(); err != nil {
		return nil, &ContextInitError{Stage: "glfw init", Err: err}
	}
	defer glfw.Terminate()

	monitors := glfw.GetMonitors()
	if len(monitors) == 0 {
		return nil, ErrNoMonitors
	}
	primary := glfw.GetPrimaryMonitor()

	list := make([]MonitorInfo, 0, len(monitors))
	for _, m := range monitors {
		info := MonitorInfo{
			Name:    m.GetName(),
			Primary: m == primary,
		}
		if mode := m.GetVideoMode(); mode != nil {
			info.Width, info.Height, info.RefreshRate = mode.Width, mode.Height, mode.RefreshRate
		}
		info.PosX, info.PosY = m.GetPos()
		info.PhysicalW, info.PhysicalH = m.GetPhysicalSize()
		list = append(list, info)
	}
	return list, nil
}
