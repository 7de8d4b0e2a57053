package config

import "time"

// App carries the runtime settings for the colorgate binary,
// populated from command-line flags in cmd/colorgate.
type App struct {
	ParamFile     string
	Param         string
	ImagePath     string
	CameraDevice  int
	SourceSpace   string
	ThreshSpace   string
	FrameInterval time.Duration
	LogLevel      string
}
